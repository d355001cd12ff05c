package subscription

import (
	"fmt"

	"fitnflex/internal/pkg/apperr"
)

var (
	ErrAlreadySubscribed = fmt.Errorf("%w: already subscribed", apperr.ErrInvalidRequest)
	ErrInvalidEmail      = fmt.Errorf("%w: a valid email is required", apperr.ErrInvalidRequest)
)
