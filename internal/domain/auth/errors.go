package auth

import (
	"fmt"

	"fitnflex/internal/pkg/apperr"
)

var ErrInvalidEmail = fmt.Errorf("%w: a valid email is required", apperr.ErrInvalidRequest)
