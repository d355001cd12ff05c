package payment

import (
	"fmt"

	"fitnflex/internal/pkg/apperr"
)

var (
	ErrInvalidPrice     = fmt.Errorf("%w: price must be a positive number", apperr.ErrInvalidRequest)
	ErrProviderDisabled = fmt.Errorf("%w: payment provider is not configured", apperr.ErrInternal)
)
