package booking

import (
	"fmt"

	"fitnflex/internal/pkg/apperr"
)

var (
	ErrClassNameRequired = fmt.Errorf("%w: class name is required", apperr.ErrInvalidRequest)
	ErrSlotIDRequired    = fmt.Errorf("%w: slot id is required", apperr.ErrInvalidRequest)
	ErrInvalidPrice      = fmt.Errorf("%w: price must be a non-negative number", apperr.ErrInvalidRequest)
	ErrPayerMismatch     = fmt.Errorf("%w: payer email does not match the authenticated user", apperr.ErrForbidden)
)
