package class

import (
	"fmt"

	"fitnflex/internal/pkg/apperr"
)

var (
	ErrClassNotFound = fmt.Errorf("%w: class not found", apperr.ErrNotFound)
	ErrClassExists   = fmt.Errorf("%w: class already exists", apperr.ErrInvalidRequest)
	ErrNameRequired  = fmt.Errorf("%w: class name is required", apperr.ErrInvalidRequest)
	ErrInvalidPage   = fmt.Errorf("%w: page must be a non-negative integer", apperr.ErrInvalidRequest)
)
