package testimonial

import (
	"fmt"

	"fitnflex/internal/pkg/apperr"
)

var (
	ErrNameRequired  = fmt.Errorf("%w: name is required", apperr.ErrInvalidRequest)
	ErrInvalidRating = fmt.Errorf("%w: rating must be between 0 and 5", apperr.ErrInvalidRequest)
)
