package vote

import (
	"fmt"

	"fitnflex/internal/pkg/apperr"
)

var (
	ErrInvalidDirection = fmt.Errorf("%w: vote must be \"like\" or \"dislike\"", apperr.ErrInvalidRequest)
	ErrBlogNotFound     = fmt.Errorf("%w: blog not found", apperr.ErrNotFound)
	ErrVoterMismatch    = fmt.Errorf("%w: you can only vote as yourself", apperr.ErrForbidden)
)
