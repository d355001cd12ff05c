package blog

import (
	"fmt"

	"fitnflex/internal/pkg/apperr"
)

var (
	ErrBlogNotFound  = fmt.Errorf("%w: blog not found", apperr.ErrNotFound)
	ErrTitleRequired = fmt.Errorf("%w: title is required", apperr.ErrInvalidRequest)
	ErrInvalidPage   = fmt.Errorf("%w: page must be a non-negative integer", apperr.ErrInvalidRequest)
)
