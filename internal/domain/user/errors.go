package user

import (
	"fmt"

	"fitnflex/internal/pkg/apperr"
)

var (
	ErrUserNotFound  = fmt.Errorf("%w: user not found", apperr.ErrNotFound)
	ErrUserExists    = fmt.Errorf("%w: user already exists", apperr.ErrInvalidRequest)
	ErrInvalidEmail  = fmt.Errorf("%w: a valid email is required", apperr.ErrInvalidRequest)
	ErrSkillsMissing = fmt.Errorf("%w: at least one skill is required", apperr.ErrInvalidRequest)
)
