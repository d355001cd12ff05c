package slot

import (
	"fmt"

	"fitnflex/internal/pkg/apperr"
)

var (
	ErrSlotNotFound      = fmt.Errorf("%w: slot not found", apperr.ErrNotFound)
	ErrSlotAlreadyBooked = fmt.Errorf("%w: slot is already booked", apperr.ErrInvalidRequest)
	ErrNoSlots           = fmt.Errorf("%w: at least one slot is required", apperr.ErrInvalidRequest)
	ErrMemberNotFound    = fmt.Errorf("%w: no member booked a slot of yours with that email", apperr.ErrNotFound)
)
