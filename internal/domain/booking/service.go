package booking

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"fitnflex/internal/domain/payment"
	"fitnflex/internal/domain/slot"
	"fitnflex/internal/observability"
	"fitnflex/internal/pkg/apperr"
)

type ClassCounter interface {
	IncrementBooking(ctx context.Context, name string) error
}

type SlotStore interface {
	Get(ctx context.Context, id string) (*slot.Slot, error)
	MarkBooked(ctx context.Context, id string, by slot.Booker) error
}

type PaymentRecorder interface {
	Record(ctx context.Context, p *payment.Payment) error
}

type Request struct {
	ClassName     string
	SlotID        string
	SlotName      string
	TrainerID     string
	Payer         payment.Payer
	Price         float64
	TransactionID string
	Date          time.Time
}

// Service books a slot in three independent writes: the class counter,
// the slot, then the payment record. A failure stops the sequence and
// earlier writes stay in place.
type Service struct {
	classes  ClassCounter
	slots    SlotStore
	payments PaymentRecorder
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(classes ClassCounter, slots SlotStore, payments PaymentRecorder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		classes:  classes,
		slots:    slots,
		payments: payments,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Book(ctx context.Context, req Request) (*payment.Payment, error) {
	className := strings.TrimSpace(req.ClassName)
	if className == "" {
		observability.RecordBooking(observability.BookingRejected)
		return nil, ErrClassNameRequired
	}
	slotID := strings.TrimSpace(req.SlotID)
	if slotID == "" {
		observability.RecordBooking(observability.BookingRejected)
		return nil, ErrSlotIDRequired
	}

	sl, err := s.slots.Get(ctx, slotID)
	if err != nil {
		return nil, s.fail(err, false)
	}
	if sl.Status == slot.StatusBooked {
		return nil, s.fail(slot.ErrSlotAlreadyBooked, false)
	}

	if err := s.classes.IncrementBooking(ctx, className); err != nil {
		return nil, s.fail(err, false)
	}

	by := slot.Booker{Name: req.Payer.Name, Email: req.Payer.Email, ClassName: className}
	if err := s.slots.MarkBooked(ctx, slotID, by); err != nil {
		s.logger.WarnContext(ctx, "booking left class counter incremented",
			slog.String("class", className), slog.String("slot_id", slotID), slog.Any("error", err))
		return nil, s.fail(s.markFailure(ctx, slotID, err), true)
	}

	p := &payment.Payment{
		User: req.Payer,
		Class: payment.ClassRef{
			ClassName: className,
			SlotID:    slotID,
			SlotName:  firstNonEmpty(req.SlotName, sl.SlotName),
			TrainerID: firstNonEmpty(req.TrainerID, sl.Trainer.ID),
		},
		Price:         req.Price,
		TransactionID: req.TransactionID,
		Date:          req.Date,
	}
	if p.Date.IsZero() {
		p.Date = s.now()
	}
	if err := s.payments.Record(ctx, p); err != nil {
		s.logger.WarnContext(ctx, "booking left slot booked without payment record",
			slog.String("slot_id", slotID), slog.String("transaction_id", req.TransactionID), slog.Any("error", err))
		return nil, s.fail(err, true)
	}

	observability.RecordBooking(observability.BookingSucceeded)
	return p, nil
}

// markFailure explains a MarkBooked miss. The update only matches an
// available slot, so a slot that still exists was taken by another booking.
func (s *Service) markFailure(ctx context.Context, slotID string, err error) error {
	if !errors.Is(err, slot.ErrSlotNotFound) {
		return err
	}
	if _, getErr := s.slots.Get(ctx, slotID); getErr == nil {
		return slot.ErrSlotAlreadyBooked
	}
	return err
}

func (s *Service) fail(err error, partial bool) error {
	switch {
	case partial:
		observability.RecordBooking(observability.BookingPartial)
	case apperr.IsInternal(err):
		observability.RecordBooking(observability.BookingStoreFailure)
	default:
		observability.RecordBooking(observability.BookingRejected)
	}
	return err
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

var (
	_ SlotStore       = (*slot.Service)(nil)
	_ PaymentRecorder = (*payment.Service)(nil)
)
