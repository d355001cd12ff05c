package slot

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fitnflex/internal/pkg/dbutil"
)

type Repository interface {
	InsertMany(ctx context.Context, slots []Slot) error
	Get(ctx context.Context, id string) (*Slot, error)
	ListByTrainerEmail(ctx context.Context, email string) ([]Slot, error)
	ListAvailableByTrainerID(ctx context.Context, trainerID string) ([]Slot, error)
	// MarkBooked moves an available slot to booked. ErrSlotNotFound when
	// no available slot has that id.
	MarkBooked(ctx context.Context, id string, by Booker) error
	// DeleteOwned removes id if it belongs to trainerEmail.
	DeleteOwned(ctx context.Context, id, trainerEmail string) error
	HasBooking(ctx context.Context, trainerEmail, memberEmail string) (bool, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

type slotModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	SlotName        string    `gorm:"column:slot_name"`
	SlotTime        string    `gorm:"column:slot_time"`
	Days            []string  `gorm:"column:days;type:text;serializer:json"`
	ClassName       string    `gorm:"column:class_name"`
	TrainerID       string    `gorm:"column:trainer_id;index"`
	TrainerName     string    `gorm:"column:trainer_name"`
	TrainerEmail    string    `gorm:"column:trainer_email;index"`
	Status          string    `gorm:"column:status"`
	BookedByName    *string   `gorm:"column:booked_by_name"`
	BookedByEmail   *string   `gorm:"column:booked_by_email"`
	BookedClassName *string   `gorm:"column:booked_class_name"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (slotModel) TableName() string { return "slots" }

func toDomainSlot(m slotModel) Slot {
	s := Slot{
		ID:        m.ID,
		SlotName:  m.SlotName,
		SlotTime:  m.SlotTime,
		Days:      m.Days,
		ClassName: m.ClassName,
		Trainer:   Trainer{ID: m.TrainerID, Name: m.TrainerName, Email: m.TrainerEmail},
		Status:    Status(m.Status),
		CreatedAt: m.CreatedAt,
	}
	if m.BookedByEmail != nil {
		s.BookedBy = &Booker{Email: *m.BookedByEmail}
		if m.BookedByName != nil {
			s.BookedBy.Name = *m.BookedByName
		}
		if m.BookedClassName != nil {
			s.BookedBy.ClassName = *m.BookedClassName
		}
	}
	return s
}

func toSlotModel(s *Slot) slotModel {
	m := slotModel{
		ID:           s.ID,
		SlotName:     s.SlotName,
		SlotTime:     s.SlotTime,
		Days:         s.Days,
		ClassName:    s.ClassName,
		TrainerID:    s.Trainer.ID,
		TrainerName:  s.Trainer.Name,
		TrainerEmail: s.Trainer.Email,
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
	}
	if s.BookedBy != nil {
		m.BookedByName = &s.BookedBy.Name
		m.BookedByEmail = &s.BookedBy.Email
		m.BookedClassName = &s.BookedBy.ClassName
	}
	return m
}

func toDomainSlots(rows []slotModel) []Slot {
	out := make([]Slot, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainSlot(m))
	}
	return out
}

func (r *GormRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&slotModel{})
}

func (r *GormRepository) InsertMany(ctx context.Context, slots []Slot) error {
	rows := make([]slotModel, 0, len(slots))
	for i := range slots {
		if slots[i].ID == "" {
			slots[i].ID = dbutil.NewID()
		}
		rows = append(rows, toSlotModel(&slots[i]))
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *GormRepository) Get(ctx context.Context, id string) (*Slot, error) {
	var m slotModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	s := toDomainSlot(m)
	return &s, nil
}

func (r *GormRepository) list(ctx context.Context, query string, args ...any) ([]Slot, error) {
	var rows []slotModel
	if err := r.db.WithContext(ctx).Where(query, args...).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainSlots(rows), nil
}

func (r *GormRepository) ListByTrainerEmail(ctx context.Context, email string) ([]Slot, error) {
	return r.list(ctx, "trainer_email = ?", email)
}

func (r *GormRepository) ListAvailableByTrainerID(ctx context.Context, trainerID string) ([]Slot, error) {
	return r.list(ctx, "trainer_id = ? AND status = ?", trainerID, string(StatusAvailable))
}

func (r *GormRepository) MarkBooked(ctx context.Context, id string, by Booker) error {
	tx := r.db.WithContext(ctx).
		Model(&slotModel{}).
		Where("id = ? AND status = ?", id, string(StatusAvailable)).
		Updates(map[string]any{
			"status":            string(StatusBooked),
			"booked_by_name":    by.Name,
			"booked_by_email":   by.Email,
			"booked_class_name": by.ClassName,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}

func (r *GormRepository) DeleteOwned(ctx context.Context, id, trainerEmail string) error {
	tx := r.db.WithContext(ctx).Where("id = ? AND trainer_email = ?", id, trainerEmail).Delete(&slotModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}

func (r *GormRepository) HasBooking(ctx context.Context, trainerEmail, memberEmail string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&slotModel{}).
		Where("trainer_email = ? AND booked_by_email = ?", trainerEmail, memberEmail).
		Count(&n).Error
	return n > 0, err
}
