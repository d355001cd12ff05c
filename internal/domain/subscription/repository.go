package subscription

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fitnflex/internal/pkg/dbutil"
)

type Repository interface {
	// Create inserts s. ErrAlreadySubscribed when the email is known.
	Create(ctx context.Context, s *Subscription) error
	List(ctx context.Context) ([]Subscription, error)
	Count(ctx context.Context) (int64, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

type subscriptionModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (subscriptionModel) TableName() string { return "subscriptions" }

func (r *GormRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&subscriptionModel{})
}

func (r *GormRepository) Create(ctx context.Context, s *Subscription) error {
	if s.ID == "" {
		s.ID = dbutil.NewID()
	}
	m := subscriptionModel{ID: s.ID, Name: s.Name, Email: s.Email, CreatedAt: s.CreatedAt}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if dbutil.IsUniqueViolation(err) {
			return ErrAlreadySubscribed
		}
		return err
	}
	return nil
}

func (r *GormRepository) List(ctx context.Context) ([]Subscription, error) {
	var rows []subscriptionModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]Subscription, 0, len(rows))
	for _, m := range rows {
		out = append(out, Subscription{ID: m.ID, Name: m.Name, Email: m.Email, CreatedAt: m.CreatedAt})
	}
	return out, nil
}

func (r *GormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&subscriptionModel{}).Count(&n).Error
	return n, err
}
