package testimonial

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fitnflex/internal/pkg/dbutil"
)

type Repository interface {
	Create(ctx context.Context, t *Testimonial) error
	List(ctx context.Context) ([]Testimonial, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

type testimonialModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Image     string    `gorm:"column:image"`
	Rating    float64   `gorm:"column:rating"`
	Review    string    `gorm:"column:review"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (testimonialModel) TableName() string { return "testimonials" }

func (r *GormRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&testimonialModel{})
}

func (r *GormRepository) Create(ctx context.Context, t *Testimonial) error {
	m := testimonialModel{
		ID:        dbutil.NewID(),
		Name:      t.Name,
		Image:     t.Image,
		Rating:    t.Rating,
		Review:    t.Review,
		CreatedAt: t.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	t.ID = m.ID
	return nil
}

func (r *GormRepository) List(ctx context.Context) ([]Testimonial, error) {
	var rows []testimonialModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]Testimonial, 0, len(rows))
	for _, m := range rows {
		out = append(out, Testimonial{ID: m.ID, Name: m.Name, Image: m.Image, Rating: m.Rating, Review: m.Review, CreatedAt: m.CreatedAt})
	}
	return out, nil
}
