package class

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"fitnflex/internal/pkg/dbutil"
)

type Repository interface {
	Create(ctx context.Context, c *Class) error
	List(ctx context.Context, search string, skip, limit int) ([]Class, error)
	Count(ctx context.Context, search string) (int64, error)
	Names(ctx context.Context) ([]string, error)
	TopBooked(ctx context.Context, limit int) ([]Class, error)
	// GetByName looks a class up by name ignoring case.
	GetByName(ctx context.Context, name string) (*Class, error)
	// IncrementBooking adds one to totalBooking of the class whose name
	// equals name ignoring case. Names are unique ignoring case, so at
	// most one class moves. ErrClassNotFound when nothing matched.
	IncrementBooking(ctx context.Context, name string) error
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

type classModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name;uniqueIndex"`
	NameKey      string    `gorm:"column:name_key;uniqueIndex"`
	Description  string    `gorm:"column:description"`
	Image        string    `gorm:"column:image"`
	TotalBooking int       `gorm:"column:total_booking;not null;default:0"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (classModel) TableName() string { return "classes" }

func toDomainClass(m classModel) Class {
	return Class{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Image:        m.Image,
		TotalBooking: m.TotalBooking,
		CreatedAt:    m.CreatedAt,
	}
}

func toDomainClasses(rows []classModel) []Class {
	out := make([]Class, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainClass(m))
	}
	return out
}

func (r *GormRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&classModel{})
}

func (r *GormRepository) Create(ctx context.Context, c *Class) error {
	if c.ID == "" {
		c.ID = dbutil.NewID()
	}
	m := classModel{
		ID:           c.ID,
		Name:         c.Name,
		NameKey:      strings.ToLower(c.Name),
		Description:  c.Description,
		Image:        c.Image,
		TotalBooking: c.TotalBooking,
		CreatedAt:    c.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if dbutil.IsUniqueViolation(err) {
			return ErrClassExists
		}
		return err
	}
	return nil
}

func (r *GormRepository) search(ctx context.Context, search string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&classModel{})
	if s := strings.TrimSpace(search); s != "" {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, dbutil.LikePattern(s))
	}
	return q
}

func (r *GormRepository) List(ctx context.Context, search string, skip, limit int) ([]Class, error) {
	var rows []classModel
	err := r.search(ctx, search).
		Order("created_at ASC, id ASC").
		Offset(skip).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainClasses(rows), nil
}

func (r *GormRepository) Count(ctx context.Context, search string) (int64, error) {
	var n int64
	err := r.search(ctx, search).Count(&n).Error
	return n, err
}

func (r *GormRepository) Names(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&classModel{}).Order("name ASC").Pluck("name", &names).Error
	return names, err
}

func (r *GormRepository) TopBooked(ctx context.Context, limit int) ([]Class, error) {
	var rows []classModel
	err := r.db.WithContext(ctx).
		Order("total_booking DESC, name ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainClasses(rows), nil
}

func (r *GormRepository) GetByName(ctx context.Context, name string) (*Class, error) {
	var m classModel
	err := r.db.WithContext(ctx).Where("name_key = ?", strings.ToLower(name)).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, err
	}
	c := toDomainClass(m)
	return &c, nil
}

func (r *GormRepository) IncrementBooking(ctx context.Context, name string) error {
	tx := r.db.WithContext(ctx).
		Model(&classModel{}).
		Where("name_key = ?", strings.ToLower(name)).
		UpdateColumn("total_booking", gorm.Expr("total_booking + ?", 1))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrClassNotFound
	}
	return nil
}
