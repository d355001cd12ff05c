package blog

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fitnflex/internal/pkg/dbutil"
)

type Repository interface {
	Create(ctx context.Context, b *Blog) error
	// List returns blogs newest first.
	List(ctx context.Context, skip, limit int) ([]Blog, error)
	Count(ctx context.Context) (int64, error)
	Get(ctx context.Context, id string) (*Blog, error)
	Exists(ctx context.Context, id string) (bool, error)
	// AdjustVotes adds the deltas to the like and dislike counters.
	AdjustVotes(ctx context.Context, id string, likes, dislikes int) error
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

type blogModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title"`
	Author      string    `gorm:"column:author"`
	AuthorEmail string    `gorm:"column:author_email"`
	Image       string    `gorm:"column:image"`
	Description string    `gorm:"column:description"`
	Content     string    `gorm:"column:content"`
	PostDate    time.Time `gorm:"column:post_date;index"`
	Likes       int       `gorm:"column:likes;not null;default:0"`
	Dislikes    int       `gorm:"column:dislikes;not null;default:0"`
}

func (blogModel) TableName() string { return "blogs" }

func toDomainBlog(m blogModel) Blog {
	return Blog{
		ID:          m.ID,
		Title:       m.Title,
		Author:      m.Author,
		AuthorEmail: m.AuthorEmail,
		Image:       m.Image,
		Description: m.Description,
		Content:     m.Content,
		PostDate:    m.PostDate,
		Likes:       m.Likes,
		Dislikes:    m.Dislikes,
	}
}

func (r *GormRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&blogModel{})
}

func (r *GormRepository) Create(ctx context.Context, b *Blog) error {
	if b.ID == "" {
		b.ID = dbutil.NewID()
	}
	m := blogModel{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		AuthorEmail: b.AuthorEmail,
		Image:       b.Image,
		Description: b.Description,
		Content:     b.Content,
		PostDate:    b.PostDate,
		Likes:       b.Likes,
		Dislikes:    b.Dislikes,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *GormRepository) List(ctx context.Context, skip, limit int) ([]Blog, error) {
	var rows []blogModel
	err := r.db.WithContext(ctx).
		Order("post_date DESC, id ASC").
		Offset(skip).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]Blog, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainBlog(m))
	}
	return out, nil
}

func (r *GormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&blogModel{}).Count(&n).Error
	return n, err
}

func (r *GormRepository) Get(ctx context.Context, id string) (*Blog, error) {
	var m blogModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		return nil, err
	}
	b := toDomainBlog(m)
	return &b, nil
}

func (r *GormRepository) Exists(ctx context.Context, id string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&blogModel{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *GormRepository) AdjustVotes(ctx context.Context, id string, likes, dislikes int) error {
	tx := r.db.WithContext(ctx).
		Model(&blogModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"likes":    gorm.Expr("likes + ?", likes),
			"dislikes": gorm.Expr("dislikes + ?", dislikes),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrBlogNotFound
	}
	return nil
}
