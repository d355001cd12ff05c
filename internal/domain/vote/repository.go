package vote

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository stores the UpVote and DownVote sets. A (blogId, email) pair
// appears at most once per set.
type Repository interface {
	Exists(ctx context.Context, set Set, blogID, email string) (bool, error)
	// Insert adds v to set and reports whether a row was written.
	// Inserting an existing pair is a no-op returning false.
	Insert(ctx context.Context, set Set, v Vote) (bool, error)
	Delete(ctx context.Context, set Set, blogID, email string) (bool, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

type upVoteModel struct {
	BlogID string `gorm:"column:blog_id;primaryKey;uniqueIndex:idx_up_votes_blog_email"`
	Email  string `gorm:"column:email;primaryKey;uniqueIndex:idx_up_votes_blog_email"`
	Vote   string `gorm:"column:vote"`
}

func (upVoteModel) TableName() string { return "up_votes" }

type downVoteModel struct {
	BlogID string `gorm:"column:blog_id;primaryKey;uniqueIndex:idx_down_votes_blog_email"`
	Email  string `gorm:"column:email;primaryKey;uniqueIndex:idx_down_votes_blog_email"`
	Vote   string `gorm:"column:vote"`
}

func (downVoteModel) TableName() string { return "down_votes" }

func model(set Set) any {
	if set == Up {
		return &upVoteModel{}
	}
	return &downVoteModel{}
}

func (r *GormRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&upVoteModel{}, &downVoteModel{})
}

func (r *GormRepository) Exists(ctx context.Context, set Set, blogID, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(model(set)).
		Where("blog_id = ? AND email = ?", blogID, email).
		Count(&n).Error
	return n > 0, err
}

func (r *GormRepository) Insert(ctx context.Context, set Set, v Vote) (bool, error) {
	var row any
	if set == Up {
		row = &upVoteModel{BlogID: v.BlogID, Email: v.Email, Vote: string(v.Direction)}
	} else {
		row = &downVoteModel{BlogID: v.BlogID, Email: v.Email, Vote: string(v.Direction)}
	}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	return tx.RowsAffected > 0, tx.Error
}

func (r *GormRepository) Delete(ctx context.Context, set Set, blogID, email string) (bool, error) {
	tx := r.db.WithContext(ctx).Where("blog_id = ? AND email = ?", blogID, email).Delete(model(set))
	return tx.RowsAffected > 0, tx.Error
}
