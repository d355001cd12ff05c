package user

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fitnflex/internal/pkg/dbutil"
)

// Repository is the users store. Emails are stored lowercase.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, f Filter) ([]User, error)
	UpsertProfile(ctx context.Context, email string, p Profile) (UpsertResult, error)
	UpdateStatus(ctx context.Context, id string, ch StatusChange) error
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

type userModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	Email         string    `gorm:"column:email;uniqueIndex"`
	Name          string    `gorm:"column:name"`
	PhotoURL      string    `gorm:"column:photo_url"`
	Role          string    `gorm:"column:role;index"`
	Status        string    `gorm:"column:status;index"`
	Skills        []string  `gorm:"column:skills;type:text;serializer:json"`
	Age           int       `gorm:"column:age"`
	Experience    int       `gorm:"column:experience"`
	Biography     string    `gorm:"column:biography"`
	AvailableDays []string  `gorm:"column:available_days;type:text;serializer:json"`
	AvailableTime string    `gorm:"column:available_time"`
	Feedback      string    `gorm:"column:feedback"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) User {
	return User{
		ID:            m.ID,
		Email:         m.Email,
		Name:          m.Name,
		PhotoURL:      m.PhotoURL,
		Role:          Role(m.Role),
		Status:        Status(m.Status),
		Skills:        m.Skills,
		Age:           m.Age,
		Experience:    m.Experience,
		Biography:     m.Biography,
		AvailableDays: m.AvailableDays,
		AvailableTime: m.AvailableTime,
		Feedback:      m.Feedback,
		CreatedAt:     m.CreatedAt,
	}
}

func toUserModel(u *User) userModel {
	return userModel{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		PhotoURL:      u.PhotoURL,
		Role:          string(u.Role),
		Status:        string(u.Status),
		Skills:        u.Skills,
		Age:           u.Age,
		Experience:    u.Experience,
		Biography:     u.Biography,
		AvailableDays: u.AvailableDays,
		AvailableTime: u.AvailableTime,
		Feedback:      u.Feedback,
		CreatedAt:     u.CreatedAt,
	}
}

func (r *GormRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&userModel{})
}

func (r *GormRepository) Create(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = dbutil.NewID()
	}
	m := toUserModel(u)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if dbutil.IsUniqueViolation(err) {
			return ErrUserExists
		}
		return err
	}
	*u = toDomainUser(m)
	return nil
}

func (r *GormRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *GormRepository) GetByID(ctx context.Context, id string) (*User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *GormRepository) first(ctx context.Context, query string, arg any) (*User, error) {
	var m userModel
	err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *GormRepository) List(ctx context.Context, f Filter) ([]User, error) {
	q := r.db.WithContext(ctx).Model(&userModel{})
	if f.Role != "" {
		q = q.Where("role = ?", string(f.Role))
	}
	if f.Status != StatusNone {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var rows []userModel
	if err := q.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]User, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainUser(m))
	}
	return out, nil
}

func (r *GormRepository) UpsertProfile(ctx context.Context, email string, p Profile) (UpsertResult, error) {
	var m userModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m = userModel{
			ID:        dbutil.NewID(),
			Email:     email,
			Role:      string(RoleMember),
			CreatedAt: time.Now().UTC(),
		}
		applyProfile(&m, p)
		if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
			return UpsertUnchanged, err
		}
		return UpsertCreated, nil
	}
	if err != nil {
		return UpsertUnchanged, err
	}

	cols := applyProfile(&m, p)
	if len(cols) == 0 {
		return UpsertUnchanged, nil
	}
	if err := r.db.WithContext(ctx).Model(&m).Select(cols).Updates(&m).Error; err != nil {
		return UpsertUnchanged, err
	}
	return UpsertUpdated, nil
}

// applyProfile copies the non-zero fields of p into m and returns the
// columns whose value changed.
func applyProfile(m *userModel, p Profile) []string {
	var cols []string
	setStr := func(col string, dst *string, v string) {
		if v != "" && *dst != v {
			*dst = v
			cols = append(cols, col)
		}
	}
	setInt := func(col string, dst *int, v int) {
		if v != 0 && *dst != v {
			*dst = v
			cols = append(cols, col)
		}
	}
	setList := func(col string, dst *[]string, v []string) {
		if len(v) > 0 && !equalStrings(*dst, v) {
			*dst = v
			cols = append(cols, col)
		}
	}

	setStr("name", &m.Name, p.Name)
	setStr("photo_url", &m.PhotoURL, p.PhotoURL)
	setInt("age", &m.Age, p.Age)
	setInt("experience", &m.Experience, p.Experience)
	setStr("biography", &m.Biography, p.Biography)
	setList("skills", &m.Skills, p.Skills)
	setList("available_days", &m.AvailableDays, p.AvailableDays)
	setStr("available_time", &m.AvailableTime, p.AvailableTime)
	setStr("status", &m.Status, string(p.Status))
	return cols
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (r *GormRepository) UpdateStatus(ctx context.Context, id string, ch StatusChange) error {
	updates := map[string]any{}
	if ch.Role != nil {
		updates["role"] = string(*ch.Role)
	}
	if ch.Status != nil {
		updates["status"] = string(*ch.Status)
	}
	if ch.Feedback != nil {
		updates["feedback"] = *ch.Feedback
	}
	if len(updates) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}

	tx := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
