package payment

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fitnflex/internal/pkg/dbutil"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	ListByUserEmail(ctx context.Context, email string) ([]Payment, error)
	Summary(ctx context.Context) (*Summary, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

type paymentModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	UserName      string    `gorm:"column:user_name"`
	UserEmail     string    `gorm:"column:user_email;index"`
	ClassName     string    `gorm:"column:class_name"`
	SlotID        string    `gorm:"column:slot_id"`
	SlotName      string    `gorm:"column:slot_name"`
	TrainerID     string    `gorm:"column:trainer_id"`
	Price         float64   `gorm:"column:price"`
	TransactionID string    `gorm:"column:transaction_id"`
	Date          time.Time `gorm:"column:date;index"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) Payment {
	return Payment{
		ID:   m.ID,
		User: Payer{Name: m.UserName, Email: m.UserEmail},
		Class: ClassRef{
			ClassName: m.ClassName,
			SlotID:    m.SlotID,
			SlotName:  m.SlotName,
			TrainerID: m.TrainerID,
		},
		Price:         m.Price,
		TransactionID: m.TransactionID,
		Date:          m.Date,
	}
}

func (r *GormRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&paymentModel{})
}

func (r *GormRepository) Create(ctx context.Context, p *Payment) error {
	if p.ID == "" {
		p.ID = dbutil.NewID()
	}
	m := paymentModel{
		ID:            p.ID,
		UserName:      p.User.Name,
		UserEmail:     p.User.Email,
		ClassName:     p.Class.ClassName,
		SlotID:        p.Class.SlotID,
		SlotName:      p.Class.SlotName,
		TrainerID:     p.Class.TrainerID,
		Price:         p.Price,
		TransactionID: p.TransactionID,
		Date:          p.Date,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *GormRepository) ListByUserEmail(ctx context.Context, email string) ([]Payment, error) {
	var rows []paymentModel
	if err := r.db.WithContext(ctx).Where("user_email = ?", email).Order("date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainPayment(m))
	}
	return out, nil
}

func (r *GormRepository) Summary(ctx context.Context) (*Summary, error) {
	var totals struct {
		Total   float64
		Members int
	}
	err := r.db.WithContext(ctx).Model(&paymentModel{}).
		Select("COALESCE(SUM(price), 0) AS total, COUNT(DISTINCT user_email) AS members").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	var txs []Transaction
	err = r.db.WithContext(ctx).Model(&paymentModel{}).
		Select("transaction_id, price, user_email AS email").
		Order("date DESC").
		Scan(&txs).Error
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []Transaction{}
	}
	return &Summary{TotalBalance: totals.Total, Transactions: txs, PaidMembers: totals.Members}, nil
}
