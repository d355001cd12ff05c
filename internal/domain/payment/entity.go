package payment

import "time"

type Payer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ClassRef struct {
	ClassName string `json:"className"`
	SlotID    string `json:"slotId"`
	SlotName  string `json:"slotName"`
	TrainerID string `json:"trainerId"`
}

// Payment is an append-only record of a completed booking.
type Payment struct {
	ID            string    `json:"id"`
	User          Payer     `json:"user"`
	Class         ClassRef  `json:"class"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transactionId"`
	Date          time.Time `json:"date"`
}

type Transaction struct {
	TransactionID string  `json:"transactionId"`
	Price         float64 `json:"price"`
	Email         string  `json:"email"`
}

// Summary aggregates every payment, newest transactions first.
type Summary struct {
	TotalBalance float64       `json:"totalBalance"`
	Transactions []Transaction `json:"transactions"`
	PaidMembers  int           `json:"paidMembers"`
}
