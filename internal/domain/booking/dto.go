package booking

import (
	"encoding/json"
	"time"
)

type PayerRequest struct {
	Name  string `json:"name" validate:"max=120"`
	Email string `json:"email"`
}

type ClassRequest struct {
	ClassName string `json:"className"`
	SlotID    string `json:"slotId"`
	SlotName  string `json:"slotName"`
	TrainerID string `json:"trainerId"`
}

type BookRequest struct {
	User          PayerRequest `json:"user"`
	Class         ClassRequest `json:"class"`
	Price         json.Number  `json:"price"`
	TransactionID string       `json:"transactionId" validate:"max=200"`
	Date          *time.Time   `json:"date"`
}
