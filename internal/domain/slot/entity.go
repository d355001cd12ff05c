package slot

import "time"

type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
)

type Trainer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Booker is the member who booked a slot.
type Booker struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	ClassName string `json:"className"`
}

type Slot struct {
	ID        string    `json:"id"`
	SlotName  string    `json:"slotName"`
	SlotTime  string    `json:"slotTime"`
	Days      []string  `json:"days"`
	ClassName string    `json:"className"`
	Trainer   Trainer   `json:"trainer"`
	Status    Status    `json:"status"`
	BookedBy  *Booker   `json:"bookedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
