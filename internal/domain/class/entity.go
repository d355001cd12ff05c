package class

import "time"

// PageSize is the number of classes per listing page.
const PageSize = 6

type Class struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	TotalBooking int       `json:"totalBooking"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TrainerRef is the trainer projection joined onto listed classes.
type TrainerRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
}

type Listed struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Trainers    []TrainerRef `json:"trainer"`
}

// Page is one page of the class listing. MatchedTrainers is the number of
// classes matching the search, kept under its historical name.
type Page struct {
	Result          []Listed `json:"result"`
	MatchedTrainers int64    `json:"matchedTrainers"`
}
