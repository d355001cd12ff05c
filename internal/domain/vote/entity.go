package vote

type Direction string

const (
	Like    Direction = "like"
	Dislike Direction = "dislike"
)

func (d Direction) Valid() bool {
	return d == Like || d == Dislike
}

// Set names one of the two disjoint vote collections.
type Set int

const (
	Up Set = iota
	Down
)

func (s Set) String() string {
	if s == Up {
		return "up"
	}
	return "down"
}

type Vote struct {
	BlogID    string    `json:"blogId"`
	Email     string    `json:"email"`
	Direction Direction `json:"vote"`
}
