package user

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
}

type ProfileRequest struct {
	Name          string   `json:"name"`
	PhotoURL      string   `json:"photoUrl"`
	Age           int      `json:"age" validate:"gte=0,lte=150"`
	Experience    int      `json:"experience" validate:"gte=0,lte=100"`
	Biography     string   `json:"biography"`
	Skills        []string `json:"skills"`
	AvailableDays []string `json:"availableDays"`
	AvailableTime string   `json:"availableTime"`
}

func (r ProfileRequest) toProfile() Profile {
	return Profile{
		Name:          r.Name,
		PhotoURL:      r.PhotoURL,
		Age:           r.Age,
		Experience:    r.Experience,
		Biography:     r.Biography,
		Skills:        r.Skills,
		AvailableDays: r.AvailableDays,
		AvailableTime: r.AvailableTime,
	}
}

type RegisterResponse struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// TeamMember is the public projection used by the team listing.
type TeamMember struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	PhotoURL   string   `json:"photoUrl"`
	Biography  string   `json:"biography"`
	Skills     []string `json:"skills"`
	Experience int      `json:"experience"`
}

func toTeamMember(u User) TeamMember {
	return TeamMember{
		ID:         u.ID,
		Name:       u.Name,
		PhotoURL:   u.PhotoURL,
		Biography:  u.Biography,
		Skills:     u.Skills,
		Experience: u.Experience,
	}
}
