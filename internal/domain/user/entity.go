package user

import "time"

type Role string

const (
	RoleMember  Role = "member"
	RoleTrainer Role = "trainer"
	RoleAdmin   Role = "admin"
)

// Status tracks a trainer application. Members that never applied have none.
type Status string

const (
	StatusNone     Status = ""
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
	StatusRejected Status = "rejected"
)

type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name,omitempty"`
	PhotoURL      string    `json:"photoUrl,omitempty"`
	Role          Role      `json:"role"`
	Status        Status    `json:"status,omitempty"`
	Skills        []string  `json:"skills,omitempty"`
	Age           int       `json:"age,omitempty"`
	Experience    int       `json:"experience,omitempty"`
	Biography     string    `json:"biography,omitempty"`
	AvailableDays []string  `json:"availableDays,omitempty"`
	AvailableTime string    `json:"availableTime,omitempty"`
	Feedback      string    `json:"feedback,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// EffectiveRole is the role used for authorization: a trainer whose
// application is not resolved acts as a member.
func (u *User) EffectiveRole() Role {
	if u.Role == RoleTrainer && u.Status != StatusResolved {
		return RoleMember
	}
	if u.Role == "" {
		return RoleMember
	}
	return u.Role
}

// HasSkill reports whether the trainer lists name among their skills.
func (u *User) HasSkill(name string) bool {
	for _, s := range u.Skills {
		if s == name {
			return true
		}
	}
	return false
}

// Profile holds the self-editable fields. Zero values are left untouched.
type Profile struct {
	Name          string
	PhotoURL      string
	Age           int
	Experience    int
	Biography     string
	Skills        []string
	AvailableDays []string
	AvailableTime string
	Status        Status
}

func (p Profile) IsEmpty() bool {
	return p.Name == "" && p.PhotoURL == "" && p.Age == 0 && p.Experience == 0 &&
		p.Biography == "" && len(p.Skills) == 0 && len(p.AvailableDays) == 0 &&
		p.AvailableTime == "" && p.Status == StatusNone
}

// StatusChange is an admin transition. Nil fields are left untouched.
type StatusChange struct {
	Role     *Role
	Status   *Status
	Feedback *string
}

type Filter struct {
	Role   Role
	Status Status
	Limit  int
}

type UpsertResult int

const (
	UpsertUnchanged UpsertResult = iota
	UpsertCreated
	UpsertUpdated
)
