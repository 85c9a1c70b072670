package user

import (
	"time"

	"likenovel/internal/shared/biztime"
)

// User is the internal account behind an OIDC subject.
type User struct {
	ID           int64
	KcUserID     string
	Email        string
	PasswordHash *string
	RoleType     string
	Birthdate    *time.Time
	Role         Role
}

// Age returns the full-year age at now, or nil when the birthdate is unknown.
func (u *User) Age(now time.Time) *int {
	if u.Birthdate == nil {
		return nil
	}
	a := biztime.Age(*u.Birthdate, now)
	return &a
}

// Profile is one of a user's public personas.
type Profile struct {
	ProfileID int64
	UserID    int64
	Nickname  string
	RoleType  string
	Default   bool
}

// Subject is the per-request identity. An anonymous subject has an empty Sub.
type Subject struct {
	Sub    string
	UserID int64
	Role   Role
	Azp    string
}

func (s Subject) IsAnonymous() bool {
	return s.Sub == "" || s.UserID == 0
}

func (s Subject) IsAdmin() bool {
	return s.Role == RoleAdmin
}
