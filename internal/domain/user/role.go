package user

import "fmt"

// Role is the caller's effective role.
type Role string

const (
	RoleUser    Role = "user"
	RoleAdmin   Role = "admin"
	RolePartner Role = "partner"
	RoleAuthor  Role = "author"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RolePartner, RoleAuthor:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

// ApplyType is the kind of a profile application.
type ApplyType string

const (
	ApplyTypeCP     ApplyType = "cp"
	ApplyTypeEditor ApplyType = "editor"
)

// ResolveRole derives the effective role. A stored admin wins; otherwise the latest
// profile application decides (cp is a partner, editor an author); everyone else is a user.
func ResolveRole(stored string, latestApply *ApplyType) Role {
	if Role(stored) == RoleAdmin {
		return RoleAdmin
	}
	if latestApply != nil {
		switch *latestApply {
		case ApplyTypeCP:
			return RolePartner
		case ApplyTypeEditor:
			return RoleAuthor
		}
	}
	return RoleUser
}
