package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned for a wrong password and for an unreadable hash alike.
var ErrPasswordMismatch = errors.New("password mismatch")

// AdminPasswords hashes and checks the bcrypt digests kept in tb_user.password for
// accounts that log in through the admin console.
type AdminPasswords struct {
	cost int
}

// NewAdminPasswords clamps cost into the range bcrypt accepts.
func NewAdminPasswords(cost int) *AdminPasswords {
	switch {
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &AdminPasswords{cost: cost}
}

func (p *AdminPasswords) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), p.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (p *AdminPasswords) Verify(plain, digest string) error {
	if bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) != nil {
		return ErrPasswordMismatch
	}
	return nil
}
