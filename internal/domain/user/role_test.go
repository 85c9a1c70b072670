package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveRole(t *testing.T) {
	cp := ApplyTypeCP
	editor := ApplyTypeEditor
	other := ApplyType("reader")

	tests := []struct {
		name   string
		stored string
		apply  *ApplyType
		want   Role
	}{
		{"admin wins over application", "admin", &cp, RoleAdmin},
		{"cp becomes partner", "user", &cp, RolePartner},
		{"editor becomes author", "user", &editor, RoleAuthor},
		{"unknown application", "user", &other, RoleUser},
		{"no application", "author", nil, RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRole(tt.stored, tt.apply))
		})
	}
}

func TestSubject(t *testing.T) {
	assert.True(t, Subject{}.IsAnonymous())
	assert.True(t, Subject{Sub: "abc"}.IsAnonymous())
	assert.False(t, Subject{Sub: "abc", UserID: 1}.IsAnonymous())
	assert.True(t, Subject{Role: RoleAdmin}.IsAdmin())
}

func TestUserAge(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	u := &User{}
	assert.Nil(t, u.Age(now))

	birth := time.Date(2000, 6, 2, 0, 0, 0, 0, time.UTC)
	u.Birthdate = &birth
	assert.Equal(t, 25, *u.Age(now))
}
