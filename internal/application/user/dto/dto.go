package dto

import (
	"likenovel/internal/domain/user"
	"likenovel/internal/shared/utils"
)

type ProfileDTO struct {
	ProfileID int64  `json:"profileId"`
	Nickname  string `json:"nickname"`
	RoleType  string `json:"roleType"`
	DefaultYN string `json:"defaultYn"`
}

// MeDTO is the caller's own account view.
type MeDTO struct {
	UserID   int64         `json:"userId"`
	KcUserID string        `json:"kcUserId"`
	Email    string        `json:"email"`
	Role     string        `json:"role"`
	Age      *int          `json:"age"`
	Profiles []*ProfileDTO `json:"profiles"`
}

func ToProfileDTOs(profiles []*user.Profile) []*ProfileDTO {
	out := make([]*ProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, &ProfileDTO{
			ProfileID: p.ProfileID,
			Nickname:  p.Nickname,
			RoleType:  p.RoleType,
			DefaultYN: utils.YN(p.Default),
		})
	}
	return out
}

type AdminLoginDTO struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresAt   string `json:"expiresAt"`
}
