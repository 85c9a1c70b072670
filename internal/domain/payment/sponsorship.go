package payment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"likenovel/internal/shared/errors"
)

const maxSponsorshipMessageLength = 500

// Sponsorship is a cash donation from a reader to an author profile.
type Sponsorship struct {
	id               int64
	authorProfileID  int64
	authorUserID     int64
	sponsorUserID    int64
	sponsorProfileID int64
	donationPrice    int64
	message          *string
}

type SponsorshipParams struct {
	AuthorProfileID  int64
	AuthorUserID     int64
	SponsorUserID    int64
	SponsorProfileID int64
	DonationPrice    int64
	Message          *string
}

func NewSponsorship(p SponsorshipParams) (*Sponsorship, error) {
	if p.DonationPrice <= 0 {
		return nil, errors.NewValidationError("후원 금액은 0보다 커야 합니다.")
	}
	if p.AuthorUserID == p.SponsorUserID {
		return nil, errors.ErrSelfSponsorship
	}
	if p.AuthorProfileID <= 0 || p.SponsorProfileID <= 0 {
		return nil, fmt.Errorf("author and sponsor profiles are required")
	}
	if p.Message != nil {
		m := strings.TrimSpace(*p.Message)
		if utf8.RuneCountInString(m) > maxSponsorshipMessageLength {
			return nil, errors.NewValidationError(fmt.Sprintf("후원 메시지는 %d자 이하로 입력해주세요.", maxSponsorshipMessageLength))
		}
		if m == "" {
			p.Message = nil
		} else {
			p.Message = &m
		}
	}
	return &Sponsorship{
		authorProfileID:  p.AuthorProfileID,
		authorUserID:     p.AuthorUserID,
		sponsorUserID:    p.SponsorUserID,
		sponsorProfileID: p.SponsorProfileID,
		donationPrice:    p.DonationPrice,
		message:          p.Message,
	}, nil
}

func (s *Sponsorship) ID() int64               { return s.id }
func (s *Sponsorship) AuthorProfileID() int64  { return s.authorProfileID }
func (s *Sponsorship) AuthorUserID() int64     { return s.authorUserID }
func (s *Sponsorship) SponsorUserID() int64    { return s.sponsorUserID }
func (s *Sponsorship) SponsorProfileID() int64 { return s.sponsorProfileID }
func (s *Sponsorship) DonationPrice() int64    { return s.donationPrice }
func (s *Sponsorship) Message() *string        { return s.message }
func (s *Sponsorship) SetID(id int64)          { s.id = id }

// CheckBalance fails with insufficient_balance when balance cannot cover the donation.
func (s *Sponsorship) CheckBalance(balance int64) error {
	if balance < s.donationPrice {
		return errors.ErrInsufficientBalance
	}
	return nil
}
