package dto

type SponsorshipDTO struct {
	SponsorshipID   int64 `json:"sponsorshipId"`
	AuthorProfileID int64 `json:"authorProfileId"`
	DonationPrice   int64 `json:"donationPrice"`
	Balance         int64 `json:"balance"`
}
