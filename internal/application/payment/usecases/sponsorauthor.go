package usecases

import (
	"context"
	"time"

	"likenovel/internal/application/payment/dto"
	"likenovel/internal/application/statistics"
	"likenovel/internal/domain/payment"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/db"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

type SponsorAuthorCommand struct {
	AuthorProfileID int64
	UserID          int64
	DonationPrice   int64
	Message         *string
}

// SponsorAuthorUseCase moves cash from the caller to an author. The debit, the ledger row,
// the author credit and the statistics row share one transaction.
type SponsorAuthorUseCase struct {
	profiles     ProfileLookup
	cashbooks    payment.CashbookRepository
	sponsorships payment.SponsorshipRepository
	recorder     PaymentRecorder
	txMgr        db.Runner
	logger       logger.Interface
	now          func() time.Time
}

func NewSponsorAuthorUseCase(
	profiles ProfileLookup,
	cashbooks payment.CashbookRepository,
	sponsorships payment.SponsorshipRepository,
	recorder PaymentRecorder,
	txMgr db.Runner,
	logger logger.Interface,
) *SponsorAuthorUseCase {
	return &SponsorAuthorUseCase{
		profiles:     profiles,
		cashbooks:    cashbooks,
		sponsorships: sponsorships,
		recorder:     recorder,
		txMgr:        txMgr,
		logger:       logger,
		now:          biztime.Now,
	}
}

func (uc *SponsorAuthorUseCase) Execute(ctx context.Context, cmd SponsorAuthorCommand) (*dto.SponsorshipDTO, error) {
	if cmd.UserID <= 0 {
		return nil, errors.ErrLoginRequired
	}

	var result *dto.SponsorshipDTO
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		author, err := uc.profiles.GetProfile(txCtx, cmd.AuthorProfileID)
		if err != nil {
			return err
		}
		if author == nil {
			return errors.ErrAuthorNotFound
		}
		sponsor, err := uc.profiles.GetDefaultProfile(txCtx, cmd.UserID)
		if err != nil {
			return err
		}
		if sponsor == nil {
			return errors.ErrProfileNotFound
		}

		s, err := payment.NewSponsorship(payment.SponsorshipParams{
			AuthorProfileID:  author.ProfileID,
			AuthorUserID:     author.UserID,
			SponsorUserID:    cmd.UserID,
			SponsorProfileID: sponsor.ProfileID,
			DonationPrice:    cmd.DonationPrice,
			Message:          cmd.Message,
		})
		if err != nil {
			return err
		}

		balance, err := uc.cashbooks.Balance(txCtx, cmd.UserID)
		if err != nil {
			return err
		}
		if err := s.CheckBalance(balance); err != nil {
			return err
		}

		now := uc.now()
		ok, err := uc.cashbooks.Debit(txCtx, cmd.UserID, s.DonationPrice(), cmd.UserID, now)
		if err != nil {
			return err
		}
		if !ok {
			return errors.ErrInsufficientBalance
		}
		if err := uc.sponsorships.Create(txCtx, s, cmd.UserID); err != nil {
			return err
		}
		if err := uc.cashbooks.Credit(txCtx, s.AuthorUserID(), s.DonationPrice(), cmd.UserID, now); err != nil {
			return err
		}
		if err := uc.recorder.Payment(txCtx, statistics.PaymentDonation, cmd.UserID, s.DonationPrice()); err != nil {
			return err
		}

		result = &dto.SponsorshipDTO{
			SponsorshipID:   s.ID(),
			AuthorProfileID: s.AuthorProfileID(),
			DonationPrice:   s.DonationPrice(),
			Balance:         balance - s.DonationPrice(),
		}
		return nil
	})
	if err != nil {
		uc.logger.Warnw("sponsorship failed", "user_id", cmd.UserID, "author_profile_id", cmd.AuthorProfileID, "error", err)
		return nil, err
	}

	uc.logger.Infow("author sponsored",
		"sponsorship_id", result.SponsorshipID,
		"user_id", cmd.UserID,
		"author_profile_id", cmd.AuthorProfileID,
		"amount", cmd.DonationPrice)
	return result, nil
}
