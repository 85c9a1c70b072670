// Package statistics writes the site and payment statistics logs on the caller's transaction.
package statistics

import (
	"context"
	"time"

	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/constants"
)

// Site log types.
const (
	SiteActive = "active"
)

// Payment log types.
const (
	PaymentDonation = "donation"
	PaymentDeposit  = "deposit"
)

// LogRepository is the storage port for statistics rows.
type LogRepository interface {
	InsertSiteLog(ctx context.Context, logType string, userID, writerID int64, now time.Time) error
	InsertPaymentLog(ctx context.Context, logType string, userID, amount, writerID int64, now time.Time) error
}

// Recorder appends statistics rows. Failures propagate so the surrounding transaction rolls back.
type Recorder struct {
	repo LogRepository
	now  func() time.Time
}

func NewRecorder(repo LogRepository) *Recorder {
	return &Recorder{repo: repo, now: biztime.Now}
}

func (r *Recorder) Site(ctx context.Context, logType string, userID int64) error {
	return r.repo.InsertSiteLog(ctx, logType, userID, constants.SystemWriterID, r.now())
}

func (r *Recorder) Payment(ctx context.Context, logType string, userID, amount int64) error {
	return r.repo.InsertPaymentLog(ctx, logType, userID, amount, constants.SystemWriterID, r.now())
}
