package usecases

import "context"

// SiteRecorder writes site statistics rows on the caller's transaction.
type SiteRecorder interface {
	Site(ctx context.Context, logType string, userID int64) error
}

// Notifier delivers best-effort benefit notifications; it never returns an error.
type Notifier interface {
	Notify(ctx context.Context, userID int64, title, content string)
}
