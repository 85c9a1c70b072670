package usecases

import "context"

// UserLookup checks that a chat target is a live account.
type UserLookup interface {
	Exists(ctx context.Context, userID int64) (bool, error)
}

// ContentSanitizer strips markup from user-supplied text.
type ContentSanitizer interface {
	StripTags(text string) string
}
