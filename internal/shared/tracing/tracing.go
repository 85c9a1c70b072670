// Package tracing carries per-request correlation identifiers through context.Context.
package tracing

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

type traceKey struct{}

type IDs struct {
	TraceID string
	SpanID  string
}

// NewTraceID returns a 128-bit id as 32 lowercase hex characters.
func NewTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewSpanID returns a 64-bit id as 16 lowercase hex characters.
func NewSpanID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	}
	return hex.EncodeToString(b)
}

func WithIDs(ctx context.Context, ids IDs) context.Context {
	return context.WithValue(ctx, traceKey{}, ids)
}

func FromContext(ctx context.Context) (IDs, bool) {
	if ctx == nil {
		return IDs{}, false
	}
	ids, ok := ctx.Value(traceKey{}).(IDs)
	return ids, ok
}

func TraceID(ctx context.Context) string {
	ids, _ := FromContext(ctx)
	return ids.TraceID
}
