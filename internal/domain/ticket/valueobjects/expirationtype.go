package valueobjects

import (
	"fmt"
	"time"
)

// ExpirationType controls how a received gift derives its rental expiry.
type ExpirationType string

const (
	ExpirationNone          ExpirationType = "none"
	ExpirationDays          ExpirationType = "days"
	ExpirationHours         ExpirationType = "hours"
	ExpirationOnReceiveDays ExpirationType = "on_receive_days"
)

var validExpirationTypes = map[ExpirationType]bool{
	ExpirationNone:          true,
	ExpirationDays:          true,
	ExpirationHours:         true,
	ExpirationOnReceiveDays: true,
}

func (e ExpirationType) IsValid() bool {
	return validExpirationTypes[e]
}

func (e ExpirationType) String() string {
	return string(e)
}

func ParseExpirationType(s string) (ExpirationType, error) {
	if s == "" {
		return ExpirationNone, nil
	}
	e := ExpirationType(s)
	if !e.IsValid() {
		return "", fmt.Errorf("invalid ticket expiration type: %s", s)
	}
	return e, nil
}

// ExpiresAt applies value to now. ExpirationNone yields nil.
func (e ExpirationType) ExpiresAt(now time.Time, value int) *time.Time {
	var t time.Time
	switch e {
	case ExpirationDays, ExpirationOnReceiveDays:
		t = now.AddDate(0, 0, value)
	case ExpirationHours:
		t = now.Add(time.Duration(value) * time.Hour)
	default:
		return nil
	}
	return &t
}
