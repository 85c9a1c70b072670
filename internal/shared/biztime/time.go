// Package biztime provides timezone-aware clock helpers for the service.
// Rows are written in the business timezone (Korea Standard Time) because the schema
// stores naive DATETIME values; conversion to UTC happens only at the edges that need it.
package biztime

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Seoul"

	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
		if initErr != nil {
			// KST has no DST, a fixed offset is equivalent.
			bizLocation = time.FixedZone("KST", 9*60*60)
		}
	})
	return initErr
}

// Location returns the business timezone location.
func Location() *time.Location {
	if bizLocation == nil {
		_ = Init("")
	}
	return bizLocation
}

// Now returns the current time in the business timezone.
func Now() time.Time {
	return time.Now().In(Location())
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// ToLocal converts any time to the business timezone.
func ToLocal(t time.Time) time.Time {
	return t.In(Location())
}

// Format renders t in the business timezone as "2006-01-02 15:04:05".
func Format(t time.Time) string {
	return t.In(Location()).Format(DateTimeLayout)
}

func FormatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := Format(*t)
	return &s
}

func FormatDate(t time.Time) string {
	return t.In(Location()).Format(DateLayout)
}

// ParseDate parses YYYY-MM-DD as business-timezone midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", s, err)
	}
	return t, nil
}

// ParseDateTime accepts "2006-01-02 15:04:05", RFC3339 or a bare date.
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateTimeLayout, s, Location()); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(Location()), nil
	}
	return ParseDate(s)
}

// StartOfDay returns local midnight of t's business day.
func StartOfDay(t time.Time) time.Time {
	lt := t.In(Location())
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, Location())
}

// Age returns completed years between birth and now.
func Age(birth, now time.Time) int {
	b := birth.In(Location())
	n := now.In(Location())
	age := n.Year() - b.Year()
	if n.Month() < b.Month() || (n.Month() == b.Month() && n.Day() < b.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
