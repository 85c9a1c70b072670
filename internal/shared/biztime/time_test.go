package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAge(t *testing.T) {
	loc := Location()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, loc)

	tests := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"birthday passed", time.Date(2000, 1, 1, 0, 0, 0, 0, loc), 26},
		{"birthday today", time.Date(2000, 3, 10, 0, 0, 0, 0, loc), 26},
		{"birthday tomorrow", time.Date(2000, 3, 11, 0, 0, 0, 0, loc), 25},
		{"future birth clamps to zero", time.Date(2030, 1, 1, 0, 0, 0, 0, loc), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Age(tt.birth, now))
		})
	}
}

func TestFormatUsesBusinessTimezone(t *testing.T) {
	utc := time.Date(2026, 1, 1, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-02 00:30:00", Format(utc))
	assert.Equal(t, "2026-01-02", FormatDate(utc))
	assert.Nil(t, FormatPtr(nil))
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2026-05-01 09:00:00")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Hour())

	got, err = ParseDateTime("2026-05-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Hour())

	got, err = ParseDateTime("2026-05-01")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Hour())

	_, err = ParseDateTime("not a date")
	assert.Error(t, err)
}

func TestToLocalAndStartOfDay(t *testing.T) {
	utc := time.Date(2026, 1, 1, 16, 0, 0, 0, time.UTC)
	local := ToLocal(utc)
	assert.Equal(t, 2, local.Day())
	assert.True(t, utc.Equal(ToUTC(local)))

	sod := StartOfDay(utc)
	assert.Equal(t, 0, sod.Hour())
	assert.Equal(t, 2, sod.Day())
}
