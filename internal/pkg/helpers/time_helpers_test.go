package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateToDay(t *testing.T) {
	morning := time.Date(2024, 3, 5, 8, 30, 15, 999, time.Local)
	evening := time.Date(2024, 3, 5, 23, 59, 59, 0, time.Local)

	assert.Equal(t, TruncateToDay(morning), TruncateToDay(evening),
		"times on the same day must normalize to the same value")

	truncated := TruncateToDay(morning)
	assert.Equal(t, 0, truncated.Hour())
	assert.Equal(t, 0, truncated.Minute())
	assert.Equal(t, 0, truncated.Second())
	assert.Equal(t, 2024, truncated.Year())
	assert.Equal(t, time.March, truncated.Month())
	assert.Equal(t, 5, truncated.Day())
}

func TestTruncateToDayDifferentDays(t *testing.T) {
	monday := time.Date(2024, 3, 4, 23, 0, 0, 0, time.Local)
	tuesday := time.Date(2024, 3, 5, 1, 0, 0, 0, time.Local)

	assert.NotEqual(t, TruncateToDay(monday), TruncateToDay(tuesday))
}

func TestParseFlexibleDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		day   int
	}{
		{"plain date", "2024-03-05", 5},
		{"date-time without zone", "2024-03-05T08:30:00", 5},
		{"date-time with space", "2024-03-05 08:30:00", 5},
		{"rfc3339", "2024-03-05T08:30:00Z", 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseFlexibleDate(tc.input)
			require.NoError(t, err)
			assert.Equal(t, 2024, parsed.Year())
			assert.Equal(t, time.March, parsed.Month())
			assert.Equal(t, tc.day, parsed.Day())
		})
	}
}

func TestParseFlexibleDateInvalid(t *testing.T) {
	_, err := ParseFlexibleDate("not-a-date")
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("bogus", time.Minute))
}
