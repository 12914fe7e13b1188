package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyAndToday(t *testing.T) {
	now := time.Date(2026, 8, 26, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2026-08-26", Key(now))
	assert.Equal(t, "2026-08-26", Today(now))
}

func TestYesterday(t *testing.T) {
	now := time.Date(2026, 8, 1, 8, 0, 0, 0, time.Local)
	assert.Equal(t, "2026-07-31", Yesterday(now), "crosses the month boundary")
}

func TestWeekStartIsMondayAnchored(t *testing.T) {
	cases := []struct {
		day  string
		want string
	}{
		{"2026-08-24", "2026-08-24"}, // Monday snaps to itself
		{"2026-08-25", "2026-08-24"}, // Tuesday
		{"2026-08-26", "2026-08-24"}, // Wednesday
		{"2026-08-29", "2026-08-24"}, // Saturday
		{"2026-08-30", "2026-08-24"}, // Sunday belongs to the week begun the prior Monday
		{"2026-08-31", "2026-08-31"}, // next Monday starts a new week
	}

	for _, tc := range cases {
		day, err := time.ParseInLocation(Layout, tc.day, time.Local)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, WeekStart(day), "week start for %s", tc.day)
	}
}

func TestIsMonday(t *testing.T) {
	assert.True(t, IsMonday(time.Date(2026, 8, 24, 10, 0, 0, 0, time.Local)))
	assert.False(t, IsMonday(time.Date(2026, 8, 26, 10, 0, 0, 0, time.Local)))
}
