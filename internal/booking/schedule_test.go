package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveScheduleValid(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	sched, err := ResolveSchedule("2025-06-02", "09:30", "11:00", now, true)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC), sched.StartAt)
	assert.Equal(t, time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC), sched.EndAt)
}

func TestResolveScheduleStartEqualNow(t *testing.T) {
	// A slot starting exactly now is not in the past.
	now := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

	sched, err := ResolveSchedule("2025-06-02", "09:30", "10:00", now, true)
	require.NoError(t, err)
	assert.Equal(t, now, sched.StartAt)
}

func TestResolveScheduleEndNotAfterStart(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		start, end string
	}{
		{"end before start", "09:00", "08:00"},
		{"end equals start", "09:00", "09:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveSchedule("2025-06-01", tc.start, tc.end, now, true)
			assert.ErrorIs(t, err, ErrEndNotAfterStart)
		})
	}

	// The ordering check fires regardless of how far in the future the date is.
	_, err := ResolveSchedule("2099-12-31", "10:00", "09:00", now, true)
	assert.ErrorIs(t, err, ErrEndNotAfterStart)
}

func TestResolveSchedulePastStart(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Earlier day.
	_, err := ResolveSchedule("2025-05-31", "09:00", "10:00", now, true)
	assert.ErrorIs(t, err, ErrStartTimePast)

	// Same day, earlier time.
	_, err = ResolveSchedule("2025-06-01", "11:59", "13:00", now, true)
	assert.ErrorIs(t, err, ErrStartTimePast)

	// Edit mode does not re-check the past.
	sched, err := ResolveSchedule("2025-05-31", "09:00", "10:00", now, false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 31, 9, 0, 0, 0, time.UTC), sched.StartAt)
}

func TestResolveScheduleInvalidFormat(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name             string
		date, start, end string
	}{
		{"garbage date", "not-a-date", "09:00", "10:00"},
		{"month out of range", "2025-13-40", "09:00", "10:00"},
		{"garbage start time", "2025-06-02", "aa:bb", "10:00"},
		{"hour out of range", "2025-06-02", "09:00", "24:30"},
		{"empty date", "", "09:00", "10:00"},
		{"empty end time", "2025-06-02", "09:00", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveSchedule(tc.date, tc.start, tc.end, now, true)
			assert.ErrorIs(t, err, ErrInvalidDateTime)
		})
	}
}
