package booking

import "time"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Schedule holds the resolved absolute instants of a meeting slot.
type Schedule struct {
	StartAt time.Time
	EndAt   time.Time
}

// ResolveSchedule combines a calendar date with HH:MM start/end times into
// absolute instants (UTC wall clock) and validates the slot:
//
//   - ErrInvalidDateTime when date or either time does not parse,
//   - ErrEndNotAfterStart when end <= start,
//   - ErrStartTimePast when enforceFuture is set and start < now.
//
// enforceFuture is on for creation; edits keep the historical behavior of
// not re-checking unless configured otherwise.
func ResolveSchedule(date, startTime, endTime string, now time.Time, enforceFuture bool) (Schedule, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return Schedule{}, ErrInvalidDateTime
	}

	start, err := combine(day, startTime)
	if err != nil {
		return Schedule{}, ErrInvalidDateTime
	}

	end, err := combine(day, endTime)
	if err != nil {
		return Schedule{}, ErrInvalidDateTime
	}

	if !end.After(start) {
		return Schedule{}, ErrEndNotAfterStart
	}

	if enforceFuture && start.Before(now) {
		return Schedule{}, ErrStartTimePast
	}

	return Schedule{StartAt: start, EndAt: end}, nil
}

func combine(day time.Time, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(timeLayout, clock, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
