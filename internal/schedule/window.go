package schedule

import (
	"fmt"
	"time"
)

// IsActiveAt reports whether the schedule's window covers the instant now.
// now must already be in the site's time zone: every comparison below is
// wall-clock local to the site, never UTC or server time.
//
// The checks short-circuit in order: kill-switch, date bounds, weekday,
// time-of-day. Date bounds are inclusive on both ends. A weekday list
// restricts to those days; empty means every day. Time bounds are
// inclusive; when only one bound is set the other side is unbounded, and
// start > end denotes a window that wraps past midnight.
func IsActiveAt(s Schedule, now time.Time) bool {
	if !s.Active {
		return false
	}
	if s.StartDate != nil && dateKey(now) < dateKey(*s.StartDate) {
		return false
	}
	if s.EndDate != nil && dateKey(now) > dateKey(*s.EndDate) {
		return false
	}
	if len(s.DaysOfWeek) > 0 && !containsDay(s.DaysOfWeek, now.Weekday()) {
		return false
	}
	return inTimeWindow(s.StartTime, s.EndTime, now)
}

// dateKey flattens a timestamp to a comparable yyyymmdd integer so that
// DATE columns (scanned as UTC midnight) compare against zoned instants by
// calendar date alone.
func dateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

func containsDay(days []string, wd time.Weekday) bool {
	token := wd.String()[:3]
	for _, d := range days {
		if d == token {
			return true
		}
	}
	return false
}

func inTimeWindow(start, end *string, now time.Time) bool {
	if start == nil && end == nil {
		return true
	}
	sec := now.Hour()*3600 + now.Minute()*60 + now.Second()

	// One-sided windows: the missing bound is unbounded in that direction.
	if end == nil {
		startSec, err := clockSeconds(*start)
		return err == nil && sec >= startSec
	}
	if start == nil {
		endSec, err := clockSeconds(*end)
		return err == nil && sec <= endSec
	}

	startSec, err := clockSeconds(*start)
	if err != nil {
		return false
	}
	endSec, err := clockSeconds(*end)
	if err != nil {
		return false
	}
	if startSec > endSec {
		// Wraps midnight, e.g. 22:00-02:00.
		return sec >= startSec || sec <= endSec
	}
	return sec >= startSec && sec <= endSec
}

// clockSeconds parses "HH:mm:ss" into seconds since midnight. time.Parse
// must consume the whole string, so trailing garbage is rejected along
// with out-of-range fields. Malformed values reach here only if write-time
// validation was bypassed; callers treat the error as "window does not
// match".
func clockSeconds(clock string) (int, error) {
	t, err := time.Parse("15:04:05", clock)
	if err != nil {
		return 0, fmt.Errorf("bad clock value %q: %w", clock, err)
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), nil
}

// ValidateClock is the write-boundary counterpart of clockSeconds.
func ValidateClock(clock string) error {
	_, err := clockSeconds(clock)
	return err
}
