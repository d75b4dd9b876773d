package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func str(s string) *string { return &s }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// at builds an instant in a fixed offset zone so the tests exercise
// site-local wall-clock math rather than UTC.
func at(y int, m time.Month, d, hh, mm, ss int) time.Time {
	loc := time.FixedZone("SITE", -5*3600)
	return time.Date(y, m, d, hh, mm, ss, 0, loc)
}

func TestWindowKillSwitch(t *testing.T) {
	s := Schedule{Active: false}
	assert.False(t, IsActiveAt(s, at(2025, time.June, 2, 12, 0, 0)))
}

func TestWindowNoBoundsAlwaysActive(t *testing.T) {
	s := Schedule{Active: true}
	assert.True(t, IsActiveAt(s, at(2025, time.June, 2, 0, 0, 0)))
	assert.True(t, IsActiveAt(s, at(2025, time.June, 2, 23, 59, 59)))
}

func TestWindowDateBoundsInclusive(t *testing.T) {
	s := Schedule{
		Active:    true,
		StartDate: date(2025, time.June, 10),
		EndDate:   date(2025, time.June, 20),
	}
	assert.False(t, IsActiveAt(s, at(2025, time.June, 9, 23, 0, 0)))
	assert.True(t, IsActiveAt(s, at(2025, time.June, 10, 0, 0, 0)))
	assert.True(t, IsActiveAt(s, at(2025, time.June, 20, 23, 59, 59)))
	assert.False(t, IsActiveAt(s, at(2025, time.June, 21, 0, 0, 0)))
}

func TestWindowTimeBoundsInclusive(t *testing.T) {
	s := Schedule{
		Active:    true,
		StartTime: str("09:00:00"),
		EndTime:   str("17:00:00"),
	}
	assert.False(t, IsActiveAt(s, at(2025, time.June, 2, 8, 59, 59)))
	assert.True(t, IsActiveAt(s, at(2025, time.June, 2, 9, 0, 0)))
	assert.True(t, IsActiveAt(s, at(2025, time.June, 2, 12, 30, 0)))
	assert.True(t, IsActiveAt(s, at(2025, time.June, 2, 17, 0, 0)))
	assert.False(t, IsActiveAt(s, at(2025, time.June, 2, 17, 0, 1)))
}

func TestWindowOvernight(t *testing.T) {
	s := Schedule{
		Active:    true,
		StartTime: str("22:00:00"),
		EndTime:   str("02:00:00"),
	}
	assert.True(t, IsActiveAt(s, at(2025, time.June, 2, 23, 30, 0)))
	assert.True(t, IsActiveAt(s, at(2025, time.June, 3, 1, 0, 0)))
	assert.False(t, IsActiveAt(s, at(2025, time.June, 2, 12, 0, 0)))
	assert.True(t, IsActiveAt(s, at(2025, time.June, 2, 22, 0, 0)))
	assert.True(t, IsActiveAt(s, at(2025, time.June, 3, 2, 0, 0)))
}

func TestWindowOneSidedBounds(t *testing.T) {
	evening := Schedule{Active: true, StartTime: str("18:00:00")}
	assert.True(t, IsActiveAt(evening, at(2025, time.June, 2, 18, 0, 0)))
	assert.True(t, IsActiveAt(evening, at(2025, time.June, 2, 23, 59, 59)))
	assert.False(t, IsActiveAt(evening, at(2025, time.June, 2, 17, 59, 59)))

	morning := Schedule{Active: true, EndTime: str("10:00:00")}
	assert.True(t, IsActiveAt(morning, at(2025, time.June, 2, 0, 0, 0)))
	assert.True(t, IsActiveAt(morning, at(2025, time.June, 2, 10, 0, 0)))
	assert.False(t, IsActiveAt(morning, at(2025, time.June, 2, 10, 0, 1)))
}

func TestWindowDaysOfWeek(t *testing.T) {
	s := Schedule{
		Active:     true,
		DaysOfWeek: []string{"Mon", "Wed", "Fri"},
		StartTime:  str("09:00:00"),
		EndTime:    str("17:00:00"),
	}
	// 2025-06-03 is a Tuesday, 2025-06-04 a Wednesday.
	assert.False(t, IsActiveAt(s, at(2025, time.June, 3, 12, 0, 0)))
	assert.False(t, IsActiveAt(s, at(2025, time.June, 3, 3, 0, 0)))
	assert.True(t, IsActiveAt(s, at(2025, time.June, 4, 12, 0, 0)))
	assert.False(t, IsActiveAt(s, at(2025, time.June, 4, 8, 0, 0)))
}

func TestWindowSiteZoneWallClock(t *testing.T) {
	// 09:00-17:00 evaluated against the site's wall clock: the same UTC
	// instant is inside the window in one zone and outside in another.
	s := Schedule{Active: true, StartTime: str("09:00:00"), EndTime: str("17:00:00")}

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	assert.NoError(t, err)
	ny, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	instant := time.Date(2025, time.June, 2, 3, 0, 0, 0, time.UTC) // 12:00 JST, 23:00 EDT (prev day)
	assert.True(t, IsActiveAt(s, instant.In(tokyo)))
	assert.False(t, IsActiveAt(s, instant.In(ny)))
}

func TestWindowMalformedClockFailsClosed(t *testing.T) {
	s := Schedule{Active: true, StartTime: str("not-a-time"), EndTime: str("17:00:00")}
	assert.False(t, IsActiveAt(s, at(2025, time.June, 2, 12, 0, 0)))

	s = Schedule{Active: true, StartTime: str("25:00:00"), EndTime: str("26:00:00")}
	assert.False(t, IsActiveAt(s, at(2025, time.June, 2, 12, 0, 0)))

	// trailing garbage after a well-formed prefix must not pass either
	s = Schedule{Active: true, StartTime: str("09:00:00junk"), EndTime: str("17:00:00")}
	assert.False(t, IsActiveAt(s, at(2025, time.June, 2, 12, 0, 0)))
}

func TestNormalizeDays(t *testing.T) {
	days, err := NormalizeDays([]string{"fri", "Mon", "MON", " wed "})
	assert.NoError(t, err)
	assert.Equal(t, []string{"Mon", "Wed", "Fri"}, days)

	_, err = NormalizeDays([]string{"Mon", "Funday"})
	assert.Error(t, err)
}

func TestValidateClock(t *testing.T) {
	assert.NoError(t, ValidateClock("00:00:00"))
	assert.NoError(t, ValidateClock("23:59:59"))
	assert.Error(t, ValidateClock("24:00:00"))
	assert.Error(t, ValidateClock("12:60:00"))
	assert.Error(t, ValidateClock("noon"))
	assert.Error(t, ValidateClock("12:00:00junk"))
	assert.Error(t, ValidateClock("12:00:00 "))
}
