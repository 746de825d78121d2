package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/Dacosmicgiant/LevelUp/internal/storage"
)

// TotalWeeks is the fixed length of the program.
const TotalWeeks = 10

// DayFormat is the ISO date layout used for every per-day map key.
const DayFormat = "2006-01-02"

// ParseDay parses an ISO date key. A malformed key is a caller bug, not
// recoverable user input, so this fails rather than coercing.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return t, nil
}

// FormatDay renders a time as an ISO date key.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// daysBetween counts calendar days from a to b (negative when b precedes a).
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// CurrentWeek derives the journey week (1..TotalWeeks) from the configured
// dates and the observed "today". It is recomputed on every read; the
// persisted state never holds an authoritative week number.
func CurrentWeek(st *storage.Settings, today time.Time) int {
	total := daysBetween(st.StartDate, st.EndDate)
	if total <= 0 {
		return 1
	}
	weekLen := float64(total) / TotalWeeks
	elapsed := daysBetween(st.StartDate, today)
	week := int(math.Ceil(float64(elapsed) / weekLen))
	if week < 1 {
		return 1
	}
	if week > TotalWeeks {
		return TotalWeeks
	}
	return week
}

// ProgressPercent is the elapsed fraction of the journey, clamped to 0..100.
func ProgressPercent(st *storage.Settings, today time.Time) float64 {
	total := daysBetween(st.StartDate, st.EndDate)
	if total <= 0 {
		return 0
	}
	pct := float64(daysBetween(st.StartDate, today)) / float64(total) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
