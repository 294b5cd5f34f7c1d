package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ScoreboardLayout is the compact date format ESPN scoreboard queries use.
const ScoreboardLayout = "20060102"

// referenceTZ is the fixed timezone used for "today" computation and the
// daily refresh schedule.
const referenceTZ = "America/New_York"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Eastern returns the reference location. Falls back to UTC when tzdata is
// unavailable so date math still works.
func Eastern() *time.Location {
	loc, err := time.LoadLocation(referenceTZ)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ScoreboardDate formats a time as YYYYMMDD in the reference timezone.
func ScoreboardDate(t time.Time) string {
	return t.In(Eastern()).Format(ScoreboardLayout)
}

// ScoreboardRange formats an inclusive [from, to] range as
// YYYYMMDD-YYYYMMDD in the reference timezone.
func ScoreboardRange(from, to time.Time) string {
	return ScoreboardDate(from) + "-" + ScoreboardDate(to)
}
