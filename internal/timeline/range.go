package timeline

import (
	"time"

	"github.com/gbtux/teammanager/internal/domain"
)

// DaysIn returns the day count of one column for the given range.
func DaysIn(r domain.Range) func(time.Time) int {
	switch r {
	case domain.RangeWeekly:
		return func(time.Time) int { return 7 }
	case domain.RangeMonthly, domain.RangeQuarterly:
		return DaysInMonth
	case domain.RangeYearly:
		return DaysInYear
	default:
		return func(time.Time) int { return 1 }
	}
}

// DifferenceIn returns a - b in whole outer units (one column each).
func DifferenceIn(r domain.Range) func(a, b time.Time) int {
	switch r {
	case domain.RangeWeekly:
		return DifferenceInWeeks
	case domain.RangeMonthly, domain.RangeQuarterly:
		return DifferenceInMonths
	case domain.RangeYearly:
		return DifferenceInYears
	default:
		return DifferenceInDays
	}
}

// InnerDifferenceIn returns a - b in the unit used inside a single column.
func InnerDifferenceIn(r domain.Range) func(a, b time.Time) int {
	switch r {
	case domain.RangeWeekly, domain.RangeMonthly, domain.RangeQuarterly:
		return DifferenceInDays
	case domain.RangeYearly:
		return DifferenceInMonths
	default:
		return DifferenceInHours
	}
}

// StartOf snaps a time to the start of its outer unit.
func StartOf(r domain.Range) func(time.Time) time.Time {
	switch r {
	case domain.RangeWeekly:
		return StartOfWeek
	case domain.RangeMonthly, domain.RangeQuarterly:
		return StartOfMonth
	case domain.RangeYearly:
		return StartOfYear
	default:
		return StartOfDay
	}
}

// EndOf snaps a time to the last instant of its outer unit.
func EndOf(r domain.Range) func(time.Time) time.Time {
	switch r {
	case domain.RangeWeekly:
		return func(t time.Time) time.Time { return StartOfWeek(t).AddDate(0, 0, 7).Add(-time.Nanosecond) }
	case domain.RangeMonthly, domain.RangeQuarterly:
		return func(t time.Time) time.Time { return AddMonths(StartOfMonth(t), 1).Add(-time.Nanosecond) }
	case domain.RangeYearly:
		return func(t time.Time) time.Time { return AddMonths(StartOfYear(t), 12).Add(-time.Nanosecond) }
	default:
		return func(t time.Time) time.Time { return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond) }
	}
}

// AddRange advances a time by n outer units.
func AddRange(r domain.Range) func(time.Time, int) time.Time {
	switch r {
	case domain.RangeWeekly:
		return func(t time.Time, n int) time.Time { return AddDays(t, 7*n) }
	case domain.RangeMonthly, domain.RangeQuarterly:
		return AddMonths
	case domain.RangeYearly:
		return func(t time.Time, n int) time.Time { return AddMonths(t, 12*n) }
	default:
		return AddDays
	}
}

// innerSpan is the number of inner units in the column starting at t.
func innerSpan(r domain.Range, t time.Time) int {
	switch r {
	case domain.RangeWeekly:
		return 7
	case domain.RangeMonthly, domain.RangeQuarterly:
		return DaysInMonth(t)
	case domain.RangeYearly:
		return 12
	default:
		return 24
	}
}

// addInner advances a time by n inner units.
func addInner(r domain.Range, t time.Time, n int) time.Time {
	switch r {
	case domain.RangeWeekly, domain.RangeMonthly, domain.RangeQuarterly:
		return AddDays(t, n)
	case domain.RangeYearly:
		return AddMonths(t, n)
	default:
		return t.Add(time.Duration(n) * time.Hour)
	}
}

func DaysInMonth(t time.Time) int {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func DaysInYear(t time.Time) int {
	y := t.Year()
	if y%4 == 0 && (y%100 != 0 || y%400 == 0) {
		return 366
	}
	return 365
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the preceding Sunday at midnight.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// AddDays adds n calendar days, keeping the wall clock.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths adds n calendar months, clamping the day to the end of the
// target month (Jan 31 + 1 month = Feb 28).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if dim := DaysInMonth(first); d > dim {
		d = dim
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DifferenceInDays returns the number of full days between a and b,
// truncated toward zero.
func DifferenceInDays(a, b time.Time) int {
	days := civilDay(a) - civilDay(b)
	ca, cb := clock(a), clock(b)
	if days > 0 && ca < cb {
		days--
	} else if days < 0 && ca > cb {
		days++
	}
	return days
}

func DifferenceInWeeks(a, b time.Time) int {
	return DifferenceInDays(a, b) / 7
}

// DifferenceInMonths returns the number of full months between a and b,
// truncated toward zero.
func DifferenceInMonths(a, b time.Time) int {
	months := (a.Year()-b.Year())*12 + int(a.Month()-b.Month())
	if months > 0 && AddMonths(b, months).After(a) {
		months--
	} else if months < 0 && AddMonths(b, months).Before(a) {
		months++
	}
	return months
}

func DifferenceInYears(a, b time.Time) int {
	return DifferenceInMonths(a, b) / 12
}

func DifferenceInHours(a, b time.Time) int {
	return int(a.Sub(b) / time.Hour)
}

func civilDay(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

func clock(t time.Time) time.Duration {
	return t.Sub(StartOfDay(t))
}
