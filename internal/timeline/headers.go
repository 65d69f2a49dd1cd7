package timeline

import (
	"fmt"
	"time"

	"github.com/gbtux/teammanager/internal/domain"
)

// HeaderGroup is one titled block of column labels in the timeline header.
type HeaderGroup struct {
	Title   string
	Columns []string
}

// Headers builds the header groups for every rendered year.
func Headers(d *Data, r domain.Range) []HeaderGroup {
	var groups []HeaderGroup
	for _, y := range d.Years() {
		switch r {
		case domain.RangeDaily:
			for i, m := range y.Months() {
				first := time.Date(y.Year, time.Month(i+1), 1, 0, 0, 0, 0, d.loc)
				cols := make([]string, m.Days)
				for day := range cols {
					date := first.AddDate(0, 0, day)
					cols[day] = fmt.Sprintf("%d %s", date.Day(), date.Weekday().String()[:1])
				}
				groups = append(groups, HeaderGroup{Title: first.Format("January 2006"), Columns: cols})
			}
		case domain.RangeWeekly:
			for i, m := range y.Months() {
				first := time.Date(y.Year, time.Month(i+1), 1, 0, 0, 0, 0, d.loc)
				weeks := (m.Days + 6) / 7
				cols := make([]string, weeks)
				for w := range cols {
					cols[w] = fmt.Sprintf("W%d", WeekOfYear(StartOfWeek(first).AddDate(0, 0, 7*w)))
				}
				groups = append(groups, HeaderGroup{Title: first.Format("January 2006"), Columns: cols})
			}
		case domain.RangeQuarterly:
			for q := range y.Quarters {
				cols := make([]string, 3)
				for i := range cols {
					cols[i] = time.Month(q*3 + i + 1).String()[:3]
				}
				groups = append(groups, HeaderGroup{Title: fmt.Sprintf("Q%d %d", q+1, y.Year), Columns: cols})
			}
		default:
			cols := make([]string, 12)
			for i := range cols {
				cols[i] = time.Month(i + 1).String()[:3]
			}
			groups = append(groups, HeaderGroup{Title: fmt.Sprintf("%d", y.Year), Columns: cols})
		}
	}
	return groups
}

// WeekOfYear numbers Sunday-based weeks; the week containing January 1 is
// week 1.
func WeekOfYear(t time.Time) int {
	// The week holding Jan 1 of the next year already counts as week 1.
	nextJan1 := time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, t.Location())
	if !StartOfWeek(t).Before(StartOfWeek(nextJan1)) {
		return 1
	}
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	return DifferenceInDays(StartOfWeek(t), StartOfWeek(jan1))/7 + 1
}
