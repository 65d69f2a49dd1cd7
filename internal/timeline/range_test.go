package timeline

import (
	"testing"
	"time"

	"github.com/gbtux/teammanager/internal/domain"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 1, DaysIn(domain.RangeDaily)(date(2026, 2, 1)))
	assert.Equal(t, 7, DaysIn(domain.RangeWeekly)(date(2026, 2, 1)))
	assert.Equal(t, 29, DaysIn(domain.RangeMonthly)(date(2024, 2, 10)))
	assert.Equal(t, 31, DaysIn(domain.RangeQuarterly)(date(2026, 1, 10)))
	assert.Equal(t, 366, DaysIn(domain.RangeYearly)(date(2024, 6, 1)))
	assert.Equal(t, 365, DaysIn(domain.RangeYearly)(date(2026, 6, 1)))
	assert.Equal(t, 365, DaysInYear(date(2100, 1, 1)), "century years are not leap unless divisible by 400")
	assert.Equal(t, 366, DaysInYear(date(2000, 1, 1)))
}

func TestDifferenceInDays(t *testing.T) {
	assert.Equal(t, 9, DifferenceInDays(date(2026, 1, 10), date(2026, 1, 1)))
	assert.Equal(t, -9, DifferenceInDays(date(2026, 1, 1), date(2026, 1, 10)))

	a := time.Date(2026, 1, 10, 6, 0, 0, 0, time.UTC)
	b := time.Date(2026, 1, 9, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DifferenceInDays(a, b), "18 hours is not a full day")
	assert.Equal(t, 0, DifferenceInDays(b, a))
}

func TestDifferenceInMonths(t *testing.T) {
	assert.Equal(t, 1, DifferenceInMonths(date(2026, 3, 15), date(2026, 1, 20)))
	assert.Equal(t, 2, DifferenceInMonths(date(2026, 3, 20), date(2026, 1, 20)))
	assert.Equal(t, 1, DifferenceInMonths(date(2026, 2, 28), date(2026, 1, 31)))
	assert.Equal(t, -2, DifferenceInMonths(date(2026, 1, 1), date(2026, 3, 15)))
	assert.Equal(t, -1, DifferenceInMonths(date(2026, 1, 20), date(2026, 3, 15)))
	assert.Equal(t, 0, DifferenceInMonths(date(2026, 1, 31), date(2026, 1, 1)))
}

func TestDifferenceInCoarseUnits(t *testing.T) {
	assert.Equal(t, 2, DifferenceIn(domain.RangeWeekly)(date(2026, 1, 15), date(2026, 1, 1)))
	assert.Equal(t, 1, DifferenceIn(domain.RangeWeekly)(date(2026, 1, 14), date(2026, 1, 1)))
	assert.Equal(t, 1, DifferenceIn(domain.RangeYearly)(date(2028, 6, 1), date(2026, 7, 1)))
	assert.Equal(t, 5, DifferenceIn(domain.RangeQuarterly)(date(2026, 6, 1), date(2026, 1, 1)))
	assert.Equal(t, 3, DifferenceIn(domain.RangeDaily)(date(2026, 1, 4), date(2026, 1, 1)))
}

func TestInnerDifferenceIn(t *testing.T) {
	a := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 36, InnerDifferenceIn(domain.RangeDaily)(a, date(2026, 1, 1)))
	assert.Equal(t, 1, InnerDifferenceIn(domain.RangeWeekly)(a, date(2026, 1, 1)))
	assert.Equal(t, 5, InnerDifferenceIn(domain.RangeYearly)(date(2026, 6, 1), date(2026, 1, 1)))
}

func TestStartAndEndOf(t *testing.T) {
	thursday := time.Date(2026, 1, 1, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, date(2025, 12, 28), StartOf(domain.RangeWeekly)(thursday))
	assert.Equal(t, date(2026, 1, 1), StartOf(domain.RangeDaily)(thursday))
	assert.Equal(t, date(2026, 1, 1), StartOf(domain.RangeMonthly)(date(2026, 1, 20)))
	assert.Equal(t, date(2026, 1, 1), StartOf(domain.RangeYearly)(date(2026, 8, 20)))

	assert.Equal(t, date(2026, 3, 1).Add(-time.Nanosecond), EndOf(domain.RangeMonthly)(date(2026, 2, 10)))
	assert.Equal(t, date(2027, 1, 1).Add(-time.Nanosecond), EndOf(domain.RangeYearly)(date(2026, 2, 10)))
	assert.Equal(t, date(2026, 1, 4).Add(-time.Nanosecond), EndOf(domain.RangeWeekly)(thursday))
	assert.Equal(t, date(2026, 1, 2).Add(-time.Nanosecond), EndOf(domain.RangeDaily)(thursday))
}

func TestAddRange(t *testing.T) {
	assert.Equal(t, date(2026, 1, 15), AddRange(domain.RangeWeekly)(date(2026, 1, 1), 2))
	assert.Equal(t, date(2026, 2, 28), AddRange(domain.RangeMonthly)(date(2026, 1, 31), 1))
	assert.Equal(t, date(2024, 2, 29), AddRange(domain.RangeQuarterly)(date(2024, 1, 31), 1))
	assert.Equal(t, date(2025, 2, 28), AddRange(domain.RangeYearly)(date(2024, 2, 29), 1))
	assert.Equal(t, date(2025, 12, 30), AddRange(domain.RangeDaily)(date(2026, 1, 1), -2))
}

func TestAddMonthsKeepsClock(t *testing.T) {
	in := time.Date(2026, 1, 31, 9, 15, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 2, 28, 9, 15, 0, 0, time.UTC), AddMonths(in, 1))
	assert.Equal(t, time.Date(2025, 12, 31, 9, 15, 0, 0, time.UTC), AddMonths(in, -1))
}
