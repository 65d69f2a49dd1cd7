package timeline

import (
	"testing"
	"time"

	"github.com/gbtux/teammanager/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mapperStart = date(2025, 1, 1)

func TestEffectiveColumnWidth(t *testing.T) {
	m := NewMapper(domain.RangeMonthly, 100, mapperStart)
	assert.Equal(t, 150.0, m.EffectiveColumnWidth())
	m.Zoom = 50
	assert.Equal(t, 75.0, m.EffectiveColumnWidth())
	m.Zoom = 200
	assert.Equal(t, 300.0, m.EffectiveColumnWidth())
}

func TestOffsetForDate(t *testing.T) {
	monthly := NewMapper(domain.RangeMonthly, 100, mapperStart)
	assert.Equal(t, 0.0, monthly.OffsetForDate(mapperStart))
	assert.Equal(t, 300.0, monthly.OffsetForDate(date(2025, 3, 1)))
	assert.InDelta(t, 300+15.0/31*150, monthly.OffsetForDate(date(2025, 3, 16)), 1e-9)
	assert.Equal(t, -150.0, monthly.OffsetForDate(date(2024, 12, 1)))

	daily := NewMapper(domain.RangeDaily, 100, mapperStart)
	assert.Equal(t, 125.0, daily.OffsetForDate(time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC)))

	weekly := NewMapper(domain.RangeWeekly, 100, mapperStart)
	assert.InDelta(t, 80+2.0/7*80, weekly.OffsetForDate(date(2025, 1, 10)), 1e-9)

	yearly := NewMapper(domain.RangeYearly, 100, mapperStart)
	assert.Equal(t, 300.0, yearly.OffsetForDate(date(2026, 7, 15)))

	zoomed := NewMapper(domain.RangeMonthly, 200, mapperStart)
	assert.Equal(t, 600.0, zoomed.OffsetForDate(date(2025, 3, 1)))
}

func TestDateForOffset(t *testing.T) {
	monthly := NewMapper(domain.RangeMonthly, 100, mapperStart)
	assert.Equal(t, date(2025, 3, 1), monthly.DateForOffset(300))
	assert.Equal(t, date(2024, 12, 31), monthly.DateForOffset(-1))

	daily := NewMapper(domain.RangeDaily, 100, mapperStart)
	assert.Equal(t, time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC), daily.DateForOffset(125))

	m := NewMapper(domain.RangeMonthly, 0, mapperStart)
	assert.Equal(t, mapperStart, m.DateForOffset(42), "zero zoom falls back to the timeline start")
}

func TestOffsetRoundTrip(t *testing.T) {
	for _, r := range domain.Ranges {
		for _, zoom := range []int{50, 100, 133, 200} {
			m := NewMapper(r, zoom, mapperStart)
			for d := date(2024, 6, 1); d.Before(date(2027, 12, 31)); d = d.AddDate(0, 0, 1) {
				back := m.DateForOffset(m.OffsetForDate(d))
				wantCol, _ := m.column(d)
				gotCol, _ := m.column(back)
				require.Equal(t, wantCol, gotCol, "range=%s zoom=%d date=%s back=%s", r, zoom, d.Format(domain.DateLayout), back)
				if r != domain.RangeYearly {
					require.True(t, d.Equal(back), "range=%s zoom=%d date=%s back=%s", r, zoom, d.Format(domain.DateLayout), back)
				}
			}
		}
	}
}

func TestWidthForRange(t *testing.T) {
	monthly := NewMapper(domain.RangeMonthly, 100, mapperStart)
	assert.Equal(t, 300.0, monthly.WidthForRange(date(2025, 1, 1), date(2025, 3, 1)))
	assert.InDelta(t, 150.0/31, monthly.WidthForRange(date(2025, 1, 1), date(2025, 1, 1)), 1e-9)

	daily := NewMapper(domain.RangeDaily, 100, mapperStart)
	assert.Equal(t, 50.0, daily.WidthForRange(date(2025, 1, 5), date(2025, 1, 5)))
	assert.Equal(t, 200.0, daily.WidthForRange(date(2025, 1, 5), date(2025, 1, 9)))
}

func TestDragShift(t *testing.T) {
	m := NewMapper(domain.RangeMonthly, 100, mapperStart)
	start, end := m.DragShift(date(2025, 1, 10), date(2025, 1, 15),
		m.OffsetForDate(date(2025, 1, 5)), m.OffsetForDate(date(2025, 1, 8)))
	assert.Equal(t, date(2025, 1, 13), start)
	assert.Equal(t, date(2025, 1, 18), end)

	daily := NewMapper(domain.RangeDaily, 100, mapperStart)
	start, end = daily.DragShift(date(2025, 1, 10), date(2025, 1, 15), 500, 400)
	assert.Equal(t, date(2025, 1, 8), start)
	assert.Equal(t, date(2025, 1, 13), end)
}

func TestScrollOffset(t *testing.T) {
	m := NewMapper(domain.RangeMonthly, 100, mapperStart)
	assert.Equal(t, 0.0, m.ScrollOffset(date(2020, 1, 1)))
	assert.Equal(t, 150.0, m.ScrollOffset(date(2025, 2, 1)))
}
