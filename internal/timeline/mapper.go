package timeline

import (
	"math"
	"time"

	"github.com/gbtux/teammanager/internal/domain"
)

// epsilon absorbs float error when an offset produced by OffsetForDate is
// mapped back to a date.
const epsilon = 1e-9

// Mapper converts between calendar time and horizontal pixel offsets.
// Columns are anchored at Start and advanced with AddRange.
type Mapper struct {
	Range       domain.Range
	ColumnWidth float64
	Zoom        int // percent, 100 = 1:1
	Start       time.Time
}

// NewMapper returns a mapper using the range's default column width.
func NewMapper(r domain.Range, zoom int, start time.Time) Mapper {
	return Mapper{
		Range:       r,
		ColumnWidth: r.DefaultColumnWidth(),
		Zoom:        zoom,
		Start:       start,
	}
}

// EffectiveColumnWidth is the zoomed width of one column.
func (m Mapper) EffectiveColumnWidth() float64 {
	return m.ColumnWidth * float64(m.Zoom) / 100
}

// column returns the index of the column containing t and that column's
// first instant. Dates before Start get negative indexes.
func (m Mapper) column(t time.Time) (int, time.Time) {
	add := AddRange(m.Range)
	col := DifferenceIn(m.Range)(t, m.Start)
	start := add(m.Start, col)
	for start.After(t) {
		col--
		start = add(m.Start, col)
	}
	for next := add(m.Start, col+1); !next.After(t); next = add(m.Start, col+1) {
		col++
		start = next
	}
	return col, start
}

// OffsetForDate returns the pixel offset of t from the left edge of the
// timeline.
func (m Mapper) OffsetForDate(t time.Time) float64 {
	w := m.EffectiveColumnWidth()
	col, colStart := m.column(t)
	inner := InnerDifferenceIn(m.Range)(t, colStart)
	span := innerSpan(m.Range, colStart)
	return float64(col)*w + float64(inner)/float64(span)*w
}

// DateForOffset maps a pointer position back to a date. The result lies in
// the same column as any date whose offset is x.
func (m Mapper) DateForOffset(x float64) time.Time {
	w := m.EffectiveColumnWidth()
	if w <= 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return m.Start
	}
	pos := x/w + epsilon
	col := int(math.Floor(pos))
	colStart := AddRange(m.Range)(m.Start, col)
	span := innerSpan(m.Range, colStart)
	n := int(math.Floor((pos-float64(col))*float64(span) + epsilon))
	if n < 0 {
		n = 0
	}
	if n > span-1 {
		n = span - 1
	}
	return addInner(m.Range, colStart, n)
}

// WidthForRange returns the pixel width of a bar covering [start, end].
// Zero-length bars are one column wide on the daily range and one day wide
// elsewhere.
func (m Mapper) WidthForRange(start, end time.Time) float64 {
	width := m.OffsetForDate(end) - m.OffsetForDate(start)
	if width > 0 {
		return width
	}
	w := m.EffectiveColumnWidth()
	if m.Range == domain.RangeDaily {
		return w
	}
	return w / float64(DaysIn(m.Range)(start))
}

// DragShift translates a horizontal drag from fromX to toX into a new window
// of the same length.
func (m Mapper) DragShift(start, end time.Time, fromX, toX float64) (time.Time, time.Time) {
	current := m.DateForOffset(toX)
	original := m.DateForOffset(fromX)
	switch m.Range {
	case domain.RangeDaily:
		delta := DifferenceInDays(current, original)
		return AddDays(start, delta), AddDays(end, delta)
	case domain.RangeYearly:
		delta := DifferenceInMonths(current, original)
		return AddMonths(start, delta), AddMonths(end, delta)
	default:
		delta := InnerDifferenceIn(m.Range)(current, original)
		return AddDays(start, delta), AddDays(end, delta)
	}
}

// ScrollOffset returns the scroll position that brings t to the left edge.
func (m Mapper) ScrollOffset(t time.Time) float64 {
	return math.Max(0, m.OffsetForDate(t))
}
