package layout

import (
	"github.com/gbtux/teammanager/internal/domain"
	"github.com/gbtux/teammanager/internal/timeline"
)

// RowOptions sizes the rows of the chart body.
type RowOptions struct {
	RowHeight float64
	BarInset  float64
}

func DefaultRowOptions() RowOptions {
	return RowOptions{RowHeight: 36, BarInset: 4}
}

// Arrange lays features out in rows. Features sharing a lane share a row
// until they overlap, in which case the lane grows another row; features
// without a lane get a row each. Lanes keep the order in which they first
// appear.
func Arrange(features []domain.Feature, m timeline.Mapper, opts RowOptions) []domain.FeaturePosition {
	type lane struct {
		firstRow int
		rowEnds  []float64
	}
	type slot struct {
		lane *lane
		sub  int
	}

	lanes := make(map[string]*lane)
	var order []*lane
	rowCount := 0
	slots := make([]slot, len(features))

	positions := make([]domain.FeaturePosition, len(features))
	for i, f := range features {
		left := m.OffsetForDate(f.StartAt)
		width := m.WidthForRange(f.StartAt, f.EndAt)
		positions[i] = domain.FeaturePosition{ID: f.ID, Left: left, Width: width}

		l, ok := lanes[f.Lane]
		if !ok || f.Lane == "" {
			l = &lane{}
			order = append(order, l)
			if f.Lane != "" {
				lanes[f.Lane] = l
			}
		}
		sub := -1
		for r, end := range l.rowEnds {
			if end <= left {
				sub = r
				break
			}
		}
		if sub < 0 {
			sub = len(l.rowEnds)
			l.rowEnds = append(l.rowEnds, 0)
		}
		l.rowEnds[sub] = left + width
		slots[i] = slot{lane: l, sub: sub}
	}

	for _, l := range order {
		l.firstRow = rowCount
		rowCount += len(l.rowEnds)
	}
	for i := range positions {
		row := slots[i].lane.firstRow + slots[i].sub
		positions[i].Top = float64(row)*opts.RowHeight + opts.BarInset
		positions[i].Height = opts.RowHeight - 2*opts.BarInset
	}
	return positions
}
