package routing

import (
	"math"
	"strconv"
	"strings"

	"github.com/gbtux/teammanager/internal/domain"
)

const (
	padding        = 12.0
	cornerRadius   = 6.0
	straightLineDY = 5.0
	pointEpsilon   = 0.001
)

// PathParams describes one arrow to route. Obstacles are optional; when
// present the turn column or detour row is nudged off them.
type PathParams struct {
	Source          Point
	Target          Point
	TargetFromRight bool
	Obstacles       []domain.Obstacle
}

// Path returns an SVG path description from Source to Target. Rows that
// are nearly level get a straight line; everything else gets an orthogonal
// route with rounded corners. Zero-length or non-finite input yields "".
func Path(p PathParams) string {
	src, dst := p.Source, p.Target
	if !finite(src) || !finite(dst) {
		return ""
	}
	if math.Abs(src.X-dst.X) < pointEpsilon && math.Abs(src.Y-dst.Y) < pointEpsilon {
		return ""
	}

	dx := dst.X - src.X
	dy := dst.Y - src.Y
	if math.Abs(dy) < straightLineDY {
		return roundedPath([]Point{src, dst}, cornerRadius)
	}

	if p.TargetFromRight {
		if dx > 0 {
			exitX := math.Max(src.X+padding, dst.X+padding)
			exitX = p.nudgeColumn(exitX, math.Inf(1))
			return roundedPath([]Point{
				src,
				{exitX, src.Y},
				{exitX, dst.Y},
				dst,
			}, cornerRadius)
		}
		return p.goAround(src.X+padding, dst.X+padding)
	}

	if dx > padding*2 {
		turnX := src.X + math.Min(padding, dx/2)
		turnX = p.nudgeColumn(turnX, dst.X-cornerRadius)
		return roundedPath([]Point{
			src,
			{turnX, src.Y},
			{turnX, dst.Y},
			dst,
		}, cornerRadius)
	}
	return p.goAround(src.X+padding, dst.X-padding)
}

// goAround leaves the source row, crosses over on a row between source and
// target, and comes back in on the target row.
func (p PathParams) goAround(exitX, entryX float64) string {
	src, dst := p.Source, p.Target
	midY := (src.Y + dst.Y) / 2
	if len(p.Obstacles) > 0 {
		dir := Below
		if dst.Y < src.Y {
			dir = Above
		}
		midY = FindSafeHorizontalY(SafeHorizontalYParams{
			BaseY:     midY,
			Direction: dir,
			MinX:      math.Min(exitX, entryX),
			MaxX:      math.Max(exitX, entryX),
			Obstacles: p.Obstacles,
		})
	}
	return roundedPath([]Point{
		src,
		{exitX, src.Y},
		{exitX, midY},
		{entryX, midY},
		{entryX, dst.Y},
		dst,
	}, cornerRadius)
}

// nudgeColumn moves a vertical segment right until it clears the obstacles,
// keeping the base column if the free one would lie at or past limit.
func (p PathParams) nudgeColumn(x, limit float64) float64 {
	if len(p.Obstacles) == 0 {
		return x
	}
	safe := FindSafeVerticalX(SafeVerticalXParams{
		BaseX:     x,
		Direction: Right,
		MinY:      p.Source.Y,
		MaxY:      p.Target.Y,
		Obstacles: p.Obstacles,
	})
	if safe >= limit {
		return x
	}
	return safe
}

// roundedPath joins points with straight segments and replaces every
// interior corner with a quadratic curve of at most radius.
func roundedPath(points []Point, radius float64) string {
	pts := make([]Point, 0, len(points))
	for i, pt := range points {
		if i > 0 {
			prev := pts[len(pts)-1]
			if math.Abs(pt.X-prev.X) <= pointEpsilon && math.Abs(pt.Y-prev.Y) <= pointEpsilon {
				continue
			}
		}
		pts = append(pts, pt)
	}
	if len(pts) < 2 {
		return ""
	}

	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, pts[0])

	for i := 1; i < len(pts)-1; i++ {
		prev, curr, next := pts[i-1], pts[i], pts[i+1]
		dx1, dy1 := curr.X-prev.X, curr.Y-prev.Y
		dx2, dy2 := next.X-curr.X, next.Y-curr.Y
		len1 := math.Hypot(dx1, dy1)
		len2 := math.Hypot(dx2, dy2)

		if len1 < pointEpsilon || len2 < pointEpsilon {
			b.WriteString(" L ")
			writePoint(&b, curr)
			continue
		}

		r := math.Min(radius, math.Min(len1/2, len2/2))
		b.WriteString(" L ")
		writePoint(&b, Point{curr.X - dx1/len1*r, curr.Y - dy1/len1*r})
		b.WriteString(" Q ")
		writePoint(&b, curr)
		b.WriteString(" ")
		writePoint(&b, Point{curr.X + dx2/len2*r, curr.Y + dy2/len2*r})
	}

	b.WriteString(" L ")
	writePoint(&b, pts[len(pts)-1])
	return b.String()
}

func writePoint(b *strings.Builder, p Point) {
	b.WriteString(formatNumber(p.X))
	b.WriteByte(' ')
	b.WriteString(formatNumber(p.Y))
}

// formatNumber prints the shortest exact decimal form, with no negative zero.
func formatNumber(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
