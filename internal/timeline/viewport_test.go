package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewport_LeftEdgePrepends(t *testing.T) {
	d := NewData(date(2026, 10, 19))
	v := NewViewport(d)

	g := v.Scroll(0, 1200, 5400)
	assert.Equal(t, GrowthPrepended, g)
	assert.Equal(t, 2024, d.Years()[0].Year)
	assert.Equal(t, 1200.0, v.ScrollX)
}

func TestViewport_RightEdgeAppends(t *testing.T) {
	d := NewData(date(2026, 10, 19))
	v := NewViewport(d)

	g := v.Scroll(4300, 1200, 5400)
	assert.Equal(t, GrowthAppended, g)
	assert.Equal(t, 2028, d.Years()[d.Len()-1].Year)
	assert.Equal(t, 4200.0, v.ScrollX)
}

func TestViewport_MiddleKeepsPosition(t *testing.T) {
	d := NewData(date(2026, 10, 19))
	v := NewViewport(d)

	g := v.Scroll(500, 1200, 5400)
	assert.Equal(t, GrowthNone, g)
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 500.0, v.ScrollX)
}
