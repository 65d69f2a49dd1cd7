package timeline

// Growth says which end of the timeline a scroll event extended.
type Growth int

const (
	GrowthNone Growth = iota
	GrowthPrepended
	GrowthAppended
)

// Viewport owns the horizontal scroll state of a rendered timeline and grows
// its Data when the user reaches either edge.
type Viewport struct {
	Data    *Data
	ScrollX float64
}

func NewViewport(d *Data) *Viewport {
	return &Viewport{Data: d}
}

// Scroll records a new scroll position. Hitting the left edge prepends a
// year and moves the scroll position one client width to the right, hitting
// the right edge appends a year and pins the position to the old end.
func (v *Viewport) Scroll(left, clientWidth, scrollWidth float64) Growth {
	v.ScrollX = left
	switch {
	case left <= 0:
		v.Data.Prepend()
		v.ScrollX = clientWidth
		return GrowthPrepended
	case left+clientWidth >= scrollWidth:
		v.Data.Append()
		v.ScrollX = scrollWidth - clientWidth
		return GrowthAppended
	}
	return GrowthNone
}
