package domain

// FeaturePosition is a feature's rendered rectangle in pixel space.
type FeaturePosition struct {
	ID     string
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

func (p FeaturePosition) Right() float64   { return p.Left + p.Width }
func (p FeaturePosition) Bottom() float64  { return p.Top + p.Height }
func (p FeaturePosition) CenterY() float64 { return p.Top + p.Height/2 }

// Obstacle is a rectangle a dependency path must route around.
type Obstacle struct {
	ID     string
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// ObstacleFrom expands a position by margin on every side.
func ObstacleFrom(p FeaturePosition, margin float64) Obstacle {
	return Obstacle{
		ID:     p.ID,
		Left:   p.Left - margin,
		Top:    p.Top - margin,
		Right:  p.Right() + margin,
		Bottom: p.Bottom() + margin,
	}
}
