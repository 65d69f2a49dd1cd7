package routing

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/gbtux/teammanager/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPath_ZeroLengthIsEmpty(t *testing.T) {
	p := Point{X: 100, Y: 18}
	assert.Equal(t, "", Path(PathParams{Source: p, Target: p}))
	assert.Equal(t, "", Path(PathParams{Source: p, Target: p, TargetFromRight: true}))
}

func TestPath_NonFiniteIsEmpty(t *testing.T) {
	assert.Equal(t, "", Path(PathParams{Source: Point{X: math.NaN(), Y: 0}, Target: Point{X: 10, Y: 40}}))
	assert.Equal(t, "", Path(PathParams{Source: Point{X: 0, Y: 0}, Target: Point{X: math.Inf(1), Y: 40}}))
}

func TestPath_StraightWhenRowsAlign(t *testing.T) {
	got := Path(PathParams{Source: Point{X: 100, Y: 18}, Target: Point{X: 200, Y: 21}})
	assert.Equal(t, "M 100 18 L 200 21", got)
}

func TestPath_ForwardRoute(t *testing.T) {
	got := Path(PathParams{Source: Point{X: 100, Y: 18}, Target: Point{X: 200, Y: 54}})
	assert.Equal(t, "M 100 18 L 106 18 Q 112 18 112 24 L 112 48 Q 112 54 118 54 L 200 54", got)
}

func TestPath_GoAroundWhenTargetIsBehind(t *testing.T) {
	got := Path(PathParams{Source: Point{X: 200, Y: 18}, Target: Point{X: 100, Y: 54}})
	assert.Equal(t, "M 200 18 L 206 18 Q 212 18 212 24 L 212 30 Q 212 36 206 36 "+
		"L 94 36 Q 88 36 88 42 L 88 48 Q 88 54 94 54 L 100 54", got)
}

func TestPath_TargetFromRight(t *testing.T) {
	got := Path(PathParams{Source: Point{X: 100, Y: 18}, Target: Point{X: 200, Y: 54}, TargetFromRight: true})
	assert.Equal(t, "M 100 18 L 206 18 Q 212 18 212 24 L 212 48 Q 212 54 206 54 L 200 54", got)
}

func TestPath_ObstacleNudgesTurnColumn(t *testing.T) {
	obstacles := []domain.Obstacle{{ID: "x", Left: 105, Top: 20, Right: 125, Bottom: 50}}
	got := Path(PathParams{Source: Point{X: 100, Y: 18}, Target: Point{X: 200, Y: 54}, Obstacles: obstacles})
	assert.Equal(t, "M 100 18 L 126 18 Q 132 18 132 24 L 132 48 Q 132 54 138 54 L 200 54", got)
}

func TestPath_ObstacleNudgesDetourRow(t *testing.T) {
	obstacles := []domain.Obstacle{{ID: "x", Left: 120, Top: 30, Right: 180, Bottom: 40}}
	got := Path(PathParams{Source: Point{X: 200, Y: 18}, Target: Point{X: 100, Y: 54}, Obstacles: obstacles})
	// The detour row moves from 36 down to 56, clear of the obstacle.
	assert.Contains(t, got, "Q 212 56 206 56")
	assert.NotContains(t, got, " 36 ")
}

func TestRoundedPath_FiltersDuplicatesAndClampsRadius(t *testing.T) {
	got := roundedPath([]Point{{0, 0}, {0, 0}, {4, 0}, {4, 0.0005}, {4, 10}}, 6)
	// Corner radius is clamped to half of the 4px leg.
	assert.Equal(t, "M 0 0 L 2 0 Q 4 0 4 2 L 4 10", got)
}

func TestRoundedPath_TooFewPoints(t *testing.T) {
	assert.Equal(t, "", roundedPath(nil, 6))
	assert.Equal(t, "", roundedPath([]Point{{1, 1}, {1, 1}}, 6))
}

func TestPath_NeverEmitsNaN(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 500; trial++ {
		p := PathParams{
			Source:          Point{X: float64(rng.Intn(400)), Y: float64(rng.Intn(10) * 36)},
			Target:          Point{X: float64(rng.Intn(400)), Y: float64(rng.Intn(10) * 36)},
			TargetFromRight: rng.Intn(2) == 0,
		}
		got := Path(p)
		assert.False(t, strings.Contains(got, "NaN"), "trial %d: %q", trial, got)
		assert.False(t, strings.Contains(got, "Inf"), "trial %d: %q", trial, got)
		if got != "" {
			assert.True(t, strings.HasPrefix(got, "M "), "trial %d: %q", trial, got)
		}
	}
}
