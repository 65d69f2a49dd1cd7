package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFeatureValidate(t *testing.T) {
	f := &Feature{Name: "Design", StartAt: day(2026, 1, 1), EndAt: day(2026, 1, 5)}
	assert.NoError(t, f.Validate())

	f.EndAt = f.StartAt
	assert.NoError(t, f.Validate(), "zero-length features are milestones")

	f.EndAt = day(2025, 12, 31)
	err := f.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before it starts")

	assert.Error(t, (&Feature{StartAt: day(2026, 1, 1), EndAt: day(2026, 1, 2)}).Validate())
}

func TestFeatureWindowOnMapValue(t *testing.T) {
	byID := map[string]Feature{
		"a": {ID: "a", StartAt: day(2026, 1, 1), EndAt: day(2026, 1, 5)},
	}
	assert.Equal(t, Window{StartAt: day(2026, 1, 1), EndAt: day(2026, 1, 5)}, byID["a"].Window())
}

func TestWindowEqual(t *testing.T) {
	a := Window{StartAt: day(2026, 1, 1), EndAt: day(2026, 1, 5)}
	b := Window{StartAt: day(2026, 1, 1).In(time.FixedZone("X", 3600)), EndAt: day(2026, 1, 5)}
	assert.True(t, a.Equal(b), "same instants in different zones are equal")
	b.EndAt = day(2026, 1, 6)
	assert.False(t, a.Equal(b))
}

func TestParseDependencyType(t *testing.T) {
	for _, s := range []string{"FS", "SS", "FF", "SF"} {
		dt, err := ParseDependencyType(s)
		require.NoError(t, err)
		assert.Equal(t, DependencyType(s), dt)
	}
	_, err := ParseDependencyType("XX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "XX")
}

func TestDependencyValidate(t *testing.T) {
	d := &Dependency{SourceID: "a", TargetID: "b", Type: DependencyFinishToStart}
	assert.NoError(t, d.Validate())

	d.TargetID = "a"
	assert.Error(t, d.Validate(), "self-loop")

	d.TargetID = "b"
	d.Type = "ZZ"
	assert.Error(t, d.Validate())
}

func TestParseRange(t *testing.T) {
	for _, r := range Ranges {
		got, err := ParseRange(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	_, err := ParseRange("hourly")
	assert.Error(t, err)
}

func TestDefaultColumnWidth(t *testing.T) {
	assert.Equal(t, 50.0, RangeDaily.DefaultColumnWidth())
	assert.Equal(t, 80.0, RangeWeekly.DefaultColumnWidth())
	assert.Equal(t, 150.0, RangeMonthly.DefaultColumnWidth())
	assert.Equal(t, 100.0, RangeQuarterly.DefaultColumnWidth())
	assert.Equal(t, 200.0, RangeYearly.DefaultColumnWidth())
}

func TestObstacleFrom(t *testing.T) {
	p := FeaturePosition{ID: "a", Left: 10, Top: 20, Width: 100, Height: 30}
	o := ObstacleFrom(p, 4)
	assert.Equal(t, Obstacle{ID: "a", Left: 6, Top: 16, Right: 114, Bottom: 54}, o)
	assert.Equal(t, 35.0, p.CenterY())
}
