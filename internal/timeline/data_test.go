package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewData(t *testing.T) {
	d := NewData(date(2026, 10, 19))
	years := d.Years()
	require.Len(t, years, 3)
	assert.Equal(t, 2025, years[0].Year)
	assert.Equal(t, 2027, years[2].Year)
	assert.Equal(t, date(2025, 1, 1), d.Start())
	assert.Equal(t, date(2028, 1, 1), d.End())
	assert.Equal(t, 28, years[1].Quarters[0].Months[1].Days)
	assert.Len(t, years[1].Months(), 12)
}

func TestDataGrowth(t *testing.T) {
	d := NewData(date(2026, 10, 19))
	d.Prepend()
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, 2024, d.Years()[0].Year)
	assert.Equal(t, 29, d.Years()[0].Quarters[0].Months[1].Days, "leap February")

	d.Append()
	assert.Equal(t, 2028, d.Years()[d.Len()-1].Year)

	added := d.EnsureCovers(date(2031, 5, 1))
	assert.Equal(t, 3, added)
	assert.True(t, d.Contains(date(2031, 5, 1)))
	assert.False(t, d.Contains(date(2032, 1, 1)))
	assert.Equal(t, 0, d.EnsureCovers(date(2026, 1, 1)))
}

func TestYearsReturnsCopy(t *testing.T) {
	d := NewData(date(2026, 1, 1))
	years := d.Years()
	years[0].Year = 1900
	assert.Equal(t, 2025, d.Years()[0].Year)
}
