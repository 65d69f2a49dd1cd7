package timeline

import "time"

type Month struct {
	Days int
}

type Quarter struct {
	Months [3]Month
}

type Year struct {
	Year     int
	Quarters [4]Quarter
}

// Months returns the year's twelve months in calendar order.
func (y Year) Months() []Month {
	months := make([]Month, 0, 12)
	for _, q := range y.Quarters {
		months = append(months, q.Months[:]...)
	}
	return months
}

func newYear(year int, loc *time.Location) Year {
	y := Year{Year: year}
	for q := range y.Quarters {
		for i := range y.Quarters[q].Months {
			month := time.Month(q*3 + i + 1)
			y.Quarters[q].Months[i] = Month{Days: DaysInMonth(time.Date(year, month, 1, 0, 0, 0, 0, loc))}
		}
	}
	return y
}

// Data is the ordered run of whole years the timeline currently renders.
// It only ever grows, one year at a time at either end.
type Data struct {
	years []Year
	loc   *time.Location
}

// NewData creates three years centred on today's year.
func NewData(today time.Time) *Data {
	loc := today.Location()
	y := today.Year()
	return &Data{
		years: []Year{newYear(y-1, loc), newYear(y, loc), newYear(y+1, loc)},
		loc:   loc,
	}
}

// Years returns a copy of the rendered years.
func (d *Data) Years() []Year {
	out := make([]Year, len(d.years))
	copy(out, d.years)
	return out
}

func (d *Data) Len() int { return len(d.years) }

// Prepend adds the year before the first rendered year.
func (d *Data) Prepend() {
	d.years = append([]Year{newYear(d.years[0].Year-1, d.loc)}, d.years...)
}

// Append adds the year after the last rendered year.
func (d *Data) Append() {
	d.years = append(d.years, newYear(d.years[len(d.years)-1].Year+1, d.loc))
}

// Start is January 1 of the first rendered year.
func (d *Data) Start() time.Time {
	return time.Date(d.years[0].Year, time.January, 1, 0, 0, 0, 0, d.loc)
}

// End is January 1 of the year after the last rendered year (exclusive).
func (d *Data) End() time.Time {
	return time.Date(d.years[len(d.years)-1].Year+1, time.January, 1, 0, 0, 0, 0, d.loc)
}

// Contains reports whether t falls inside the rendered span.
func (d *Data) Contains(t time.Time) bool {
	return !t.Before(d.Start()) && t.Before(d.End())
}

// EnsureCovers grows the timeline until t is rendered and returns the number
// of years added.
func (d *Data) EnsureCovers(t time.Time) int {
	added := 0
	for t.Before(d.Start()) {
		d.Prepend()
		added++
	}
	for !t.Before(d.End()) {
		d.Append()
		added++
	}
	return added
}
