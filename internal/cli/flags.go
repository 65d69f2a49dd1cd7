package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/gbtux/teammanager/internal/domain"
	"github.com/spf13/pflag"
)

// rangeValue is a pflag.Value accepting the timeline ranges by name.
type rangeValue struct {
	r *domain.Range
}

var _ pflag.Value = rangeValue{}

func newRangeValue(def domain.Range, p *domain.Range) rangeValue {
	*p = def
	return rangeValue{r: p}
}

func (v rangeValue) String() string {
	if v.r == nil {
		return ""
	}
	return string(*v.r)
}

func (v rangeValue) Set(s string) error {
	r, err := domain.ParseRange(strings.ToLower(s))
	if err != nil {
		return err
	}
	*v.r = r
	return nil
}

func (v rangeValue) Type() string { return "range" }

// dateValue is a pflag.Value for YYYY-MM-DD dates. An unset flag leaves the
// zero time.
type dateValue struct {
	t *time.Time
}

var _ pflag.Value = dateValue{}

func (v dateValue) String() string {
	if v.t == nil || v.t.IsZero() {
		return ""
	}
	return v.t.Format(domain.DateLayout)
}

func (v dateValue) Set(s string) error {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	*v.t = t
	return nil
}

func (v dateValue) Type() string { return "date" }

// addTimelineFlags registers --range and --zoom seeded from the app defaults.
func addTimelineFlags(fs *pflag.FlagSet, app *App, r *domain.Range, zoom *int) {
	def := app.Timeline.Range
	if def == "" {
		def = domain.RangeMonthly
	}
	fs.Var(newRangeValue(def, r), "range", "Timeline range (daily, weekly, monthly, quarterly, yearly)")
	z := app.Timeline.Zoom
	if z <= 0 {
		z = 100
	}
	fs.IntVar(zoom, "zoom", z, "Zoom in percent")
}
