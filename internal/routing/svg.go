package routing

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/gbtux/teammanager/internal/domain"
)

// Bar is a feature rectangle drawn underneath the arrows.
type Bar struct {
	Position domain.FeaturePosition
	Label    string
}

// SVGOptions controls RenderSVG. Zero Width or Height is derived from the
// bars.
type SVGOptions struct {
	Width        float64
	Height       float64
	StrokeWidth  float64
	ArrowSize    float64
	DefaultColor string
	MarkerID     string
	Bars         []Bar
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		StrokeWidth:  2,
		ArrowSize:    6,
		DefaultColor: DefaultColor,
		MarkerID:     "dependency-arrow",
	}
}

// RenderSVG writes a standalone SVG document holding the bars and one
// arrow per path.
func RenderSVG(w io.Writer, paths []DependencyPath, opts SVGOptions) error {
	width, height := opts.Width, opts.Height
	for _, bar := range opts.Bars {
		width = math.Max(width, bar.Position.Right()+padding)
		height = math.Max(height, bar.Position.Bottom()+padding)
	}

	var svg strings.Builder
	fmt.Fprintf(&svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">
`, formatNumber(width), formatNumber(height), formatNumber(width), formatNumber(height))

	a := opts.ArrowSize
	fmt.Fprintf(&svg, `<defs><marker id="%s" markerWidth="%s" markerHeight="%s" markerUnits="strokeWidth" orient="auto" refX="%s" refY="%s">`,
		escapeXML(opts.MarkerID), formatNumber(a), formatNumber(a), formatNumber(a-1), formatNumber(a/2))
	fmt.Fprintf(&svg, `<path d="M0,0 L0,%s L%s,%s z" fill="%s"/></marker></defs>
`, formatNumber(a), formatNumber(a), formatNumber(a/2), escapeXML(opts.DefaultColor))

	for _, bar := range opts.Bars {
		p := bar.Position
		fmt.Fprintf(&svg, `<rect id="%s" x="%s" y="%s" width="%s" height="%s" rx="4" fill="#e2e8f0" stroke="#64748b"/>
`, escapeXML(p.ID), formatNumber(p.Left), formatNumber(p.Top), formatNumber(p.Width), formatNumber(p.Height))
		if bar.Label != "" {
			fmt.Fprintf(&svg, `<text x="%s" y="%s" font-family="sans-serif" font-size="12" dominant-baseline="middle">%s</text>
`, formatNumber(p.Left+4), formatNumber(p.CenterY()), escapeXML(bar.Label))
		}
	}

	for _, dp := range paths {
		fmt.Fprintf(&svg, `<path id="%s" d="%s" fill="none" stroke="%s" stroke-width="%s" marker-end="url(#%s)"/>
`, escapeXML(dp.DependencyID), dp.Path, escapeXML(dp.Color), formatNumber(opts.StrokeWidth), escapeXML(opts.MarkerID))
	}
	svg.WriteString("</svg>\n")

	if _, err := io.WriteString(w, svg.String()); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
