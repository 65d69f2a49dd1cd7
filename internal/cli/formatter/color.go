package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gbtux/teammanager/internal/domain"
	"github.com/muesli/termenv"
)

// Slate palette, matching the default arrow colour of the dependency layer.
var (
	ColorGreen  = lipgloss.Color("#22c55e")
	ColorYellow = lipgloss.Color("#eab308")
	ColorRed    = lipgloss.Color("#ef4444")
	ColorBlue   = lipgloss.Color("#3b82f6")
	ColorPurple = lipgloss.Color("#a855f7")
	ColorDim    = lipgloss.Color("#94a3b8")
	ColorFg     = lipgloss.Color("#e2e8f0")
	ColorHeader = lipgloss.Color("#f97316")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DisableColor makes every style render plain text, for pipes and files.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// FeatureStatusPill returns a coloured status indicator for a feature.
func FeatureStatusPill(status domain.FeatureStatus) string {
	switch status {
	case domain.FeaturePlanned:
		return StyleBlue.Render("○ Planned")
	case domain.FeatureInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.FeatureDone:
		return StyleDim.Render("✔ Done")
	case domain.FeatureBlocked:
		return StyleRed.Render("✖ Blocked")
	default:
		return StyleDim.Render(string(status))
	}
}

// DependencyTypeBadge spells out a dependency type, e.g. "FS finish→start".
func DependencyTypeBadge(t domain.DependencyType) string {
	switch t {
	case domain.DependencyFinishToStart:
		return StylePurple.Render("FS") + " " + Dim("finish→start")
	case domain.DependencyStartToStart:
		return StylePurple.Render("SS") + " " + Dim("start→start")
	case domain.DependencyFinishToFinish:
		return StylePurple.Render("FF") + " " + Dim("finish→finish")
	case domain.DependencyStartToFinish:
		return StylePurple.Render("SF") + " " + Dim("start→finish")
	default:
		return StyleRed.Render(string(t))
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
