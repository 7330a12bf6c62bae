package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradplan/internal/credits"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
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

// CompletionIndicator returns a check mark for a satisfied requirement and
// a hollow dot otherwise.
func CompletionIndicator(complete bool) string {
	if complete {
		return StyleGreen.Render("✔ Done")
	}
	return StyleYellow.Render("○ Open")
}

// ElectiveIndicator renders the DE+OE total against its exact target.
func ElectiveIndicator(p credits.Progress) string {
	text := fmt.Sprintf("%s / %s", FormatCredits(p.ElectiveTotal), FormatCredits(p.ElectiveTarget))
	switch p.ElectiveStatus {
	case credits.ElectiveExact:
		return StyleGreen.Render("● " + text + " exact")
	case credits.ElectiveOver:
		return StyleRed.Render("▲ " + text + " over target")
	default:
		return StyleYellow.Render("○ " + text)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
