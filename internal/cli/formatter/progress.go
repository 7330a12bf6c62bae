package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45%.
// pct is a fraction; values outside 0..1 are clamped for the bar only, so
// the printed percentage can exceed 100 when a category is over-filled.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	shown := pct
	if shown < 0 {
		shown = 0
	}
	barPct := shown
	if barPct > 1 {
		barPct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(barPct * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	var style = StyleGreen
	if barPct < 0.33 {
		style = StyleRed
	} else if barPct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), shown*100)
}
