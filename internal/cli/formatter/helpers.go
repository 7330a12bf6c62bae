package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + strings.TrimRight(content, "\n")
		return boxStyle.Render(inner) + "\n"
	}
	return boxStyle.Render(strings.TrimRight(content, "\n")) + "\n"
}

// FormatCredits prints credits without trailing zeros: 3, 1.5, 27.5.
func FormatCredits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CourseTags returns the short badges shown next to a course.
func CourseTags(c domain.Course) string {
	var tags []string
	if c.IsNPTEL {
		tags = append(tags, StyleBlue.Render("NPTEL"))
	}
	if !c.CountsTowardLimit && !c.IsNPTEL {
		tags = append(tags, StyleBlue.Render("no-limit"))
	}
	if c.IsProject() {
		tags = append(tags, StylePurple.Render("project"))
	}
	if c.AutoAdded {
		tags = append(tags, StyleYellow.Render("auto"))
	}
	return strings.Join(tags, " ")
}

// CategoryBadge renders a category code in a fixed-width purple label.
func CategoryBadge(c domain.Category) string {
	return StylePurple.Render(fmt.Sprintf("%-4s", c))
}

// Truncate shortens s to n visible runes, adding an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	return HumanTimestampFrom(t, time.Now())
}

func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.Local().Format("Jan 2 15:04")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Local().Format("Jan 2, 2006")
	}
}
