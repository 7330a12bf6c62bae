package formatter

import (
	"fmt"

	"github.com/alexanderramin/gradplan/internal/domain"
)

// EventLabel returns a colored label for a plan event kind.
func EventLabel(kind domain.PlanEventKind) string {
	switch kind {
	case domain.EventCourseAdded:
		return StyleGreen.Render("+ added")
	case domain.EventCourseRemoved:
		return StyleRed.Render("- removed")
	case domain.EventAutoAdded:
		return StyleYellow.Render("+ auto-added")
	default:
		return Dim(string(kind))
	}
}

// FormatHistory renders recent plan events, newest first.
func FormatHistory(events []*domain.PlanEvent) string {
	if len(events) == 0 {
		return RenderBox("Plan History", Dim("No plan changes recorded yet."))
	}
	headers := []string{"WHEN", "CHANGE", "SEM", "CODE", "CR"}
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			Dim(HumanTimestamp(e.CreatedAt)),
			EventLabel(e.Kind),
			fmt.Sprintf("%d", e.Semester),
			Bold(e.CourseCode),
			FormatCredits(e.Credits),
		})
	}
	return RenderBox("Plan History", RenderTableAligned(headers, rows, map[int]bool{2: true, 4: true}))
}
