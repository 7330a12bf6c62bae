package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/gradplan/internal/app"
	"github.com/alexanderramin/gradplan/internal/cli/formatter"
	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const planProgressBarWidth = 30

// planLoadedMsg carries a fresh status snapshot for the plan view.
type planLoadedMsg struct {
	resp *app.StatusResponse
	err  error
}

// planView lists the planned semesters. The cursor selects a semester and,
// within it, an entry.
type planView struct {
	state   *SharedState
	resp    *app.StatusResponse
	semIdx  int
	entry   int
	loading bool
	err     error
}

func newPlanView(state *SharedState) *planView {
	return &planView{state: state, loading: true}
}

func (v *planView) ID() ViewID    { return ViewPlan }
func (v *planView) Title() string { return "Plan" }

func (v *planView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "course")),
		key.NewBinding(key.WithKeys("tab", "left", "right"), key.WithHelp("←→", "semester")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *planView) Init() tea.Cmd {
	return v.load()
}

func (v *planView) load() tea.Cmd {
	status := v.state.App.Status
	return func() tea.Msg {
		resp, err := status.GetStatus(context.Background(), app.NewStatusRequest())
		return planLoadedMsg{resp: resp, err: err}
	}
}

// semester returns the semester number under the cursor.
func (v *planView) semester() int {
	return domain.PlanSemesters[v.semIdx]
}

func (v *planView) courses() []domain.Course {
	if v.resp == nil {
		return nil
	}
	for _, sv := range v.resp.Semesters {
		if sv.Semester == v.semester() {
			return sv.Courses
		}
	}
	return nil
}

func (v *planView) clampCursor() {
	n := len(v.courses())
	if v.entry >= n {
		v.entry = n - 1
	}
	if v.entry < 0 {
		v.entry = 0
	}
}

func (v *planView) moveSemester(delta int) {
	n := len(domain.PlanSemesters)
	v.semIdx = (v.semIdx + delta + n) % n
	v.entry = 0
}

func (v *planView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.resp = msg.resp
			v.clampCursor()
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *planView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.entry > 0 {
			v.entry--
		}
	case "down", "j":
		if v.entry < len(v.courses())-1 {
			v.entry++
		}
	case "right", "l", "tab":
		v.moveSemester(1)
	case "left", "h", "shift+tab":
		v.moveSemester(-1)
	case "a":
		return v, pushView(newPickerView(v.state, v.semester()))
	case "d", "x":
		return v, v.removeSelected()
	case "r":
		return v, v.load()
	}
	return v, nil
}

func (v *planView) removeSelected() tea.Cmd {
	courses := v.courses()
	if v.entry >= len(courses) {
		return nil
	}
	planner := v.state.App.Planner
	semester, index := v.semester(), v.entry
	return func() tea.Msg {
		removed, err := planner.RemoveCourse(context.Background(), semester, index)
		if err != nil {
			return flashMsg{text: err.Error(), isErr: true}
		}
		return tea.BatchMsg{
			flash(fmt.Sprintf("Removed %s from semester %d", removed.Code, semester), false),
			refreshViews(),
		}
	}
}

func (v *planView) View() string {
	if v.loading {
		return formatter.Dim("  Loading plan...")
	}
	if v.err != nil {
		return formatter.StyleRed.Render("  Error: " + v.err.Error())
	}

	var b strings.Builder
	p := v.resp.Progress
	fmt.Fprintf(&b, "  %s %s / %s credits  %s\n",
		formatter.Bold("Total"),
		formatter.FormatCredits(p.TotalEarned),
		formatter.FormatCredits(p.TotalRequired),
		formatter.RenderProgress(p.BarPercent()/100, planProgressBarWidth))
	fmt.Fprintf(&b, "  %s %s\n", formatter.Bold("Electives"), formatter.ElectiveIndicator(p))
	if !v.resp.CatalogLoaded {
		b.WriteString("  " + formatter.StyleYellow.Render("Loading course catalog...") + "\n")
	}

	for i, sv := range v.resp.Semesters {
		b.WriteString("\n")
		selected := i == v.semIdx
		marker := "  "
		if selected {
			marker = formatter.StyleHeader.Render("▸ ")
		}
		b.WriteString(marker + formatter.SemesterSummary(sv) + "\n")

		if len(sv.Courses) == 0 {
			b.WriteString(formatter.Dim("      No courses planned") + "\n")
		}
		for j, c := range sv.Courses {
			cursor := "    "
			if selected && j == v.entry {
				cursor = formatter.StyleHeader.Render("  › ")
			}
			line := fmt.Sprintf("%2d. %-9s %s %4s cr  %s",
				j+1, c.Code, formatter.CategoryBadge(c.Category), formatter.FormatCredits(c.Credits),
				formatter.Truncate(c.Title, 40))
			if tags := formatter.CourseTags(c); tags != "" {
				line += "  " + tags
			}
			b.WriteString(cursor + line + "\n")
		}
		for _, w := range sv.Validation.Warnings {
			b.WriteString(formatter.StyleRed.Render("    ⚠ "+w) + "\n")
		}
	}

	return b.String()
}
