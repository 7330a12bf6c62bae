package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/gradplan/internal/app"
	"github.com/alexanderramin/gradplan/internal/cli/formatter"
	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pickerMinRows is the result list height when the terminal size is unknown.
const pickerMinRows = 10

// pickerTabs are the category filters cycled with tab, ALL first.
var pickerTabs = append([]domain.Category{domain.CategoryAll}, domain.Categories...)

// courseAddedMsg reports the outcome of adding the picked course.
type courseAddedMsg struct {
	course domain.Course
	err    error
}

// pickerView searches the catalog for courses to add to one semester.
// Courses already planned there are filtered out.
type pickerView struct {
	state    *SharedState
	semester int
	input    textinput.Model
	tab      int
	results  []domain.Course
	cursor   int
	offset   int
	loaded   bool
	err      error
}

func newPickerView(state *SharedState, semester int) *pickerView {
	ti := textinput.New()
	ti.Placeholder = "search code or title"
	ti.Prompt = "/ "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	ti.CharLimit = 64
	ti.Focus()

	return &pickerView{state: state, semester: semester, input: ti}
}

func (v *pickerView) ID() ViewID { return ViewPicker }
func (v *pickerView) Title() string {
	return fmt.Sprintf("Add to semester %d", v.semester)
}

func (v *pickerView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "category")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (v *pickerView) Init() tea.Cmd {
	v.refilter()
	return textinput.Blink
}

func (v *pickerView) category() domain.Category {
	return pickerTabs[v.tab]
}

// refilter reruns the catalog filter for the current tab and query.
func (v *pickerView) refilter() {
	resp, err := v.state.App.Catalog.Search(context.Background(), app.CatalogSearchRequest{
		Category: v.category(),
		Query:    v.input.Value(),
		Semester: v.semester,
	})
	v.err = err
	if err != nil {
		v.results = nil
		return
	}
	v.loaded = resp.CatalogLoaded
	v.results = resp.Courses
	if v.cursor >= len(v.results) {
		v.cursor = max(len(v.results)-1, 0)
	}
	v.scrollToCursor()
}

func (v *pickerView) visibleRows() int {
	// Tabs, input, a blank line and the count line sit above and below the list.
	rows := v.state.ContentHeight() - 5
	if rows < pickerMinRows {
		return pickerMinRows
	}
	return rows
}

func (v *pickerView) scrollToCursor() {
	rows := v.visibleRows()
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+rows {
		v.offset = v.cursor - rows + 1
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

func (v *pickerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.refilter()
		return v, nil

	case courseAddedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		return v, tea.Batch(
			popView(),
			flash(fmt.Sprintf("Added %s to semester %d", msg.course.Code, v.semester), false),
			refreshViews(),
		)

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *pickerView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return v, popView()
	case tea.KeyTab:
		v.tab = (v.tab + 1) % len(pickerTabs)
		v.cursor, v.offset = 0, 0
		v.refilter()
		return v, nil
	case tea.KeyShiftTab:
		v.tab = (v.tab - 1 + len(pickerTabs)) % len(pickerTabs)
		v.cursor, v.offset = 0, 0
		v.refilter()
		return v, nil
	case tea.KeyUp:
		if v.cursor > 0 {
			v.cursor--
			v.scrollToCursor()
		}
		return v, nil
	case tea.KeyDown:
		if v.cursor < len(v.results)-1 {
			v.cursor++
			v.scrollToCursor()
		}
		return v, nil
	case tea.KeyEnter:
		return v, v.addSelected()
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() != before {
		v.cursor, v.offset = 0, 0
		v.refilter()
	}
	return v, cmd
}

func (v *pickerView) addSelected() tea.Cmd {
	if v.cursor >= len(v.results) {
		return nil
	}
	course := v.results[v.cursor]
	planner := v.state.App.Planner
	semester := v.semester
	return func() tea.Msg {
		entry, err := planner.AddCourse(context.Background(), semester, course)
		return courseAddedMsg{course: entry, err: err}
	}
}

func (v *pickerView) renderTabs() string {
	active := lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	tabs := make([]string, 0, len(pickerTabs))
	for i, c := range pickerTabs {
		if i == v.tab {
			tabs = append(tabs, active.Render(string(c)))
		} else {
			tabs = append(tabs, inactive.Render(string(c)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (v *pickerView) View() string {
	var b strings.Builder
	b.WriteString("  " + v.renderTabs() + "\n")
	b.WriteString("  " + v.input.View() + "\n\n")

	switch {
	case v.err != nil:
		b.WriteString(formatter.StyleRed.Render("  Error: "+v.err.Error()) + "\n")
		return b.String()
	case !v.loaded:
		b.WriteString(formatter.Dim("  Loading course catalog...") + "\n")
		return b.String()
	case len(v.results) == 0:
		b.WriteString(formatter.Dim("  No courses match.") + "\n")
		return b.String()
	}

	end := min(v.offset+v.visibleRows(), len(v.results))
	for i := v.offset; i < end; i++ {
		c := v.results[i]
		line := fmt.Sprintf("%-9s %s %4s cr  %s",
			c.Code, formatter.CategoryBadge(c.Category), formatter.FormatCredits(c.Credits),
			formatter.Truncate(c.Title, 48))
		if tags := formatter.CourseTags(c); tags != "" {
			line += "  " + tags
		}
		if i == v.cursor {
			b.WriteString(formatter.StyleHeader.Render("  › ") + line + "\n")
		} else {
			b.WriteString("    " + line + "\n")
		}
	}
	b.WriteString(formatter.Dim(fmt.Sprintf("  %d of %d course(s)", v.cursor+1, len(v.results))) + "\n")
	return b.String()
}
