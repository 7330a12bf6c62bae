package cli

import (
	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/alexanderramin/gradplan/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg returns to the previous view.
type popViewMsg struct{}

// refreshViewMsg asks every view on the stack to reload its data.
type refreshViewMsg struct{}

// flashMsg shows a one-line notice until the next key press.
type flashMsg struct {
	text  string
	isErr bool
}

// planChangedMsg carries a change announced by the planner, including
// follow-ups that fire on their own timer.
type planChangedMsg struct {
	change service.PlanChange
}

// catalogReloadedMsg carries a catalog reloaded from disk.
type catalogReloadedMsg struct {
	catalog domain.Catalog
	err     error
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

func flash(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text, isErr: isErr} }
}

// waitForPlanChange blocks until the planner announces a change. The
// appModel re-arms it after every delivery.
func waitForPlanChange(ch <-chan service.PlanChange) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return planChangedMsg{change: c}
	}
}
