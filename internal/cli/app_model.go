package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradplan/internal/cli/formatter"
	"github.com/alexanderramin/gradplan/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI.
// It manages the view stack and scrolls the active view's output.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Scrollable viewport for views taller than the terminal.
	contentVP viewport.Model

	planChanges <-chan service.PlanChange
}

// newAppModel builds the root model. planChanges may be nil, in which case
// the TUI only sees changes it makes itself.
func newAppModel(app *App, planChanges <-chan service.PlanChange) appModel {
	state := &SharedState{App: app}

	vp := viewport.New(0, 0)
	vp.KeyMap = contentViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	m := appModel{
		state:       state,
		contentVP:   vp,
		planChanges: planChanges,
	}
	m.viewStack = []View{newPlanView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	if cmd := waitForPlanChange(m.planChanges); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	am := next.(appModel)
	am.syncViewport()
	return am, cmd
}

func (m appModel) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.contentVP, cmd = m.contentVP.Update(msg)
		return m, cmd

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		m.contentVP.GotoTop()
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case refreshViewMsg:
		// Every view reloads, so a view below the picker is current when
		// the picker closes.
		return m, m.broadcast(msg)

	case flashMsg:
		m.state.SetFlash(msg.text, msg.isErr)
		return m, nil

	case planChangedMsg:
		if msg.change.Kind != "" {
			m.state.SetFlash(describeChange(msg.change), false)
		}
		return m, tea.Batch(m.broadcast(refreshViewMsg{}), waitForPlanChange(m.planChanges))

	case catalogReloadedMsg:
		if msg.err != nil {
			m.state.SetFlash("catalog reload failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.state.App.Catalog.SetCatalog(msg.catalog)
		m.state.SetFlash(fmt.Sprintf("Catalog reloaded (%d courses)", msg.catalog.Size()), false)
		return m, m.broadcast(refreshViewMsg{})
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

// broadcast sends msg to every view on the stack.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	m.state.ClearFlash()

	if isContentScrollKey(msg) {
		var cmd tea.Cmd
		m.contentVP, cmd = m.contentVP.Update(msg)
		return m, cmd
	}

	// Views with a text input get every key.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

// syncViewport copies the active view's output into the content viewport.
// The scroll offset survives because SetContent only clamps it.
func (m *appModel) syncViewport() {
	v := m.activeView()
	if v == nil || m.state.Height == 0 {
		return
	}
	m.contentVP.Width = m.state.Width
	m.contentVP.Height = m.state.ContentHeight()
	m.contentVP.SetContent(v.View())
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if v := m.activeView(); v != nil {
		if m.state.Height > 0 {
			sections = append(sections, m.contentVP.View())
		} else {
			sections = append(sections, v.View())
		}
	}

	sections = append(sections, m.renderStatusBar())
	return strings.Join(sections, "\n")
}

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("gradplan")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	flashLine := ""
	if m.state.Flash != "" {
		if m.state.FlashErr {
			flashLine = formatter.StyleRed.Render(m.state.Flash)
		} else {
			flashLine = formatter.StyleGreen.Render(m.state.Flash)
		}
	}

	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if m.state.Height > 0 && m.contentVP.TotalLineCount() > m.contentVP.Height {
		hints = append(hints, formatter.Dim("pgup/pgdn: scroll"))
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return flashLine + "\n" + sep + "\n" + strings.Join(hints, "  ")
}

// contentViewportKeyMap leaves arrows and letters to the views; only page
// keys scroll.
func contentViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
	}
}

func isContentScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyPgUp, tea.KeyPgDown, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}
