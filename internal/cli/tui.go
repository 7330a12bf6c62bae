package cli

import (
	"context"
	"errors"

	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/alexanderramin/gradplan/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// planChangeBuffer bounds how many planner announcements may queue up
// while the TUI is busy.
const planChangeBuffer = 16

// subscribePlanChanges forwards planner announcements into a buffered
// channel. The send never blocks because listeners run under the planner's
// lock; a full buffer drops the change.
func subscribePlanChanges(p service.PlannerService) (<-chan service.PlanChange, func()) {
	ch := make(chan service.PlanChange, planChangeBuffer)
	unsubscribe := p.Subscribe(service.PlanListenerFunc(func(_ context.Context, c service.PlanChange) {
		select {
		case ch <- c:
		default:
		}
	}))
	return ch, unsubscribe
}

// runTUI runs the interactive planner until the user quits.
func runTUI(ctx context.Context, a *App) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	changes, unsubscribe := subscribePlanChanges(a.Planner)
	defer unsubscribe()

	p := tea.NewProgram(newAppModel(a, changes), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	if a.WatchCatalog != nil {
		go func() {
			err := a.WatchCatalog(ctx, func(c domain.Catalog, err error) {
				p.Send(catalogReloadedMsg{catalog: c, err: err})
			})
			if err != nil && ctx.Err() == nil {
				a.logger().WarnContext(ctx, "catalog watcher stopped", "error", err)
			}
		}()
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
