package service

import (
	"context"
	"sync"

	"github.com/alexanderramin/gradplan/internal/domain"
)

// PlanChange describes one applied mutation. Plan is a copy of the whole
// plan after the change.
type PlanChange struct {
	Kind     domain.PlanEventKind
	Semester int
	Course   domain.Course
	Plan     domain.Plan
}

// PlanListener is told about every applied mutation, in order. Listeners
// run while the planner holds its lock: they must not block and must not
// call back into the planner.
type PlanListener interface {
	PlanChanged(ctx context.Context, change PlanChange)
}

// PlanListenerFunc adapts a function to PlanListener.
type PlanListenerFunc func(ctx context.Context, change PlanChange)

func (f PlanListenerFunc) PlanChanged(ctx context.Context, change PlanChange) { f(ctx, change) }

type listenerSet struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]PlanListener
	order  []int
}

func (s *listenerSet) add(l PlanListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.byID == nil {
		s.byID = make(map[int]PlanListener)
	}
	s.nextID++
	id := s.nextID
	s.byID[id] = l
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *listenerSet) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *listenerSet) snapshot() []PlanListener {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PlanListener, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

func (s *listenerSet) notify(ctx context.Context, change PlanChange) {
	for _, l := range s.snapshot() {
		c := change
		c.Plan = change.Plan.Clone()
		l.PlanChanged(ctx, c)
	}
}
