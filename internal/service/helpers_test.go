package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/alexanderramin/gradplan/internal/store"
	"github.com/alexanderramin/gradplan/internal/testutil"
)

// manualDelay keeps follow-up timers from firing during a test so only
// Settle or the next mutation applies them.
const manualDelay = time.Hour

func newTestPlanner(t *testing.T, delay time.Duration) (PlannerService, *store.MemoryPlanStore) {
	t.Helper()
	st := store.NewMemoryPlanStore()
	p := NewPlannerService(context.Background(), st, PlannerOptions{FollowUpDelay: delay})
	t.Cleanup(func() { _ = p.Close() })
	return p, st
}

func spanCourse() domain.Course {
	return testutil.NewTestCourse(domain.CategoryNGCR,
		testutil.WithCode(DefaultSpanCourse),
		testutil.WithTitle("Extracurricular"),
		testutil.WithCredits(1),
		testutil.NotCountingTowardLimit(),
	)
}

type recordingListener struct {
	mu      sync.Mutex
	changes []PlanChange
}

func (r *recordingListener) PlanChanged(_ context.Context, c PlanChange) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

func (r *recordingListener) kinds() []domain.PlanEventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.PlanEventKind, 0, len(r.changes))
	for _, c := range r.changes {
		out = append(out, c.Kind)
	}
	return out
}

func (r *recordingListener) last() PlanChange {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.changes[len(r.changes)-1]
}

var errSaveFailed = errors.New("disk full")

// flakyStore fails every Save while fail is set.
type flakyStore struct {
	*store.MemoryPlanStore
	mu   sync.Mutex
	fail bool
}

func (s *flakyStore) setFail(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = v
}

func (s *flakyStore) Save(ctx context.Context, p domain.Plan) error {
	s.mu.Lock()
	fail := s.fail
	s.mu.Unlock()
	if fail {
		return errSaveFailed
	}
	return s.MemoryPlanStore.Save(ctx, p)
}

func codes(courses []domain.Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Code)
	}
	return out
}
