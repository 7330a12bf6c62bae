package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/alexanderramin/gradplan/internal/store"
	"github.com/google/uuid"
)

// PlannerOptions tunes the follow-up behaviour of the planner.
type PlannerOptions struct {
	SpanCourse    string
	FollowUpDelay time.Duration
}

func (o PlannerOptions) withDefaults() PlannerOptions {
	if o.SpanCourse == "" {
		o.SpanCourse = DefaultSpanCourse
	}
	if o.FollowUpDelay <= 0 {
		o.FollowUpDelay = DefaultFollowUpDelay
	}
	return o
}

type plannerService struct {
	mu        sync.Mutex
	plan      domain.Plan
	store     store.PlanStore
	opts      PlannerOptions
	queue     followUpQueue
	listeners listenerSet
	observer  UseCaseObserver
	closed    bool
	newID     func() string
}

// NewPlannerService loads the persisted plan from st and returns a planner
// over it.
func NewPlannerService(ctx context.Context, st store.PlanStore, opts PlannerOptions, observers ...UseCaseObserver) PlannerService {
	plan := st.Load(ctx)
	plan.Normalize()
	return &plannerService{
		plan:     plan,
		store:    st,
		opts:     opts.withDefaults(),
		observer: useCaseObserverOrNoop(observers),
		newID:    func() string { return uuid.New().String() },
	}
}

func (s *plannerService) Plan(context.Context) domain.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.Clone()
}

func (s *plannerService) Subscribe(l PlanListener) func() {
	return s.listeners.add(l)
}

func (s *plannerService) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.len()
}

func (s *plannerService) AddCourse(ctx context.Context, semester int, course domain.Course) (entry domain.Course, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"semester": semester, "code": course.Code}
	defer func() { observe(ctx, s.observer, "add-course", startedAt, fields, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.Course{}, ErrPlannerClosed
	}
	if !domain.IsPlanSemester(semester) {
		return domain.Course{}, fmt.Errorf("adding %s to semester %d: %w", course.Code, semester, domain.ErrUnknownSemester)
	}
	if err := s.drainLocked(ctx, ""); err != nil {
		return domain.Course{}, err
	}

	entry = course
	entry.ID = s.newID()
	if err := s.commitLocked(ctx, func(p *domain.Plan) error {
		return p.Append(semester, entry)
	}); err != nil {
		return domain.Course{}, fmt.Errorf("adding %s to semester %d: %w", course.Code, semester, err)
	}
	s.listeners.notify(ctx, PlanChange{
		Kind:     domain.EventCourseAdded,
		Semester: semester,
		Course:   entry,
		Plan:     s.plan,
	})
	fields["entry_id"] = entry.ID

	if next, ok := s.followUpTarget(semester, entry); ok {
		s.scheduleLocked(ctx, semester, next, entry)
		fields["follow_up_semester"] = next
	}
	return entry, nil
}

func (s *plannerService) RemoveCourse(ctx context.Context, semester, index int) (removed domain.Course, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"semester": semester, "index": index}
	defer func() { observe(ctx, s.observer, "remove-course", startedAt, fields, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.Course{}, ErrPlannerClosed
	}
	if !domain.IsPlanSemester(semester) {
		return domain.Course{}, fmt.Errorf("removing from semester %d: %w", semester, domain.ErrUnknownSemester)
	}
	courses := s.plan.Courses(semester)
	if index < 0 || index >= len(courses) {
		return domain.Course{}, fmt.Errorf("removing semester %d index %d (have %d): %w",
			semester, index, len(courses), domain.ErrIndexOutOfRange)
	}

	// Follow-ups of the entry being removed stay queued until the removal
	// is committed, then they are cancelled.
	originID := courses[index].ID
	if err := s.drainLocked(ctx, originID); err != nil {
		return domain.Course{}, err
	}

	if err := s.commitLocked(ctx, func(p *domain.Plan) error {
		var rmErr error
		removed, rmErr = p.RemoveAt(semester, index)
		return rmErr
	}); err != nil {
		return domain.Course{}, fmt.Errorf("removing semester %d index %d: %w", semester, index, err)
	}
	if n := s.queue.cancelOrigin(originID); n > 0 {
		fields["cancelled_follow_ups"] = n
	}
	fields["code"] = removed.Code
	s.listeners.notify(ctx, PlanChange{
		Kind:     domain.EventCourseRemoved,
		Semester: semester,
		Course:   removed,
		Plan:     s.plan,
	})
	return removed, nil
}

func (s *plannerService) Settle(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drainLocked(ctx, "")
}

// Close stops every pending timer and discards unapplied follow-ups.
// Call Settle first to keep them.
func (s *plannerService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.queue.popAll()
	return nil
}

func (s *plannerService) followUpTarget(semester int, c domain.Course) (int, bool) {
	if c.Code != s.opts.SpanCourse {
		return 0, false
	}
	return domain.NextSemester(semester)
}

func (s *plannerService) scheduleLocked(ctx context.Context, origin, target int, entry domain.Course) {
	f := &followUp{
		originID:       entry.ID,
		originSemester: origin,
		target:         target,
		course:         entry,
	}
	bg := context.WithoutCancel(ctx)
	f.timer = time.AfterFunc(s.opts.FollowUpDelay, func() { s.fire(bg, f) })
	s.queue.push(f)
}

// fire runs on the timer goroutine. A follow-up that fails to apply goes
// back to the head of the queue for the next drain.
func (s *plannerService) fire(ctx context.Context, f *followUp) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.queue.take(f) {
		return
	}
	if err := s.applyLocked(ctx, f); err != nil {
		s.queue.insert(0, f)
	}
}

// drainLocked applies queued follow-ups one at a time in enqueue order so
// they land before the mutation that triggered the drain. Follow-ups of
// skipOrigin are left queued. The first failure stops the drain and the
// failed follow-up keeps its place.
func (s *plannerService) drainLocked(ctx context.Context, skipOrigin string) error {
	for {
		f, pos := s.queue.next(skipOrigin)
		if f == nil {
			return nil
		}
		if err := s.applyLocked(ctx, f); err != nil {
			s.queue.insert(pos, f)
			return err
		}
	}
}

func (s *plannerService) applyLocked(ctx context.Context, f *followUp) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"semester": f.target, "code": f.course.Code, "origin_entry_id": f.originID}
	defer func() { observe(ctx, s.observer, "auto-add-course", startedAt, fields, err) }()

	if s.plan.IndexOfEntry(f.originSemester, f.originID) < 0 {
		fields["skipped"] = "origin removed"
		return nil
	}

	entry := f.autoCopy(s.newID())
	if err := s.commitLocked(ctx, func(p *domain.Plan) error {
		return p.Append(f.target, entry)
	}); err != nil {
		return fmt.Errorf("auto-adding %s to semester %d: %w", f.course.Code, f.target, err)
	}
	s.listeners.notify(ctx, PlanChange{
		Kind:     domain.EventAutoAdded,
		Semester: f.target,
		Course:   entry,
		Plan:     s.plan,
	})
	return nil
}

// commitLocked applies mutate to a copy of the plan and persists it. The
// in-memory plan only changes once the save succeeds.
func (s *plannerService) commitLocked(ctx context.Context, mutate func(*domain.Plan) error) error {
	next := s.plan.Clone()
	if err := mutate(&next); err != nil {
		return err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("persisting plan: %w", err)
	}
	s.plan = next
	return nil
}
