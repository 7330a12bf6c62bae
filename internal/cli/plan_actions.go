package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/alexanderramin/gradplan/internal/app"
	"github.com/alexanderramin/gradplan/internal/cli/formatter"
	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/alexanderramin/gradplan/internal/service"
)

var (
	errCatalogLoading = errors.New("course catalog is still loading: create the catalog file and retry")
	errAlreadyPlanned = errors.New("course is already planned in this semester")
)

func validateSemester(semester int) error {
	if !domain.IsPlanSemester(semester) {
		return fmt.Errorf("semester %d (expected one of %v): %w", semester, domain.PlanSemesters, domain.ErrUnknownSemester)
	}
	return nil
}

// resolvePlannable finds code in the catalog and checks it against the
// catalog filter for the semester, which is what keeps a code from being
// planned twice in one semester.
func resolvePlannable(ctx context.Context, a *App, semester int, code string) (domain.Course, error) {
	code = strings.TrimSpace(code)
	course, err := a.Catalog.Lookup(ctx, code)
	if err != nil {
		if errors.Is(err, service.ErrCatalogNotLoaded) {
			return domain.Course{}, errCatalogLoading
		}
		return domain.Course{}, err
	}

	resp, err := a.Catalog.Search(ctx, app.CatalogSearchRequest{
		Category: course.Category,
		Query:    course.Code,
		Semester: semester,
	})
	if err != nil {
		return domain.Course{}, err
	}
	for _, c := range resp.Courses {
		if c.Code == course.Code {
			return c, nil
		}
	}
	return domain.Course{}, fmt.Errorf("%s in semester %d: %w", course.Code, semester, errAlreadyPlanned)
}

// parseEntryNumber converts a 1-based entry number from the command line
// into the 0-based index the planner uses.
func parseEntryNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid entry number %q: use the # column from `gradplan plan show`", s)
	}
	return n - 1, nil
}

// describeChange renders one applied plan change as a single line.
func describeChange(c service.PlanChange) string {
	code := formatter.Bold(c.Course.Code)
	credits := formatter.Dim(fmt.Sprintf("(%s cr)", formatter.FormatCredits(c.Course.Credits)))
	switch c.Kind {
	case domain.EventCourseAdded:
		return fmt.Sprintf("%s %s %s to semester %d", formatter.EventLabel(c.Kind), code, credits, c.Semester)
	case domain.EventAutoAdded:
		return fmt.Sprintf("%s %s to semester %d %s", formatter.EventLabel(c.Kind), code, c.Semester, formatter.Dim(c.Course.Note))
	case domain.EventCourseRemoved:
		return fmt.Sprintf("%s %s %s from semester %d", formatter.EventLabel(c.Kind), code, credits, c.Semester)
	default:
		return fmt.Sprintf("%s %s", formatter.EventLabel(c.Kind), code)
	}
}

// changeRecorder collects plan changes while a command runs, including
// follow-ups applied by Settle.
type changeRecorder struct {
	mu      sync.Mutex
	changes []service.PlanChange
}

func (r *changeRecorder) PlanChanged(_ context.Context, c service.PlanChange) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

func (r *changeRecorder) lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.changes))
	for _, c := range r.changes {
		out = append(out, describeChange(c))
	}
	return out
}

// recordChanges subscribes a recorder for the duration of fn and settles
// follow-ups before unsubscribing.
func recordChanges(ctx context.Context, p service.PlannerService, fn func() error) ([]string, error) {
	rec := &changeRecorder{}
	unsubscribe := p.Subscribe(rec)
	defer unsubscribe()

	if err := fn(); err != nil {
		return nil, err
	}
	if err := p.Settle(ctx); err != nil {
		return rec.lines(), fmt.Errorf("applying follow-ups: %w", err)
	}
	return rec.lines(), nil
}
