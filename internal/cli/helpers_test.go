package cli

import (
	"bytes"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/alexanderramin/gradplan/internal/repository"
	"github.com/alexanderramin/gradplan/internal/service"
	"github.com/alexanderramin/gradplan/internal/store"
	"github.com/alexanderramin/gradplan/internal/testutil"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

func plain(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testCatalog has one or two courses per category plus the span course.
func testCatalog() domain.Catalog {
	return testutil.NewTestCatalog(
		testutil.NewTestCourse(domain.CategoryFC, testutil.WithCode("MA101"), testutil.WithTitle("Calculus")),
		testutil.NewTestCourse(domain.CategoryDC, testutil.WithCode("CS601"), testutil.WithTitle("Compilers"), testutil.WithCredits(4)),
		testutil.NewTestCourse(domain.CategoryDC, testutil.WithCode("CS602"), testutil.WithTitle("Embedded Systems")),
		testutil.NewTestCourse(domain.CategoryDE, testutil.WithCode("NP601"), testutil.WithTitle("Deep Learning"), testutil.AsNPTEL()),
		testutil.NewTestCourse(domain.CategoryOE, testutil.WithCode("HS601"), testutil.WithTitle("Economics")),
		testutil.NewTestCourse(domain.CategoryPI, testutil.WithCode("PI601"), testutil.WithTitle("Capstone"),
			testutil.WithCredits(6), testutil.WithType(domain.ProjectCourseType)),
		testutil.NewTestCourse(domain.CategoryNGCR, testutil.WithCode(service.DefaultSpanCourse),
			testutil.WithTitle("Extracurricular"), testutil.WithCredits(1), testutil.NotCountingTowardLimit()),
	)
}

// testApp wires a full App over an in-memory database. Follow-up timers
// never fire on their own; commands settle them.
func testApp(t *testing.T, catalog domain.Catalog) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	planStore := store.NewKVPlanStore(repository.NewSQLiteKVRepo(database), nil)
	planner := service.NewPlannerService(context.Background(), planStore, service.PlannerOptions{FollowUpDelay: time.Hour})
	t.Cleanup(func() { _ = planner.Close() })
	planner.Subscribe(service.NewEventLogListener(testutil.NewTestUoW(database), 0, nil))

	catalogSvc := service.NewCatalogService(catalog, planner)
	completed := []domain.CompletedSemester{{
		Number: 1,
		Courses: []domain.CompletedCourse{
			{Code: "FC001", Title: "Foundations", Category: domain.CategoryFC, Credits: 30},
		},
	}}

	return &App{
		Planner: planner,
		Catalog: catalogSvc,
		Status:  service.NewStatusService(planner, catalogSvc, completed),
		History: service.NewHistoryService(repository.NewSQLitePlanEventRepo(database)),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return plain(buf.String()), err
}

func plannedCodes(app *App, semester int) []string {
	var codes []string
	for _, c := range app.Planner.Plan(context.Background()).Courses(semester) {
		codes = append(codes, c.Code)
	}
	return codes
}
