package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/alexanderramin/gradplan/internal/service"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Root command ---

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	app := testApp(t, testCatalog())
	app.IsInteractive = func() bool { return false }

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "gradplan")
	assert.Contains(t, out, "Available Commands")
	assert.Contains(t, out, "plan")
}

func TestRootCmd_BootstrapWiresServices(t *testing.T) {
	wired := testApp(t, testCatalog())
	app := &App{}
	shutdowns := 0
	app.Bootstrap = func(cmd *cobra.Command) error {
		*app = App{
			Planner:   wired.Planner,
			Catalog:   wired.Catalog,
			Status:    wired.Status,
			History:   wired.History,
			Bootstrap: app.Bootstrap,
			Shutdown:  func() error { shutdowns++; return nil },
		}
		return nil
	}

	out, err := executeCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "GRADUATION PROGRESS")
	assert.Equal(t, 1, shutdowns)
}

func TestRootCmd_BootstrapErrorStopsCommand(t *testing.T) {
	app := &App{Bootstrap: func(*cobra.Command) error { return errors.New("config broken") }}

	_, err := executeCmd(t, app, "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config broken")
}

func TestRootCmd_UnconfiguredAppFails(t *testing.T) {
	_, err := executeCmd(t, &App{}, "status")
	require.ErrorIs(t, err, errNotConfigured)
}

func TestRootCmd_RegistersConfigFlags(t *testing.T) {
	root := NewRootCmd(&App{})
	for _, name := range []string{"config", "db", "catalog", "completed", "log-level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
}

// --- status / recommend / report ---

func TestStatusCmd(t *testing.T) {
	app := testApp(t, testCatalog())

	out, err := executeCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "GRADUATION PROGRESS")
	assert.Contains(t, out, "30 / 162")
	assert.Contains(t, out, "RECOMMENDATIONS")
	assert.Contains(t, out, "DLES")
	assert.NotContains(t, out, "Loading course catalog...")
}

func TestStatusCmd_CatalogLoading(t *testing.T) {
	app := testApp(t, nil)

	out, err := executeCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Loading course catalog...")
}

func TestRecommendCmd_ListsEveryOpenCategory(t *testing.T) {
	app := testApp(t, testCatalog())

	out, err := executeCmd(t, app, "recommend")
	require.NoError(t, err)
	assert.Contains(t, out, "RECOMMENDATIONS")
	for _, c := range []string{"DLES", "DC", "DE", "OE", "PI", "NGCR"} {
		assert.Contains(t, out, c)
	}
	assert.Contains(t, out, "CS601")
}

func TestReportCmd_Raw(t *testing.T) {
	app := testApp(t, testCatalog())
	_, err := executeCmd(t, app, "plan", "add", "--semester", "6", "CS601")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "report", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "# Graduation progress")
	assert.Contains(t, out, "### Semester 6")
	assert.Contains(t, out, "`CS601` Compilers")
}

func TestReportCmd_Rendered(t *testing.T) {
	app := testApp(t, testCatalog())

	out, err := executeCmd(t, app, "report", "--style", "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "Graduation progress")
}

// --- plan add ---

func TestPlanAddCmd(t *testing.T) {
	app := testApp(t, testCatalog())

	out, err := executeCmd(t, app, "plan", "add", "--semester", "6", "cs601")
	require.NoError(t, err)
	assert.Contains(t, out, "+ added CS601 (4 cr) to semester 6")
	assert.Equal(t, []string{"CS601"}, plannedCodes(app, 6))
}

func TestPlanAddCmd_SpanCourseSettlesFollowUp(t *testing.T) {
	app := testApp(t, testCatalog())

	out, err := executeCmd(t, app, "plan", "add", "-s", "6", service.DefaultSpanCourse)
	require.NoError(t, err)
	assert.Contains(t, out, "+ added BEXC100N (1 cr) to semester 6")
	assert.Contains(t, out, "+ auto-added BEXC100N to semester 7")
	assert.Contains(t, out, "Auto-added (BEXC100N spans 2 semesters)")

	assert.Equal(t, 0, app.Planner.Pending())
	sem7 := app.Planner.Plan(context.Background()).Courses(7)
	require.Len(t, sem7, 1)
	assert.True(t, sem7[0].AutoAdded)
}

func TestPlanAddCmd_SpanCourseInLastSemester(t *testing.T) {
	app := testApp(t, testCatalog())

	out, err := executeCmd(t, app, "plan", "add", "-s", "8", service.DefaultSpanCourse)
	require.NoError(t, err)
	assert.NotContains(t, out, "auto-added")
	assert.Equal(t, []string{service.DefaultSpanCourse}, plannedCodes(app, 8))
	assert.Empty(t, plannedCodes(app, 6))
	assert.Empty(t, plannedCodes(app, 7))
}

func TestPlanAddCmd_RejectsDuplicateInSemester(t *testing.T) {
	app := testApp(t, testCatalog())
	_, err := executeCmd(t, app, "plan", "add", "-s", "6", "CS601")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "plan", "add", "-s", "6", "CS601")
	require.ErrorIs(t, err, errAlreadyPlanned)
	assert.Equal(t, []string{"CS601"}, plannedCodes(app, 6))

	// Another semester is fine.
	_, err = executeCmd(t, app, "plan", "add", "-s", "7", "CS601")
	require.NoError(t, err)
}

func TestPlanAddCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		catalog domain.Catalog
		args    []string
		wantIs  error
		wantMsg string
	}{
		{name: "unknown code", catalog: testCatalog(), args: []string{"-s", "6", "XX999"}, wantIs: service.ErrCourseNotFound},
		{name: "unknown semester", catalog: testCatalog(), args: []string{"-s", "5", "CS601"}, wantIs: domain.ErrUnknownSemester},
		{name: "catalog loading", catalog: nil, args: []string{"-s", "6", "CS601"}, wantIs: errCatalogLoading},
		{name: "missing code without terminal", catalog: testCatalog(), args: []string{"-s", "6"}, wantMsg: "course code is required"},
		{name: "missing semester", catalog: testCatalog(), args: []string{"CS601"}, wantMsg: "semester"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testApp(t, tt.catalog)
			_, err := executeCmd(t, app, append([]string{"plan", "add"}, tt.args...)...)
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.Zero(t, app.Planner.Plan(context.Background()).Count())
		})
	}
}

// --- plan remove ---

func TestPlanRemoveCmd(t *testing.T) {
	app := testApp(t, testCatalog())
	for _, code := range []string{"CS601", "CS602", "HS601"} {
		_, err := executeCmd(t, app, "plan", "add", "-s", "6", code)
		require.NoError(t, err)
	}

	out, err := executeCmd(t, app, "plan", "remove", "-s", "6", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "- removed CS602 (3 cr) from semester 6")
	assert.Equal(t, []string{"CS601", "HS601"}, plannedCodes(app, 6))
}

func TestPlanRemoveCmd_OutOfRangeLeavesPlanAlone(t *testing.T) {
	app := testApp(t, testCatalog())
	_, err := executeCmd(t, app, "plan", "add", "-s", "6", "CS601")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "plan", "remove", "-s", "6", "4")
	require.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "semester 6 has 1 course(s), no #4")
	assert.Equal(t, []string{"CS601"}, plannedCodes(app, 6))

	events, err := app.History.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestPlanRemoveCmd_InvalidEntryNumber(t *testing.T) {
	app := testApp(t, testCatalog())

	for _, arg := range []string{"0", "-1", "abc"} {
		_, err := executeCmd(t, app, "plan", "remove", "-s", "6", "--", arg)
		require.Error(t, err, arg)
		assert.Contains(t, err.Error(), "invalid entry number", arg)
	}
}

func TestPlanRemoveCmd_RemovingOriginCancelsPendingFollowUp(t *testing.T) {
	app := testApp(t, testCatalog())
	_, err := app.Planner.AddCourse(context.Background(), 6, testCatalog()[domain.CategoryNGCR][0])
	require.NoError(t, err)
	require.Equal(t, 1, app.Planner.Pending())

	out, err := executeCmd(t, app, "plan", "remove", "-s", "6", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "auto-added")
	assert.Zero(t, app.Planner.Pending())
	assert.Zero(t, app.Planner.Plan(context.Background()).Count())
}

// --- plan show / history ---

func TestPlanShowCmd(t *testing.T) {
	app := testApp(t, testCatalog())
	_, err := executeCmd(t, app, "plan", "add", "-s", "7", "NP601")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "plan", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "COURSE PLAN")
	assert.Contains(t, out, "Semester 6")
	assert.Contains(t, out, "Semester 7")
	assert.Contains(t, out, "Semester 8")
	assert.Contains(t, out, "NP601")
	assert.Contains(t, out, "NPTEL")

	out, err = executeCmd(t, app, "plan", "show", "-s", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "Semester 6")
	assert.NotContains(t, out, "Semester 7")

	_, err = executeCmd(t, app, "plan", "show", "-s", "9")
	require.ErrorIs(t, err, domain.ErrUnknownSemester)
}

func TestPlanShowCmd_OverLimitWarning(t *testing.T) {
	var courses []domain.Course
	for i := 0; i < 10; i++ {
		courses = append(courses, domain.Course{
			Code: "DC" + string(rune('A'+i)), Title: "Heavy", Category: domain.CategoryDC,
			Credits: 3, Type: "Theory", CountsTowardLimit: true,
		})
	}
	app := testApp(t, domain.Catalog{domain.CategoryDC: courses})
	for _, c := range courses {
		_, err := executeCmd(t, app, "plan", "add", "-s", "6", c.Code)
		require.NoError(t, err)
	}

	out, err := executeCmd(t, app, "plan", "show", "-s", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "Semester 6 has 30.0 regular credits")
}

func TestPlanHistoryCmd(t *testing.T) {
	app := testApp(t, testCatalog())

	out, err := executeCmd(t, app, "plan", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No plan changes recorded yet.")

	_, err = executeCmd(t, app, "plan", "add", "-s", "6", service.DefaultSpanCourse)
	require.NoError(t, err)
	_, err = executeCmd(t, app, "plan", "remove", "-s", "7", "1")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "plan", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "PLAN HISTORY")
	assert.Contains(t, out, "+ added")
	assert.Contains(t, out, "+ auto-added")
	assert.Contains(t, out, "- removed")

	out, err = executeCmd(t, app, "plan", "history", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "- removed")
	assert.NotContains(t, out, "+ added")
}

// --- catalog search ---

func TestCatalogSearchCmd(t *testing.T) {
	app := testApp(t, testCatalog())

	out, err := executeCmd(t, app, "catalog", "search", "embedded")
	require.NoError(t, err)
	assert.Contains(t, out, "CS602")
	assert.NotContains(t, out, "CS601")
	assert.Contains(t, out, "1 course(s)")

	out, err = executeCmd(t, app, "catalog", "search", "--category", "oe")
	require.NoError(t, err)
	assert.Contains(t, out, "HS601")
	assert.NotContains(t, out, "CS602")

	out, err = executeCmd(t, app, "catalog", "search", "nothing", "matches")
	require.NoError(t, err)
	assert.Contains(t, out, "No courses match.")
}

func TestCatalogSearchCmd_SemesterExcludesPlanned(t *testing.T) {
	app := testApp(t, testCatalog())
	_, err := executeCmd(t, app, "plan", "add", "-s", "6", "CS601")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "catalog", "search", "-c", "DC", "-s", "6")
	require.NoError(t, err)
	assert.NotContains(t, out, "CS601")
	assert.Contains(t, out, "CS602")

	out, err = executeCmd(t, app, "catalog", "search", "-c", "DC", "-s", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "CS601")
}

func TestCatalogSearchCmd_Errors(t *testing.T) {
	app := testApp(t, testCatalog())

	_, err := executeCmd(t, app, "catalog", "search", "--category", "XYZ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")

	_, err = executeCmd(t, app, "catalog", "search", "-s", "3")
	require.ErrorIs(t, err, domain.ErrUnknownSemester)
}

func TestCatalogSearchCmd_CatalogLoading(t *testing.T) {
	app := testApp(t, nil)

	out, err := executeCmd(t, app, "catalog", "search")
	require.NoError(t, err)
	assert.Contains(t, out, "Loading course catalog...")
}
