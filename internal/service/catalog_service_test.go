package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/gradplan/internal/app"
	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/alexanderramin/gradplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() domain.Catalog {
	return testutil.NewTestCatalog(
		testutil.NewTestCourse(domain.CategoryDE, testutil.WithCode("BCSE305L"), testutil.WithTitle("Embedded Systems")),
		testutil.NewTestCourse(domain.CategoryDE, testutil.WithCode("BCSE306L"), testutil.WithTitle("Compiler Design")),
		testutil.NewTestCourse(domain.CategoryOE, testutil.WithCode("BHUM201L"), testutil.WithTitle("Psychology")),
	)
}

func TestCatalogService_NotLoaded(t *testing.T) {
	svc := NewCatalogService(nil, nil)
	ctx := context.Background()

	resp, err := svc.Search(ctx, app.CatalogSearchRequest{Query: "x"})
	require.NoError(t, err)
	assert.False(t, resp.CatalogLoaded)
	assert.Empty(t, resp.Courses)

	_, err = svc.Lookup(ctx, "BCSE305L")
	assert.ErrorIs(t, err, ErrCatalogNotLoaded)
}

func TestCatalogService_Lookup(t *testing.T) {
	svc := NewCatalogService(testCatalog(), nil)
	ctx := context.Background()

	c, err := svc.Lookup(ctx, "bcse306l")
	require.NoError(t, err)
	assert.Equal(t, "Compiler Design", c.Title)

	_, err = svc.Lookup(ctx, "NOPE")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCatalogService_SearchExcludesPlannedInSemester(t *testing.T) {
	p, _ := newTestPlanner(t, manualDelay)
	svc := NewCatalogService(testCatalog(), p)
	ctx := context.Background()

	c, err := svc.Lookup(ctx, "BCSE305L")
	require.NoError(t, err)
	_, err = p.AddCourse(ctx, 6, c)
	require.NoError(t, err)

	resp, err := svc.Search(ctx, app.CatalogSearchRequest{Category: domain.CategoryDE, Semester: 6})
	require.NoError(t, err)
	assert.Equal(t, []string{"BCSE306L"}, codes(resp.Courses))

	resp, err = svc.Search(ctx, app.CatalogSearchRequest{Category: domain.CategoryDE, Semester: 7})
	require.NoError(t, err)
	assert.Equal(t, []string{"BCSE305L", "BCSE306L"}, codes(resp.Courses))

	_, err = svc.Search(ctx, app.CatalogSearchRequest{Semester: 3})
	assert.ErrorIs(t, err, domain.ErrUnknownSemester)
}

func TestCatalogService_SearchAllByQuery(t *testing.T) {
	svc := NewCatalogService(testCatalog(), nil)

	resp, err := svc.Search(context.Background(), app.CatalogSearchRequest{Query: "PSYCH"})
	require.NoError(t, err)
	assert.True(t, resp.CatalogLoaded)
	assert.Equal(t, []string{"BHUM201L"}, codes(resp.Courses))
}

func TestCatalogService_SetCatalog(t *testing.T) {
	svc := NewCatalogService(nil, nil)
	svc.SetCatalog(testCatalog())
	assert.Equal(t, 3, svc.Catalog().Size())
}
