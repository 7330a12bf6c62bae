package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/gradplan/internal/app"
	"github.com/alexanderramin/gradplan/internal/cli/formatter"
	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// pickerHeight caps the visible rows of the course select.
const pickerHeight = 12

var errNothingToPick = errors.New("no catalog courses left to plan for this semester")

// gradplanHuhTheme returns a huh theme matching the CLI formatter palette.
func gradplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// categoryOptions lists ALL followed by every category in display order.
func categoryOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("All categories", string(domain.CategoryAll))}
	for _, c := range domain.Categories {
		opts = append(opts, huh.NewOption(string(c), string(c)))
	}
	return opts
}

// courseOptionLabel is the single-line label shown in the course select.
func courseOptionLabel(c domain.Course) string {
	label := fmt.Sprintf("%-9s %-4s %4s cr  %s", c.Code, c.Category, formatter.FormatCredits(c.Credits), c.Title)
	if c.IsNPTEL {
		label += " [NPTEL]"
	}
	return label
}

func courseOptions(courses []domain.Course) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(courses))
	for _, c := range courses {
		opts = append(opts, huh.NewOption(courseOptionLabel(c), c.Code))
	}
	return opts
}

func categoryForm(semester int, result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Category for semester %d", semester)).
				Options(categoryOptions()...).
				Value(result),
		),
	).WithTheme(gradplanHuhTheme()).WithShowHelp(false)
}

func coursePickerForm(courses []domain.Course, result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Course").
				Description("type / to filter").
				Options(courseOptions(courses)...).
				Filtering(true).
				Height(pickerHeight).
				Value(result),
		),
	).WithTheme(gradplanHuhTheme()).WithShowHelp(false)
}

func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(gradplanHuhTheme()).WithShowHelp(false)
}

// pickCourse runs the category and course selects and returns the chosen
// code. Courses already planned in the semester are never offered.
func pickCourse(ctx context.Context, a *App, semester int) (string, error) {
	category := string(domain.CategoryAll)
	if err := categoryForm(semester, &category).RunWithContext(ctx); err != nil {
		return "", err
	}

	resp, err := a.Catalog.Search(ctx, app.CatalogSearchRequest{
		Category: domain.Category(category),
		Semester: semester,
	})
	if err != nil {
		return "", err
	}
	if !resp.CatalogLoaded {
		return "", errCatalogLoading
	}
	if len(resp.Courses) == 0 {
		return "", errNothingToPick
	}

	var code string
	if err := coursePickerForm(resp.Courses, &code).RunWithContext(ctx); err != nil {
		return "", err
	}
	return code, nil
}
