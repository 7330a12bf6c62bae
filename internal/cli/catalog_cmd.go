package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradplan/internal/app"
	"github.com/alexanderramin/gradplan/internal/cli/formatter"
	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the course catalog",
	}
	cmd.AddCommand(newCatalogSearchCmd(a))
	return cmd
}

func newCatalogSearchCmd(a *App) *cobra.Command {
	var categoryFlag string
	var semester int

	cmd := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "Filter the catalog by category and text",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, ok := domain.ParseCategory(strings.ToUpper(categoryFlag))
			if !ok {
				return fmt.Errorf("unknown category %q (use ALL, %s)", categoryFlag, joinCategories())
			}
			if semester != 0 {
				if err := validateSemester(semester); err != nil {
					return err
				}
			}

			resp, err := a.Catalog.Search(cmd.Context(), app.CatalogSearchRequest{
				Category: category,
				Query:    strings.Join(args, " "),
				Semester: semester,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalog(resp.Courses, resp.CatalogLoaded))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryFlag, "category", "c", string(domain.CategoryAll), "Category filter")
	cmd.Flags().IntVarP(&semester, "semester", "s", 0, "Hide courses already planned in this semester")

	return cmd
}

func joinCategories() string {
	names := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
