package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/gradplan/internal/app"
	"github.com/alexanderramin/gradplan/internal/cli/formatter"
	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 20

func newPlanCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show and edit the semester plan",
	}

	cmd.AddCommand(
		newPlanShowCmd(a),
		newPlanAddCmd(a),
		newPlanRemoveCmd(a),
		newPlanHistoryCmd(a),
	)

	return cmd
}

func newPlanShowCmd(a *App) *cobra.Command {
	var semester int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show planned semesters with credit checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Status.GetStatus(cmd.Context(), app.StatusRequest{})
			if err != nil {
				return err
			}

			if semester == 0 {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(resp.Semesters))
				return nil
			}
			if err := validateSemester(semester); err != nil {
				return err
			}
			for _, sv := range resp.Semesters {
				if sv.Semester == semester {
					fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan([]app.SemesterView{sv}))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&semester, "semester", "s", 0, "Show only this semester")

	return cmd
}

func newPlanAddCmd(a *App) *cobra.Command {
	var semester int

	cmd := &cobra.Command{
		Use:   "add [CODE]",
		Short: "Add a catalog course to a semester",
		Long: `Add a catalog course to a semester.

Without CODE an interactive picker lists the catalog courses not yet
planned in that semester.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := validateSemester(semester); err != nil {
				return err
			}

			var code string
			if len(args) == 1 {
				code = args[0]
			} else {
				if !a.interactive() {
					return errors.New("a course code is required when stdin is not a terminal")
				}
				picked, err := pickCourse(ctx, a, semester)
				if err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
				code = picked
			}

			course, err := resolvePlannable(ctx, a, semester, code)
			if err != nil {
				return err
			}

			lines, err := recordChanges(ctx, a.Planner, func() error {
				_, err := a.Planner.AddCourse(ctx, semester, course)
				return err
			})
			for _, l := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&semester, "semester", "s", 0, fmt.Sprintf("Target semester %v", domain.PlanSemesters))
	_ = cmd.MarkFlagRequired("semester")

	return cmd
}

func newPlanRemoveCmd(a *App) *cobra.Command {
	var semester int
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove INDEX",
		Short: "Remove the INDEX-th course (1-based) from a semester",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := validateSemester(semester); err != nil {
				return err
			}
			index, err := parseEntryNumber(args[0])
			if err != nil {
				return err
			}

			if !yes && a.interactive() {
				courses := a.Planner.Plan(ctx).Courses(semester)
				if index < len(courses) {
					confirmed := false
					title := fmt.Sprintf("Remove %s from semester %d?", courses[index].Code, semester)
					if err := confirmForm(title, &confirmed).RunWithContext(ctx); err != nil {
						if errors.Is(err, huh.ErrUserAborted) {
							return nil
						}
						return err
					}
					if !confirmed {
						return nil
					}
				}
			}

			lines, err := recordChanges(ctx, a.Planner, func() error {
				_, err := a.Planner.RemoveCourse(ctx, semester, index)
				if errors.Is(err, domain.ErrIndexOutOfRange) {
					n := len(a.Planner.Plan(ctx).Courses(semester))
					return fmt.Errorf("semester %d has %d course(s), no #%d: %w", semester, n, index+1, err)
				}
				return err
			})
			for _, l := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&semester, "semester", "s", 0, fmt.Sprintf("Semester %v", domain.PlanSemesters))
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("semester")

	return cmd
}

func newPlanHistoryCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent plan changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.History == nil {
				return errNotConfigured
			}
			events, err := a.History.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(events))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Number of events to show")

	return cmd
}
