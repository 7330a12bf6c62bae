package cli

import (
	"fmt"

	"github.com/alexanderramin/gradplan/internal/app"
	"github.com/alexanderramin/gradplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *App) *cobra.Command {
	var maxRecs int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show graduation progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewStatusRequest()
			if cmd.Flags().Changed("recommendations") {
				req.MaxRecommendations = maxRecs
			}

			resp, err := a.Status.GetStatus(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxRecs, "recommendations", 3, "Number of recommendations to show (0 for all)")

	return cmd
}

func newRecommendCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "List every category that still needs credits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Status.GetStatus(cmd.Context(), app.StatusRequest{})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecommendations(resp.Recommendations))
			return nil
		},
	}
}

func newReportCmd(a *App) *cobra.Command {
	var raw bool
	var style string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a markdown progress report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Status.GetStatus(cmd.Context(), app.StatusRequest{})
			if err != nil {
				return err
			}

			md := formatter.ReportMarkdown(resp)
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}

			out, err := formatter.RenderMarkdown(md, style)
			if err != nil {
				return fmt.Errorf("rendering report: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown source")
	cmd.Flags().StringVar(&style, "style", "", "glamour style (dark, light, notty); default detects the terminal")

	return cmd
}
