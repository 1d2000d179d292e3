package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newOverviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show the summary and recent autoscaling events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			window, _ := cmd.Flags().GetDuration("window")

			ov, err := c.app.Overview(cmd.Context(), window)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			writeHeading(out, "Summary")
			if err := writeJSON(out, ov.Info); err != nil {
				return err
			}
			writeHeading(out, "History "+ov.Window.FromISO()+" to "+ov.Window.ToISO())
			return writeJSON(out, ov.History)
		},
	}

	cmd.Flags().Duration("window", 0, "History window ending now (default 24h)")

	return cmd
}
