package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List autoscaling events in a time window",
		Long: "List autoscaling events between --from and --to.\n" +
			"Both accept RFC 3339 timestamps. --to defaults to now and --from to 24 hours before --to.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fromFlag, _ := cmd.Flags().GetString("from")
			toFlag, _ := cmd.Flags().GetString("to")
			pageSize, _ := cmd.Flags().GetInt("page-size")
			page, _ := cmd.Flags().GetInt("page")

			to := time.Now()
			if toFlag != "" {
				var err error
				if to, err = parseTimestamp("to", toFlag); err != nil {
					return err
				}
			}
			from := to.Add(-24 * time.Hour)
			if fromFlag != "" {
				var err error
				if from, err = parseTimestamp("from", fromFlag); err != nil {
					return err
				}
			}

			result, err := c.app.HistoryPage(cmd.Context(), from, to, pageSize, page)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := writeJSON(out, result.Records); err != nil {
				return err
			}
			writePagination(out, result.Pagination)
			return nil
		},
	}

	cmd.Flags().String("from", "", "Start of the window (RFC 3339)")
	cmd.Flags().String("to", "", "End of the window (RFC 3339)")
	cmd.Flags().Int("page-size", 20, "Number of events per page")
	cmd.Flags().Int("page", 1, "Page to show")

	return cmd
}

func parseTimestamp(flag, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, domain.NewValidationError(
			"--"+flag+" must be an RFC 3339 timestamp",
			zerr.With(err, "value", value),
		)
	}
	return t, nil
}
