package commands

import (
	"github.com/spf13/cobra"
)

type pagesOutput struct {
	PageSize    int  `json:"pageSize"`
	Total       int  `json:"total"`
	CurrentPage int  `json:"currentPage"`
	TotalPage   int  `json:"totalPage"`
	Offset      int  `json:"offset"`
	Limit       int  `json:"limit"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

func (c *CLI) newPagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Compute a pagination state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pageSize, _ := cmd.Flags().GetInt("page-size")
			total, _ := cmd.Flags().GetInt("total")
			page, _ := cmd.Flags().GetInt("page")

			p := c.app.Pages(pageSize, total, page)
			return writeJSON(cmd.OutOrStdout(), pagesOutput{
				PageSize:    p.PageSize(),
				Total:       p.Total(),
				CurrentPage: p.CurrentPage(),
				TotalPage:   p.TotalPage(),
				Offset:      p.Offset(),
				Limit:       p.Limit(),
				HasNext:     p.HasNext(),
				HasPrev:     p.HasPrev(),
			})
		},
	}

	cmd.Flags().Int("page-size", 10, "Items per page")
	cmd.Flags().Int("total", 0, "Total number of items")
	cmd.Flags().Int("page", 1, "Requested page")

	return cmd
}
