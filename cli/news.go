package cli

import (
	"strconv"

	"newsdeck/cli/output"

	"github.com/spf13/cobra"
)

func newNewsCommand(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "news [category]",
		Short: "Show headline news for a category, or the mixed Top view",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := ""
			if len(args) == 1 {
				category = args[0]
			}

			news, err := a.client.News(cmd.Context(), category)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.writeJSON(news)
			}

			items := news.Items
			if limit > 0 && len(items) > limit {
				items = items[:limit]
			}
			a.printer.Header(news.Topic)
			table := output.NewTable(a.out, []string{"SOURCE", "MIN", "TITLE"})
			for _, item := range items {
				table.AddRow([]string{
					output.Truncate(item.Source, 18),
					strconv.Itoa(item.ReadingTime),
					output.Truncate(item.Title, a.cfg.Output.Width-26),
				})
			}
			return table.Render()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum items to print (0 for all)")
	return cmd
}
