package cli

import (
	"newsdeck/cli/output"

	"github.com/spf13/cobra"
)

func newOsintCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "osint",
		Short: "Show the latest posts of the tracked OSINT accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			feed, err := a.client.Osint(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.writeJSON(feed)
			}

			a.printer.Header("OSINT")
			table := output.NewTable(a.out, []string{"TIME", "AUTHOR", "POST"})
			for _, tweet := range feed.Items {
				table.AddRow([]string{
					a.printer.Dim(tweet.Timestamp.Local().Format("Jan 02 15:04")),
					"@" + tweet.Author,
					output.Truncate(tweet.Content, a.cfg.Output.Width-34),
				})
			}
			if err := table.Render(); err != nil {
				return err
			}
			a.printer.Success("%d posts", len(feed.Items))
			return nil
		},
	}
}
