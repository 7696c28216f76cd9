package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newReadCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read <url>",
		Short: "Print the reader view of an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			article, err := a.client.Read(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.writeJSON(article)
			}

			a.printer.Header(article.Title)
			if article.SiteName != "" {
				a.printer.Print("%s", a.printer.Dim(article.SiteName))
			}
			a.printer.Print("")
			for _, para := range strings.Split(article.TextContent, "\n") {
				if para = strings.TrimSpace(para); para != "" {
					a.printer.Print("%s\n", para)
				}
			}
			return nil
		},
	}
}
