package cli

import (
	"strconv"
	"strings"

	"newsdeck/cli/output"

	"github.com/spf13/cobra"
)

func newTopicsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Aliases: []string{"ls"},
		Short:   "List configured topics",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			topics, err := a.client.Topics(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.writeJSON(topics)
			}

			a.printer.Header("Topics")
			table := output.NewTable(a.out, []string{"KEY", "LABEL", "SOURCES", "KEYWORDS"})
			for _, t := range topics {
				table.AddRow([]string{
					a.printer.Bold(t.Key),
					t.Label,
					strconv.Itoa(t.EnabledSources) + "/" + strconv.Itoa(t.SourceCount),
					output.Truncate(strings.Join(t.Keywords, ", "), 48),
				})
			}
			return table.Render()
		},
	}
}
