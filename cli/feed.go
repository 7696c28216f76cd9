package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"newsdeck/cli/output"
	"newsdeck/domain"

	"github.com/spf13/cobra"
)

type feedOptions struct {
	keywords    string
	hasKeywords bool
	limit       int
	watch       bool
	interval    time.Duration
}

func newFeedCommand(a *app) *cobra.Command {
	opts := &feedOptions{}
	cmd := &cobra.Command{
		Use:   "feed <topic>",
		Short: "Show the aggregated feed of a topic",
		Long: `Show the aggregated feed of a topic, newest first.

Without --keywords the topic's configured keywords filter the items;
--keywords "" shows everything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.hasKeywords = cmd.Flags().Changed("keywords")
			return runFeed(cmd.Context(), a, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.keywords, "keywords", "k", "", "comma-separated keywords")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 20, "maximum items to print (0 for all)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "follow the refresh stream")
	cmd.Flags().DurationVar(&opts.interval, "interval", 0, "refresh interval for --watch (server default when unset)")
	return cmd
}

func (o *feedOptions) keywordList() []string {
	if !o.hasKeywords {
		return nil
	}
	keywords := []string{}
	for _, kw := range strings.Split(o.keywords, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

func runFeed(ctx context.Context, a *app, topic string, opts *feedOptions) error {
	if opts.watch {
		err := a.client.Watch(ctx, topic, opts.keywordList(), opts.interval, func(result domain.AggregationResult) error {
			return printAggregation(a, topic, result, opts.limit)
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	result, err := a.client.Feed(ctx, topic, opts.keywordList())
	if err != nil {
		return err
	}
	return printAggregation(a, topic, *result, opts.limit)
}

func printAggregation(a *app, topic string, result domain.AggregationResult, limit int) error {
	if a.jsonOut {
		return a.writeJSON(result)
	}
	if result.Loading {
		a.printer.Info("refreshing %s…", topic)
		return nil
	}
	if msg := result.ErrorMessage(); msg != "" {
		a.printer.Error("%s", msg)
		return nil
	}

	items := result.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	a.printer.Header(topic)
	if err := renderItems(a, items); err != nil {
		return err
	}
	a.printer.Success("%d of %d items", len(items), len(result.Items))
	return nil
}

func renderItems(a *app, items []*domain.NewsItem) error {
	width := a.cfg.Output.Width
	table := output.NewTable(a.out, []string{"PUBLISHED", "SOURCE", "TITLE"})
	for _, item := range items {
		published := item.PubDate
		if t := item.PublishedAt(); !t.IsZero() {
			published = t.Local().Format("Jan 02 15:04")
		}
		table.AddRow([]string{
			a.printer.Dim(published),
			output.Truncate(item.Source, 18),
			output.Truncate(item.Title, width-34),
		})
	}
	return table.Render()
}
