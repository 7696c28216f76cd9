// Package cli implements the deckctl command tree.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"newsdeck/cli/api"
	"newsdeck/cli/output"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// SetVersion sets the version string reported by `deckctl version`.
func SetVersion(v string) {
	version = v
}

// app carries state shared by the subcommands of one invocation.
type app struct {
	cfgFile string
	noColor bool
	jsonOut bool

	v       *viper.Viper
	cfg     *Config
	client  *api.Client
	printer *output.Printer
	out     io.Writer
	errOut  io.Writer
}

// ExecuteContext runs deckctl against os.Args.
func ExecuteContext(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:   "deckctl",
		Short: "Command-line client for the newsdeck server",
		Long: `deckctl reads the newsdeck API from a terminal.

Example usage:
  deckctl topics                       # List configured topics
  deckctl feed crypto                  # Latest items for a topic
  deckctl feed tech --keywords ai,chip # Override the topic keywords
  deckctl feed iran --watch            # Follow the refresh stream
  deckctl news Finance                 # Headline category
  deckctl read https://example.com/a   # Reader view of an article
  deckctl osint                        # OSINT timeline`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/deckctl/deckctl.yaml)")
	flags.String("server", "", "newsdeck server URL (default http://localhost:9000)")
	flags.Duration("timeout", 0, "request timeout")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&a.jsonOut, "json", false, "output as JSON")

	_ = a.v.BindPFlag("server", flags.Lookup("server"))
	_ = a.v.BindPFlag("timeout", flags.Lookup("timeout"))

	rootCmd.AddCommand(
		newTopicsCommand(a),
		newFeedCommand(a),
		newNewsCommand(a),
		newReadCommand(a),
		newOsintCommand(a),
		newVersionCommand(a),
	)
	return rootCmd
}

func (a *app) setup() error {
	cfg, err := LoadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.client = api.NewClient(cfg.Server, cfg.Timeout)
	a.printer = output.NewPrinter(a.out, a.errOut, output.ResolveColors(a.noColor, cfg.Output.Colors))
	return nil
}

func (a *app) writeJSON(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the deckctl version",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(a.out, "deckctl %s\n", version)
			return err
		},
	}
}
