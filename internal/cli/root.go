package cli

import (
	"fmt"
	"io"
	"log/slog"

	"globex/internal/config"

	"github.com/spf13/cobra"
)

const version = "globexctl v0.1.0"

type rootOptions struct {
	cfgFile string
	verbose bool
}

// NewRootCmd builds the globexctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "globexctl",
		Short: "GlobeX - place news markers on a globe from the command line",
		Long: `globexctl runs the GlobeX placement engine offline.

It reads a news feed in the NewsAPI article shape, places one marker per
article around the country centroid, and prints the resulting batch as JSON.
The same engine backs the GlobeX HTTP API.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: ./config.yaml or $HOME/.globex/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newPlaceCmd(opts),
		newProjectCmd(),
		newRegionsCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.cfgFile != "" {
		return config.LoadFile(o.cfgFile)
	}
	return config.Load()
}

// logger writes to stderr so stdout stays machine readable.
func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
