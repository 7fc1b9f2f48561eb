package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"globex/internal/llm"
	"globex/internal/locate"
	"globex/internal/news"
	"globex/internal/placement"
	"globex/internal/regions"
	"globex/internal/timezone"

	"github.com/spf13/cobra"
)

type placeOptions struct {
	country  string
	strategy string
	limit    int
	timezone bool
}

func newPlaceCmd(root *rootOptions) *cobra.Command {
	opts := &placeOptions{}

	cmd := &cobra.Command{
		Use:   "place [feed.json]",
		Short: "Place markers for a news feed",
		Long: `Place reads a feed in the NewsAPI shape ({"articles": [...]}) from a file,
or from stdin when no file or "-" is given, and prints the placed batch.

Example:
  globexctl place headlines.json --country in
  curl -s localhost:3001/api/news?country=in | globexctl place --country in --strategy llm`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlace(cmd, args, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.country, "country", "", "country code to place around (default: app.defaultCountry)")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "placement strategy: spiral or llm (default: placement.strategy)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "maximum number of articles to place (0 places all)")
	cmd.Flags().BoolVar(&opts.timezone, "timezone", true, "annotate markers with their IANA timezone")
	return cmd
}

func runPlace(cmd *cobra.Command, args []string, root *rootOptions, opts *placeOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	logger := root.logger(cmd.ErrOrStderr())

	feed, err := readFeed(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	items := feed.Items()
	if opts.limit > 0 && len(items) > opts.limit {
		items = items[:opts.limit]
	}

	country := opts.country
	if country == "" {
		country = cfg.App.DefaultCountry
	}
	strategy := opts.strategy
	if strategy == "" {
		strategy = cfg.Placement.Strategy
	}

	provider, err := llm.NewProvider(llm.Config{
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
		Timeout:   cfg.LLM.Timeout,
	})
	if err != nil {
		return err
	}
	locator, err := placement.NewLocator(strategy, locate.NewLocateService(provider, logger))
	if err != nil {
		return err
	}

	catalog, err := regions.Default()
	if err != nil {
		return err
	}

	var tz timezone.Service
	if opts.timezone {
		if tz, err = timezone.NewService(); err != nil {
			logger.Warn("timezone lookup disabled", "error", err)
		}
	}

	engine := placement.NewEngine(catalog, locator, tz, nil, logger)
	batch, err := engine.PlaceMarkers(cmd.Context(), items, country, nil)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(batch)
}

func readFeed(stdin io.Reader, args []string) (*news.Feed, error) {
	r := stdin
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open feed: %w", err)
		}
		defer f.Close()
		r, name = f, args[0]
	}

	var feed news.Feed
	if err := json.NewDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode feed from %s: %w", name, err)
	}
	return &feed, nil
}
