package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"eventscrape/internal/browser"
	"eventscrape/internal/config"
	"eventscrape/internal/scrape"
	"eventscrape/internal/writer"
)

var (
	flagMaxEvents int
	flagOutputDir string
	flagSites     string
	flagTimeout   time.Duration
	flagHeadful   bool
	flagVerbose   bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eventscrape [url...]",
		Short: "Scrape structured event records from event-listing pages",
		Long: `Scrape structured event records (title, description, time, venue, image)
from event-listing pages. Each URL is dispatched to the provider that owns
it; results are written as one JSON file per source URL.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runScrape,
	}

	cmd.Flags().IntVar(&flagMaxEvents, "max", 10, "Maximum events to scrape per URL")
	cmd.Flags().StringVar(&flagOutputDir, "output", "events", "Output directory for JSON files")
	cmd.Flags().StringVar(&flagSites, "sites", "", "YAML file overriding the built-in misc-site selector tables")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", browser.DefaultOpTimeout, "Timeout per browser operation")
	cmd.Flags().BoolVar(&flagHeadful, "headful", false, "Run the browser with a visible window")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

func runScrape(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}
	if flagMaxEvents <= 0 {
		return fmt.Errorf("--max must be positive")
	}

	sites, err := config.LoadMiscSites(flagSites)
	if err != nil {
		return err
	}

	out, err := writer.New(flagOutputDir)
	if err != nil {
		return err
	}

	b := browser.New(context.Background(), browser.Options{
		Headful:   flagHeadful,
		OpTimeout: flagTimeout,
	})
	defer b.Close()

	registry := scrape.NewRegistry(sites)

	spin := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(os.Stderr))

	failed := 0
	for _, rawURL := range args {
		spin.Suffix = " " + rawURL
		spin.Start()
		events, err := registry.Scrape(b, rawURL, flagMaxEvents)
		spin.Stop()

		if err != nil {
			var unknown *scrape.UnknownProviderError
			if errors.As(err, &unknown) {
				log.Error("skipping url with no matching provider", "url", rawURL)
				failed++
				continue
			}
			return err
		}

		path, err := out.WriteBatch(rawURL, events)
		if err != nil {
			return err
		}
		log.Info("wrote results", "url", rawURL, "events", len(events), "file", path)
	}

	if failed == len(args) {
		return fmt.Errorf("no provider matched any of the %d given urls", len(args))
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("scrape failed", "err", err)
		os.Exit(1)
	}
}
