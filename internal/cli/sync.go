package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the local index cache from the INDEC API",
	RunE:  runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	seriesID := resolveSeries(cfg)

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Fetching series %s...\n", seriesID)
	}
	fetched, err := newSeriesClient(cfg, seriesID).FetchSeries(cmd.Context())
	if err != nil {
		return err
	}

	cache, err := OpenCache(CachePath())
	if err != nil {
		return err
	}
	defer cache.Close()

	entries := toIndexEntries(fetched)
	if err := cache.SaveEntries(seriesID, entries); err != nil {
		return err
	}

	latest := "none"
	if len(entries) > 0 {
		latest = FormatMonth(entries[len(entries)-1].Month)
	}
	fmt.Printf("\n  Cached %d months for %s (latest %s)\n", len(entries), seriesID, latest)
	return nil
}
