// Package cli implements the propflow terminal calculator: cobra commands,
// a TOML config file, and a sqlite cache of the inflation series so the
// calculator works offline between syncs.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ingagustinmarcel/prop-flow/internal/client/indec"
	"github.com/ingagustinmarcel/prop-flow/internal/constants"
	"github.com/ingagustinmarcel/prop-flow/internal/services"
)

var (
	flagSeries  string
	flagOffline bool
	flagQuiet   bool
	flagDump    bool
)

// Lease-shape flags shared by schedule and next.
var (
	flagRent          float64
	flagStart         string
	flagEnd           string
	flagFrequency     int
	flagOverride      float64
	flagLastIncrement string
)

var rootCmd = &cobra.Command{
	Use:   "propflow",
	Short: "Rent escalation calculator for inflation-indexed leases",
	Long: "Compute rent escalations from INDEC inflation data: the full\n" +
		"schedule for a lease, the next update, and the latest published months.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSeries, "series", "", "Series ID (default: config, then IPC nivel general)")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "Use the local cache only, never hit the INDEC API")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&flagDump, "dump", false, "Dump raw engine output to stderr")
	_ = rootCmd.PersistentFlags().MarkHidden("dump")
}

// addLeaseFlags registers the lease-shape flags on schedule and next.
func addLeaseFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&flagRent, "rent", 0, "Current monthly rent in ARS")
	cmd.Flags().StringVar(&flagStart, "start", "", "Lease start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flagEnd, "end", "", "Lease end date (default: start plus 24 months)")
	cmd.Flags().IntVar(&flagFrequency, "frequency", 0, "Months between updates (default: config)")
	cmd.Flags().Float64Var(&flagOverride, "override", 0, "Agreed rent for the next update, skipping the index")
	cmd.Flags().StringVar(&flagLastIncrement, "last-increment", "", "Date the rent was last updated (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("rent")
	_ = cmd.MarkFlagRequired("start")
}

// leaseFromFlags builds the engine input from the lease-shape flags.
func leaseFromFlags() (services.LeaseTerms, error) {
	if flagRent <= 0 {
		return services.LeaseTerms{}, fmt.Errorf("--rent must be positive")
	}
	start, err := time.Parse("2006-01-02", flagStart)
	if err != nil {
		return services.LeaseTerms{}, fmt.Errorf("parsing --start: %w", err)
	}

	lease := services.LeaseTerms{Rent: flagRent, LeaseStart: start}
	if flagEnd != "" {
		end, err := time.Parse("2006-01-02", flagEnd)
		if err != nil {
			return services.LeaseTerms{}, fmt.Errorf("parsing --end: %w", err)
		}
		lease.LeaseEnd = &end
	}
	if flagLastIncrement != "" {
		last, err := time.Parse("2006-01-02", flagLastIncrement)
		if err != nil {
			return services.LeaseTerms{}, fmt.Errorf("parsing --last-increment: %w", err)
		}
		lease.LastIncrementDate = &last
	}
	if flagOverride > 0 {
		lease.RentOverride = &flagOverride
	}
	return lease, nil
}

// resolveSeries picks the series to operate on: flag, then config, then the
// IPC nivel general.
func resolveSeries(cfg Config) string {
	if flagSeries != "" {
		return flagSeries
	}
	if cfg.Indec.SeriesID != "" {
		return cfg.Indec.SeriesID
	}
	return constants.IPCSeriesID
}

// resolveFrequency picks the update cadence: flag, then config, then the
// statutory four months.
func resolveFrequency(cfg Config) int {
	if flagFrequency > 0 {
		return flagFrequency
	}
	if cfg.General.FrequencyMonths > 0 {
		return cfg.General.FrequencyMonths
	}
	return constants.DefaultFrequencyMonths
}

// newSeriesClient builds an INDEC client honoring the config's base URL.
func newSeriesClient(cfg Config, seriesID string) *indec.Client {
	options := []indec.Option{indec.WithSeriesID(seriesID)}
	if cfg.Indec.BaseURL != "" {
		options = append(options, indec.WithBaseURL(cfg.Indec.BaseURL))
	}
	return indec.NewClient(options...)
}

// loadHistory is the shared data loading path used by all commands. It reads
// the sqlite cache first and falls back to the API when the cache is missing
// or empty, saving what it fetched for next time.
func loadHistory(ctx context.Context, cfg Config, seriesID string) ([]services.IndexEntry, error) {
	cache, cacheErr := OpenCache(CachePath())
	if cacheErr == nil {
		defer cache.Close()

		cached, err := cache.LoadEntries(seriesID)
		if err == nil && len(cached) > 0 {
			return cached, nil
		}
	} else if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Cache unavailable: %v\n", cacheErr)
	}

	if flagOffline {
		return nil, fmt.Errorf("no cached data for series %s, run \"propflow sync\" first", seriesID)
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Fetching series %s...\n", seriesID)
	}
	fetched, err := newSeriesClient(cfg, seriesID).FetchSeries(ctx)
	if err != nil {
		return nil, err
	}
	entries := toIndexEntries(fetched)

	if cacheErr == nil {
		if err := cache.SaveEntries(seriesID, entries); err != nil && !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Cache write failed: %v\n", err)
		}
	}
	return entries, nil
}

func toIndexEntries(fetched []indec.SeriesEntry) []services.IndexEntry {
	entries := make([]services.IndexEntry, 0, len(fetched))
	for _, entry := range fetched {
		entries = append(entries, services.IndexEntry{Month: entry.Month, Value: entry.Value})
	}
	return entries
}
