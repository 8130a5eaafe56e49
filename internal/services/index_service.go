package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ingagustinmarcel/prop-flow/internal/client/indec"
	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
)

// SeriesFetcher is the slice of the INDEC client the index service depends on
type SeriesFetcher interface {
	FetchSeries(ctx context.Context) ([]indec.SeriesEntry, error)
	SeriesID() string
}

// IndexService manages the stored inflation index history and keeps it in
// sync with the published INDEC series.
type IndexService struct {
	queries db.Querier
	fetcher SeriesFetcher
	logger  *zap.Logger
}

// NewIndexService creates a new index service
func NewIndexService(queries db.Querier, fetcher SeriesFetcher) *IndexService {
	return &IndexService{
		queries: queries,
		fetcher: fetcher,
		logger:  zap.L(),
	}
}

// SyncResult reports the outcome of a series sync
type SyncResult struct {
	SeriesID    string     `json:"series_id"`
	Fetched     int        `json:"fetched"`
	Upserted    int        `json:"upserted"`
	LatestMonth *time.Time `json:"latest_month,omitempty"`
}

// History returns the stored index entries for a series as engine input,
// oldest first. An empty series ID selects the configured default.
func (s *IndexService) History(ctx context.Context, seriesID string) ([]IndexEntry, error) {
	rows, err := s.queries.ListIndexEntries(ctx, s.resolveSeriesID(seriesID))
	if err != nil {
		return nil, fmt.Errorf("failed to list index entries: %w", err)
	}
	return mapIndexRows(rows), nil
}

// HistoryInRange returns stored entries between two months inclusive.
func (s *IndexService) HistoryInRange(ctx context.Context, seriesID string, from, to time.Time) ([]db.IndexEntry, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("invalid range: %s is after %s", helpers.FormatYearMonth(from), helpers.FormatYearMonth(to))
	}
	rows, err := s.queries.ListIndexEntriesInRange(ctx, db.ListIndexEntriesInRangeParams{
		SeriesID:  s.resolveSeriesID(seriesID),
		FromMonth: helpers.TimeToDate(helpers.FirstOfMonth(from)),
		ToMonth:   helpers.TimeToDate(helpers.FirstOfMonth(to)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list index entries in range: %w", err)
	}
	return rows, nil
}

// ListEntries returns the raw stored rows for a series, oldest first.
func (s *IndexService) ListEntries(ctx context.Context, seriesID string) ([]db.IndexEntry, error) {
	rows, err := s.queries.ListIndexEntries(ctx, s.resolveSeriesID(seriesID))
	if err != nil {
		return nil, fmt.Errorf("failed to list index entries: %w", err)
	}
	return rows, nil
}

// LatestEntry returns the most recent stored observation for a series.
func (s *IndexService) LatestEntry(ctx context.Context, seriesID string) (db.IndexEntry, error) {
	entry, err := s.queries.GetLatestIndexEntry(ctx, s.resolveSeriesID(seriesID))
	if err != nil {
		return db.IndexEntry{}, fmt.Errorf("failed to get latest index entry: %w", err)
	}
	return entry, nil
}

// UpsertManualEntry stores a hand-loaded observation. The value is a monthly
// variation as a decimal fraction (0.04 means 4%).
func (s *IndexService) UpsertManualEntry(ctx context.Context, seriesID string, month time.Time, value float64) (db.IndexEntry, error) {
	if value <= -1 || value >= 2 {
		return db.IndexEntry{}, fmt.Errorf("value %v is not a plausible monthly variation, expected a decimal fraction", value)
	}

	entry, err := s.queries.UpsertIndexEntry(ctx, db.UpsertIndexEntryParams{
		SeriesID:   s.resolveSeriesID(seriesID),
		EntryMonth: helpers.TimeToDate(helpers.FirstOfMonth(month)),
		Value:      helpers.Float64ToNumeric(value),
		Source:     db.IndexSourceManual,
	})
	if err != nil {
		return db.IndexEntry{}, fmt.Errorf("failed to upsert index entry: %w", err)
	}

	s.logger.Info("Stored manual index entry",
		zap.String("series_id", entry.SeriesID),
		zap.String("month", helpers.FormatYearMonth(entry.EntryMonth.Time)),
		zap.Float64("value", value))

	return entry, nil
}

// RemoveEntry deletes a stored observation by ID.
func (s *IndexService) RemoveEntry(ctx context.Context, entryID uuid.UUID) error {
	if err := s.queries.DeleteIndexEntry(ctx, entryID); err != nil {
		return fmt.Errorf("failed to delete index entry: %w", err)
	}
	return nil
}

// SyncSeries pulls the full published history from the INDEC API and upserts
// it into storage. Re-running is idempotent: published months never change
// value, and unpublished ones are simply absent.
func (s *IndexService) SyncSeries(ctx context.Context) (*SyncResult, error) {
	entries, err := s.fetcher.FetchSeries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch series: %w", err)
	}

	result := &SyncResult{
		SeriesID: s.fetcher.SeriesID(),
		Fetched:  len(entries),
	}

	for _, entry := range entries {
		stored, err := s.queries.UpsertIndexEntry(ctx, db.UpsertIndexEntryParams{
			SeriesID:   result.SeriesID,
			EntryMonth: helpers.TimeToDate(helpers.FirstOfMonth(entry.Month)),
			Value:      helpers.Float64ToNumeric(entry.Value),
			Source:     db.IndexSourceIndec,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upsert entry for %s: %w", helpers.FormatYearMonth(entry.Month), err)
		}
		result.Upserted++
		month := stored.EntryMonth.Time
		if result.LatestMonth == nil || month.After(*result.LatestMonth) {
			result.LatestMonth = &month
		}
	}

	s.logger.Info("Synced index series",
		zap.String("series_id", result.SeriesID),
		zap.Int("fetched", result.Fetched),
		zap.Int("upserted", result.Upserted))

	return result, nil
}

func (s *IndexService) resolveSeriesID(seriesID string) string {
	if seriesID != "" {
		return seriesID
	}
	return s.fetcher.SeriesID()
}

// mapIndexRows converts stored rows into the engine's input shape.
func mapIndexRows(rows []db.IndexEntry) []IndexEntry {
	entries := make([]IndexEntry, len(rows))
	for i, row := range rows {
		entries[i] = IndexEntry{
			Month: row.EntryMonth.Time,
			Value: helpers.NumericToFloat64(row.Value),
		}
	}
	return entries
}
