package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ingagustinmarcel/prop-flow/internal/client/indec"
	"github.com/ingagustinmarcel/prop-flow/internal/constants"
	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/mocks"
	"github.com/ingagustinmarcel/prop-flow/internal/services"
	"github.com/ingagustinmarcel/prop-flow/internal/testutil"
)

func TestIndexHandler_ListIndexEntries_RangeValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		query         string
		expectedError string
	}{
		{
			name:          "from without to",
			query:         "?series_id=" + constants.IPCSeriesID + "&from=2025-01",
			expectedError: "Both from and to are required",
		},
		{
			name:          "to without from",
			query:         "?series_id=" + constants.IPCSeriesID + "&to=2025-06",
			expectedError: "Both from and to are required",
		},
		{
			name:          "unparseable from month",
			query:         "?series_id=" + constants.IPCSeriesID + "&from=enero&to=2025-06",
			expectedError: "Invalid from month",
		},
		{
			name:          "inverted range",
			query:         "?series_id=" + constants.IPCSeriesID + "&from=2025-06&to=2025-01",
			expectedError: "Failed to retrieve index entries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewIndexHandler(newMockedCommonServices(mocks.NewMockQuerier(ctrl)))

			c, w := newAuthedTestContext(t, http.MethodGet, "/index-entries"+tt.query, nil)
			handler.ListIndexEntries(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			response := decodeBody(t, w)
			assert.Contains(t, response["error"], tt.expectedError)
		})
	}
}

func TestIndexHandler_ListIndexEntries_Range(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []db.IndexEntry{
		testutil.CreateTestIndexEntry(constants.IPCSeriesID, from, 0.022),
		testutil.CreateTestIndexEntry(constants.IPCSeriesID, from.AddDate(0, 1, 0), 0.024),
		testutil.CreateTestIndexEntry(constants.IPCSeriesID, from.AddDate(0, 2, 0), 0.037),
	}

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		ListIndexEntriesInRange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.ListIndexEntriesInRangeParams) ([]db.IndexEntry, error) {
			assert.Equal(t, constants.IPCSeriesID, arg.SeriesID)
			assert.Equal(t, from, arg.FromMonth.Time)
			return rows, nil
		}).
		Times(1)

	handler := NewIndexHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodGet, "/index-entries?series_id="+constants.IPCSeriesID+"&from=2025-01&to=2025-03", nil)
	handler.ListIndexEntries(c)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "list", response["object"])

	data, ok := response["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 3)

	first, ok := data[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "index_entry", first["object"])
	assert.Equal(t, "2025-01", first["month"])
	assert.InDelta(t, 0.022, first["value"], 0.0001)
}

func TestIndexHandler_GetLatestIndexEntry_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		GetLatestIndexEntry(gomock.Any(), constants.IPCSeriesID).
		Return(db.IndexEntry{}, pgx.ErrNoRows).
		Times(1)

	handler := NewIndexHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodGet, "/index-entries/latest?series_id="+constants.IPCSeriesID, nil)
	handler.GetLatestIndexEntry(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	response := decodeBody(t, w)
	assert.Contains(t, response["error"], "No index entries stored")
}

func TestIndexHandler_UpsertIndexEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("rejects a bad month", func(t *testing.T) {
		handler := NewIndexHandler(newMockedCommonServices(mocks.NewMockQuerier(ctrl)))

		c, w := newAuthedTestContext(t, http.MethodPost, "/index-entries", UpsertIndexEntryRequest{
			SeriesID: constants.IPCSeriesID,
			Month:    "marzo-2025",
			Value:    0.037,
		})
		handler.UpsertIndexEntry(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		response := decodeBody(t, w)
		assert.Contains(t, response["error"], "Invalid month")
	})

	t.Run("rejects an implausible value", func(t *testing.T) {
		handler := NewIndexHandler(newMockedCommonServices(mocks.NewMockQuerier(ctrl)))

		c, w := newAuthedTestContext(t, http.MethodPost, "/index-entries", UpsertIndexEntryRequest{
			SeriesID: constants.IPCSeriesID,
			Month:    "2025-03",
			Value:    37,
		})
		handler.UpsertIndexEntry(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		response := decodeBody(t, w)
		assert.Contains(t, response["error"], "Failed to store index entry")
	})

	t.Run("stores the observation", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			UpsertIndexEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.UpsertIndexEntryParams) (db.IndexEntry, error) {
				assert.Equal(t, constants.IPCSeriesID, arg.SeriesID)
				assert.Equal(t, db.IndexSourceManual, arg.Source)
				assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), arg.EntryMonth.Time)
				entry := testutil.CreateTestIndexEntry(arg.SeriesID, arg.EntryMonth.Time, 0.037)
				entry.Source = db.IndexSourceManual
				return entry, nil
			}).
			Times(1)

		handler := NewIndexHandler(newMockedCommonServices(mockQuerier))

		c, w := newAuthedTestContext(t, http.MethodPost, "/index-entries", UpsertIndexEntryRequest{
			SeriesID: constants.IPCSeriesID,
			Month:    "2025-03",
			Value:    0.037,
		})
		handler.UpsertIndexEntry(c)

		assert.Equal(t, http.StatusOK, w.Code)
		response := decodeBody(t, w)
		assert.Equal(t, "index_entry", response["object"])
		assert.Equal(t, "2025-03", response["month"])
		assert.Equal(t, "manual", response["source"])
	})
}

func TestIndexHandler_DeleteIndexEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryID := uuid.New()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		DeleteIndexEntry(gomock.Any(), entryID).
		Return(nil).
		Times(1)

	handler := NewIndexHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodDelete, "/index-entries/"+entryID.String(), nil)
	c.Params = []gin.Param{{Key: "entry_id", Value: entryID.String()}}
	handler.DeleteIndexEntry(c)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "Index entry deleted", response["message"])
}

func TestIndexHandler_SyncIndexSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	fetcher := new(testutil.MockSeriesFetcher)
	fetcher.On("FetchSeries", mock.Anything).Return([]indec.SeriesEntry{
		{Month: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Value: 0.022},
		{Month: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Value: 0.024},
	}, nil)
	fetcher.On("SeriesID").Return(constants.IPCSeriesID)

	mockQuerier.EXPECT().
		UpsertIndexEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpsertIndexEntryParams) (db.IndexEntry, error) {
			return testutil.CreateTestIndexEntry(arg.SeriesID, arg.EntryMonth.Time, 0), nil
		}).
		Times(2)

	index := services.NewIndexService(mockQuerier, fetcher)
	common := NewCommonServices(CommonServicesConfig{
		DB:           mockQuerier,
		Logger:       zap.NewNop(),
		IndexService: index,
	})
	handler := NewIndexHandler(common)

	c, w := newAuthedTestContext(t, http.MethodPost, "/index-entries/sync", nil)
	handler.SyncIndexSeries(c)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "sync_result", response["object"])
	assert.Equal(t, constants.IPCSeriesID, response["series_id"])
	assert.InDelta(t, 2, response["fetched"], 0.001)
	assert.InDelta(t, 2, response["upserted"], 0.001)
	assert.Equal(t, "2025-02", response["latest_month"])
}
