package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
)

// IndexHandler exposes the stored inflation index series.
type IndexHandler struct {
	common *CommonServices
}

func NewIndexHandler(common *CommonServices) *IndexHandler {
	return &IndexHandler{common: common}
}

type UpsertIndexEntryRequest struct {
	SeriesID string  `json:"series_id,omitempty"`
	Month    string  `json:"month" binding:"required"`
	Value    float64 `json:"value" binding:"required"`
}

// IndexEntryResponse represents the API shape of one monthly index
// observation. Value is the monthly variation as a decimal fraction.
type IndexEntryResponse struct {
	ID        string  `json:"id"`
	Object    string  `json:"object"`
	SeriesID  string  `json:"series_id"`
	Month     string  `json:"month"`
	Value     float64 `json:"value"`
	Source    string  `json:"source"`
	CreatedAt int64   `json:"created_at"`
}

// SyncResultResponse reports the outcome of an index sync run.
type SyncResultResponse struct {
	Object      string `json:"object"`
	SeriesID    string `json:"series_id"`
	Fetched     int    `json:"fetched"`
	Upserted    int    `json:"upserted"`
	LatestMonth string `json:"latest_month,omitempty"`
}

// ListIndexEntries godoc
// @Summary List index entries
// @Description Lists stored index observations, oldest first. Pass from and to (YYYY-MM) to bound the range.
// @Tags index
// @Accept json
// @Produce json
// @Param series_id query string false "Series ID, defaults to the configured series"
// @Param from query string false "Start month (YYYY-MM)"
// @Param to query string false "End month (YYYY-MM)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /index-entries [get]
func (h *IndexHandler) ListIndexEntries(c *gin.Context) {
	seriesID := c.Query("series_id")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	var entries []db.IndexEntry
	var err error

	if fromStr != "" || toStr != "" {
		if fromStr == "" || toStr == "" {
			sendError(c, http.StatusBadRequest, "Both from and to are required for a range query", nil)
			return
		}
		from, parseErr := helpers.ParseYearMonth(fromStr)
		if parseErr != nil {
			sendError(c, http.StatusBadRequest, "Invalid from month, expected YYYY-MM", parseErr)
			return
		}
		to, parseErr := helpers.ParseYearMonth(toStr)
		if parseErr != nil {
			sendError(c, http.StatusBadRequest, "Invalid to month, expected YYYY-MM", parseErr)
			return
		}
		entries, err = h.common.IndexService.HistoryInRange(c.Request.Context(), seriesID, from, to)
	} else {
		entries, err = h.common.IndexService.ListEntries(c.Request.Context(), seriesID)
	}
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to retrieve index entries", err)
		return
	}

	response := make([]IndexEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = toIndexEntryResponse(entry)
	}

	sendList(c, response)
}

// GetLatestIndexEntry godoc
// @Summary Get the latest index entry
// @Description Returns the most recent stored observation for a series
// @Tags index
// @Accept json
// @Produce json
// @Param series_id query string false "Series ID, defaults to the configured series"
// @Success 200 {object} IndexEntryResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /index-entries/latest [get]
func (h *IndexHandler) GetLatestIndexEntry(c *gin.Context) {
	entry, err := h.common.IndexService.LatestEntry(c.Request.Context(), c.Query("series_id"))
	if err != nil {
		handleDBError(c, err, "No index entries stored for series")
		return
	}

	sendSuccess(c, http.StatusOK, toIndexEntryResponse(entry))
}

// UpsertIndexEntry godoc
// @Summary Upsert a manual index entry
// @Description Stores a hand-loaded monthly observation, replacing any existing value for that month
// @Tags index
// @Accept json
// @Produce json
// @Param request body UpsertIndexEntryRequest true "Observation"
// @Success 200 {object} IndexEntryResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /index-entries [post]
func (h *IndexHandler) UpsertIndexEntry(c *gin.Context) {
	var req UpsertIndexEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	month, err := helpers.ParseYearMonth(req.Month)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid month, expected YYYY-MM", err)
		return
	}

	entry, err := h.common.IndexService.UpsertManualEntry(c.Request.Context(), req.SeriesID, month, req.Value)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to store index entry", err)
		return
	}

	sendSuccess(c, http.StatusOK, toIndexEntryResponse(entry))
}

// DeleteIndexEntry godoc
// @Summary Delete an index entry
// @Description Removes a stored observation
// @Tags index
// @Accept json
// @Produce json
// @Param entry_id path string true "Entry ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /index-entries/{entry_id} [delete]
func (h *IndexHandler) DeleteIndexEntry(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("entry_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid entry ID format", err)
		return
	}

	if err := h.common.IndexService.RemoveEntry(c.Request.Context(), entryID); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete index entry", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Index entry deleted")
}

// SyncIndexSeries godoc
// @Summary Sync the index series
// @Description Pulls the full published history from the INDEC API and upserts it into storage
// @Tags index
// @Accept json
// @Produce json
// @Success 200 {object} SyncResultResponse
// @Failure 500 {object} ErrorResponse
// @Security Bearer
// @Router /index-entries/sync [post]
func (h *IndexHandler) SyncIndexSeries(c *gin.Context) {
	result, err := h.common.IndexService.SyncSeries(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to sync index series", err)
		return
	}

	response := SyncResultResponse{
		Object:   "sync_result",
		SeriesID: result.SeriesID,
		Fetched:  result.Fetched,
		Upserted: result.Upserted,
	}
	if result.LatestMonth != nil {
		response.LatestMonth = helpers.FormatYearMonth(*result.LatestMonth)
	}

	sendSuccess(c, http.StatusOK, response)
}

func toIndexEntryResponse(e db.IndexEntry) IndexEntryResponse {
	resp := IndexEntryResponse{
		ID:        e.ID.String(),
		Object:    "index_entry",
		SeriesID:  e.SeriesID,
		Value:     helpers.NumericToFloat64(e.Value),
		Source:    string(e.Source),
		CreatedAt: e.CreatedAt.Time.Unix(),
	}
	if e.EntryMonth.Valid {
		resp.Month = helpers.FormatYearMonth(e.EntryMonth.Time)
	}
	return resp
}
