package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
)

// APIKeyHandler manages workspace API keys.
type APIKeyHandler struct {
	common *CommonServices
}

func NewAPIKeyHandler(common *CommonServices) *APIKeyHandler {
	return &APIKeyHandler{common: common}
}

type CreateAPIKeyRequest struct {
	Name        string `json:"name" binding:"required"`
	AccessLevel string `json:"access_level" binding:"required"`
	// ExpiresInDays of zero means the key never expires.
	ExpiresInDays int `json:"expires_in_days,omitempty"`
}

// APIKeyResponse represents a stored key. The full secret appears only in
// CreatedAPIKeyResponse, once.
type APIKeyResponse struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Name        string `json:"name"`
	KeyPrefix   string `json:"key_prefix"`
	AccessLevel string `json:"access_level"`
	ExpiresAt   *int64 `json:"expires_at,omitempty"`
	LastUsedAt  *int64 `json:"last_used_at,omitempty"`
	Revoked     bool   `json:"revoked"`
	CreatedAt   int64  `json:"created_at"`
}

// CreatedAPIKeyResponse carries the full key exactly once, at creation.
type CreatedAPIKeyResponse struct {
	APIKeyResponse
	Key string `json:"key"`
}

// CreateAPIKey godoc
// @Summary Create an API key
// @Description Creates an API key scoped to the current workspace. The full key is returned only in this response.
// @Tags api-keys
// @Accept json
// @Produce json
// @Param request body CreateAPIKeyRequest true "Key details"
// @Success 201 {object} CreatedAPIKeyResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /api-keys [post]
func (h *APIKeyHandler) CreateAPIKey(c *gin.Context) {
	var req CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	level := db.AccessLevel(req.AccessLevel)
	switch level {
	case db.AccessLevelRead, db.AccessLevelWrite, db.AccessLevelAdmin:
	default:
		sendError(c, http.StatusBadRequest, "Invalid access level", nil)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	fullKey, keyPrefix, err := helpers.GenerateAPIKey()
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to generate API key", err)
		return
	}

	keyHash, err := helpers.HashAPIKey(fullKey)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to hash API key", err)
		return
	}

	var expiresAt pgtype.Timestamptz
	if req.ExpiresInDays > 0 {
		expiresAt = pgtype.Timestamptz{
			Time:  time.Now().AddDate(0, 0, req.ExpiresInDays),
			Valid: true,
		}
	}

	key, err := h.common.GetDB().CreateAPIKey(c.Request.Context(), db.CreateAPIKeyParams{
		WorkspaceID: workspaceID,
		Name:        req.Name,
		KeyPrefix:   keyPrefix,
		KeyHash:     keyHash,
		AccessLevel: level,
		ExpiresAt:   expiresAt,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create API key", err)
		return
	}

	sendSuccess(c, http.StatusCreated, CreatedAPIKeyResponse{
		APIKeyResponse: toAPIKeyResponse(key),
		Key:            fullKey,
	})
}

// ListAPIKeys godoc
// @Summary List API keys
// @Description Lists the API keys of the current workspace. Secrets are never returned.
// @Tags api-keys
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /api-keys [get]
func (h *APIKeyHandler) ListAPIKeys(c *gin.Context) {
	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	keys, err := h.common.GetDB().ListAPIKeysByWorkspace(c.Request.Context(), workspaceID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve API keys", err)
		return
	}

	response := make([]APIKeyResponse, len(keys))
	for i, key := range keys {
		response[i] = toAPIKeyResponse(key)
	}

	sendList(c, response)
}

// RevokeAPIKey godoc
// @Summary Revoke an API key
// @Description Revokes an API key. Revoked keys stop authenticating immediately.
// @Tags api-keys
// @Accept json
// @Produce json
// @Param key_id path string true "API key ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /api-keys/{key_id} [delete]
func (h *APIKeyHandler) RevokeAPIKey(c *gin.Context) {
	keyID, err := uuid.Parse(c.Param("key_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid API key ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	if err := h.common.GetDB().RevokeAPIKey(c.Request.Context(), db.RevokeAPIKeyParams{
		ID:          keyID,
		WorkspaceID: workspaceID,
	}); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to revoke API key", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "API key revoked")
}

func toAPIKeyResponse(k db.ApiKey) APIKeyResponse {
	resp := APIKeyResponse{
		ID:          k.ID.String(),
		Object:      "api_key",
		Name:        k.Name,
		KeyPrefix:   k.KeyPrefix,
		AccessLevel: string(k.AccessLevel),
		Revoked:     k.Revoked,
		CreatedAt:   k.CreatedAt.Time.Unix(),
	}
	if k.ExpiresAt.Valid {
		expires := k.ExpiresAt.Time.Unix()
		resp.ExpiresAt = &expires
	}
	if k.LastUsedAt.Valid {
		lastUsed := k.LastUsedAt.Time.Unix()
		resp.LastUsedAt = &lastUsed
	}
	return resp
}
