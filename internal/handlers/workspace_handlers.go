package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
)

// WorkspaceHandler handles workspace and membership operations.
type WorkspaceHandler struct {
	common *CommonServices
}

func NewWorkspaceHandler(common *CommonServices) *WorkspaceHandler {
	return &WorkspaceHandler{common: common}
}

type CreateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
}

type AddWorkspaceMemberRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	Role      string `json:"role" binding:"required"`
}

// WorkspaceResponse represents the API shape of a workspace.
type WorkspaceResponse struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	AccountID   string `json:"account_id"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// WorkspaceMemberResponse represents a membership row.
type WorkspaceMemberResponse struct {
	Object      string `json:"object"`
	WorkspaceID string `json:"workspace_id"`
	AccountID   string `json:"account_id"`
	Role        string `json:"role"`
	CreatedAt   int64  `json:"created_at"`
}

// CreateWorkspace godoc
// @Summary Create a workspace
// @Description Creates a workspace owned by the authenticated account
// @Tags workspaces
// @Accept json
// @Produce json
// @Param request body CreateWorkspaceRequest true "Workspace details"
// @Success 201 {object} WorkspaceResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /workspaces [post]
func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	var req CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	accountID, err := requestAccountID(c)
	if err != nil {
		sendError(c, http.StatusUnauthorized, "No authenticated account", err)
		return
	}

	workspace, err := h.common.GetDB().CreateWorkspace(c.Request.Context(), db.CreateWorkspaceParams{
		AccountID:   accountID,
		Name:        req.Name,
		Description: pgtype.Text{String: req.Description, Valid: req.Description != ""},
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create workspace", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toWorkspaceResponse(workspace))
}

// GetWorkspace godoc
// @Summary Get a workspace
// @Description Retrieves a workspace the caller owns or belongs to
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} WorkspaceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /workspaces/{workspace_id} [get]
func (h *WorkspaceHandler) GetWorkspace(c *gin.Context) {
	workspaceID, err := uuid.Parse(c.Param("workspace_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID format", err)
		return
	}

	workspace, err := h.common.GetDB().GetWorkspace(c.Request.Context(), workspaceID)
	if err != nil {
		handleDBError(c, err, "Workspace not found")
		return
	}

	if !h.hasAccess(c, workspace) {
		sendError(c, http.StatusForbidden, "Access denied to workspace", nil)
		return
	}

	sendSuccess(c, http.StatusOK, toWorkspaceResponse(workspace))
}

// ListWorkspaces godoc
// @Summary List workspaces
// @Description Lists the workspaces owned by the authenticated account
// @Tags workspaces
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Security Bearer
// @Router /workspaces [get]
func (h *WorkspaceHandler) ListWorkspaces(c *gin.Context) {
	accountID, err := requestAccountID(c)
	if err != nil {
		sendError(c, http.StatusUnauthorized, "No authenticated account", err)
		return
	}

	workspaces, err := h.common.GetDB().ListWorkspacesByAccount(c.Request.Context(), accountID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve workspaces", err)
		return
	}

	response := make([]WorkspaceResponse, len(workspaces))
	for i, workspace := range workspaces {
		response[i] = toWorkspaceResponse(workspace)
	}

	sendList(c, response)
}

// ListMembers godoc
// @Summary List workspace members
// @Description Lists the membership rows of a workspace
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security Bearer
// @Router /workspaces/{workspace_id}/members [get]
func (h *WorkspaceHandler) ListMembers(c *gin.Context) {
	workspaceID, err := uuid.Parse(c.Param("workspace_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID format", err)
		return
	}

	workspace, err := h.common.GetDB().GetWorkspace(c.Request.Context(), workspaceID)
	if err != nil {
		handleDBError(c, err, "Workspace not found")
		return
	}

	if !h.hasAccess(c, workspace) {
		sendError(c, http.StatusForbidden, "Access denied to workspace", nil)
		return
	}

	members, err := h.common.GetDB().ListWorkspaceMembers(c.Request.Context(), workspaceID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve members", err)
		return
	}

	response := make([]WorkspaceMemberResponse, len(members))
	for i, member := range members {
		response[i] = toWorkspaceMemberResponse(member)
	}

	sendList(c, response)
}

// AddMember godoc
// @Summary Add a workspace member
// @Description Grants an account membership in a workspace. Only the owning account may add members.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param request body AddWorkspaceMemberRequest true "Member details"
// @Success 201 {object} WorkspaceMemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security Bearer
// @Router /workspaces/{workspace_id}/members [post]
func (h *WorkspaceHandler) AddMember(c *gin.Context) {
	workspaceID, err := uuid.Parse(c.Param("workspace_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID format", err)
		return
	}

	var req AddWorkspaceMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	memberAccountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid account ID format", err)
		return
	}

	role := db.MemberRole(req.Role)
	switch role {
	case db.MemberRoleOwner, db.MemberRoleManager, db.MemberRoleViewer:
	default:
		sendError(c, http.StatusBadRequest, "Invalid member role", nil)
		return
	}

	workspace, err := h.common.GetDB().GetWorkspace(c.Request.Context(), workspaceID)
	if err != nil {
		handleDBError(c, err, "Workspace not found")
		return
	}

	accountID, err := requestAccountID(c)
	if err != nil {
		sendError(c, http.StatusUnauthorized, "No authenticated account", err)
		return
	}
	if workspace.AccountID != accountID {
		sendError(c, http.StatusForbidden, "Only the workspace owner can add members", nil)
		return
	}

	member, err := h.common.GetDB().AddWorkspaceMember(c.Request.Context(), db.AddWorkspaceMemberParams{
		WorkspaceID: workspaceID,
		AccountID:   memberAccountID,
		MemberRole:  role,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to add member", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toWorkspaceMemberResponse(member))
}

// hasAccess reports whether the authenticated account owns or belongs to the
// workspace.
func (h *WorkspaceHandler) hasAccess(c *gin.Context, workspace db.Workspace) bool {
	accountID, err := requestAccountID(c)
	if err != nil {
		return false
	}
	if workspace.AccountID == accountID {
		return true
	}
	_, err = h.common.GetDB().GetWorkspaceMember(c.Request.Context(), db.GetWorkspaceMemberParams{
		WorkspaceID: workspace.ID,
		AccountID:   accountID,
	})
	return err == nil
}

func toWorkspaceResponse(w db.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:          w.ID.String(),
		Object:      "workspace",
		Name:        w.Name,
		Description: w.Description.String,
		AccountID:   w.AccountID.String(),
		CreatedAt:   w.CreatedAt.Time.Unix(),
		UpdatedAt:   w.UpdatedAt.Time.Unix(),
	}
}

func toWorkspaceMemberResponse(m db.WorkspaceMember) WorkspaceMemberResponse {
	return WorkspaceMemberResponse{
		Object:      "workspace_member",
		WorkspaceID: m.WorkspaceID.String(),
		AccountID:   m.AccountID.String(),
		Role:        string(m.MemberRole),
		CreatedAt:   m.CreatedAt.Time.Unix(),
	}
}
