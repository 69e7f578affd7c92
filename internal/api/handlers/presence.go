package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "workclock-backend/internal/errors"
	"workclock-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PresenceHandler handles HTTP requests for presence views
type PresenceHandler struct {
	presenceService *service.PresenceService
	defaultBoardID  string
}

// NewPresenceHandler creates a new presence handler
func NewPresenceHandler(presenceService *service.PresenceService, defaultBoardID string) *PresenceHandler {
	return &PresenceHandler{
		presenceService: presenceService,
		defaultBoardID:  defaultBoardID,
	}
}

// RefreshRequest is the body of a presence refresh trigger
type RefreshRequest struct {
	Event string `json:"event" binding:"required"`
	Board string `json:"board"`
}

// GetPresence returns the presence page for a board
// @Summary Get presence view
// @Description Get who is working right now: each person's status, local time and workday progress, sorted, filtered and paged
// @Tags presence
// @Accept json
// @Produce json
// @Param board query string false "Board ID (falls back to the configured default)"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Rows per page"
// @Param sortBy query string false "Sort criteria: name, status or timezone"
// @Param sortDir query string false "Sort direction: asc or desc"
// @Param onlineOnly query bool false "Keep only people who are working or in their last hour"
// @Success 200 {object} view.Page "Presence page"
// @Failure 404 {object} ErrorResponse "Board not found"
// @Failure 502 {object} ErrorResponse "Directory unavailable and no cached snapshot"
// @Router /presence [get]
func (h *PresenceHandler) GetPresence(c *gin.Context) {
	boardID := c.DefaultQuery("board", h.defaultBoardID)

	q := service.ViewQuery{
		SortBy:    c.Query("sortBy"),
		Direction: c.Query("sortDir"),
	}
	if raw := c.Query("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			q.Page = page
		}
	}
	if raw := c.Query("pageSize"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil {
			q.PageSize = size
		}
	}
	if raw := c.Query("onlineOnly"); raw != "" {
		if online, err := strconv.ParseBool(raw); err == nil {
			q.OnlineOnly = &online
		}
	}

	page, err := h.presenceService.GetPresence(c.Request.Context(), boardID, q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Refresh triggers a directory refresh
// @Summary Refresh presence data
// @Description Refresh the directory snapshot for a board. The refresh is synchronous: when the call returns, a following presence read reflects it
// @Tags presence
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh trigger"
// @Success 200 {object} map[string]interface{} "Refresh result"
// @Failure 400 {object} ErrorResponse "Unknown refresh event"
// @Failure 404 {object} ErrorResponse "Board not found"
// @Security BearerAuth
// @Router /presence/refresh [post]
func (h *PresenceHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if !service.RefreshEvent(req.Event).IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown refresh event"})
		return
	}

	boardID := req.Board
	if boardID == "" {
		boardID = h.defaultBoardID
	}

	count, err := h.presenceService.Sync(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event":  req.Event,
		"board":  boardID,
		"people": count,
	})
}

// respondError maps service errors to HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrBoardNotFound),
		errors.Is(err, apperrors.ErrOverrideNotFound),
		apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsInvalidTimeZone(err), apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrInvalidSortCriteria),
		errors.Is(err, apperrors.ErrInvalidSortDirection),
		errors.Is(err, apperrors.ErrInvalidPaginationParams):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDirectoryNotConfigured):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	case apperrors.IsPersistence(err):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	}
}
