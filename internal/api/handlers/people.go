package handlers

import (
	"net/http"

	"workclock-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PeopleHandler handles HTTP requests for the raw directory listing
type PeopleHandler struct {
	presenceService *service.PresenceService
	defaultBoardID  string
}

// NewPeopleHandler creates a new people handler
func NewPeopleHandler(presenceService *service.PresenceService, defaultBoardID string) *PeopleHandler {
	return &PeopleHandler{
		presenceService: presenceService,
		defaultBoardID:  defaultBoardID,
	}
}

// ListPeople returns the people assigned to a board
// @Summary List board people
// @Description List the people assigned to a board as reported by the directory, served from the cache when the directory is unreachable
// @Tags people
// @Accept json
// @Produce json
// @Param board query string false "Board ID (falls back to the configured default)"
// @Success 200 {array} presence.Person "Assigned people"
// @Failure 404 {object} ErrorResponse "Board not found"
// @Router /people [get]
func (h *PeopleHandler) ListPeople(c *gin.Context) {
	boardID := c.DefaultQuery("board", h.defaultBoardID)

	people, err := h.presenceService.ListPeople(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, people)
}
