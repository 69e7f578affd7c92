package handlers

import (
	"net/http"

	"workclock-backend/internal/timezones"

	"github.com/gin-gonic/gin"
)

// TimezonesHandler handles HTTP requests for the timezone picker catalog
type TimezonesHandler struct {
	catalog *timezones.Catalog
}

// NewTimezonesHandler creates a new timezones handler
func NewTimezonesHandler(catalog *timezones.Catalog) *TimezonesHandler {
	return &TimezonesHandler{
		catalog: catalog,
	}
}

// ListTimezones returns the curated timezone list
// @Summary List timezones
// @Description List the curated timezone options offered by the picker
// @Tags timezones
// @Accept json
// @Produce json
// @Success 200 {array} timezones.Entry "Timezone options"
// @Router /timezones [get]
func (h *TimezonesHandler) ListTimezones(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Entries)
}
