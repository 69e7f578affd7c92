package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"workclock-backend/internal/service"
	"workclock-backend/internal/settings"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles HTTP requests for the preferences aggregate
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings returns the stored preferences
// @Summary Get settings
// @Description Get the preferences aggregate. A missing or unreadable stored document yields the defaults
// @Tags settings
// @Accept json
// @Produce json
// @Success 200 {object} settings.Preferences "Current preferences"
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	prefs, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// UpdateSettings merges a preferences document into the stored aggregate
// @Summary Update settings
// @Description Merge the given fields into the stored preferences and save the whole aggregate
// @Tags settings
// @Accept json
// @Produce json
// @Param preferences body settings.Preferences true "Preference fields to change"
// @Success 200 {object} settings.Preferences "Saved preferences"
// @Failure 400 {object} ErrorResponse "Invalid preferences document"
// @Security BearerAuth
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "could not read request body"})
		return
	}

	prefs, err := h.settingsService.Update(c.Request.Context(), json.RawMessage(raw))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// ListOverrides returns the per-person overrides
// @Summary List overrides
// @Description List the per-person schedule and timezone overrides keyed by person ID
// @Tags settings
// @Accept json
// @Produce json
// @Success 200 {object} map[string]settings.Override "Overrides by person ID"
// @Router /settings/overrides [get]
func (h *SettingsHandler) ListOverrides(c *gin.Context) {
	overrides, err := h.settingsService.ListOverrides(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overrides)
}

// PutOverride creates or replaces one override
// @Summary Save override
// @Description Create or replace the override for one person. The override wins over the person's directory timezone and the defaults
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Person ID"
// @Param override body settings.Override true "Override data"
// @Success 200 {object} settings.Override "Saved override"
// @Failure 400 {object} ErrorResponse "Invalid timezone or key"
// @Security BearerAuth
// @Router /settings/overrides/{key} [put]
func (h *SettingsHandler) PutOverride(c *gin.Context) {
	var ov settings.Override
	if err := c.ShouldBindJSON(&ov); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	saved, err := h.settingsService.PutOverride(c.Request.Context(), c.Param("key"), ov)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteOverride removes one override
// @Summary Delete override
// @Description Remove the override stored for one person
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Person ID"
// @Success 204 "Override removed"
// @Failure 404 {object} ErrorResponse "Override not found"
// @Security BearerAuth
// @Router /settings/overrides/{key} [delete]
func (h *SettingsHandler) DeleteOverride(c *gin.Context) {
	if err := h.settingsService.DeleteOverride(c.Request.Context(), c.Param("key")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
