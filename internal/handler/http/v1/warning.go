package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snowshield/snow_shield_api/internal/models"
)

// @Summary Issue a zone warning
// @Description Issue a weather warning for one or more pincodes. Admin only.
// @Tags Warnings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param warning body CreateWarningRequest true "Warning creation request"
// @Success 201 {object} WarningResponse
// @Failure 400 {object} map[string]string "Invalid request or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /warnings [post]
func (h *Handler) createWarning(c *gin.Context) {
	log := h.logger.WithField("method", "createWarning")
	session := sessionFromContext(c)

	var input CreateWarningRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	warning := &models.Warning{
		Title:            input.Title,
		Description:      input.Description,
		Severity:         input.Severity,
		AffectedPincodes: input.AffectedPincodes,
		ExpiryTime:       input.ExpiryTime,
	}

	if err := h.warningService.CreateWarning(c.Request.Context(), session, warning); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToWarningResponse(warning))
}

// @Summary List warnings for a pincode
// @Description List warnings whose affected zone contains the given pincode. With active=true, warnings past their expiry time are filtered out.
// @Tags Warnings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pincode query string true "Pincode"
// @Param active query bool false "Return only warnings still in effect"
// @Success 200 {array} WarningResponse
// @Failure 400 {object} map[string]string "Missing pincode"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /warnings [get]
func (h *Handler) listWarnings(c *gin.Context) {
	log := h.logger.WithField("method", "listWarnings")
	pincode := c.Query("pincode")

	var warnings []*models.Warning
	var err error
	if c.Query("active") == "true" {
		warnings, err = h.warningService.ActiveWarningsForPincode(c.Request.Context(), pincode)
	} else {
		warnings, err = h.warningService.WarningsForPincode(c.Request.Context(), pincode)
	}
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToWarningResponses(warnings))
}

// @Summary List all active warnings
// @Description List every warning still flagged active, across all zones. Admin only.
// @Tags Warnings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} WarningResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /warnings/active [get]
func (h *Handler) listActiveWarnings(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveWarnings")
	session := sessionFromContext(c)

	warnings, err := h.warningService.ListActiveWarnings(c.Request.Context(), session)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToWarningResponses(warnings))
}

// @Summary Resolve a warning
// @Description Mark a warning as resolved. Resolving an already resolved warning is a no-op. Admin only.
// @Tags Warnings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Warning ID"
// @Success 200 {object} map[string]string "Status resolved"
// @Failure 400 {object} map[string]string "Invalid warning ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Warning not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /warnings/{id}/resolve [post]
func (h *Handler) resolveWarning(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid warning ID"})
		return
	}
	log := h.logger.WithField("method", "resolveWarning").WithField("id", id)
	session := sessionFromContext(c)

	if err := h.warningService.ResolveWarning(c.Request.Context(), session, id); err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "resolved"})
}
