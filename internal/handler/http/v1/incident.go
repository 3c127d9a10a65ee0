package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snowshield/snow_shield_api/internal/models"
	"github.com/snowshield/snow_shield_api/internal/service"
)

// @Summary Report a new incident
// @Description Report a new snow hazard incident, optionally with up to 5 photos. Accepts multipart/form-data.
// @Tags Incidents
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param type formData string true "Incident type (regular or SOS)"
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param pincode formData string true "Pincode"
// @Param location formData string false "Free-text location"
// @Param risk_level formData string false "Risk level (Low, Medium, High, Extreme)"
// @Param photos formData file false "Photos (jpeg/png, up to 5, 5 MB each)"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	log := h.logger.WithField("method", "createIncident")
	session := sessionFromContext(c)

	input := CreateIncidentRequest{
		Type:        c.PostForm("type"),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Pincode:     c.PostForm("pincode"),
		Location:    c.PostForm("location"),
		RiskLevel:   c.PostForm("risk_level"),
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photos, err := h.readPhotos(c)
	if err != nil {
		log.WithError(err).Warn("Failed to read uploaded photos")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo upload"})
		return
	}

	incident := &models.Incident{
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
		Pincode:     input.Pincode,
		Location:    input.Location,
		RiskLevel:   input.RiskLevel,
	}

	if err := h.incidentService.CreateIncident(c.Request.Context(), session, incident, photos); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// readPhotos вычитывает файлы из multipart-формы в порядке их передачи.
func (h *Handler) readPhotos(c *gin.Context) ([]service.PhotoUpload, error) {
	if c.ContentType() != "multipart/form-data" {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	files := form.File["photos"]
	photos := make([]service.PhotoUpload, 0, len(files))
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		photos = append(photos, service.PhotoUpload{
			Filename: header.Filename,
			Data:     data,
		})
	}
	return photos, nil
}

// @Summary List incidents
// @Description List incidents, SOS entries first, newest first within each group. Optional pincode filter. SOS entries are hidden from regular users.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pincode query string false "Filter by exact pincode"
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	session := sessionFromContext(c)

	var incidents []*models.Incident
	var err error
	if pincode := c.Query("pincode"); pincode != "" {
		incidents, err = h.incidentService.ListIncidentsByPincode(c.Request.Context(), session, pincode)
	} else {
		incidents, err = h.incidentService.ListIncidents(c.Request.Context(), session)
	}
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary List SOS alerts
// @Description List all SOS alerts, newest first. Admin and rescue team only.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/sos [get]
func (h *Handler) listSOSAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listSOSAlerts")
	session := sessionFromContext(c)

	incidents, err := h.incidentService.ListSOSAlerts(c.Request.Context(), session)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if incident == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update an incident
// @Description Partially update an incident. Author or admin only.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)
	session := sessionFromContext(c)

	var input UpdateIncidentRequest
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

	patch := service.IncidentPatch{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		RiskLevel:   input.RiskLevel,
	}

	incident, err := h.incidentService.UpdateIncident(c.Request.Context(), session, id, patch)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Delete an incident
// @Description Delete an incident by its ID. Author or admin only.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)
	session := sessionFromContext(c)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), session, id); err != nil {
		h.respondError(c, log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Resolve an SOS alert
// @Description Mark an SOS alert as resolved. Admin and rescue team only.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or not an SOS alert"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/resolve [post]
func (h *Handler) resolveSOS(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "resolveSOS").WithField("id", id)
	session := sessionFromContext(c)

	incident, err := h.incidentService.ResolveSOS(c.Request.Context(), session, id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}
