package v1

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/urban_incident_system/internal/config"
	"github.com/shenikar/urban_incident_system/internal/service"
)

const (
	serviceName    = "urban-incident-system"
	serviceVersion = "1.0.0"
)

type Handler struct {
	incidentService service.IncidentService
	heatmapService  service.HeatmapService
	userService     service.UserService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	heatmapService service.HeatmapService,
	userService service.UserService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService: incidentService,
		heatmapService:  heatmapService,
		userService:     userService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Upload incident photo
// @Description Upload a JPG/PNG photo (max 5MB) to object storage and get its public URL.
// @Tags Incidents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Incident photo"
// @Success 201 {object} UploadPhotoResponse
// @Failure 400 {object} ErrorResponse "Invalid file"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Storage unavailable"
// @Router /incidents/upload-photo [post]
func (h *Handler) uploadPhoto(c *gin.Context) {
	log := h.logger.WithField("method", "uploadPhoto")
	userID := c.GetString(ctxUserID)

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		log.WithError(err).Warn("Photo missing from form")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file uploaded"})
		return
	}
	if fileHeader.Size > service.MaxPhotoSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "File too large (max 5MB)"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded photo")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxPhotoSize+1))
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded photo")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid file"})
		return
	}

	upload, err := h.incidentService.UploadPhoto(c.Request.Context(), userID, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		writeServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, UploadPhotoResponse{
		Success:  true,
		PhotoID:  upload.PhotoID,
		PhotoURL: upload.PhotoURL,
		Message:  "Photo uploaded successfully",
	})
}

// @Summary Create incident with AI detection
// @Description Classify an uploaded photo, resolve its district and persist the incident.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} CreateIncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid request data or district unresolved"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Detection result not available"
// @Failure 422 {object} ErrorResponse "Detected category is not supported"
// @Failure 502 {object} ErrorResponse "Upstream service failure"
// @Router /incidents/create [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	model, err := DTOToCreateIncidentInput(input, c.GetString(ctxUserID))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.incidentService.CreateIncident(c.Request.Context(), model)
	if err != nil {
		writeServiceError(c, log.WithField("incident_id", model.IncidentID), err)
		return
	}
	c.JSON(http.StatusCreated, ModelToCreateIncidentResponse(result))
}

// @Summary Get incident by ID
// @Description Get a single incident with its reconstructed photo URL.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} DataResponse{data=IncidentResponse}
// @Failure 400 {object} ErrorResponse "Invalid incident ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Success: true, Data: ModelToIncidentResponse(incident)})
}

// @Summary Health check
// @Description Report service liveness.
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Service:   serviceName,
		Version:   serviceVersion,
	})
}

// writeServiceError переводит ошибку сервиса в HTTP-ответ по ее виду (Kind), а не по цепочке причин.
// Причина только логируется.
func writeServiceError(c *gin.Context, log *logrus.Entry, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		message = svcErr.Message
		switch {
		case svcErr == service.ErrDistrictUnresolved, svcErr == service.ErrNoIncidentsFound:
			status = http.StatusBadRequest
		case svcErr.Kind == service.ErrValidation:
			status = http.StatusBadRequest
		case svcErr.Kind == service.ErrNotFound:
			status = http.StatusNotFound
		case svcErr.Kind == service.ErrIntegrity:
			status = http.StatusUnprocessableEntity
		case svcErr.Kind == service.ErrUpstream:
			status = http.StatusBadGateway
		default:
			message = "internal server error"
		}
	}

	entry := log.WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Warn("Request rejected")
	}
	c.JSON(status, ErrorResponse{Error: message})
}
