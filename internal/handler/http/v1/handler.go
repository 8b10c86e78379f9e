package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/bodycam_dashboard/internal/config"
	"github.com/shenikar/bodycam_dashboard/internal/geo"
	"github.com/shenikar/bodycam_dashboard/internal/mapview"
	"github.com/shenikar/bodycam_dashboard/internal/models"
	"github.com/shenikar/bodycam_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService  service.IncidentService
	complaintService service.ComplaintService
	authService      service.AuthService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
	limiter          *RateLimiter
}

func NewHandler(
	incidentService service.IncidentService,
	complaintService service.ComplaintService,
	authService service.AuthService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService:  incidentService,
		complaintService: complaintService,
		authService:      authService,
		logger:           logger,
		validate:         newValidator(),
		cfg:              cfg,
		limiter:          NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 10*time.Minute),
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// @Summary Create a new incident record
// @Description Store a body-camera footage record. Requires API key. Records with dangerous descriptions trigger an alert webhook.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

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

	model := DTOToIncidentModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		if errors.Is(err, geo.ErrOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to create incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get all incident records
// @Description Get every stored incident record with its computed severity.
// @Tags Incidents
// @Produce json
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	records, err := h.incidentService.ListIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(records))
}

// @Summary Get incident record by ID
// @Description Get a single incident record by its ID.
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
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

	record, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.WithError(err).Warn("Incident not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to get incident from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(record))
}

// @Summary List map views
// @Description Get every configured map view preset.
// @Tags Map
// @Produce json
// @Success 200 {array} models.MapView
// @Router /views [get]
func (h *Handler) listViews(c *gin.Context) {
	c.JSON(http.StatusOK, h.incidentService.Views())
}

// @Summary Get overlays for a map view
// @Description Build markers and severity circles for the incident records inside the view.
// @Tags Map
// @Produce json
// @Param name path string true "View name"
// @Success 200 {object} models.MapScene
// @Failure 404 {object} map[string]string "Unknown view"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /views/{name}/overlays [get]
func (h *Handler) viewOverlays(c *gin.Context) {
	name := c.Param("name")
	log := h.logger.WithField("method", "viewOverlays").WithField("view", name)

	scene, err := h.incidentService.Scene(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, models.ErrUnknownView) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown view"})
			return
		}
		log.WithError(err).Error("Failed to build map scene")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, scene)
}

// @Summary Validate typed coordinates
// @Description Parse latitude and longitude text and check their ranges.
// @Tags Location
// @Accept json
// @Produce json
// @Param location body LocationRequest true "Raw coordinate text"
// @Success 200 {object} LocationResponse
// @Failure 400 {object} LocationResponse "Rejected coordinates"
// @Router /location/validate [post]
func (h *Handler) validateLocation(c *gin.Context) {
	var input LocationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pos, err := geo.Validate(input.Latitude, input.Longitude)
	if err != nil {
		c.JSON(http.StatusBadRequest, rejectedLocation(err))
		return
	}
	c.JSON(http.StatusOK, LocationResponse{Valid: true, Position: &pos})
}

// @Summary Preview a moved marker
// @Description Apply typed coordinates to an interactive marker and rebuild its overlays. The position is kept when validation fails.
// @Tags Map
// @Accept json
// @Produce json
// @Param preview body PreviewRequest true "Typed coordinates and record"
// @Success 200 {object} PreviewResponse
// @Failure 400 {object} LocationResponse "Rejected coordinates"
// @Failure 404 {object} map[string]string "Unknown view"
// @Router /overlays/preview [post]
func (h *Handler) previewOverlays(c *gin.Context) {
	var input PreviewRequest
	log := h.logger.WithField("method", "previewOverlays")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view := input.View
	if view == "" {
		view = mapview.DefaultViewName
	}
	in := &geo.Input{LatText: input.Latitude, LngText: input.Longitude}
	if input.Current != nil {
		in.Position = *input.Current
	}
	record := models.IncidentRecord{
		Title:       input.Title,
		Description: input.Description,
		MediaRef:    input.MediaRef,
	}

	overlays, err := h.incidentService.Preview(view, in, record)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUnknownView):
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown view"})
		default:
			resp := rejectedLocation(err)
			resp.Position = &in.Position
			c.JSON(http.StatusBadRequest, resp)
		}
		return
	}

	c.JSON(http.StatusOK, PreviewResponse{
		Position: in.Position,
		LatText:  in.LatText,
		LngText:  in.LngText,
		Overlays: overlays,
	})
}

func rejectedLocation(err error) LocationResponse {
	var vErr *geo.ValidationError
	if errors.As(err, &vErr) {
		return LocationResponse{Kind: vErr.Kind.String(), Message: vErr.Message()}
	}
	return LocationResponse{Message: err.Error()}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
