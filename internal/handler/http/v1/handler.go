package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/shenikar/disaster_portal/internal/config"
	"github.com/shenikar/disaster_portal/internal/media"
	"github.com/shenikar/disaster_portal/internal/models"
	"github.com/shenikar/disaster_portal/internal/report"
	"github.com/shenikar/disaster_portal/internal/service"
	"github.com/sirupsen/logrus"
)

// multipartOverhead - запас на заголовки и границы multipart формы
const multipartOverhead = 1 << 20

type Handler struct {
	reportService service.ReportService
	portalService service.PortalService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
	upgrader      websocket.Upgrader
}

func NewHandler(reportService service.ReportService, portalService service.PortalService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		reportService: reportService,
		portalService: portalService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(cfg.CORSAllowedOrigins),
		},
	}
}

// @Summary List incident types
// @Description Get the incident types a report can be filed under
// @Tags Reports
// @Produce json
// @Success 200 {array} IncidentTypeResponse
// @Router /reports/types [get]
func (h *Handler) listIncidentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, IncidentTypesToResponses(models.IncidentTypes()))
}

// @Summary Open a report form
// @Description Create an empty incident report session in the Editing state
// @Tags Reports
// @Produce json
// @Success 201 {object} ReportSessionResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/sessions [post]
func (h *Handler) createSession(c *gin.Context) {
	log := h.logger.WithField("method", "createSession")

	session, err := h.reportService.CreateSession(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to create report session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ViewToResponse(session.View()))
}

// @Summary Get a report form
// @Tags Reports
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ReportSessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /reports/sessions/{id} [get]
func (h *Handler) getSession(c *gin.Context) {
	session, ok := h.lookupSession(c, "getSession")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ViewToResponse(session.View()))
}

// @Summary Update report fields
// @Description Set incident type, location text or description. Omitted fields are left unchanged.
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param report body UpdateReportRequest true "Fields to update"
// @Success 200 {object} ReportSessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Form is being submitted or already submitted"
// @Router /reports/sessions/{id} [patch]
func (h *Handler) updateSession(c *gin.Context) {
	log := h.logger.WithField("method", "updateSession")
	session, ok := h.lookupSession(c, "updateSession")
	if !ok {
		return
	}

	var input UpdateReportRequest
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

	if input.Type != nil {
		if err := session.SetType(models.IncidentType(*input.Type)); err != nil {
			h.sessionError(c, log, err)
			return
		}
	}
	if input.LocationText != nil {
		if err := session.SetLocationText(*input.LocationText); err != nil {
			h.sessionError(c, log, err)
			return
		}
	}
	if input.Description != nil {
		if err := session.SetDescription(*input.Description); err != nil {
			h.sessionError(c, log, err)
			return
		}
	}
	c.JSON(http.StatusOK, ViewToResponse(session.View()))
}

// @Summary Discard a report form
// @Description Close the session. A pending submission is abandoned.
// @Tags Reports
// @Param id path string true "Session ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /reports/sessions/{id} [delete]
func (h *Handler) deleteSession(c *gin.Context) {
	log := h.logger.WithField("method", "deleteSession").WithField("id", c.Param("id"))

	if err := h.reportService.CloseSession(c.Request.Context(), c.Param("id")); err != nil {
		h.sessionError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Capture device location
// @Description Deliver the browser geolocation result. The session applies it in the background and raises a notice.
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param location body LocationRequest true "Geolocation result"
// @Success 202 {object} ReportSessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Form already submitted"
// @Router /reports/sessions/{id}/location [post]
func (h *Handler) captureLocation(c *gin.Context) {
	log := h.logger.WithField("method", "captureLocation")
	session, ok := h.lookupSession(c, "captureLocation")
	if !ok {
		return
	}

	var input LocationRequest
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

	locator, err := locatorFromRequest(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := session.RequestLocation(locator); err != nil {
		h.sessionError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, ViewToResponse(session.View()))
}

func locatorFromRequest(input LocationRequest) (report.Locator, error) {
	switch {
	case input.Unsupported:
		return nil, nil
	case input.Error != "":
		locErr := errors.New(input.Error)
		return report.LocatorFunc(func(context.Context) (models.GeoPoint, error) {
			return models.GeoPoint{}, locErr
		}), nil
	case input.Latitude != nil && input.Longitude != nil:
		point := models.GeoPoint{Latitude: *input.Latitude, Longitude: *input.Longitude}
		return report.LocatorFunc(func(context.Context) (models.GeoPoint, error) {
			return point, nil
		}), nil
	default:
		return nil, errors.New("latitude and longitude are required")
	}
}

// @Summary Attach a photo
// @Description Upload a photo for preview. It is decoded in the background and never stored.
// @Tags Reports
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID"
// @Param photo formData file true "Photo (PNG, JPG up to 10MB)"
// @Success 202 {object} ReportSessionResponse
// @Failure 400 {object} map[string]string "Photo is missing"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 413 {object} map[string]string "Photo too large"
// @Router /reports/sessions/{id}/photo [post]
func (h *Handler) attachPhoto(c *gin.Context) {
	log := h.logger.WithField("method", "attachPhoto")
	session, ok := h.lookupSession(c, "attachPhoto")
	if !ok {
		return
	}

	// Тело ограничивается до разбора формы, иначе большой файл уйдет на диск
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, media.MaxPhotoSize+multipartOverhead)
	header, err := c.FormFile("photo")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.sessionError(c, log, media.ErrPhotoTooLarge)
			return
		}
		log.WithError(err).Warn("Photo missing from form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo is required"})
		return
	}
	if header.Size > media.MaxPhotoSize {
		h.sessionError(c, log, media.ErrPhotoTooLarge)
		return
	}
	file, err := header.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded photo")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	// Файл формы удаляется после ответа, поэтому байты читаем сразу
	data, err := media.ReadAll(file)
	if err != nil {
		h.sessionError(c, log, err)
		return
	}
	if err := session.AttachPhoto(media.NewPreviewReader(header.Filename, data)); err != nil {
		h.sessionError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, ViewToResponse(session.View()))
}

// @Summary Remove the photo
// @Tags Reports
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ReportSessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Form is being submitted or already submitted"
// @Router /reports/sessions/{id}/photo [delete]
func (h *Handler) removePhoto(c *gin.Context) {
	log := h.logger.WithField("method", "removePhoto")
	session, ok := h.lookupSession(c, "removePhoto")
	if !ok {
		return
	}
	if err := session.RemovePhoto(); err != nil {
		h.sessionError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewToResponse(session.View()))
}

// @Summary Submit the report
// @Description Move the form to Submitting. Without an incident type the form stays in Editing and a notice is queued.
// @Tags Reports
// @Produce json
// @Param id path string true "Session ID"
// @Success 202 {object} ReportSessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Submission already in progress"
// @Failure 422 {object} map[string]string "Incident type is required"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /reports/sessions/{id}/submit [post]
func (h *Handler) submitReport(c *gin.Context) {
	log := h.logger.WithField("method", "submitReport")
	session, ok := h.lookupSession(c, "submitReport")
	if !ok {
		return
	}
	if err := session.Submit(); err != nil {
		h.sessionError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, ViewToResponse(session.View()))
}

// @Summary Submit another report
// @Description Clear every field and return the form to Editing
// @Tags Reports
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ReportSessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Submission in progress"
// @Router /reports/sessions/{id}/reset [post]
func (h *Handler) resetSession(c *gin.Context) {
	log := h.logger.WithField("method", "resetSession")
	session, ok := h.lookupSession(c, "resetSession")
	if !ok {
		return
	}
	if err := session.Reset(); err != nil {
		h.sessionError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewToResponse(session.View()))
}

// @Summary Drain notices
// @Description Return and clear the queued notices of the form
// @Tags Reports
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {array} NoticeResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /reports/sessions/{id}/notices [get]
func (h *Handler) drainNotices(c *gin.Context) {
	session, ok := h.lookupSession(c, "drainNotices")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, NoticesToResponses(session.Notices()))
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

func (h *Handler) lookupSession(c *gin.Context, method string) (*report.Session, bool) {
	id := c.Param("id")
	session, err := h.reportService.GetSession(c.Request.Context(), id)
	if err != nil {
		h.sessionError(c, h.logger.WithField("method", method).WithField("id", id), err)
		return nil, false
	}
	return session, true
}

// sessionError переводит ошибки формы в HTTP статусы
func (h *Handler) sessionError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		log.WithError(err).Warn("Report session not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "report session not found"})
	case errors.Is(err, report.ErrSessionClosed):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	case errors.Is(err, report.ErrTypeRequired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, report.ErrUnknownType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, report.ErrSubmissionInProgress), errors.Is(err, report.ErrInvalidTransition):
		log.WithError(err).Warn("Operation rejected in current state")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, media.ErrPhotoTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Report session operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
