package v1

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/campus_connect/internal/apierr"
	"github.com/shenikar/campus_connect/internal/config"
	"github.com/shenikar/campus_connect/internal/controller"
	"github.com/shenikar/campus_connect/internal/models"
	"github.com/shenikar/campus_connect/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	portal   service.PortalService
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(portal service.PortalService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		portal:   portal,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary List campuses
// @Description List campuses for the registration form. No session required.
// @Tags Campuses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StateResponse{data=[]CampusResponse}
// @Failure 502 {object} StateResponse "Upstream error"
// @Failure 503 {object} StateResponse "Upstream unreachable"
// @Router /campuses [get]
func (h *Handler) listCampuses(c *gin.Context) {
	log := h.logger.WithField("method", "listCampuses")
	state := h.portal.Campuses(c.Request.Context())
	renderState(c, log, state, func(campuses []models.Campus) any {
		return ModelsToCampusResponses(campuses, h.cfg.APIBaseURL)
	})
}

// @Summary Get current session
// @Description Returns whether a session is open and the stored profile
// @Tags Session
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SessionResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /session [get]
func (h *Handler) getSession(c *gin.Context) {
	log := h.logger.WithField("method", "getSession")

	sess, err := h.portal.CurrentSession(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load session")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	if sess == nil {
		c.JSON(http.StatusOK, SessionResponse{Authenticated: false})
		return
	}
	c.JSON(http.StatusOK, SessionResponse{Authenticated: true, User: ModelToUserResponse(sess.User)})
}

// @Summary Register a new user
// @Description Register a user on a campus. Does not open a session.
// @Tags Session
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param registration body RegisterRequest true "Registration form"
// @Success 201 {object} map[string]string "Registered"
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 502 {object} ErrorResponse "Upstream error"
// @Router /session/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.portal.Register(c.Request.Context(), DTOToRegistration(input)); err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "registered", "login": loginPath})
}

// @Summary Log in
// @Description Exchange credentials for a session; token and profile are stored together
// @Tags Session
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 503 {object} ErrorResponse "Upstream unreachable"
// @Router /session/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if !h.bindJSON(c, log, &input) {
		return
	}

	sess, err := h.portal.Login(c.Request.Context(), DTOToCredentials(input))
	if err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{Authenticated: true, User: ModelToUserResponse(sess.User)})
}

// @Summary Log out
// @Description Remove token and profile
// @Tags Session
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /session/logout [post]
func (h *Handler) logout(c *gin.Context) {
	log := h.logger.WithField("method", "logout")

	if err := h.portal.Logout(c.Request.Context()); err != nil {
		log.WithError(err).Error("Failed to log out")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get incidents
// @Description Current state of the incident list; the first request loads it
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StateResponse{data=[]IncidentResponse}
// @Success 202 {object} StateResponse "Still loading"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 502 {object} StateResponse "Upstream error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	h.renderIncidents(c, log, h.portal.Incidents(c.Request.Context()))
}

// @Summary Refresh incidents
// @Description Reload the incident list
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StateResponse{data=[]IncidentResponse}
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 502 {object} StateResponse "Upstream error"
// @Router /incidents/refresh [post]
func (h *Handler) refreshIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "refreshIncidents")
	h.renderIncidents(c, log, h.portal.RefreshIncidents(c.Request.Context()))
}

func (h *Handler) renderIncidents(c *gin.Context, log *logrus.Entry, state controller.State[[]models.Incident]) {
	renderState(c, log, state, func(incidents []models.Incident) any {
		return ModelsToIncidentResponses(incidents, h.cfg.APIBaseURL, log)
	})
}

// @Summary Get incident by ID
// @Description Get a single incident with its media in display order
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} StateResponse{data=IncidentResponse}
// @Failure 400 {object} ErrorResponse "Invalid incident ID"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} StateResponse "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	state := h.portal.Incident(c.Request.Context(), id)
	renderState(c, log, state, func(incident *models.Incident) any {
		return ModelToIncidentResponse(*incident, h.cfg.APIBaseURL, log)
	})
}

// @Summary Report an incident
// @Description Submit an incident; media files are sent in form order
// @Tags Incidents
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param incident_type formData string true "Incident type"
// @Param location formData string false "Location"
// @Param media_files formData file false "Photos and videos"
// @Success 201 {object} IncidentResponse
// @Success 202 {object} map[string]string "Accepted without the created record"
// @Failure 400 {object} ErrorResponse "Invalid form or validation error"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Router /incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input ReportIncidentRequest
	log := h.logger.WithField("method", "reportIncident")

	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind form")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	media, err := readMediaFiles(c)
	if err != nil {
		log.WithError(err).Warn("Failed to read media files")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid media files"})
		return
	}

	created, err := h.portal.ReportIncident(c.Request.Context(), DTOToIncidentReport(input, media))
	if err != nil {
		writeError(c, log, err)
		return
	}
	if created == nil {
		c.JSON(http.StatusAccepted, gin.H{"status": "reported"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(*created, h.cfg.APIBaseURL, log))
}

// @Summary Get notices
// @Description Current state of the notice board; the first request loads it
// @Tags Notices
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StateResponse{data=[]NoticeResponse}
// @Success 202 {object} StateResponse "Still loading"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Router /notices [get]
func (h *Handler) listNotices(c *gin.Context) {
	log := h.logger.WithField("method", "listNotices")
	h.renderNotices(c, log, h.portal.Notices(c.Request.Context()))
}

// @Summary Refresh notices
// @Description Reload the notice board
// @Tags Notices
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StateResponse{data=[]NoticeResponse}
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Router /notices/refresh [post]
func (h *Handler) refreshNotices(c *gin.Context) {
	log := h.logger.WithField("method", "refreshNotices")
	h.renderNotices(c, log, h.portal.RefreshNotices(c.Request.Context()))
}

func (h *Handler) renderNotices(c *gin.Context, log *logrus.Entry, state controller.State[[]models.Notice]) {
	renderState(c, log, state, func(notices []models.Notice) any {
		return ModelsToNoticeResponses(notices, h.cfg.APIBaseURL, log)
	})
}

// @Summary Get notice by slug
// @Tags Notices
// @Produce json
// @Security ApiKeyAuth
// @Param slug path string true "Notice slug"
// @Success 200 {object} StateResponse{data=NoticeResponse}
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} StateResponse "Notice not found"
// @Router /notices/{slug} [get]
func (h *Handler) getNotice(c *gin.Context) {
	slug := c.Param("slug")
	log := h.logger.WithField("method", "getNotice").WithField("slug", slug)

	state := h.portal.Notice(c.Request.Context(), slug)
	renderState(c, log, state, func(notice *models.Notice) any {
		return ModelToNoticeResponse(*notice, h.cfg.APIBaseURL, log)
	})
}

// @Summary Submit feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param feedback body FeedbackRequest true "Feedback"
// @Success 201 {object} map[string]string "Submitted"
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Router /feedback [post]
func (h *Handler) submitFeedback(c *gin.Context) {
	var input FeedbackRequest
	log := h.logger.WithField("method", "submitFeedback")

	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.portal.SubmitFeedback(c.Request.Context(), DTOToFeedback(input)); err != nil {
		writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "submitted"})
}

// bindJSON разбирает и проверяет тело; при ошибке ответ уже записан
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// renderState отдает состояние контроллера; data вызывается только для Ready
func renderState[T any](c *gin.Context, log *logrus.Entry, state controller.State[T], data func(T) any) {
	switch state.Phase {
	case controller.Ready:
		c.JSON(http.StatusOK, StateResponse{Status: string(state.Phase), Data: data(state.Data)})
	case controller.Error:
		log.WithField("kind", state.Kind).Warn(state.Message)
		resp := StateResponse{
			Status:       string(state.Phase),
			Error:        state.Message,
			Kind:         string(state.Kind),
			AuthRequired: state.Kind == apierr.KindAuthRequired,
		}
		if resp.AuthRequired {
			resp.Login = loginPath
		}
		c.JSON(errorStatus(state.Err), resp)
	default:
		c.JSON(http.StatusAccepted, StateResponse{Status: string(state.Phase)})
	}
}

// writeError отвечает на ошибку команды (вход, подача, отзыв)
func writeError(c *gin.Context, log *logrus.Entry, err error) {
	status := errorStatus(err)
	resp := ErrorResponse{Error: apierr.Message(err)}

	var valErr *apierr.ValidationError
	switch {
	case errors.As(err, &valErr):
		resp.Fields = valErr.Fields
	case apierr.KindOf(err) == apierr.KindAuthRequired:
		resp.AuthRequired = true
		resp.Login = loginPath
	}

	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Warn("Request rejected")
	}
	c.JSON(status, resp)
}

// errorStatus переводит ошибку клиента в статус шлюза
func errorStatus(err error) int {
	switch apierr.KindOf(err) {
	case apierr.KindAuthRequired:
		return http.StatusUnauthorized
	case apierr.KindValidation:
		return http.StatusBadRequest
	case apierr.KindNetwork:
		return http.StatusServiceUnavailable
	case apierr.KindAPI:
		var apiErr *apierr.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return apiErr.StatusCode
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// readMediaFiles читает файлы media_files в порядке формы
func readMediaFiles(c *gin.Context) ([]models.MediaFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	headers := form.File["media_files"]
	media := make([]models.MediaFile, 0, len(headers))
	for _, header := range headers {
		content, err := readFile(header)
		if err != nil {
			return nil, fmt.Errorf("media file %s: %w", header.Filename, err)
		}
		media = append(media, models.MediaFile{Name: header.Filename, Content: content})
	}
	return media, nil
}

func readFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
