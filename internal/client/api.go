package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shenikar/campus_connect/internal/apierr"
	"github.com/shenikar/campus_connect/internal/models"
	"github.com/sirupsen/logrus"
)

// Пути API относительно базового адреса
const (
	pathCampusList     = "campus/campus_list/"
	pathRegister       = "users/user_register/"
	pathLogin          = "users/user_login/"
	pathUserDetails    = "users/user_details/"
	pathIncidents      = "campus/get_incidents/"
	pathCreateIncident = "campus/create_incident/"
	pathIncident       = "campus/get_specific_incident/"
	pathNotices        = "notice/get_all_notices/"
	pathNotice         = "notice/get_specific_notice/"
	pathFeedback       = "feedback/add_feedback/"
)

// ListCampuses возвращает список кампусов; вход не требуется
func (c *Client) ListCampuses(ctx context.Context) ([]models.Campus, error) {
	payload, err := c.Do(ctx, Request{Method: http.MethodGet, Path: pathCampusList, Public: true})
	if err != nil {
		return nil, err
	}
	campuses := make([]models.Campus, 0)
	if err := decodeField(payload, "campus_list", &campuses); err != nil {
		return nil, err
	}
	return campuses, nil
}

// Register регистрирует пользователя; сессия при этом не создается
func (c *Client) Register(ctx context.Context, reg models.Registration) error {
	if err := validateInput(reg, "Please fill out all fields and choose a campus"); err != nil {
		return err
	}
	form := NewForm().
		Field("campus_id", strconv.FormatInt(reg.CampusID, 10)).
		Field("first_name", reg.FirstName).
		Field("last_name", reg.LastName).
		Field("phone_number", reg.PhoneNumber).
		Field("email", reg.Email).
		Field("password", reg.Password)
	_, err := c.Do(ctx, Request{Method: http.MethodPost, Path: pathRegister, Public: true, Form: form})
	return err
}

// Login получает токен, затем профиль с этим токеном, и только после этого
// сохраняет их в хранилище сессии одной записью
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	if err := validateInput(creds, "Email and password are required"); err != nil {
		return nil, err
	}
	log := c.logger.WithFields(logrus.Fields{
		"component": "client",
		"operation": "Login",
		"email":     creds.Email,
	})

	form := NewForm().Field("email", creds.Email).Field("password", creds.Password)
	payload, err := c.Do(ctx, Request{Method: http.MethodPost, Path: pathLogin, Public: true, Form: form})
	if err != nil {
		return nil, err
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(payload, &login); err != nil || login.Token == "" {
		return nil, &apierr.APIError{StatusCode: http.StatusOK, Message: "login response has no token"}
	}

	user, err := c.fetchProfile(ctx, login.Token)
	if err != nil {
		log.WithError(err).Warn("Login succeeded but profile fetch failed")
		return nil, err
	}

	if err := c.store.Store(ctx, login.Token, *user); err != nil {
		return nil, fmt.Errorf("client: could not store session: %w", err)
	}
	log.WithField("user_id", user.ID).Info("Logged in")
	return &models.Session{Token: login.Token, User: *user}, nil
}

// Logout удаляет токен и профиль
func (c *Client) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("client: could not clear session: %w", err)
	}
	return nil
}

// FetchProfile возвращает профиль текущего пользователя
func (c *Client) FetchProfile(ctx context.Context) (*models.UserProfile, error) {
	return c.fetchProfile(ctx, "")
}

func (c *Client) fetchProfile(ctx context.Context, token string) (*models.UserProfile, error) {
	payload, err := c.Do(ctx, Request{Method: http.MethodGet, Path: pathUserDetails, Token: token})
	if err != nil {
		return nil, err
	}
	var user *models.UserProfile
	if err := decodeField(payload, "user_details", &user); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &apierr.APIError{StatusCode: http.StatusOK, Message: "profile is missing in response"}
	}
	return user, nil
}

// ListIncidents возвращает инциденты в порядке сервера
func (c *Client) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	payload, err := c.Do(ctx, Request{Method: http.MethodGet, Path: pathIncidents})
	if err != nil {
		return nil, err
	}
	incidents := make([]models.Incident, 0)
	if err := decodeField(payload, "incident_list", &incidents); err != nil {
		return nil, err
	}
	return incidents, nil
}

// CreateIncident подает инцидент; медиафайлы уходят в порядке формы.
// Если сервер вернул созданную запись, она возвращается, иначе nil.
func (c *Client) CreateIncident(ctx context.Context, report models.IncidentReport) (*models.Incident, error) {
	if err := validateInput(report, "Title, description and incident type are required"); err != nil {
		return nil, err
	}
	form := NewForm().
		Field("title", report.Title).
		Field("description", report.Description).
		Field("incident_type", string(report.IncidentType)).
		Field("location", report.Location)
	for _, media := range report.MediaFiles {
		form.File("media_files", media.Name, media.Content)
	}

	payload, err := c.Do(ctx, Request{Method: http.MethodPost, Path: pathCreateIncident, Form: form})
	if err != nil {
		return nil, err
	}
	var created *models.Incident
	if err := decodeField(payload, "incident", &created); err != nil {
		return nil, err
	}
	return created, nil
}

// GetIncident возвращает инцидент по id
func (c *Client) GetIncident(ctx context.Context, id int64) (*models.Incident, error) {
	form := NewForm().Field("incident_id", strconv.FormatInt(id, 10))
	payload, err := c.Do(ctx, Request{Method: http.MethodPost, Path: pathIncident, Form: form})
	if err != nil {
		return nil, err
	}
	var incident *models.Incident
	if err := decodeField(payload, "incident_list", &incident); err != nil {
		return nil, err
	}
	if incident == nil {
		return nil, &apierr.APIError{StatusCode: http.StatusNotFound, Message: "Incident not found"}
	}
	return incident, nil
}

// ListNotices возвращает объявления в порядке сервера
func (c *Client) ListNotices(ctx context.Context) ([]models.Notice, error) {
	payload, err := c.Do(ctx, Request{Method: http.MethodPost, Path: pathNotices})
	if err != nil {
		return nil, err
	}
	notices := make([]models.Notice, 0)
	if err := decodeField(payload, "notices", &notices); err != nil {
		return nil, err
	}
	return notices, nil
}

// GetNotice возвращает объявление по slug
func (c *Client) GetNotice(ctx context.Context, slug string) (*models.Notice, error) {
	if slug == "" {
		return nil, &apierr.ValidationError{Fields: []string{"slug"}, Message: "notice slug is required"}
	}
	form := NewForm().Field("slug", slug)
	payload, err := c.Do(ctx, Request{Method: http.MethodPost, Path: pathNotice, Form: form})
	if err != nil {
		return nil, err
	}
	var notice *models.Notice
	if err := decodeField(payload, "notices", &notice); err != nil {
		return nil, err
	}
	if notice == nil {
		return nil, &apierr.APIError{StatusCode: http.StatusNotFound, Message: "Notice not found"}
	}
	return notice, nil
}

// SubmitFeedback отправляет отзыв; рейтинг 0 отклоняется без запроса
func (c *Client) SubmitFeedback(ctx context.Context, feedback models.Feedback) error {
	if err := validateInput(feedback, "Please fill out all fields and provide a rating!"); err != nil {
		return err
	}
	_, err := c.Do(ctx, Request{Method: http.MethodPost, Path: pathFeedback, JSON: feedback})
	return err
}

// decodeField разбирает поле конверта; отсутствующее или null поле оставляет out как есть
func decodeField(payload json.RawMessage, key string, out any) error {
	if len(payload) == 0 {
		return nil
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return &apierr.APIError{StatusCode: http.StatusOK, Message: "invalid response from server"}
	}
	raw, ok := envelope[key]
	if !ok || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &apierr.APIError{StatusCode: http.StatusOK, Message: fmt.Sprintf("invalid %s in response", key)}
	}
	return nil
}
