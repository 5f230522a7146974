package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/campus_connect/internal/apierr"
	"github.com/shenikar/campus_connect/internal/config"
	"github.com/shenikar/campus_connect/internal/controller"
	"github.com/shenikar/campus_connect/internal/models"
	"github.com/shenikar/campus_connect/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testBaseURL = "http://api.test/api/"

var apiKey = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockPortalService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockPortalService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIBaseURL: testBaseURL,
		APIKeys:    []string{"test-api-key"},
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// expectSession - сессия открыта для всех запросов теста
func expectSession(mockService *mocks.MockPortalService) {
	mockService.EXPECT().
		CurrentSession(gomock.Any()).
		Return(&models.Session{Token: "token", User: models.UserProfile{ID: 7, FirstName: "Ada", LastName: "Lovelace"}}, nil).
		AnyTimes()
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeState разбирает StateResponse, раскладывая data в out
func decodeState(t *testing.T, w *httptest.ResponseRecorder, out any) StateResponse {
	t.Helper()
	var raw struct {
		StateResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	if out != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, out))
	}
	return raw.StateResponse
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAPIKey_Required(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Campuses(gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/campuses", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, "GET", "/api/v1/campuses", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestListCampuses_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	campuses := []models.Campus{{ID: 1, Name: "North Campus", Image: "campus/north.jpg"}}

	mockService.EXPECT().
		Campuses(gomock.Any()).
		Return(controller.State[[]models.Campus]{Phase: controller.Ready, Data: campuses, Seq: 1}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/campuses", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []CampusResponse
	state := decodeState(t, w, &resp)
	assert.Equal(t, "ready", state.Status)
	require.Len(t, resp, 1)
	assert.Equal(t, "http://api.test/api/campus/north.jpg", resp[0].ImageURL)
}

func TestLogin_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "ada@campus.edu", Password: "secret"}

	mockService.EXPECT().
		Login(gomock.Any(), models.Credentials{Email: reqBody.Email, Password: reqBody.Password}).
		Return(&models.Session{Token: "token", User: models.UserProfile{ID: 7, FirstName: "Ada", LastName: "Lovelace"}}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/session/login", bytes.NewBuffer(bodyBytes), apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Authenticated)
	assert.Equal(t, "Ada Lovelace", resp.User.FullName)
}

func TestLogin_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Login(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/session/login", bytes.NewBufferString(`{"email":"ada@campus.edu"}`), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Password' failed on the 'required' tag")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, &apierr.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/session/login", bytes.NewBufferString(`{"email":"ada@campus.edu","password":"x"}`), apiKey)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
}

func TestGetSession_Anonymous(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CurrentSession(gomock.Any()).Return(nil, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/session", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
}

func TestLogout(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Logout(gomock.Any()).Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/session/logout", nil, apiKey)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListIncidents_RequiresSession(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CurrentSession(gomock.Any()).Return(nil, nil).Times(1)
	mockService.EXPECT().Incidents(gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, apiKey)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.AuthRequired)
	assert.Equal(t, loginPath, resp.Login)
}

func TestListIncidents_Ready(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectSession(mockService)
	now := time.Now().UTC().Truncate(time.Second)
	incidents := []models.Incident{
		{ID: 3, Title: "Fire", Status: models.IncidentInProgress, MediaFiles: []string{"a.png", "b.MOV", "notes.txt", "c.jpg"}, CreatedAt: models.Timestamp{Time: now}},
		{ID: 1, Title: "Odd", Status: "ARCHIVED"},
	}

	mockService.EXPECT().
		Incidents(gomock.Any()).
		Return(controller.State[[]models.Incident]{Phase: controller.Ready, Data: incidents, Seq: 1}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	state := decodeState(t, w, &resp)
	assert.Equal(t, "ready", state.Status)
	require.Len(t, resp, 2)

	// Порядок сервера сохранен
	assert.Equal(t, int64(3), resp[0].ID)
	assert.Equal(t, int64(1), resp[1].ID)

	assert.Equal(t, "bg-blue-100 text-blue-800", resp[0].StatusStyle)
	assert.Empty(t, resp[1].StatusStyle)

	require.Len(t, resp[0].Media, 3)
	assert.Equal(t, "a.png", resp[0].Media[0].Name)
	assert.Equal(t, "b.MOV", resp[0].Media[1].Name)
	assert.Equal(t, "c.jpg", resp[0].Media[2].Name)
	assert.Equal(t, "http://api.test/api/media/a.png", resp[0].Media[0].URL)
	assert.Equal(t, []string{"a.png", "c.jpg"}, resp[0].Images)
	assert.Equal(t, []string{"b.MOV"}, resp[0].Videos)
}

func TestListIncidents_UpstreamError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectSession(mockService)
	upstreamErr := &apierr.APIError{StatusCode: http.StatusNotFound, Message: "Campus not found"}

	mockService.EXPECT().
		Incidents(gomock.Any()).
		Return(controller.State[[]models.Incident]{
			Phase:   controller.Error,
			Message: upstreamErr.Message,
			Kind:    apierr.KindAPI,
			Err:     upstreamErr,
			Seq:     1,
		}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, apiKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
	state := decodeState(t, w, nil)
	assert.Equal(t, "error", state.Status)
	assert.Equal(t, "Campus not found", state.Error)
	assert.False(t, state.AuthRequired)
}

func TestRefreshIncidents_NetworkError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectSession(mockService)
	netErr := &apierr.NetworkError{Path: "campus/get_incidents/", Err: errors.New("connection refused")}

	mockService.EXPECT().
		RefreshIncidents(gomock.Any()).
		Return(controller.State[[]models.Incident]{Phase: controller.Error, Message: apierr.Message(netErr), Kind: apierr.KindNetwork, Err: netErr}).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents/refresh", nil, apiKey)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	state := decodeState(t, w, nil)
	assert.Equal(t, string(apierr.KindNetwork), state.Kind)
}

func TestListNotices_Loading(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectSession(mockService)

	mockService.EXPECT().
		Notices(gomock.Any()).
		Return(controller.State[[]models.Notice]{Phase: controller.Loading, Seq: 1}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/notices", nil, apiKey)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "loading", decodeState(t, w, nil).Status)
}

func TestGetNotice_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectSession(mockService)
	notice := &models.Notice{
		Slug:           "exam-week",
		Title:          "Exam week",
		Priority:       models.PriorityHigh,
		FileAttachment: "notices/exam.pdf",
		PostedBy:       models.UserProfile{ID: 2, FirstName: "Grace", LastName: "Hopper", Email: "grace@campus.edu"},
		Campus: models.Campus{
			ID:        1,
			Name:      "North Campus",
			Address:   "1 College Road",
			HeadEmail: "head@campus.edu",
			HeadPhone: "+1 555 0100",
		},
	}

	mockService.EXPECT().
		Notice(gomock.Any(), "exam-week").
		Return(controller.State[*models.Notice]{Phase: controller.Ready, Data: notice, Seq: 1}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/notices/exam-week", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp NoticeResponse
	decodeState(t, w, &resp)
	assert.Equal(t, "bg-rose-100 text-rose-800", resp.PriorityStyle)
	assert.Equal(t, "http://api.test/api/notices/exam.pdf", resp.AttachmentURL)
	assert.Equal(t, "Grace Hopper", resp.PostedBy.FullName)
	assert.Equal(t, "grace@campus.edu", resp.PostedBy.Email)
	assert.Equal(t, "North Campus", resp.Campus.Name)
	assert.Equal(t, "1 College Road", resp.Campus.Address)
	assert.Equal(t, "head@campus.edu", resp.Campus.HeadEmail)
	assert.Equal(t, "+1 555 0100", resp.Campus.HeadPhone)
}

func TestGetIncident_Success(t *testing.T) {
	// Подготовка
	_, mockService, router := newTestHandler(t)
	expectSession(mockService)
	incident := &models.Incident{
		ID:         42,
		Title:      "Broken window",
		Status:     models.IncidentPending,
		MediaFiles: []string{"incidents/window.jpg"},
		ReportedBy: models.UserProfile{ID: 7, FirstName: "Ada", LastName: "Lovelace", Email: "ada@campus.edu", Phone: "+1 555 0199"},
		Campus: models.Campus{
			ID:              1,
			Name:            "North Campus",
			City:            "Springfield",
			State:           "IL",
			EstablishedYear: 1901,
			Website:         "https://north.campus.edu",
			Image:           "campus/north.jpg",
		},
	}

	// Ожидания
	mockService.EXPECT().
		Incident(gomock.Any(), int64(42)).
		Return(controller.State[*models.Incident]{Phase: controller.Ready, Data: incident, Seq: 1}).
		Times(1)

	// Действие
	w := makeRequest(router, "GET", "/api/v1/incidents/42", nil, apiKey)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	decodeState(t, w, &resp)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "bg-amber-100 text-amber-800", resp.StatusStyle)

	assert.Equal(t, "Ada Lovelace", resp.ReportedBy.FullName)
	assert.Equal(t, "ada@campus.edu", resp.ReportedBy.Email)
	assert.Equal(t, "+1 555 0199", resp.ReportedBy.Phone)

	assert.Equal(t, "North Campus", resp.Campus.Name)
	assert.Equal(t, "Springfield", resp.Campus.City)
	assert.Equal(t, "IL", resp.Campus.State)
	assert.Equal(t, 1901, resp.Campus.EstablishedYear)
	assert.Equal(t, "https://north.campus.edu", resp.Campus.Website)
	assert.Equal(t, "http://api.test/api/campus/north.jpg", resp.Campus.ImageURL)
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectSession(mockService)

	mockService.EXPECT().Incident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/incidents/not-a-number", nil, apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectSession(mockService)
	notFound := &apierr.APIError{StatusCode: http.StatusNotFound, Message: "Incident 42 not found"}

	mockService.EXPECT().
		Incident(gomock.Any(), int64(42)).
		Return(controller.State[*models.Incident]{Phase: controller.Error, Message: notFound.Message, Kind: apierr.KindAPI, Err: notFound}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/42", nil, apiKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Incident 42 not found", decodeState(t, w, nil).Error)
}

// multipartBody собирает форму подачи инцидента
func multipartBody(t *testing.T, fields map[string]string, files ...string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, name := range files {
		part, err := writer.CreateFormFile("media_files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("content of " + name))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestReportIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectSession(mockService)
	body, contentType := multipartBody(t, map[string]string{
		"title":         "Broken window",
		"description":   "Window in room 101",
		"incident_type": "vandalism",
		"location":      "Main building",
	}, "second.mp4", "first.jpg")

	mockService.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report models.IncidentReport) (*models.Incident, error) {
			require.Len(t, report.MediaFiles, 2)
			assert.Equal(t, "second.mp4", report.MediaFiles[0].Name)
			assert.Equal(t, "first.jpg", report.MediaFiles[1].Name)
			assert.Equal(t, []byte("content of first.jpg"), report.MediaFiles[1].Content)
			assert.Equal(t, models.IncidentVandalism, report.IncidentType)
			return &models.Incident{
				ID:         9,
				Title:      report.Title,
				Status:     models.IncidentPending,
				MediaFiles: []string{"incidents/second.mp4", "incidents/first.jpg"},
			}, nil
		}).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", body, apiKey, map[string]string{"Content-Type": contentType})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(9), resp.ID)
	require.Len(t, resp.Media, 2)
	assert.Equal(t, "incidents/second.mp4", resp.Media[0].Name)
	assert.Equal(t, "bg-amber-100 text-amber-800", resp.StatusStyle)
}

func TestReportIncident_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectSession(mockService)
	body, contentType := multipartBody(t, map[string]string{"title": "No type"})

	mockService.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", body, apiKey, map[string]string{"Content-Type": contentType})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'IncidentType' failed on the 'required' tag")
}

func TestSubmitFeedback_ZeroRating(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectSession(mockService)

	mockService.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	body := `{"name":"Ada","email":"ada@campus.edu","message":"Great","rating":0}`
	w := makeRequest(router, "POST", "/api/v1/feedback", bytes.NewBufferString(body), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'Rating' failed on the 'required' tag")
}

func TestSubmitFeedback_UpstreamFailure(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectSession(mockService)

	mockService.EXPECT().
		SubmitFeedback(gomock.Any(), models.Feedback{Name: "Ada", Email: "ada@campus.edu", Message: "Great", Rating: 4}).
		Return(&apierr.APIError{StatusCode: http.StatusInternalServerError, Message: "request failed: 500 Internal Server Error"}).
		Times(1)

	body := `{"name":"Ada","email":"ada@campus.edu","message":"Great","rating":4}`
	w := makeRequest(router, "POST", "/api/v1/feedback", bytes.NewBufferString(body), apiKey)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&apierr.AuthRequiredError{Path: "users/user_details/"}, http.StatusUnauthorized},
		{&apierr.ValidationError{Fields: []string{"rating"}}, http.StatusBadRequest},
		{&apierr.NetworkError{Err: errors.New("timeout")}, http.StatusServiceUnavailable},
		{&apierr.APIError{StatusCode: http.StatusForbidden}, http.StatusForbidden},
		{&apierr.APIError{StatusCode: http.StatusOK, Message: "invalid response from server"}, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, errorStatus(tc.err), tc.err.Error())
	}
}
