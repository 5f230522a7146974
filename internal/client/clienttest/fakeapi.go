// Package clienttest поднимает поддельный API кампуса для тестов.
package clienttest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/campus_connect/internal/models"
)

const (
	// Email и Password - учетные данные единственного пользователя
	Email    = "ada@campus.edu"
	Password = "secret"
)

var signingKey = []byte("fake-api-secret")

// FakeAPI - поддельный сервер с состоянием в памяти
type FakeAPI struct {
	Server *httptest.Server

	// User - профиль, который отдает users/user_details/
	User     models.UserProfile
	Campuses []models.Campus

	mu        sync.Mutex
	incidents []models.Incident
	notices   []models.Notice
	feedback  []models.Feedback
	nextID    int64
	failures  map[string]failure
	hits      map[string]int
	total     atomic.Int64
}

type failure struct {
	status int
	body   string
}

// New запускает сервер; он закрывается вместе с тестом
func New(t testing.TB) *FakeAPI {
	campus := models.Campus{ID: 1, Name: "North Campus", City: "Springfield", State: "IL", Country: "US"}
	f := &FakeAPI{
		User: models.UserProfile{
			ID: 7, FirstName: "Ada", LastName: "Lovelace", Email: Email, Phone: "+100200300", CampusID: campus.ID,
		},
		Campuses: []models.Campus{campus},
		nextID:   1,
		failures: make(map[string]failure),
		hits:     make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/campus/campus_list/", f.handleCampuses)
	mux.HandleFunc("/api/users/user_register/", f.handleRegister)
	mux.HandleFunc("/api/users/user_login/", f.handleLogin)
	mux.HandleFunc("/api/users/user_details/", f.protected(f.handleUserDetails))
	mux.HandleFunc("/api/campus/get_incidents/", f.protected(f.handleIncidents))
	mux.HandleFunc("/api/campus/create_incident/", f.protected(f.handleCreateIncident))
	mux.HandleFunc("/api/campus/get_specific_incident/", f.protected(f.handleIncident))
	mux.HandleFunc("/api/notice/get_all_notices/", f.protected(f.handleNotices))
	mux.HandleFunc("/api/notice/get_specific_notice/", f.protected(f.handleNotice))
	mux.HandleFunc("/api/feedback/add_feedback/", f.protected(f.handleFeedback))

	f.Server = httptest.NewServer(f.count(mux))
	t.Cleanup(f.Server.Close)
	return f
}

// BaseURL - корень API для client.New
func (f *FakeAPI) BaseURL() string {
	return f.Server.URL + "/api/"
}

// Token выпускает валидный токен для пользователя
func (f *FakeAPI) Token() string {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(f.User.ID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		panic(err)
	}
	return token
}

// Requests - сколько запросов дошло до сервера
func (f *FakeAPI) Requests() int64 {
	return f.total.Load()
}

// Hits - сколько запросов пришло на путь (без префикса /api/)
func (f *FakeAPI) Hits(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

// Fail заставляет путь отвечать заданным статусом и телом
func (f *FakeAPI) Fail(path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[path] = failure{status: status, body: body}
}

// AddIncident добавляет инцидент в конец списка
func (f *FakeAPI) AddIncident(incident models.Incident) models.Incident {
	f.mu.Lock()
	defer f.mu.Unlock()
	if incident.ID == 0 {
		incident.ID = f.nextID
	}
	if incident.ID >= f.nextID {
		f.nextID = incident.ID + 1
	}
	f.incidents = append(f.incidents, incident)
	return incident
}

// AddNotice добавляет объявление в конец списка
func (f *FakeAPI) AddNotice(notice models.Notice) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, notice)
}

// Feedback возвращает принятые отзывы
func (f *FakeAPI) Feedback() []models.Feedback {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Feedback(nil), f.feedback...)
}

func (f *FakeAPI) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.total.Add(1)
		path := strings.TrimPrefix(r.URL.Path, "/api/")

		f.mu.Lock()
		f.hits[path]++
		fail, failing := f.failures[path]
		f.mu.Unlock()

		if failing {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(fail.status)
			_, _ = w.Write([]byte(fail.body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPI) protected(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		_, err := jwt.Parse(raw, func(*jwt.Token) (any, error) { return signingKey, nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Invalid token"})
			return
		}
		next(w, r)
	}
}

func (f *FakeAPI) handleCampuses(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "campus_list": f.Campuses})
}

func (f *FakeAPI) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil || r.FormValue("email") == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid registration form"})
		return
	}
	if r.FormValue("email") == Email {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Email already registered"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "message": "Registered"})
}

func (f *FakeAPI) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid form"})
		return
	}
	if r.FormValue("email") != Email || r.FormValue("password") != Password {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": f.Token()})
}

func (f *FakeAPI) handleUserDetails(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"user_details": f.User})
}

func (f *FakeAPI) handleIncidents(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	list := append([]models.Incident{}, f.incidents...)
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "incident_list": list})
}

func (f *FakeAPI) handleCreateIncident(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid form"})
		return
	}
	if r.FormValue("title") == "" || r.FormValue("incident_type") == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Missing fields"})
		return
	}
	media := make([]string, 0)
	for _, header := range r.MultipartForm.File["media_files"] {
		media = append(media, "incidents/"+header.Filename)
	}

	now := time.Now().UTC().Truncate(time.Second)
	incident := f.AddIncident(models.Incident{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		IncidentType: models.IncidentType(r.FormValue("incident_type")),
		Status:       models.IncidentPending,
		Location:     r.FormValue("location"),
		MediaFiles:   media,
		ReportedBy:   f.User,
		Campus:       f.Campuses[0],
		CreatedAt:    models.Timestamp{Time: now},
		UpdatedAt:    models.Timestamp{Time: now},
	})
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "message": "Incident created", "incident": incident})
}

func (f *FakeAPI) handleIncident(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid form"})
		return
	}
	id, _ := strconv.ParseInt(r.FormValue("incident_id"), 10, 64)

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, incident := range f.incidents {
		if incident.ID == id {
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "incident_list": incident})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": fmt.Sprintf("Incident %d not found", id)})
}

func (f *FakeAPI) handleNotices(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	list := append([]models.Notice{}, f.notices...)
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "notices": list})
}

func (f *FakeAPI) handleNotice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid form"})
		return
	}
	slug := r.FormValue("slug")

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, notice := range f.notices {
		if notice.Slug == slug {
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "notices": notice})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{"message": "Notice not found"})
}

func (f *FakeAPI) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var feedback models.Feedback
	if err := json.NewDecoder(r.Body).Decode(&feedback); err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Invalid feedback"})
		return
	}
	f.mu.Lock()
	f.feedback = append(f.feedback, feedback)
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Thanks"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
