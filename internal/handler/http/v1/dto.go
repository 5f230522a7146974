package v1

import (
	"time"

	"github.com/shenikar/campus_connect/internal/presentation"
)

// StateResponse DTO с состоянием ресурса для представления
// @Description Состояние загрузки ресурса: loading, ready или error
type StateResponse struct {
	Status       string `json:"status" example:"ready"`
	Data         any    `json:"data,omitempty"`
	Error        string `json:"error,omitempty"`
	Kind         string `json:"kind,omitempty"`
	AuthRequired bool   `json:"auth_required"`
	Login        string `json:"login,omitempty"`
}

// ErrorResponse DTO для ответа с ошибкой
// @Description DTO для ответа с ошибкой
type ErrorResponse struct {
	Error        string   `json:"error"`
	Fields       []string `json:"fields,omitempty"`
	AuthRequired bool     `json:"auth_required,omitempty"`
	Login        string   `json:"login,omitempty"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest DTO для регистрации
// @Description DTO для регистрации
type RegisterRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	CampusID    int64  `json:"campus_id" validate:"required,gt=0"`
}

// ReportIncidentRequest - поля multipart формы подачи инцидента; файлы идут в media_files
// @Description Поля формы подачи инцидента
type ReportIncidentRequest struct {
	Title        string `form:"title" validate:"required"`
	Description  string `form:"description" validate:"required"`
	IncidentType string `form:"incident_type" validate:"required,oneof=theft harassment accident fire vandalism medical natural_disaster lost_item stolen_item other"`
	Location     string `form:"location"`
}

// FeedbackRequest DTO для отзыва
// @Description DTO для отзыва
type FeedbackRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

// UserResponse DTO профиля пользователя
// @Description DTO профиля пользователя
type UserResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	CampusID int64  `json:"campus_id"`
}

// SessionResponse DTO текущей сессии
// @Description DTO текущей сессии
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}

// CampusResponse DTO кампуса
// @Description DTO кампуса
type CampusResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	City            string `json:"city"`
	State           string `json:"state"`
	Country         string `json:"country"`
	Address         string `json:"address"`
	EstablishedYear int    `json:"established_year"`
	Website         string `json:"website"`
	ImageURL        string `json:"image_url,omitempty"`
	HeadName        string `json:"head_name"`
	HeadEmail       string `json:"head_email"`
	HeadPhone       string `json:"head_phone"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID           int64                    `json:"id"`
	Title        string                   `json:"title"`
	Description  string                   `json:"description"`
	IncidentType string                   `json:"incident_type"`
	Status       string                   `json:"status"`
	StatusStyle  string                   `json:"status_style"`
	Location     string                   `json:"location"`
	Media        []presentation.MediaItem `json:"media"`
	Images       []string                 `json:"images"`
	Videos       []string                 `json:"videos"`
	ReportedBy   UserResponse             `json:"reported_by"`
	Campus       CampusResponse           `json:"campus"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

// NoticeResponse DTO объявления
// @Description DTO объявления
type NoticeResponse struct {
	ID            int64          `json:"id"`
	Slug          string         `json:"slug"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Priority      string         `json:"priority"`
	PriorityStyle string         `json:"priority_style"`
	IsPinned      bool           `json:"is_pinned"`
	AttachmentURL string         `json:"attachment_url,omitempty"`
	PostedBy      UserResponse   `json:"posted_by"`
	Campus        CampusResponse `json:"campus"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
