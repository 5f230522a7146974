package models

// NoticePriority - приоритет объявления
type NoticePriority string

const (
	PriorityHigh   NoticePriority = "HIGH"
	PriorityMedium NoticePriority = "MEDIUM"
	PriorityLow    NoticePriority = "LOW"
)

// Notice доступно клиенту только на чтение
type Notice struct {
	ID             int64          `json:"id"`
	Slug           string         `json:"slug"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Priority       NoticePriority `json:"priority"`
	IsPinned       bool           `json:"is_pinned"`
	FileAttachment string         `json:"file_attachment,omitempty"`
	PostedBy       UserProfile    `json:"posted_by"`
	Campus         Campus         `json:"campus"`
	Status         string         `json:"status"`
	CreatedAt      Timestamp      `json:"created_at"`
	UpdatedAt      Timestamp      `json:"updated_at"`
}
