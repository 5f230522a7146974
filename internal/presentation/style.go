package presentation

import (
	"errors"
	"fmt"

	"github.com/shenikar/campus_connect/internal/models"
)

// ErrUnknownStyle - значение вне закрытого перечисления
var ErrUnknownStyle = errors.New("no style for value")

var statusStyles = map[models.IncidentStatus]string{
	models.IncidentPending:    "bg-amber-100 text-amber-800",
	models.IncidentInProgress: "bg-blue-100 text-blue-800",
	models.IncidentResolved:   "bg-emerald-100 text-emerald-800",
	models.IncidentClosed:     "bg-gray-100 text-gray-800",
}

var priorityStyles = map[models.NoticePriority]string{
	models.PriorityHigh:   "bg-rose-100 text-rose-800",
	models.PriorityMedium: "bg-amber-100 text-amber-800",
	models.PriorityLow:    "bg-gray-100 text-gray-800",
}

// StatusStyle возвращает токен стиля для статуса инцидента
func StatusStyle(status models.IncidentStatus) (string, error) {
	token, ok := statusStyles[status]
	if !ok {
		return "", fmt.Errorf("incident status %q: %w", status, ErrUnknownStyle)
	}
	return token, nil
}

// PriorityStyle возвращает токен стиля для приоритета объявления
func PriorityStyle(priority models.NoticePriority) (string, error) {
	token, ok := priorityStyles[priority]
	if !ok {
		return "", fmt.Errorf("notice priority %q: %w", priority, ErrUnknownStyle)
	}
	return token, nil
}
