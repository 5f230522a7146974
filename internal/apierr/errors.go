// Package apierr описывает ошибки, которые клиент отдает наверх.
// Все они ловятся на границе, инициировавшей вызов, и не являются фатальными.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind - категория ошибки для представления
type Kind string

const (
	KindNone         Kind = ""
	KindAuthRequired Kind = "auth_required"
	KindNetwork      Kind = "network"
	KindAPI          Kind = "api"
	KindValidation   Kind = "validation"
	KindUnknown      Kind = "unknown"
)

// AuthRequiredError - для защищенного вызова нет токена сессии.
// Перенаправление на вход - забота представления.
type AuthRequiredError struct {
	Path string
}

func (e *AuthRequiredError) Error() string {
	if e.Path == "" {
		return "authentication required"
	}
	return fmt.Sprintf("authentication required for %s", e.Path)
}

// NetworkError - запрос не дошел до сервера или ответ не получен
type NetworkError struct {
	Path string
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error on %s: %v", e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError - сервер ответил неуспешным статусом
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// ValidationError - обязательные поля формы не заполнены; сеть не трогали
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

// GenericAPIMessage - сообщение, когда в теле ответа нет ни message, ни error
func GenericAPIMessage(status int) string {
	if text := http.StatusText(status); text != "" {
		return fmt.Sprintf("request failed: %d %s", status, text)
	}
	return fmt.Sprintf("request failed with status %d", status)
}

// KindOf классифицирует ошибку
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var (
		authErr *AuthRequiredError
		netErr  *NetworkError
		apiErr  *APIError
		valErr  *ValidationError
	)
	switch {
	case errors.As(err, &authErr):
		return KindAuthRequired
	case errors.As(err, &valErr):
		return KindValidation
	case errors.As(err, &apiErr):
		return KindAPI
	case errors.As(err, &netErr):
		return KindNetwork
	}
	return KindUnknown
}

// Message возвращает текст, пригодный для показа пользователю
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Error()
	}
	switch KindOf(err) {
	case KindAuthRequired:
		return "Authentication required"
	case KindNetwork:
		return "Network error. Please try again."
	}
	return err.Error()
}
