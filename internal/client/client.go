// Package client выполняет запросы к удаленному API кампуса.
//
// Каждый вызов делает не более одной сетевой попытки. Защищенный вызов без
// токена в хранилище сессии завершается AuthRequiredError до обращения к сети,
// неуспешный статус превращается в APIError, отсутствие ответа - в NetworkError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/campus_connect/internal/apierr"
	"github.com/shenikar/campus_connect/internal/session"
	"github.com/sirupsen/logrus"
)

const maxResponseBytes = 10 << 20

// Request описывает один вызов API
type Request struct {
	Method string
	Path   string
	// Public - вызов не требует токена
	Public bool
	// Token заменяет токен из сессии (нужно сразу после входа)
	Token string
	JSON  any
	Form  *Form
}

// Option настраивает Client
type Option func(*Client)

// WithHTTPClient задает http.Client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithMetrics включает учет запросов в Prometheus
func WithMetrics(metrics *Metrics) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}

type Client struct {
	baseURL    string
	store      session.Store
	logger     *logrus.Logger
	httpClient *http.Client
	metrics    *Metrics
}

func New(baseURL string, store session.Store, logger *logrus.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/",
		store:      store,
		logger:     logger,
		httpClient: NewHTTPClient(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewHTTPClient создает http.Client; timeout 0 означает отсутствие таймаута
func NewHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: tr}
}

// BaseURL возвращает корень API со слэшем на конце
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Session возвращает хранилище сессии клиента
func (c *Client) Session() session.Store {
	return c.store
}

// Do выполняет запрос и возвращает тело ответа как JSON
func (c *Client) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	requestID := uuid.NewString()
	log := c.logger.WithFields(logrus.Fields{
		"component":  "client",
		"method":     req.Method,
		"path":       req.Path,
		"request_id": requestID,
	})
	start := time.Now()

	token := req.Token
	if !req.Public && token == "" {
		var err error
		token, err = session.Token(ctx, c.store)
		if err != nil {
			log.WithError(err).Error("Failed to load session")
			return nil, fmt.Errorf("client: could not load session: %w", err)
		}
		if token == "" {
			log.Warn("Protected request without session token")
			c.metrics.observe(req.Path, outcomeAuthRequired, start)
			return nil, &apierr.AuthRequiredError{Path: req.Path}
		}
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, fmt.Errorf("client: could not encode request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+strings.TrimLeft(req.Path, "/"), body)
	if err != nil {
		return nil, fmt.Errorf("client: could not create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	log.Debug("Sending request")
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.WithError(err).Warn("Request did not reach the server")
		c.metrics.observe(req.Path, outcomeNetwork, start)
		return nil, &apierr.NetworkError{Path: req.Path, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		log.WithError(err).Warn("Failed to read response body")
		c.metrics.observe(req.Path, outcomeNetwork, start)
		return nil, &apierr.NetworkError{Path: req.Path, Err: err}
	}

	log = log.WithField("status", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &apierr.APIError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(payload, apierr.GenericAPIMessage(resp.StatusCode)),
		}
		log.WithError(apiErr).Warn("API responded with failure status")
		c.metrics.observe(req.Path, outcomeAPI, start)
		return nil, apiErr
	}

	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		c.metrics.observe(req.Path, outcomeOK, start)
		return nil, nil
	}
	if !json.Valid(payload) {
		log.Warn("API returned a non-JSON body")
		c.metrics.observe(req.Path, outcomeAPI, start)
		return nil, &apierr.APIError{StatusCode: resp.StatusCode, Message: "invalid response from server"}
	}

	// Успешный статус, но success=false в конверте - тоже отказ
	var envelope struct {
		Success *bool `json:"success"`
	}
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Success != nil && !*envelope.Success {
		apiErr := &apierr.APIError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(payload, "request was not successful"),
		}
		log.WithError(apiErr).Warn("API reported failure in envelope")
		c.metrics.observe(req.Path, outcomeAPI, start)
		return nil, apiErr
	}

	c.metrics.observe(req.Path, outcomeOK, start)
	log.WithField("duration", time.Since(start)).Debug("Request completed")
	return payload, nil
}

func encodeBody(req Request) (io.Reader, string, error) {
	switch {
	case req.Form != nil:
		return req.Form.encode()
	case req.JSON != nil:
		data, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
	return nil, "", nil
}

// extractMessage достает текст ошибки из полей message или error
func extractMessage(payload []byte, fallback string) string {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(payload, &body); err != nil {
		return fallback
	}
	for _, key := range []string{"message", "error"} {
		raw, ok := body[key]
		if !ok || string(raw) == "null" {
			continue
		}
		var text string
		if err := json.Unmarshal(raw, &text); err == nil {
			if text = strings.TrimSpace(text); text != "" {
				return text
			}
			continue
		}
		// Django отдает ошибки валидации объектом
		return string(raw)
	}
	return fallback
}
