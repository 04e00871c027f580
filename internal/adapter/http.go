package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-attendance/internal/config"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/utils"
	"github.com/MKhiriev/go-attendance/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.ServerAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.ServerAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg *config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.LoginResponse, error) {
	var loginResponse models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(&loginResponse).
		Post("/api/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request failed: %w", err)
	}
	if resp.IsError() {
		return models.LoginResponse{}, serverError(resp)
	}

	h.SetToken(loginResponse.Token)

	return loginResponse, nil
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, username, password string) (string, error) {
	return h.postMessage(ctx, "/api/users", map[string]string{"username": username, "password": password})
}

func (h *httpServerAdapter) ResetPassword(ctx context.Context, username, newPassword string) (string, error) {
	var message models.MessageResponse

	resp, err := h.authRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"newPassword": newPassword}).
		SetResult(&message).
		Put("/api/users/" + url.PathEscape(username) + "/password")
	if err != nil {
		return "", fmt.Errorf("password reset request failed: %w", err)
	}
	if resp.IsError() {
		return "", serverError(resp)
	}

	return message.Message, nil
}

func (h *httpServerAdapter) MarkAttendance(ctx context.Context) (string, error) {
	return h.postMessage(ctx, "/api/attendance", nil)
}

func (h *httpServerAdapter) MyAttendance(ctx context.Context) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord

	resp, err := h.authRequest(ctx).
		SetResult(&records).
		Get("/api/attendance/me")
	if err != nil {
		return nil, fmt.Errorf("attendance request failed: %w", err)
	}
	if resp.IsError() {
		return nil, serverError(resp)
	}

	return records, nil
}

func (h *httpServerAdapter) Dashboard(ctx context.Context) ([]models.DashboardRow, error) {
	var rows []models.DashboardRow

	resp, err := h.authRequest(ctx).
		SetResult(&rows).
		Get("/api/admin/dashboard")
	if err != nil {
		return nil, fmt.Errorf("dashboard request failed: %w", err)
	}
	if resp.IsError() {
		return nil, serverError(resp)
	}

	return rows, nil
}

func (h *httpServerAdapter) postMessage(ctx context.Context, path string, body any) (string, error) {
	var message models.MessageResponse

	request := h.authRequest(ctx).SetResult(&message)
	if body != nil {
		request = request.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := request.Post(path)
	if err != nil {
		return "", fmt.Errorf("request to %s failed: %w", path, err)
	}
	if resp.IsError() {
		return "", serverError(resp)
	}

	return message.Message, nil
}

func (h *httpServerAdapter) authRequest(ctx context.Context) *resty.Request {
	request := h.client.R().SetContext(ctx)
	if h.token != "" {
		request = request.SetHeader("Authorization", "Bearer "+h.token)
	}
	return request
}

// serverError turns a non-2xx response into an error carrying the server's
// JSON message when one is present, falling back to the HTTP status.
func serverError(resp *resty.Response) error {
	var message models.MessageResponse
	if err := json.Unmarshal(resp.Body(), &message); err == nil && message.Message != "" {
		return fmt.Errorf("server responded %d: %s", resp.StatusCode(), message.Message)
	}

	return fmt.Errorf("server responded %d", resp.StatusCode())
}
