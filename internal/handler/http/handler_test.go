package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-attendance/internal/config"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/service"
	"github.com/MKhiriev/go-attendance/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn                func(ctx context.Context, username, password string) (models.User, error)
	createUserFn           func(ctx context.Context, username, password, role string) (models.User, error)
	resetPasswordFn        func(ctx context.Context, username, newPassword string) error
	createTokenFn          func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn           func(ctx context.Context, tokenString string) (models.Token, error)
	ensureBootstrapAdminFn func(ctx context.Context) error
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateUser(ctx context.Context, username, password, role string) (models.User, error) {
	return m.createUserFn(ctx, username, password, role)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, username, newPassword string) error {
	return m.resetPasswordFn(ctx, username, newPassword)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) EnsureBootstrapAdmin(ctx context.Context) error {
	return m.ensureBootstrapAdminFn(ctx)
}

// mockAttendanceService implements service.AttendanceService for unit tests.
type mockAttendanceService struct {
	markTodayFn   func(ctx context.Context, userID int64) (models.AttendanceRecord, error)
	listForUserFn func(ctx context.Context, userID int64) ([]models.AttendanceRecord, error)
}

func (m *mockAttendanceService) MarkToday(ctx context.Context, userID int64) (models.AttendanceRecord, error) {
	return m.markTodayFn(ctx, userID)
}

func (m *mockAttendanceService) ListForUser(ctx context.Context, userID int64) ([]models.AttendanceRecord, error) {
	return m.listForUserFn(ctx, userID)
}

// mockReportService implements service.ReportService for unit tests.
type mockReportService struct {
	buildDashboardFn func(ctx context.Context) ([]models.DashboardRow, error)
}

func (m *mockReportService) BuildDashboard(ctx context.Context) ([]models.DashboardRow, error) {
	return m.buildDashboardFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service mocks. Nil mocks
// are fine for tests that never touch the corresponding service.
func newTestHandler(t *testing.T, auth service.AuthService, attendance service.AttendanceService, report service.ReportService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:       auth,
		AttendanceService: attendance,
		ReportService:     report,
	}
	return NewHandler(svcs, config.Server{RequestTimeout: 30 * time.Second}, logger.Nop())
}

// decodeMessage extracts the message field of an API response body.
func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Message
}
