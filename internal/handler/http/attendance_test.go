package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-attendance/internal/store"
	"github.com/MKhiriev/go-attendance/internal/utils"
	"github.com/MKhiriev/go-attendance/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// asAuthenticated injects the verified identity the auth middleware would
// have stored in the request context.
func asAuthenticated(req *http.Request, userID int64, role string) *http.Request {
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	ctx = context.WithValue(ctx, utils.UserRoleCtxKey, role)
	return req.WithContext(ctx)
}

// ─────────────────────────────────────────────
// markAttendance
// ─────────────────────────────────────────────

func TestMarkAttendance_Success(t *testing.T) {
	attendance := &mockAttendanceService{
		markTodayFn: func(_ context.Context, userID int64) (models.AttendanceRecord, error) {
			assert.Equal(t, int64(42), userID)
			return models.AttendanceRecord{RecordID: 1, UserID: 42, Date: "2026-08-30", Status: models.StatusPresent}, nil
		},
	}

	h := newTestHandler(t, nil, attendance, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/attendance", nil)
	req = asAuthenticated(req, 42, models.RoleEmployee)
	rec := httptest.NewRecorder()

	h.markAttendance(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, msgAttendanceMarked, decodeMessage(t, rec))
}

func TestMarkAttendance_AlreadyMarked(t *testing.T) {
	attendance := &mockAttendanceService{
		markTodayFn: func(_ context.Context, _ int64) (models.AttendanceRecord, error) {
			return models.AttendanceRecord{}, store.ErrAlreadyMarked
		},
	}

	h := newTestHandler(t, nil, attendance, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/attendance", nil)
	req = asAuthenticated(req, 42, models.RoleEmployee)
	rec := httptest.NewRecorder()

	h.markAttendance(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgAlreadyMarked, decodeMessage(t, rec))
}

func TestMarkAttendance_NoIdentityInContext(t *testing.T) {
	h := newTestHandler(t, nil, &mockAttendanceService{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/attendance", nil)
	rec := httptest.NewRecorder()

	h.markAttendance(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMarkAttendance_StorageFailure(t *testing.T) {
	attendance := &mockAttendanceService{
		markTodayFn: func(_ context.Context, _ int64) (models.AttendanceRecord, error) {
			return models.AttendanceRecord{}, errors.New("db down")
		},
	}

	h := newTestHandler(t, nil, attendance, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/attendance", nil)
	req = asAuthenticated(req, 42, models.RoleEmployee)
	rec := httptest.NewRecorder()

	h.markAttendance(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgInternalServerError, decodeMessage(t, rec))
}

// ─────────────────────────────────────────────
// myAttendance
// ─────────────────────────────────────────────

func TestMyAttendance_Success(t *testing.T) {
	records := []models.AttendanceRecord{
		{RecordID: 1, UserID: 42, Date: "2026-08-28", Status: models.StatusPresent},
		{RecordID: 2, UserID: 42, Date: "2026-08-29", Status: models.StatusPresent},
	}

	attendance := &mockAttendanceService{
		listForUserFn: func(_ context.Context, userID int64) ([]models.AttendanceRecord, error) {
			assert.Equal(t, int64(42), userID)
			return records, nil
		},
	}

	h := newTestHandler(t, nil, attendance, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/attendance/me", nil)
	req = asAuthenticated(req, 42, models.RoleEmployee)
	rec := httptest.NewRecorder()

	h.myAttendance(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.AttendanceRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "2026-08-28", got[0].Date)
}

func TestMyAttendance_EmptyList(t *testing.T) {
	attendance := &mockAttendanceService{
		listForUserFn: func(_ context.Context, _ int64) ([]models.AttendanceRecord, error) {
			return nil, nil
		},
	}

	h := newTestHandler(t, nil, attendance, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/attendance/me", nil)
	req = asAuthenticated(req, 42, models.RoleEmployee)
	rec := httptest.NewRecorder()

	h.myAttendance(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// an empty history must serialise as [], not null
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestMyAttendance_StorageFailure(t *testing.T) {
	attendance := &mockAttendanceService{
		listForUserFn: func(_ context.Context, _ int64) ([]models.AttendanceRecord, error) {
			return nil, errors.New("db down")
		},
	}

	h := newTestHandler(t, nil, attendance, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/attendance/me", nil)
	req = asAuthenticated(req, 42, models.RoleEmployee)
	rec := httptest.NewRecorder()

	h.myAttendance(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgInternalServerError, decodeMessage(t, rec))
}
