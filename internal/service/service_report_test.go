package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/mock"
	"github.com/MKhiriev/go-attendance/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReportService(t *testing.T, ctrl *gomock.Controller) (*reportService, *mock.MockUserRepository, *mock.MockAttendanceRepository) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)
	mockAttendance := mock.NewMockAttendanceRepository(ctrl)
	svc := NewReportService(mockUsers, mockAttendance, logger.Nop()).(*reportService)
	return svc, mockUsers, mockAttendance
}

func TestReportService_BuildDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockAttendance := newTestReportService(t, ctrl)
	ctx := context.Background()

	// September has 30 days, so 3 present days must come out as "10.00"
	svc.now = func() time.Time {
		return time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)
	}

	employees := []models.User{
		{UserID: 1, Username: "alice", Role: models.RoleEmployee},
		{UserID: 2, Username: "bob", Role: models.RoleEmployee},
	}

	ledger := []models.AttendanceRecord{
		{RecordID: 1, UserID: 1, Date: "2026-09-01", Status: models.StatusPresent},
		{RecordID: 2, UserID: 1, Date: "2026-09-02", Status: models.StatusPresent},
		{RecordID: 3, UserID: 1, Date: "2026-09-03", Status: models.StatusPresent},
	}

	mockUsers.EXPECT().
		ListUsersByRole(ctx, models.RoleEmployee).
		Return(employees, nil)
	mockAttendance.EXPECT().
		ListAll(ctx).
		Return(ledger, nil)

	rows, err := svc.BuildDashboard(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "alice", rows[0].Username)
	assert.Equal(t, 3, rows[0].PresentDays)
	assert.Equal(t, "10.00", rows[0].AttendancePercentage)
	assert.Len(t, rows[0].Records, 3)

	// bob has no marks but still gets a row with an empty record list
	assert.Equal(t, "bob", rows[1].Username)
	assert.Equal(t, 0, rows[1].PresentDays)
	assert.Equal(t, "0.00", rows[1].AttendancePercentage)
	assert.NotNil(t, rows[1].Records)
	assert.Empty(t, rows[1].Records)
}

func TestReportService_BuildDashboard_FebruaryLeapYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockAttendance := newTestReportService(t, ctrl)
	ctx := context.Background()

	// 2028 is a leap year: February has 29 days
	svc.now = func() time.Time {
		return time.Date(2028, time.February, 10, 0, 0, 0, 0, time.UTC)
	}

	mockUsers.EXPECT().
		ListUsersByRole(ctx, models.RoleEmployee).
		Return([]models.User{{UserID: 1, Username: "alice", Role: models.RoleEmployee}}, nil)
	mockAttendance.EXPECT().
		ListAll(ctx).
		Return([]models.AttendanceRecord{
			{RecordID: 1, UserID: 1, Date: "2028-02-01", Status: models.StatusPresent},
		}, nil)

	rows, err := svc.BuildDashboard(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// 1/29 * 100 = 3.448... → "3.45"
	assert.Equal(t, "3.45", rows[0].AttendancePercentage)
}

func TestReportService_BuildDashboard_NoEmployees(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockAttendance := newTestReportService(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		ListUsersByRole(ctx, models.RoleEmployee).
		Return(nil, nil)
	mockAttendance.EXPECT().
		ListAll(ctx).
		Return(nil, nil)

	rows, err := svc.BuildDashboard(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReportService_BuildDashboard_AdminsExcluded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockAttendance := newTestReportService(t, ctrl)
	ctx := context.Background()

	// the ledger contains an admin's marks; only employees make rows, so the
	// admin's records must not surface anywhere
	mockUsers.EXPECT().
		ListUsersByRole(ctx, models.RoleEmployee).
		Return([]models.User{{UserID: 2, Username: "bob", Role: models.RoleEmployee}}, nil)
	mockAttendance.EXPECT().
		ListAll(ctx).
		Return([]models.AttendanceRecord{
			{RecordID: 1, UserID: 1, Date: "2026-08-30", Status: models.StatusPresent},
		}, nil)

	rows, err := svc.BuildDashboard(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "bob", rows[0].Username)
	assert.Equal(t, 0, rows[0].PresentDays)
}

func TestReportService_BuildDashboard_UserRepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestReportService(t, ctrl)
	ctx := context.Background()

	repoErr := errors.New("db down")
	mockUsers.EXPECT().
		ListUsersByRole(ctx, models.RoleEmployee).
		Return(nil, repoErr)

	_, err := svc.BuildDashboard(ctx)
	require.ErrorIs(t, err, repoErr)
}

func TestReportService_BuildDashboard_LedgerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockAttendance := newTestReportService(t, ctrl)
	ctx := context.Background()

	repoErr := errors.New("db down")
	mockUsers.EXPECT().
		ListUsersByRole(ctx, models.RoleEmployee).
		Return(nil, nil)
	mockAttendance.EXPECT().
		ListAll(ctx).
		Return(nil, repoErr)

	_, err := svc.BuildDashboard(ctx)
	require.ErrorIs(t, err, repoErr)
}
