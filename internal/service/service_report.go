package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/store"
	"github.com/MKhiriev/go-attendance/models"
)

// reportService is the concrete implementation of ReportService. It holds no
// state beyond its repositories and clock; every call recomputes the report
// from the current ledger.
type reportService struct {
	userRepository       store.UserRepository
	attendanceRepository store.AttendanceRepository

	// now supplies the server's reference clock. Overridable in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewReportService constructs a ReportService over the given repositories.
func NewReportService(userRepository store.UserRepository, attendanceRepository store.AttendanceRepository, logger *logger.Logger) ReportService {
	return &reportService{
		userRepository:       userRepository,
		attendanceRepository: attendanceRepository,
		now:                  time.Now,
		logger:               logger,
	}
}

// BuildDashboard returns one row per employee-role user: present-day count,
// percentage of the current calendar month, and the records themselves for
// audit display.
//
// The percentage divides by the total number of days in the server's current
// month, not by the days elapsed so far. Mid-month this understates
// attendance; the behaviour is kept deliberately because the consumers of
// the report expect it.
func (s *reportService) BuildDashboard(ctx context.Context) ([]models.DashboardRow, error) {
	log := logger.FromContext(ctx)

	employees, err := s.userRepository.ListUsersByRole(ctx, models.RoleEmployee)
	if err != nil {
		log.Err(err).Msg("listing employees failed")
		return nil, fmt.Errorf("listing employees failed: %w", err)
	}

	ledger, err := s.attendanceRepository.ListAll(ctx)
	if err != nil {
		log.Err(err).Msg("listing attendance ledger failed")
		return nil, fmt.Errorf("listing attendance ledger failed: %w", err)
	}

	recordsByUser := make(map[int64][]models.AttendanceRecord, len(employees))
	for _, record := range ledger {
		recordsByUser[record.UserID] = append(recordsByUser[record.UserID], record)
	}

	daysInMonth := daysInCurrentMonth(s.now())

	rows := make([]models.DashboardRow, 0, len(employees))
	for _, employee := range employees {
		records := recordsByUser[employee.UserID]
		if records == nil {
			// employees without marks still get a row with an empty list
			records = []models.AttendanceRecord{}
		}
		presentDays := len(records)
		percentage := float64(presentDays) / float64(daysInMonth) * 100

		rows = append(rows, models.DashboardRow{
			Username:             employee.Username,
			PresentDays:          presentDays,
			AttendancePercentage: fmt.Sprintf("%.2f", percentage),
			Records:              records,
		})
	}

	return rows, nil
}

// daysInCurrentMonth returns the number of calendar days (28–31) of the
// month the given instant falls in. Day 0 of the next month is the last day
// of this one.
func daysInCurrentMonth(now time.Time) int {
	return time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
}
