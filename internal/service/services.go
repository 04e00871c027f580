package service

import (
	"github.com/MKhiriev/go-attendance/internal/config"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/store"
)

type Services struct {
	AuthService       AuthService
	AttendanceService AttendanceService
	ReportService     ReportService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg, logger),
		AttendanceService: NewAttendanceService(storages.AttendanceRepository, logger),
		ReportService:     NewReportService(storages.UserRepository, storages.AttendanceRepository, logger),
	}
}
