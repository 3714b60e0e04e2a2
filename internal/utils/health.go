package utils

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type HealthStatus struct {
	Status    string    `json:"status" example:"healthy"`
	Timestamp time.Time `json:"timestamp"`
	Services  []Service `json:"services"`
}

type Service struct {
	Name    string `json:"name" example:"postgres"`
	Status  string `json:"status" example:"up"`
	Message string `json:"message,omitempty"`
}

type HealthChecker struct {
	DB      *gorm.DB
	Timeout time.Duration
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	var services []Service
	overallStatus := "healthy"

	if h.DB != nil {
		service := Service{Name: h.DB.Dialector.Name()}
		timeout := h.Timeout
		if timeout <= 0 {
			timeout = 2 * time.Second
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		sqlDB, err := h.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			service.Status = "down"
			service.Message = err.Error()
			overallStatus = "degraded"
		} else {
			service.Status = "up"
		}
		services = append(services, service)
		cancel()
	}

	return HealthStatus{
		Status:    overallStatus,
		Timestamp: time.Now().UTC(),
		Services:  services,
	}
}
