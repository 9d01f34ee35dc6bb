package usecase

import (
	"context"
	"time"
)

const ServiceName = "email-api"

// HealthStatus is the body of GET /api/health
type HealthStatus struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// ServiceInfo is the body of GET /
type ServiceInfo struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
	Info(ctx context.Context) ServiceInfo
}

type healthUsecase struct {
	name string
	now  func() time.Time
}

func NewHealthUsecase(name string) HealthUsecase {
	return &healthUsecase{name: name, now: time.Now}
}

func (u *healthUsecase) Check(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "healthy",
		Service:   ServiceName,
		Timestamp: u.timestamp(),
	}
}

func (u *healthUsecase) Info(ctx context.Context) ServiceInfo {
	return ServiceInfo{
		Message:   u.name + " API is running!",
		Status:    "active",
		Timestamp: u.timestamp(),
	}
}

// timestamp is RFC 3339 in UTC with millisecond precision
func (u *healthUsecase) timestamp() string {
	return u.now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
