package usecase

import (
	"context"
	"time"
)

// HealthStatus is the liveness payload. It reports nothing about downstream
// dependencies: the probe answers "is the process serving requests".
type HealthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}

type healthUsecase struct{}

func NewHealthUsecase() HealthUsecase {
	return &healthUsecase{}
}

func (u *healthUsecase) Check(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "OK",
		Message:   "Backend server is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
