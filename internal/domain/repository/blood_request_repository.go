package repository

import (
	"context"

	"github.com/tu-usuario/red-vital/internal/domain/entity"
)

// RequestFilter criterios de listado de solicitudes de sangre.
type RequestFilter struct {
	RequesterID string
	CityID      string
	Status      string
	Limit       int
	Offset      int
}

// BloodRequestRepository puerto de persistencia de solicitudes de sangre.
type BloodRequestRepository interface {
	Create(ctx context.Context, req *entity.BloodRequest) error
	GetByID(ctx context.Context, id string) (*entity.BloodRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]*entity.BloodRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
