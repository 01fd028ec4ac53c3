package bloodrequest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/red-vital/internal/application/dto"
	"github.com/tu-usuario/red-vital/internal/domain"
	"github.com/tu-usuario/red-vital/internal/domain/entity"
	"github.com/tu-usuario/red-vital/internal/domain/repository"
)

// BloodRequestUseCase solicitudes de sangre con persistencia real.
type BloodRequestUseCase struct {
	reqRepo  repository.BloodRequestRepository
	cityRepo repository.CityRepository
}

// NewBloodRequestUseCase construye el caso de uso.
func NewBloodRequestUseCase(reqRepo repository.BloodRequestRepository, cityRepo repository.CityRepository) *BloodRequestUseCase {
	return &BloodRequestUseCase{reqRepo: reqRepo, cityRepo: cityRepo}
}

// Create persiste una nueva solicitud en estado PENDING.
func (uc *BloodRequestUseCase) Create(ctx context.Context, requesterID string, in dto.CreateBloodRequestRequest) (*dto.BloodRequestResponse, error) {
	bloodType := entity.BloodType(in.BloodType)
	if in.CityID == "" || !bloodType.IsValid() || in.Units <= 0 {
		return nil, domain.ErrInvalidInput
	}
	urgency := in.Urgency
	switch urgency {
	case "":
		urgency = entity.UrgencyNormal
	case entity.UrgencyNormal, entity.UrgencyUrgent, entity.UrgencyEmergency:
	default:
		return nil, domain.ErrInvalidInput
	}
	city, err := uc.cityRepo.GetByID(ctx, in.CityID)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	req := &entity.BloodRequest{
		ID:          uuid.New().String(),
		RequesterID: requesterID,
		CityID:      in.CityID,
		BloodType:   bloodType,
		Units:       in.Units,
		Urgency:     urgency,
		Status:      entity.RequestStatusPending,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.reqRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return toResponse(req), nil
}

// Get obtiene una solicitud por id. El personal de bancos (staff) puede ver
// cualquiera; un solicitante solo las propias.
func (uc *BloodRequestUseCase) Get(ctx context.Context, viewerID string, staff bool, id string) (*dto.BloodRequestResponse, error) {
	req, err := uc.reqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if !staff && req.RequesterID != viewerID {
		return nil, domain.ErrForbidden
	}
	return toResponse(req), nil
}

// UpdateStatus cambia el estado de una solicitud (FULFILLED, CANCELLED o de
// vuelta a PENDING) y devuelve el registro actualizado.
func (uc *BloodRequestUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.BloodRequestResponse, error) {
	switch status {
	case entity.RequestStatusPending, entity.RequestStatusFulfilled, entity.RequestStatusCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}
	if err := uc.reqRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	req, err := uc.reqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(req), nil
}

// List lista solicitudes del solicitante (o de la ciudad, para rol banco/admin).
func (uc *BloodRequestUseCase) List(ctx context.Context, filter repository.RequestFilter) ([]dto.BloodRequestResponse, error) {
	page := dto.PageRequest{Limit: filter.Limit, Offset: filter.Offset}
	page.DefaultPage()
	filter.Limit, filter.Offset = page.Limit, page.Offset

	list, err := uc.reqRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BloodRequestResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toResponse(r))
	}
	return items, nil
}

func toResponse(r *entity.BloodRequest) *dto.BloodRequestResponse {
	return &dto.BloodRequestResponse{
		ID:          r.ID,
		RequesterID: r.RequesterID,
		CityID:      r.CityID,
		BloodType:   string(r.BloodType),
		Units:       r.Units,
		Urgency:     r.Urgency,
		Status:      r.Status,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
	}
}
