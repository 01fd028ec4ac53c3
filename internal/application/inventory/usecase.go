package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/red-vital/internal/application/dto"
	"github.com/tu-usuario/red-vital/internal/domain"
	"github.com/tu-usuario/red-vital/internal/domain/bloodstock"
	"github.com/tu-usuario/red-vital/internal/domain/entity"
	"github.com/tu-usuario/red-vital/internal/domain/repository"
	"github.com/tu-usuario/red-vital/pkg/logger"
)

// InventoryUseCase coordina las escrituras de inventario: valida la cantidad,
// deriva el status con bloodstock.Classify, persiste con upsert atómico y
// publica el cambio en los tópicos de ciudad y de banco.
//
// La escritura persistida es la fuente de verdad: un fallo al publicar se
// registra en el log y nunca se reporta como error al caller.
type InventoryUseCase struct {
	invRepo   repository.BloodInventoryRepository
	bankRepo  repository.BloodBankRepository
	publisher EventPublisher
	log       *logger.Logger
}

// NewInventoryUseCase construye el caso de uso con sus puertos.
func NewInventoryUseCase(
	invRepo repository.BloodInventoryRepository,
	bankRepo repository.BloodBankRepository,
	publisher EventPublisher,
	log *logger.Logger,
) *InventoryUseCase {
	return &InventoryUseCase{invRepo: invRepo, bankRepo: bankRepo, publisher: publisher, log: log}
}

// UpdateInput entrada del coordinador de actualizaciones.
// Cost/IsFree/ExpiryDate en nil conservan el valor actual del registro.
type UpdateInput struct {
	BloodBankID string
	BloodType   entity.BloodType
	Quantity    int
	CostPerUnit *decimal.Decimal
	IsFree      *bool
	ExpiryDate  *time.Time
	ActorID     string
}

// Create crea la primera entrada de inventario para un (banco, tipo).
// Falla con domain.ErrDuplicate si el par ya tiene registro: el caller debe
// usar update en su lugar.
func (uc *InventoryUseCase) Create(ctx context.Context, actorID string, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	bloodType := entity.BloodType(in.BloodType)
	if in.BloodBankID == "" || !bloodType.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	bank, err := uc.bankRepo.GetByID(ctx, in.BloodBankID)
	if err != nil {
		return nil, err
	}
	if bank == nil {
		return nil, domain.ErrBankNotFound
	}

	cost := decimal.Zero
	if in.CostPerUnit != nil {
		cost = *in.CostPerUnit
	}
	// is_free=true fuerza costo cero: el registro nunca guarda ambos a la vez.
	if in.IsFree {
		cost = decimal.Zero
	}
	if cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	inv := &entity.BloodInventory{
		ID:                 uuid.New().String(),
		BloodBankID:        in.BloodBankID,
		BloodType:          bloodType,
		Quantity:           in.Quantity,
		CostPerUnit:        cost,
		IsFree:             in.IsFree,
		ExpiryDate:         in.ExpiryDate,
		AvailabilityStatus: bloodstock.Classify(in.Quantity),
		LastUpdated:        time.Now(),
		UpdatedBy:          actorID,
	}
	if err := uc.invRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	uc.fanOut(ctx, bank, inv)
	return toInventoryResponse(inv), nil
}

// UpdateQuantity flujo único de cambio de cantidad: si el par (banco, tipo) no
// tiene registro la llamada igualmente crea uno (upsert), de modo que tanto la
// creación como el borrado-a-cero pasan por esta ruta y el fan-out nunca se salta.
func (uc *InventoryUseCase) UpdateQuantity(ctx context.Context, in UpdateInput) (*entity.BloodInventory, error) {
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if !in.BloodType.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	bank, err := uc.bankRepo.GetByID(ctx, in.BloodBankID)
	if err != nil {
		return nil, err
	}
	if bank == nil {
		return nil, domain.ErrBankNotFound
	}

	current, err := uc.invRepo.GetByBankAndType(ctx, in.BloodBankID, in.BloodType)
	if err != nil {
		return nil, err
	}

	inv := &entity.BloodInventory{
		ID:          uuid.New().String(),
		BloodBankID: in.BloodBankID,
		BloodType:   in.BloodType,
		Quantity:    in.Quantity,
		CostPerUnit: decimal.Zero,
		LastUpdated: time.Now(),
		UpdatedBy:   in.ActorID,
	}
	if current != nil {
		inv.ID = current.ID
		inv.CostPerUnit = current.CostPerUnit
		inv.IsFree = current.IsFree
		inv.ExpiryDate = current.ExpiryDate
	}
	if in.CostPerUnit != nil {
		inv.CostPerUnit = *in.CostPerUnit
	}
	if in.IsFree != nil {
		inv.IsFree = *in.IsFree
	}
	if in.ExpiryDate != nil {
		inv.ExpiryDate = in.ExpiryDate
	}
	if inv.IsFree {
		inv.CostPerUnit = decimal.Zero
	}
	if inv.CostPerUnit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	// El status nunca se recibe del caller: siempre se deriva de la cantidad.
	inv.AvailabilityStatus = bloodstock.Classify(in.Quantity)

	persisted, err := uc.invRepo.Upsert(ctx, inv)
	if err != nil {
		return nil, err
	}

	uc.fanOut(ctx, bank, persisted)
	return persisted, nil
}

// UpdateByID resuelve el registro por id y canaliza el cambio por UpdateQuantity.
func (uc *InventoryUseCase) UpdateByID(ctx context.Context, actorID, id string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	current, err := uc.invRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	persisted, err := uc.UpdateQuantity(ctx, UpdateInput{
		BloodBankID: current.BloodBankID,
		BloodType:   current.BloodType,
		Quantity:    in.Quantity,
		CostPerUnit: in.CostPerUnit,
		IsFree:      in.IsFree,
		ExpiryDate:  in.ExpiryDate,
		ActorID:     actorID,
	})
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(persisted), nil
}

// Delete borra físicamente el registro y anuncia cero unidades para su clave.
// El borrado físico es la operación aparte del store; el anuncio usa el mismo
// evento que cualquier otra escritura.
func (uc *InventoryUseCase) Delete(ctx context.Context, actorID, id string) error {
	current, err := uc.invRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	bank, err := uc.bankRepo.GetByID(ctx, current.BloodBankID)
	if err != nil {
		return err
	}
	if err := uc.invRepo.Delete(ctx, id); err != nil {
		return err
	}

	if bank != nil {
		gone := *current
		gone.Quantity = 0
		gone.AvailabilityStatus = bloodstock.StatusUnavailable
		gone.LastUpdated = time.Now()
		gone.UpdatedBy = actorID
		uc.fanOut(ctx, bank, &gone)
	}
	return nil
}

// ListByBank snapshot del inventario de un banco, opcionalmente por tipo.
func (uc *InventoryUseCase) ListByBank(ctx context.Context, bankID string, bloodType entity.BloodType) ([]dto.InventoryResponse, error) {
	if bloodType != "" && !bloodType.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.invRepo.List(ctx, repository.InventoryFilter{BloodBankID: bankID, BloodType: bloodType})
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// ListExpired registros con vencimiento pasado y unidades en stock.
// Filtro de lectura: no hay purga en segundo plano.
func (uc *InventoryUseCase) ListExpired(ctx context.Context, bankID string) ([]dto.InventoryResponse, error) {
	list, err := uc.invRepo.List(ctx, repository.InventoryFilter{BloodBankID: bankID, OnlyExpired: true})
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// ListLowStock registros con 0 < cantidad <= threshold (alertas de stock bajo).
func (uc *InventoryUseCase) ListLowStock(ctx context.Context, bankID string, threshold int) ([]dto.InventoryResponse, error) {
	if threshold <= 0 {
		threshold = 5
	}
	one := 1
	list, err := uc.invRepo.List(ctx, repository.InventoryFilter{
		BloodBankID: bankID,
		MinQuantity: &one,
		MaxQuantity: &threshold,
	})
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// fanOut publica el cambio en los dos tópicos. Best-effort: al menos el
// registro ya quedó persistido; un publish fallido solo se loggea.
func (uc *InventoryUseCase) fanOut(ctx context.Context, bank *entity.BloodBank, inv *entity.BloodInventory) {
	event := dto.InventoryChangeEvent{
		BloodBankID:        inv.BloodBankID,
		BloodType:          string(inv.BloodType),
		Quantity:           inv.Quantity,
		AvailabilityStatus: string(inv.AvailabilityStatus),
		LastUpdated:        inv.LastUpdated,
		CityID:             bank.CityID,
	}
	for _, topic := range []string{CityTopic(bank.CityID), BankTopic(bank.ID)} {
		if err := uc.publisher.Publish(ctx, topic, event); err != nil {
			uc.log.Warn().Err(err).
				Str("topic", topic).
				Str("blood_bank_id", inv.BloodBankID).
				Str("blood_type", string(inv.BloodType)).
				Msg("fallo al publicar evento de inventario")
		}
	}
}

func toInventoryResponse(inv *entity.BloodInventory) *dto.InventoryResponse {
	if inv == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ID:                 inv.ID,
		BloodBankID:        inv.BloodBankID,
		BloodType:          string(inv.BloodType),
		Quantity:           inv.Quantity,
		CostPerUnit:        inv.CostPerUnit,
		IsFree:             inv.IsFree,
		ExpiryDate:         inv.ExpiryDate,
		AvailabilityStatus: string(inv.AvailabilityStatus),
		LastUpdated:        inv.LastUpdated,
	}
}

func toInventoryResponses(list []*entity.BloodInventory) []dto.InventoryResponse {
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInventoryResponse(inv))
	}
	return items
}
