package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/red-vital/internal/application/dto"
	"github.com/tu-usuario/red-vital/internal/application/inventory"
	"github.com/tu-usuario/red-vital/internal/domain/entity"
)

// InventoryHandler maneja las escrituras y consultas de inventario (protegido).
type InventoryHandler struct {
	uc *inventory.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear registro de inventario
// @Description  Crea la primera entrada para un par (banco, tipo de sangre). Si el par ya existe responde 409; use PUT para actualizar.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "blood_bank_id, blood_type, quantity, cost_per_unit, is_free, expiry_date"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/blood-inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update godoc
// @Summary      Actualizar registro de inventario
// @Description  Actualiza la cantidad (y opcionalmente costo, gratuidad y vencimiento). El availability_status siempre se recalcula a partir de la cantidad.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro de inventario"
// @Param        body  body  dto.UpdateInventoryRequest  true  "quantity, cost_per_unit, is_free, expiry_date"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/blood-inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.UpdateByID(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Eliminar registro de inventario
// @Description  Borra el registro y anuncia cero unidades en los tópicos del banco y de la ciudad.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del registro de inventario"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/blood-inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "registro eliminado"})
}

// ListByBank godoc
// @Summary      Inventario de un banco
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        bankId      path   string  true   "ID del banco"
// @Param        blood_type  query  string  false  "Filtrar por tipo de sangre (A_POSITIVE, O_NEGATIVE, ...)"
// @Success      200  {array}   dto.InventoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/blood-inventory/bank/{bankId} [get]
func (h *InventoryHandler) ListByBank(c *fiber.Ctx) error {
	list, err := h.uc.ListByBank(c.Context(), c.Params("bankId"), entity.BloodType(c.Query("blood_type")))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "inventory": list})
}

// ListExpired godoc
// @Summary      Registros vencidos con stock
// @Description  Registros con fecha de vencimiento pasada y unidades todavía en stock, más antiguos primero.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        blood_bank_id  query  string  false  "Filtrar por banco"
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/blood-inventory/expired [get]
func (h *InventoryHandler) ListExpired(c *fiber.Ctx) error {
	list, err := h.uc.ListExpired(c.Context(), c.Query("blood_bank_id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "inventory": list})
}

// ListLowStock godoc
// @Summary      Registros con stock bajo
// @Description  Registros con 0 < cantidad <= threshold (default 5).
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        blood_bank_id  query  string  false  "Filtrar por banco"
// @Param        threshold      query  int     false  "Umbral de stock bajo (default 5)"
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/blood-inventory/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *fiber.Ctx) error {
	list, err := h.uc.ListLowStock(c.Context(), c.Query("blood_bank_id"), c.QueryInt("threshold"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "inventory": list})
}
