package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/red-vital/internal/application/bloodrequest"
	"github.com/tu-usuario/red-vital/internal/application/dto"
	"github.com/tu-usuario/red-vital/internal/domain/repository"
)

// BloodRequestHandler solicitudes de sangre (protegido, cualquier rol autenticado).
type BloodRequestHandler struct {
	uc *bloodrequest.BloodRequestUseCase
}

// NewBloodRequestHandler construye el handler.
func NewBloodRequestHandler(uc *bloodrequest.BloodRequestUseCase) *BloodRequestHandler {
	return &BloodRequestHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud de sangre
// @Description  Registra una solicitud en estado PENDING a nombre del usuario autenticado.
// @Tags         blood-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBloodRequestRequest  true  "city_id, blood_type, units, urgency, notes"
// @Success      201   {object}  dto.BloodRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/blood-requests [post]
func (h *BloodRequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBloodRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Detalle de una solicitud de sangre
// @Description  Los roles paciente y doctor solo pueden ver sus propias solicitudes; admin y banco cualquiera.
// @Tags         blood-requests
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.BloodRequestResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/blood-requests/{id} [get]
func (h *BloodRequestHandler) GetByID(c *fiber.Ctx) error {
	role := GetRole(c)
	staff := role == RoleAdmin || role == RoleBanco
	resp, err := h.uc.Get(c.Context(), GetUserID(c), staff, c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una solicitud
// @Description  Marca la solicitud como FULFILLED o CANCELLED (o de vuelta a PENDING). Solo admin y personal de banco.
// @Tags         blood-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.UpdateBloodRequestStatusRequest  true  "status: PENDING | FULFILLED | CANCELLED"
// @Success      200   {object}  dto.BloodRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/blood-requests/{id}/status [patch]
func (h *BloodRequestHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateBloodRequestStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar solicitudes de sangre
// @Description  Los roles paciente y doctor ven solo sus propias solicitudes; admin y banco pueden filtrar por ciudad y estado.
// @Tags         blood-requests
// @Security     Bearer
// @Produce      json
// @Param        city_id  query  string  false  "Filtrar por ciudad (solo admin/banco)"
// @Param        status   query  string  false  "Filtrar por estado (PENDING, FULFILLED, CANCELLED)"
// @Param        limit    query  int     false  "Tamaño de página (default 20)"
// @Param        offset   query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.BloodRequestResponse
// @Router       /api/blood-requests [get]
func (h *BloodRequestHandler) List(c *fiber.Ctx) error {
	filter := repository.RequestFilter{
		Status: c.Query("status"),
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	// Los solicitantes solo ven lo suyo; el personal de bancos ve su ciudad.
	switch GetRole(c) {
	case RoleAdmin, RoleBanco:
		filter.CityID = c.Query("city_id")
	default:
		filter.RequesterID = GetUserID(c)
	}
	list, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "blood_requests": list})
}
