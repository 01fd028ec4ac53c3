package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/red-vital/internal/application/availability"
	"github.com/tu-usuario/red-vital/internal/application/dto"
	"github.com/tu-usuario/red-vital/internal/domain/entity"
)

// AvailabilityHandler consultas públicas de disponibilidad de sangre.
type AvailabilityHandler struct {
	uc *availability.AvailabilityUseCase
}

// NewAvailabilityHandler construye el handler.
func NewAvailabilityHandler(uc *availability.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc}
}

// Query godoc
// @Summary      Disponibilidad de sangre
// @Description  Bancos con su inventario. Con latitude/longitude adjunta distancia y ordena por cercanía (radio default 50 km); sin coordenadas ordena por nombre.
// @Tags         availability
// @Produce      json
// @Param        city_id         query  string   false  "Filtrar por ciudad"
// @Param        blood_type      query  string   false  "Filtrar por tipo de sangre"
// @Param        latitude        query  number   false  "Latitud del solicitante"
// @Param        longitude       query  number   false  "Longitud del solicitante"
// @Param        radius          query  number   false  "Radio de búsqueda en km (default 50)"
// @Param        only_available  query  boolean  false  "Solo registros con unidades en stock"
// @Success      200  {array}   dto.BankAvailability
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/blood-availability [get]
func (h *AvailabilityHandler) Query(c *fiber.Ctx) error {
	var q dto.AvailabilityQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	results, err := h.uc.QueryAvailability(c.Context(), q)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(results), "blood_banks": results})
}

// Emergency godoc
// @Summary      Búsqueda de emergencia
// @Description  Ruta rápida: city_id y blood_type obligatorios. Devuelve solo bancos con unidades del tipo pedido, mejores opciones primero (AVAILABLE > LIMITED > CRITICAL, luego más stock), máximo 20.
// @Tags         availability
// @Produce      json
// @Param        city_id     query  string  true   "Ciudad donde se necesita la sangre"
// @Param        blood_type  query  string  true   "Tipo de sangre requerido"
// @Param        latitude    query  number  false  "Latitud del solicitante (solo informativa, no filtra)"
// @Param        longitude   query  number  false  "Longitud del solicitante"
// @Success      200  {array}   dto.BankAvailability
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/emergency/blood-availability [get]
func (h *AvailabilityHandler) Emergency(c *fiber.Ctx) error {
	var lat, lng *float64
	if c.Query("latitude") != "" && c.Query("longitude") != "" {
		la := c.QueryFloat("latitude")
		lo := c.QueryFloat("longitude")
		lat, lng = &la, &lo
	}
	results, err := h.uc.QueryEmergency(c.Context(), c.Query("city_id"), entity.BloodType(c.Query("blood_type")), lat, lng)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(results), "blood_banks": results})
}
