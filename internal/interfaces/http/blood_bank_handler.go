package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/red-vital/internal/application/directory"
	"github.com/tu-usuario/red-vital/internal/application/reporting"
	"github.com/tu-usuario/red-vital/internal/domain/repository"
)

// BloodBankHandler directorio de bancos de sangre y sus estadísticas.
type BloodBankHandler struct {
	directory *directory.DirectoryUseCase
	reporting *reporting.ReportingUseCase
}

// NewBloodBankHandler construye el handler.
func NewBloodBankHandler(dir *directory.DirectoryUseCase, rep *reporting.ReportingUseCase) *BloodBankHandler {
	return &BloodBankHandler{directory: dir, reporting: rep}
}

// List godoc
// @Summary      Listar bancos de sangre
// @Tags         blood-banks
// @Produce      json
// @Param        city_id  query  string   false  "Filtrar por ciudad"
// @Param        search   query  string   false  "Buscar en nombre y dirección"
// @Param        is_24x7  query  boolean  false  "Solo bancos 24/7"
// @Param        limit    query  int      false  "Tamaño de página (default 20, máx 100)"
// @Param        offset   query  int      false  "Desplazamiento"
// @Success      200  {object}  dto.BankListResponse
// @Router       /api/blood-banks [get]
func (h *BloodBankHandler) List(c *fiber.Ctx) error {
	filter := repository.BankFilter{
		CityID:     c.Query("city_id"),
		Search:     c.Query("search"),
		OnlyActive: true,
		Limit:      c.QueryInt("limit"),
		Offset:     c.QueryInt("offset"),
	}
	if c.Query("is_24x7") != "" {
		v := c.QueryBool("is_24x7")
		filter.Is24x7 = &v
	}
	resp, err := h.directory.ListBanks(c.Context(), filter)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Detalle de un banco de sangre
// @Tags         blood-banks
// @Produce      json
// @Param        id  path  string  true  "ID del banco"
// @Success      200  {object}  dto.BankResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/blood-banks/{id} [get]
func (h *BloodBankHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.directory.GetBank(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// Stats godoc
// @Summary      Estadísticas de inventario de un banco
// @Description  Rollup por tipo de sangre del banco: unidades y status por tipo.
// @Tags         blood-banks
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del banco"
// @Success      200  {object}  dto.BankStatsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/blood-banks/{id}/stats [get]
func (h *BloodBankHandler) Stats(c *fiber.Ctx) error {
	resp, err := h.reporting.BankStats(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}
