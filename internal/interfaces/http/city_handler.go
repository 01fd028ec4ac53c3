package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/red-vital/internal/application/directory"
	"github.com/tu-usuario/red-vital/internal/application/reporting"
)

// CityHandler catálogo de ciudades y resumen de disponibilidad por ciudad.
type CityHandler struct {
	directory *directory.DirectoryUseCase
	reporting *reporting.ReportingUseCase
}

// NewCityHandler construye el handler.
func NewCityHandler(dir *directory.DirectoryUseCase, rep *reporting.ReportingUseCase) *CityHandler {
	return &CityHandler{directory: dir, reporting: rep}
}

// List godoc
// @Summary      Listar ciudades
// @Tags         cities
// @Produce      json
// @Success      200  {array}  dto.CityResponse
// @Router       /api/cities [get]
func (h *CityHandler) List(c *fiber.Ctx) error {
	cities, err := h.directory.ListCities(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(cities), "cities": cities})
}

// GetByID godoc
// @Summary      Detalle de una ciudad
// @Tags         cities
// @Produce      json
// @Param        id  path  string  true  "ID de la ciudad"
// @Success      200  {object}  dto.CityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cities/{id} [get]
func (h *CityHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.directory.GetCity(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// BloodSummary godoc
// @Summary      Resumen de sangre de una ciudad
// @Description  Acumulado por tipo de sangre en todos los bancos activos de la ciudad.
// @Tags         cities
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la ciudad"
// @Success      200  {object}  dto.CitySummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cities/{id}/blood-summary [get]
func (h *CityHandler) BloodSummary(c *fiber.Ctx) error {
	resp, err := h.reporting.CitySummary(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// BloodSummaryPDF godoc
// @Summary      Resumen de ciudad en PDF
// @Description  Versión imprimible del resumen, para coordinación en campo.
// @Tags         cities
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la ciudad"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cities/{id}/blood-summary/pdf [get]
func (h *CityHandler) BloodSummaryPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.reporting.CitySummaryPDF(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resumen-ciudad.pdf"`)
	return c.Send(pdfBytes)
}
