package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/red-vital/internal/application/availability"
	"github.com/tu-usuario/red-vital/internal/application/bloodrequest"
	"github.com/tu-usuario/red-vital/internal/application/directory"
	"github.com/tu-usuario/red-vital/internal/application/inventory"
	"github.com/tu-usuario/red-vital/internal/application/reporting"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC    *inventory.InventoryUseCase
	AvailabilityUC *availability.AvailabilityUseCase
	ReportingUC    *reporting.ReportingUseCase
	DirectoryUC    *directory.DirectoryUseCase
	BloodRequestUC *bloodrequest.BloodRequestUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Consultas públicas: ciudades, bancos y disponibilidad
	cityHandler := NewCityHandler(deps.DirectoryUC, deps.ReportingUC)
	cities := api.Group("/cities")
	cities.Get("/", cityHandler.List)
	cities.Get("/:id", cityHandler.GetByID)

	bankHandler := NewBloodBankHandler(deps.DirectoryUC, deps.ReportingUC)
	banks := api.Group("/blood-banks")
	banks.Get("/", bankHandler.List)
	banks.Get("/:id", bankHandler.GetByID)

	availabilityHandler := NewAvailabilityHandler(deps.AvailabilityUC)
	api.Get("/blood-availability", availabilityHandler.Query)
	api.Get("/emergency/blood-availability", availabilityHandler.Emergency)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Rollups operativos: solo admin y personal de banco
	staff := protected.Group("/", RequireRole(RoleAdmin, RoleBanco))
	staff.Get("/blood-banks/:id/stats", bankHandler.Stats)
	staff.Get("/cities/:id/blood-summary", cityHandler.BloodSummary)
	staff.Get("/cities/:id/blood-summary/pdf", cityHandler.BloodSummaryPDF)

	// Escrituras de inventario: solo admin y personal de banco
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup := protected.Group("/blood-inventory", RequireRole(RoleAdmin, RoleBanco))
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Put("/:id", inventoryHandler.Update)
	invGroup.Delete("/:id", inventoryHandler.Delete)
	invGroup.Get("/bank/:bankId", inventoryHandler.ListByBank)
	invGroup.Get("/expired", inventoryHandler.ListExpired)
	invGroup.Get("/low-stock", inventoryHandler.ListLowStock)

	// Solicitudes de sangre: cualquier rol autenticado
	requestHandler := NewBloodRequestHandler(deps.BloodRequestUC)
	requests := protected.Group("/blood-requests")
	requests.Post("/", requestHandler.Create)
	requests.Get("/", requestHandler.List)
	requests.Get("/:id", requestHandler.GetByID)
	// El ciclo de vida lo cierra el personal del banco, no el solicitante.
	requests.Patch("/:id/status", RequireRole(RoleAdmin, RoleBanco), requestHandler.UpdateStatus)
}
