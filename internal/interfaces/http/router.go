package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/olionece/gestione-olio/internal/application/movement"
	"github.com/olionece/gestione-olio/internal/application/stock"
	"github.com/olionece/gestione-olio/internal/application/usecase"
	"github.com/olionece/gestione-olio/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC     *stock.UseCase
	WarehouseUC *usecase.WarehouseUseCase
	VariantUC   *usecase.VariantUseCase
	ProfileUC   *usecase.ProfileUseCase
	Recorder    *movement.Recorder
	QueryEngine *movement.QueryEngine
	PDF         MovementPDFGenerator
	Export      ExportOptions
	Roles       roleSource
	JWTSecret   string
	JWTIssuer   string
}

// Router registra las rutas de la API. Todas las rutas de negocio requieren
// Bearer Token; el registro de movimientos exige además operator o admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	profileHandler := NewProfileHandler(deps.ProfileUC)
	api.Get("/me", profileHandler.Me)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	api.Get("/warehouses", warehouseHandler.List)

	variantHandler := NewVariantHandler(deps.VariantUC)
	api.Get("/variants", variantHandler.List)
	api.Get("/variants/options", variantHandler.Options)

	stockHandler := NewStockHandler(deps.StockUC)
	api.Get("/stock", stockHandler.List)

	movementHandler := NewMovementHandler(deps.Recorder, deps.QueryEngine, deps.PDF, deps.Export)
	api.Get("/movements", movementHandler.List)
	api.Get("/movements/export", movementHandler.ExportCSV)
	api.Get("/movements/export.pdf", movementHandler.ExportPDF)
	api.Post("/movements",
		RequireRole(deps.Roles, entity.RoleOperator, entity.RoleAdmin),
		movementHandler.Record,
	)
}
