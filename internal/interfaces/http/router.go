package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/alert"
	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MaterialUC  *usecase.MaterialUseCase
	InventoryUC *usecase.InventoryQueryUseCase
	ReportUC    *usecase.ReportUseCase
	Mutator     *stock.Mutator
	AlertEngine *alert.Engine
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (solo administradores)
	users := protected.Group("/users", RequireLevel(entity.LevelAdmin))
	users.Post("/", authHandler.Register)
	users.Get("/", authHandler.ListUsers)

	// Materiales: lectura para todos, escritura solo administradores
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Post("/", RequireLevel(entity.LevelAdmin), materialHandler.Create)
	materials.Put("/:id", RequireLevel(entity.LevelAdmin), materialHandler.Update)
	materials.Delete("/:id", RequireLevel(entity.LevelAdmin), materialHandler.Delete)

	// Inventario: consultas abiertas, mutaciones requieren nivel operador
	invGroup := protected.Group("/inventory")
	stockHandler := NewStockHandler(deps.Mutator, deps.InventoryUC)
	invGroup.Get("/", stockHandler.ListInventory)
	invGroup.Get("/movements", stockHandler.ListMovements)
	invGroup.Get("/checks", stockHandler.ListChecks)
	invGroup.Post("/movements", RequireLevel(entity.LevelOperator), stockHandler.RegisterMovement)
	invGroup.Post("/checks", RequireLevel(entity.LevelOperator), stockHandler.RegisterCheck)

	// Alertas
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertEngine)
	alerts.Get("/", alertHandler.List)
	alerts.Post("/:id/resolve", RequireLevel(entity.LevelOperator), alertHandler.MarkResolved)

	// Reportes
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/monthly", reportHandler.Monthly)
}
