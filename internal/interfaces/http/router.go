package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cleanstock-api/internal/application/analytics"
	"github.com/tu-usuario/cleanstock-api/internal/application/auth"
	"github.com/tu-usuario/cleanstock-api/internal/application/catalog"
	"github.com/tu-usuario/cleanstock-api/internal/application/transactions"
	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC      *catalog.ItemUseCase
	AssetUC     *catalog.AssetUseCase
	PostTx      *transactions.PostTransactionUseCase
	TxQuery     *transactions.QueryUseCase
	TxReport    *transactions.ReportUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	adminOnly := RequireRole(entity.RoleAdmin)

	// Items (protegido; borrado solo ADMIN)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/critical/stock", itemHandler.ListCritical)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)

	// Assets (protegido; borrado solo ADMIN)
	assets := protected.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC)
	assets.Post("/", assetHandler.Create)
	assets.Get("/", assetHandler.List)
	assets.Get("/available/:itemId", assetHandler.ListAvailable)
	assets.Get("/:id", assetHandler.GetByID)
	assets.Put("/:id", assetHandler.Update)
	assets.Delete("/:id", adminOnly, assetHandler.Delete)

	// Transactions (protegido)
	txGroup := protected.Group("/transactions")
	txHandler := NewTransactionHandler(deps.PostTx, deps.TxQuery, deps.TxReport)
	txGroup.Post("/", txHandler.Post)
	txGroup.Get("/", txHandler.List)
	txGroup.Get("/recent/:limit?", txHandler.Recent)
	txGroup.Get("/report", txHandler.ExportReport)

	// Dashboard (protegido)
	dashGroup := protected.Group("/dashboard")
	dashHandler := NewDashboardHandler(deps.DashboardUC)
	dashGroup.Get("/stats", dashHandler.Stats)
	dashGroup.Get("/usage-trend/:days?", dashHandler.UsageTrend)
	dashGroup.Get("/inventory-composition", dashHandler.Composition)
}
