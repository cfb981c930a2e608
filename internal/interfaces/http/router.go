package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/auth"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/usecase"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/infrastructure/rates"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	GarmentUC   *usecase.GarmentService
	ClientUC    *usecase.ClientService
	OrderUC     *usecase.OrderService
	StockUC     *usecase.StockService
	MaterialUC  *usecase.MaterialService
	EventUC     *usecase.EventService
	DashboardUC *usecase.DashboardUseCase
	RateCache   *rates.Cache
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

	// Garments (protegido)
	garments := protected.Group("/garments")
	garmentHandler := NewGarmentHandler(deps.GarmentUC)
	garments.Post("/", garmentHandler.Create)
	garments.Get("/", garmentHandler.List)
	garments.Get("/:id", garmentHandler.GetByID)
	garments.Patch("/:id", garmentHandler.Update)
	garments.Delete("/:id", garmentHandler.Delete)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Patch("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	// Stock (protegido)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Post("/", stockHandler.Create)
	stock.Get("/", stockHandler.List)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Patch("/:id", stockHandler.Update)
	stock.Delete("/:id", stockHandler.Delete)

	// Materials, lista de compras (protegido)
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Patch("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)

	// Events, calendario (protegido)
	events := protected.Group("/events")
	eventHandler := NewEventHandler(deps.EventUC)
	events.Post("/", eventHandler.Create)
	events.Get("/", eventHandler.List)
	events.Get("/:id", eventHandler.GetByID)
	events.Patch("/:id", eventHandler.Update)
	events.Delete("/:id", eventHandler.Delete)

	// Tasa de cambio (protegido)
	rateHandler := NewRateHandler(deps.RateCache)
	protected.Get("/rates", rateHandler.Get)
	protected.Post("/rates/refresh", rateHandler.Refresh)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
