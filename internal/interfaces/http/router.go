package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/demo-api/internal/application/usecase"
	"github.com/jhoicas/demo-api/pkg/logger"
)

// RouterDeps dependencias para el router del servicio extendido.
type RouterDeps struct {
	StatusUC    *usecase.StatusUseCase
	UserUC      *usecase.UserUseCase
	ProductUC   *usecase.ProductUseCase
	OrderUC     *usecase.OrderUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	Log         *logger.Logger
}

// Router registra las rutas de la API extendida. Todas son públicas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Status
	statusHandler := NewStatusHandler(deps.StatusUC, deps.Log)
	api.Get("/health", statusHandler.Health)
	api.Get("/slow-endpoint", statusHandler.Slow)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)

	// Products
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	api.Get("/products", productHandler.List)

	// Orders
	orderHandler := NewOrderHandler(deps.OrderUC)
	api.Post("/orders", orderHandler.Create)

	// Analytics
	analytics := api.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC, deps.Log)
	analytics.Get("/", analyticsHandler.Summary)
	analytics.Get("/report.pdf", analyticsHandler.ReportPDF)

	// Docs
	docsHandler := NewDocsHandler(deps.Log)
	api.Get("/docs/spec", docsHandler.Spec)

	app.Use(NotFound)
}

// MinimalRouter registra las rutas del servicio mínimo.
func MinimalRouter(app *fiber.App, service string) {
	api := app.Group("/api")
	h := NewMinimalHandler(service)
	api.Get("/health", h.Health)
	api.Get("/users", h.Users)

	app.Use(NotFound)
}

// AppOptions opciones comunes a ambos servicios.
type AppOptions struct {
	Name         string
	AllowOrigins string // CORS, separados por coma; "*" = todos
	Log          *logger.Logger
}

// NewApp construye la aplicación Fiber: ErrorHandler, logger de requests, recover y CORS.
// Swagger UI y las rutas se agregan después, desde cmd.
func NewApp(opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               opts.Name,
		ErrorHandler:          ErrorHandler(opts.Log),
		DisableStartupMessage: true,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
	})
	app.Use(RequestLogger(opts.Log))
	app.Use(recover.New())

	origins := opts.AllowOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowHeaders:  "Origin, Content-Type, Accept, " + HeaderRequestID,
		ExposeHeaders: HeaderRequestID,
	}))
	return app
}
