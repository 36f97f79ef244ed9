package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Invoicing-api/internal/application/auth"
	"github.com/jhoicas/Invoicing-api/internal/application/billing"
	"github.com/jhoicas/Invoicing-api/pkg/logger"
)

// Version versión informada en GET /.
const Version = "2.0.0"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	InvoiceUC *billing.InvoiceUseCase
	ClientUC  *billing.ClientUseCase
	Readiness ReadinessChecker
	AppName   string
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log.WithComponent("http")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": deps.AppName + " is running",
			"docs":    "/docs",
			"version": Version,
			"endpoints": fiber.Map{
				"auth":     "/auth/register, /auth/token, /auth/me, /auth/users",
				"invoices": "/invoices",
				"clients":  "/clients",
			},
		})
	})

	healthHandler := NewHealthHandler(deps.Readiness, deps.AppName, log)
	app.Get("/health", healthHandler.Health)
	app.Get("/ready", healthHandler.Ready)

	requireUser := AuthMiddleware(deps.AuthUC, log)

	// Auth: register y token públicos
	authHandler := NewAuthHandler(deps.AuthUC, log)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/token", authHandler.Token)
	authGroup.Get("/me", requireUser, authHandler.Me)
	authGroup.Get("/users", requireUser, authHandler.ListUsers)

	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, log)
	invoices := app.Group("/invoices", requireUser)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/summary", invoiceHandler.Summary)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	clientHandler := NewClientHandler(deps.ClientUC, log)
	clients := app.Group("/clients", requireUser)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)
}
