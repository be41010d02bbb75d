package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/badassgarage/inventory-api/internal/application/auth"
	appinv "github.com/badassgarage/inventory-api/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthSvc   *auth.Service
	Presenter *appinv.Presenter
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthSvc)
	authGroup.Post("/login", authHandler.Login)

	// Inventario (protegido: requiere sesión autorizada por el gate)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthSvc))
	inventoryHandler := NewInventoryHandler(deps.Presenter)
	inv := protected.Group("/inventory")
	inv.Get("/", inventoryHandler.List)
	inv.Post("/:id/edit-intent", inventoryHandler.RequestEdit)
}
