package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/backoffice-api/internal/application/auth"
	"github.com/tu-usuario/backoffice-api/internal/application/usecase"
	"github.com/tu-usuario/backoffice-api/internal/infrastructure/oauth"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	InventoryUC *usecase.InventoryUseCase
	Google      *oauth.GoogleProvider // nil deshabilita las rutas de Google
	JWTSecret   string
	DevEnv      bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público salvo profile/info)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Google, deps.DevEnv)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/google", authHandler.GoogleAuth)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Get("/profile", AuthMiddleware(deps.JWTSecret), authHandler.Profile)
	authGroup.Get("/info", AuthMiddleware(deps.JWTSecret), authHandler.Info)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (protegido; cada verbo exige su permiso users:*)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequirePermission("users:view", deps.AuthUC), userHandler.List)
	users.Post("/", RequirePermission("users:create", deps.AuthUC), userHandler.Create)
	users.Get("/:id", RequirePermission("users:view", deps.AuthUC), userHandler.GetByID)
	users.Patch("/:id", RequirePermission("users:edit", deps.AuthUC), userHandler.Update)
	users.Delete("/:id", RequirePermission("users:delete", deps.AuthUC), userHandler.Delete)
	users.Delete("/:id/soft", RequirePermission("users:delete", deps.AuthUC), userHandler.SoftDelete)

	// Inventory (protegido; permisos inventory:*)
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Get("/", RequirePermission("inventory:view", deps.AuthUC), inventoryHandler.List)
	inv.Post("/", RequirePermission("inventory:create", deps.AuthUC), inventoryHandler.Create)
	inv.Get("/:id", RequirePermission("inventory:view", deps.AuthUC), inventoryHandler.GetByID)
	inv.Patch("/:id", RequirePermission("inventory:edit", deps.AuthUC), inventoryHandler.Update)
	inv.Delete("/:id", RequirePermission("inventory:delete", deps.AuthUC), inventoryHandler.Delete)
	inv.Delete("/:id/soft", RequirePermission("inventory:delete", deps.AuthUC), inventoryHandler.SoftDelete)
}
