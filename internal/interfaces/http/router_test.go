package http_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/backoffice-api/internal/application/auth"
	"github.com/tu-usuario/backoffice-api/internal/application/usecase"
	apphttp "github.com/tu-usuario/backoffice-api/internal/interfaces/http"
)

// Verifica que las rutas del API queden registradas con su método; en
// particular los soft delete, que existen para usuarios e inventario por igual.
func TestRouter_RutasRegistradas(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(nil, auth.JWTConfig{Secret: "s"}),
		UserUC:      usecase.NewUserUseCase(nil),
		InventoryUC: usecase.NewInventoryUseCase(nil),
		JWTSecret:   "s",
	})

	want := []struct{ method, path string }{
		{fiber.MethodPost, "/api/auth/register"},
		{fiber.MethodPost, "/api/auth/login"},
		{fiber.MethodGet, "/api/auth/info"},
		{fiber.MethodDelete, "/api/users/:id/soft"},
		{fiber.MethodDelete, "/api/inventory/:id"},
		{fiber.MethodDelete, "/api/inventory/:id/soft"},
	}

	routes := app.GetRoutes()
	for _, w := range want {
		found := false
		for _, r := range routes {
			if r.Method == w.method && r.Path == w.path {
				found = true
				break
			}
		}
		assert.True(t, found, "falta la ruta %s %s", w.method, w.path)
	}
}
