package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/backoffice-api/internal/application/dto"
	"github.com/tu-usuario/backoffice-api/internal/domain"
)

// permissionChecker es el contrato mínimo que necesita el middleware para
// resolver permisos efectivos. Lo implementa *auth.AuthUseCase; la interfaz
// evita el import circular con el paquete de aplicación.
type permissionChecker interface {
	HasPermission(ctx context.Context, userID, permission string) (bool, error)
}

// RequirePermission devuelve un middleware Fiber que exige un permiso
// "<menu>:<action>" efectivo (almacenado o derivado de los defaults del rol).
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalUserID).
//
// Comportamiento:
//   - 401 Unauthorized → sin user_id en contexto o sesión obsoleta (el usuario ya no existe).
//   - 403 Forbidden → el usuario no tiene el permiso.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
func RequirePermission(permission string, checker permissionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}

		allowed, err := checker.HasPermission(c.Context(), userID, permission)
		if err != nil {
			if errors.Is(err, domain.ErrNotAuthenticated) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Code:    "UNAUTHORIZED",
					Message: "la sesión ya no es válida",
				})
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudo verificar el permiso, intente más tarde",
			})
		}

		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "se requiere el permiso '" + permission + "'",
			})
		}

		return c.Next()
	}
}
