package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tu-usuario/backoffice-api/internal/application/auth"
	"github.com/tu-usuario/backoffice-api/internal/application/dto"
	"github.com/tu-usuario/backoffice-api/internal/domain"
	"github.com/tu-usuario/backoffice-api/internal/infrastructure/oauth"
)

// AuthHandler maneja registro, login, login con Google y auth info.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	google *oauth.GoogleProvider // nil si Google no está configurado
	devEnv bool
}

// NewAuthHandler construye el handler de auth. google puede ser nil.
func NewAuthHandler(uc *auth.AuthUseCase, google *oauth.GoogleProvider, devEnv bool) *AuthHandler {
	return &AuthHandler{uc: uc, google: google, devEnv: devEnv}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, name"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, password y name son requeridos"})
	}
	if len(in.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 6 caracteres"})
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		// Email inexistente y password incorrecto responden idéntico.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"success": true, "message": "sesión cerrada"})
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"id":    GetUserID(c),
		"email": GetEmail(c),
	})
}

// Info godoc
// @Summary      Permisos y menús del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AuthInfoResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/info [get]
func (h *AuthHandler) Info(c *fiber.Ctx) error {
	out, err := h.uc.GetAuthInfo(c.Context(), GetUserID(c))
	if err != nil {
		// Usuario inexistente = sesión obsoleta, no un 404.
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "la sesión ya no es válida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GoogleAuth redirige al consent screen de Google.
func (h *AuthHandler) GoogleAuth(c *fiber.Ctx) error {
	if h.google == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "GOOGLE_DISABLED", Message: "login con Google no configurado"})
	}
	state := uuid.New().String()
	c.Cookie(&fiber.Cookie{
		Name:     "oauth_state",
		Value:    state,
		HTTPOnly: true,
		Path:     "/",
		MaxAge:   300,
	})
	return c.Redirect(h.google.AuthCodeURL(state), fiber.StatusFound)
}

// GoogleCallback procesa el callback de Google: valida el state, intercambia
// el code por el perfil y emite la sesión en una cookie httpOnly.
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	if h.google == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "GOOGLE_DISABLED", Message: "login con Google no configurado"})
	}
	if state := c.Query("state"); state == "" || state != c.Cookies("oauth_state") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: "state inválido"})
	}
	profile, err := h.google.Exchange(c.Context(), c.Query("code"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "GOOGLE_EXCHANGE", Message: "no se pudo completar el login con Google"})
	}
	out, err := h.uc.GoogleLogin(c.Context(), profile)
	if err != nil {
		if errors.Is(err, domain.ErrNoProfile) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_PROFILE", Message: "Google no entregó un perfil"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Cookie(&fiber.Cookie{
		Name:     accessTokenCookie,
		Value:    out.AccessToken,
		HTTPOnly: true,
		Secure:   !h.devEnv,
		SameSite: "Lax",
		Path:     "/",
		MaxAge:   24 * 60 * 60,
	})
	return c.JSON(out)
}
