package dto

import "github.com/tu-usuario/backoffice-api/internal/domain/authz"

// RegisterRequest entrada para registro. Role, Permissions y Menus son
// opcionales (provisión por admin); no se validan contra la gramática en este
// punto, solo en updates posteriores.
type RegisterRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=6,max=20"`
	Name        string   `json:"name" validate:"required,min=1,max=50"`
	Role        string   `json:"role" validate:"omitempty"`
	Permissions []string `json:"permissions" validate:"omitempty"`
	Menus       []string `json:"menus" validate:"omitempty"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida de login: token + datos de presentación. Los permisos
// y menús NO viajan aquí; el cliente los pide a /api/auth/info.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

// RegisterResponse salida de registro: token + usuario parcial.
type RegisterResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

// AuthInfoResponse payload de autorización para el bootstrap de sesión.
type AuthInfoResponse struct {
	Permissions []string               `json:"permissions"`
	Menus       []authz.MenuDescriptor `json:"menus"`
}

// GoogleProfile perfil mínimo que entrega el proveedor OAuth tras el callback.
type GoogleProfile struct {
	Email      string `json:"email"`
	FirstName  string `json:"given_name"`
	LastName   string `json:"family_name"`
	Picture    string `json:"picture"`
	ProviderID string `json:"sub"`
}
