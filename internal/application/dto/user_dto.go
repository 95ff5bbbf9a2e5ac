package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
// Permissions y Menus se almacenan tal cual llegan: la reconciliación solo
// ocurre en update, igual que en el resto del sistema.
type CreateUserRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=6,max=20"`
	Name        string   `json:"name" validate:"required,min=1,max=50"`
	Role        string   `json:"role" validate:"omitempty"`
	Permissions []string `json:"permissions" validate:"omitempty"`
	Menus       []string `json:"menus" validate:"omitempty"`
}

// UpdateUserRequest entrada para actualizar un usuario. Todos los campos son
// opcionales; para Permissions y Menus, nil significa "no enviado" (el JSON
// los omitió) y dispara la política de reconciliación correspondiente,
// mientras que un slice vacío cuenta como enviado.
type UpdateUserRequest struct {
	Email       *string  `json:"email" validate:"omitempty,email"`
	Password    *string  `json:"password" validate:"omitempty,min=6,max=20"`
	Name        *string  `json:"name" validate:"omitempty,min=1,max=50"`
	Role        *string  `json:"role"`
	IsActive    *bool    `json:"isActive"`
	Permissions []string `json:"permissions"`
	Menus       []string `json:"menus"`
}

// UserResponse salida de un usuario (sin password hash).
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Provider    string    `json:"provider,omitempty"`
	Name        string    `json:"name"`
	IsActive    bool      `json:"isActive"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	Menus       []string  `json:"menus"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
