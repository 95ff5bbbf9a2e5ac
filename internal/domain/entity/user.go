package entity

import "time"

// Roles convencionales para User. Role es texto libre en la base;
// cualquier valor distinto de admin recibe los defaults de usuario normal.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Proveedores de identidad externos soportados.
const (
	ProviderGoogle = "google"
)

// User representa una cuenta del sistema. PasswordHash queda vacío para
// cuentas provisionadas solo por OAuth. Permissions y Menus se persisten como
// arrays de texto; su consistencia se garantiza en el use case de update,
// nunca asignando los campos directamente.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Provider     string // "google", "local", vacío para cuentas locales
	ProviderID   string
	Name         string
	IsActive     bool
	Role         string   // admin, user (texto libre)
	Permissions  []string // "<menu>:<action>"
	Menus        []string // claves de menú
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // soft delete
}
