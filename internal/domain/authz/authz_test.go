package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/backoffice-api/internal/domain/authz"
)

// ──────────────────────────────────────────────────────────────────────────────
// Gramática de permisos
// ──────────────────────────────────────────────────────────────────────────────

func TestIsValidPermission_Casos(t *testing.T) {
	cases := []struct {
		permission string
		want       bool
	}{
		{"dashboard:view", true},
		{"users:create", true},
		{"orders:edit", true},
		{"inventory:delete", true},
		{"inventory:View", false},   // case sensitive
		{"reports:view", false},     // menú fuera del vocabulario
		{"dashboard:export", false}, // acción fuera del vocabulario
		{"dashboard", false},        // sin separador
		{"dashboard:", false},       // acción vacía
		{":view", false},            // menú vacío
		{"dashboard:view:extra", false}, // ':' extra queda en la acción
		{"", false},
		{":", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, authz.IsValidPermission(tc.permission),
			"permiso %q", tc.permission)
	}
}

func TestFilterValidPermissions_PreservaOrdenYDescarta(t *testing.T) {
	in := []string{"users:edit", "bogus", "dashboard:view", "orders:drop", "inventory:delete"}
	out := authz.FilterValidPermissions(in)
	assert.Equal(t, []string{"users:edit", "dashboard:view", "inventory:delete"}, out)
}

func TestFilterValidPermissions_Idempotente(t *testing.T) {
	in := []string{"dashboard:view", "x", "users:edit", "users:"}
	once := authz.FilterValidPermissions(in)
	twice := authz.FilterValidPermissions(once)
	assert.Equal(t, once, twice, "aplicar el filtro dos veces debe dar lo mismo que una")
}

func TestFilterPermissionsByMenus(t *testing.T) {
	perms := []string{"dashboard:view", "users:edit", "dashboard:bogus", "orders:view"}
	out := authz.FilterPermissionsByMenus(perms, []string{"dashboard"})
	// Solo filtra por menú; la gramática no se valida aquí.
	assert.Equal(t, []string{"dashboard:view", "dashboard:bogus"}, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Generación de defaults
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateDefaultPermissions_AdminOrdenExacto(t *testing.T) {
	out := authz.GenerateDefaultPermissions("admin", []string{"dashboard", "users"})
	require.Equal(t, []string{
		"dashboard:view", "dashboard:create", "dashboard:edit", "dashboard:delete",
		"users:view", "users:create", "users:edit", "users:delete",
	}, out, "orden menú-mayor, acción-menor")
}

func TestGenerateDefaultPermissions_UserSinDelete(t *testing.T) {
	out := authz.GenerateDefaultPermissions("user", []string{"dashboard"})
	assert.Equal(t, []string{"dashboard:view", "dashboard:create", "dashboard:edit"}, out)
}

func TestGenerateDefaultPermissions_RolDesconocidoComoUser(t *testing.T) {
	out := authz.GenerateDefaultPermissions("auditor", []string{"orders"})
	assert.Equal(t, []string{"orders:view", "orders:create", "orders:edit"}, out)
}

func TestGenerateDefaultPermissions_MenusVacios(t *testing.T) {
	assert.Empty(t, authz.GenerateDefaultPermissions("admin", nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Menús por defecto y resolución de descriptores
// ──────────────────────────────────────────────────────────────────────────────

func TestDefaultMenus(t *testing.T) {
	assert.Equal(t, []string{"dashboard", "users", "orders", "inventory"}, authz.DefaultMenus("admin"))
	assert.Equal(t, []string{"dashboard"}, authz.DefaultMenus("user"))
	assert.Equal(t, []string{"dashboard"}, authz.DefaultMenus(""))
}

func TestResolveMenus_DescartaDesconocidosPreservaOrden(t *testing.T) {
	menus := authz.ResolveMenus([]string{"inventory", "ghost", "dashboard"})
	require.Len(t, menus, 2)
	assert.Equal(t, "inventory", menus[0].Key)
	assert.Equal(t, "/inventory", menus[0].Path)
	assert.Equal(t, "dashboard", menus[1].Key)
	assert.Equal(t, "/", menus[1].Path)
}

func TestResolveMenus_TablaCompleta(t *testing.T) {
	menus := authz.ResolveMenus([]string{"dashboard", "users", "orders", "inventory"})
	require.Len(t, menus, 4)
	paths := []string{menus[0].Path, menus[1].Path, menus[2].Path, menus[3].Path}
	assert.Equal(t, []string{"/", "/users", "/orders", "/inventory"}, paths)
	for _, m := range menus {
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Icon)
	}
}
