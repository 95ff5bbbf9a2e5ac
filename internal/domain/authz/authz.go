// Package authz contiene la lógica pura de permisos y menús: gramática de
// permisos "<menu>:<action>", generación de defaults por rol y la tabla
// estática de descriptores de menú para el frontend.
package authz

import "strings"

// Vocabularios cerrados. Son configuración de proceso de solo lectura;
// no mutar en runtime.
var (
	ValidMenus   = []string{"dashboard", "users", "orders", "inventory"}
	ValidActions = []string{"view", "create", "edit", "delete"}
)

// defaultUserActions acciones para roles distintos de admin (sin delete).
var defaultUserActions = []string{"view", "create", "edit"}

// MenuDescriptor metadatos de presentación de un menú.
type MenuDescriptor struct {
	Key   string `json:"key"`
	Path  string `json:"path"`
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
}

// menuTable mapa estático clave → descriptor. Claves desconocidas se
// resuelven como ausentes, nunca como error.
var menuTable = map[string]MenuDescriptor{
	"dashboard": {Key: "dashboard", Path: "/", Title: "基础数据", Icon: "DataLine"},
	"users":     {Key: "users", Path: "/users", Title: "用户管理", Icon: "User"},
	"orders":    {Key: "orders", Path: "/orders", Title: "订单管理", Icon: "List"},
	"inventory": {Key: "inventory", Path: "/inventory", Title: "库存管理", Icon: "Box"},
}

// IsValidPermission valida un permiso contra la gramática "<menu>:<action>".
// Se divide en el primer ':'; todo lo demás queda en la mitad de acción, por
// lo que ':' extra invalida el permiso. Entrada malformada retorna false,
// nunca panic.
func IsValidPermission(permission string) bool {
	menu, action, found := strings.Cut(permission, ":")
	if !found {
		return false
	}
	return contains(ValidMenus, menu) && contains(ValidActions, action)
}

// FilterValidPermissions retorna la subsecuencia de permisos válidos,
// preservando el orden de entrada. Función pura e idempotente.
func FilterValidPermissions(permissions []string) []string {
	out := make([]string, 0, len(permissions))
	for _, p := range permissions {
		if IsValidPermission(p) {
			out = append(out, p)
		}
	}
	return out
}

// FilterPermissionsByMenus descarta los permisos cuyo componente de menú no
// está en menus. No valida gramática; eso es trabajo de FilterValidPermissions.
func FilterPermissionsByMenus(permissions, menus []string) []string {
	out := make([]string, 0, len(permissions))
	for _, p := range permissions {
		menu, _, _ := strings.Cut(p, ":")
		if contains(menus, menu) {
			out = append(out, p)
		}
	}
	return out
}

// GenerateDefaultPermissions deriva el set canónico de permisos para un rol y
// un conjunto de menús: admin recibe las cuatro acciones, cualquier otro rol
// view/create/edit. Orden de salida: menú mayor, acción menor.
func GenerateDefaultPermissions(role string, menus []string) []string {
	actions := defaultUserActions
	if role == "admin" {
		actions = ValidActions
	}
	permissions := make([]string, 0, len(menus)*len(actions))
	for _, menu := range menus {
		for _, action := range actions {
			permissions = append(permissions, menu+":"+action)
		}
	}
	return permissions
}

// DefaultMenus menús de fallback por rol cuando el usuario no tiene menús
// explícitos: admin ve todo, el resto solo dashboard.
func DefaultMenus(role string) []string {
	if role == "admin" {
		return []string{"dashboard", "users", "orders", "inventory"}
	}
	return []string{"dashboard"}
}

// ResolveMenus mapea claves de menú a sus descriptores, preservando orden y
// descartando claves desconocidas en silencio.
func ResolveMenus(keys []string) []MenuDescriptor {
	menus := make([]MenuDescriptor, 0, len(keys))
	for _, key := range keys {
		if d, ok := menuTable[key]; ok {
			menus = append(menus, d)
		}
	}
	return menus
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
