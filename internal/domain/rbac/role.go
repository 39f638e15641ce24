// Package rbac define el conjunto cerrado de roles de la cadena de
// restaurantes y la tabla rol → ruta canónica que usa el guard de navegación.
package rbac

// Role categoría fija de usuario; controla qué vistas son alcanzables.
type Role string

// Conjunto cerrado de roles. Agregar un rol aquí exige darle destino en
// HomeRoute (el switch es exhaustivo a propósito).
const (
	RoleAdmin    Role = "admin"
	RoleDirector Role = "director"
	RoleChef     Role = "chef"
	RoleWaiter   Role = "waiter"
	RoleCashier  Role = "cashier"
	RoleClient   Role = "client"
	RoleDelivery Role = "delivery"
)

// Rutas de navegación de la aplicación.
const (
	RouteLogin       = "/login"
	RouteSignup      = "/signup"
	RouteLanding     = "/landing"
	RouteAdmin       = "/admin"
	RouteGRH         = "/grh"
	RouteRestaurants = "/restaurants"
	RouteMenu        = "/menu"
	RouteDirector    = "/director"
	RouteChef        = "/chef"
	RouteCashier     = "/cashier"
	RouteCustomer    = "/customer"
)

// All devuelve el conjunto cerrado de roles.
func All() []Role {
	return []Role{
		RoleAdmin, RoleDirector, RoleChef, RoleWaiter,
		RoleCashier, RoleClient, RoleDelivery,
	}
}

// Parse normaliza un string a Role; ok=false si no pertenece al conjunto.
func Parse(s string) (Role, bool) {
	r := Role(s)
	switch r {
	case RoleAdmin, RoleDirector, RoleChef, RoleWaiter, RoleCashier, RoleClient, RoleDelivery:
		return r, true
	}
	return "", false
}

// Valid indica si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	_, ok := Parse(string(r))
	return ok
}

// HomeRoute devuelve la ruta canónica del rol. Waiter y delivery no tienen
// pantalla propia y aterrizan en el landing, igual que cualquier rol
// desconocido (fallback defensivo, no error).
func (r Role) HomeRoute() string {
	switch r {
	case RoleAdmin:
		return RouteAdmin
	case RoleDirector:
		return RouteDirector
	case RoleChef:
		return RouteChef
	case RoleCashier:
		return RouteCashier
	case RoleClient:
		return RouteCustomer
	case RoleWaiter:
		return RouteLanding
	case RoleDelivery:
		return RouteLanding
	default:
		return RouteLanding
	}
}
