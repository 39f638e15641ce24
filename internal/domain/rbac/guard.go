package rbac

// Decision resultado del guard de navegación: o se renderiza la vista
// protegida, o se redirige a RedirectTo.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide evalúa el acceso a una ruta protegida. Es una función pura e
// idempotente: se evalúa en cada request, no solo al navegar, de modo que un
// cierre de sesión en otra pestaña se refleja en el siguiente render.
//
//   - Sin sesión → redirect a /login (reemplazando historial, no push).
//   - required vacío → ruta pública, se renderiza.
//   - Rol distinto del requerido → redirect a la ruta canónica del rol REAL
//     de la sesión (rol no mapeado cae al landing).
//   - Rol correcto → se renderiza la vista.
func Decide(hasSession bool, actual Role, required Role) Decision {
	if required == "" {
		return Decision{Allow: true}
	}
	if !hasSession {
		return Decision{RedirectTo: RouteLogin}
	}
	if actual != required {
		return Decision{RedirectTo: actual.HomeRoute()}
	}
	return Decision{Allow: true}
}
