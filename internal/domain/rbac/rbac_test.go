package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/feedme-api/internal/domain/rbac"
)

// Sin sesión, toda ruta protegida redirige a /login.
func TestDecide_SinSesionRedirigeALogin(t *testing.T) {
	for _, required := range rbac.All() {
		d := rbac.Decide(false, "", required)
		assert.False(t, d.Allow)
		assert.Equal(t, rbac.RouteLogin, d.RedirectTo, "required=%s", required)
	}
}

// Con el rol correcto se renderiza la vista protegida; con otro rol se
// redirige a la ruta canónica del rol REAL, nunca a la del requerido.
func TestDecide_RolCorrectoYRolAjeno(t *testing.T) {
	for _, actual := range rbac.All() {
		d := rbac.Decide(true, actual, actual)
		assert.True(t, d.Allow, "rol %s debe entrar a su propia ruta", actual)

		for _, required := range rbac.All() {
			if required == actual {
				continue
			}
			d := rbac.Decide(true, actual, required)
			assert.False(t, d.Allow)
			assert.Equal(t, actual.HomeRoute(), d.RedirectTo,
				"%s en ruta de %s debe volver a su propia home", actual, required)
		}
	}
}

// Ruta pública (required vacío) se renderiza con o sin sesión.
func TestDecide_RutaPublica(t *testing.T) {
	assert.True(t, rbac.Decide(false, "", "").Allow)
	assert.True(t, rbac.Decide(true, rbac.RoleChef, "").Allow)
}

// Decide es idempotente: dos evaluaciones con los mismos insumos coinciden.
func TestDecide_Idempotente(t *testing.T) {
	a := rbac.Decide(true, rbac.RoleCashier, rbac.RoleAdmin)
	b := rbac.Decide(true, rbac.RoleCashier, rbac.RoleAdmin)
	assert.Equal(t, a, b)
}

// La tabla rol → ruta cubre todo el conjunto cerrado; un rol no mapeado cae
// al landing como fallback defensivo.
func TestHomeRoute_CubreElConjuntoCerrado(t *testing.T) {
	want := map[rbac.Role]string{
		rbac.RoleAdmin:    rbac.RouteAdmin,
		rbac.RoleDirector: rbac.RouteDirector,
		rbac.RoleChef:     rbac.RouteChef,
		rbac.RoleCashier:  rbac.RouteCashier,
		rbac.RoleClient:   rbac.RouteCustomer,
		rbac.RoleWaiter:   rbac.RouteLanding,
		rbac.RoleDelivery: rbac.RouteLanding,
	}
	for _, r := range rbac.All() {
		route, ok := want[r]
		assert.True(t, ok, "rol %s sin destino esperado en el test", r)
		assert.Equal(t, route, r.HomeRoute())
	}
	assert.Equal(t, rbac.RouteLanding, rbac.Role("intruso").HomeRoute())
}

func TestParse(t *testing.T) {
	r, ok := rbac.Parse("chef")
	assert.True(t, ok)
	assert.Equal(t, rbac.RoleChef, r)

	_, ok = rbac.Parse("root")
	assert.False(t, ok)
	assert.False(t, rbac.Role("root").Valid())
}
