package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/feedme-api/internal/application/session"
	"github.com/jhoicas/feedme-api/internal/domain/rbac"
	apphttp "github.com/jhoicas/feedme-api/internal/interfaces/http"
)

var testHashKey = []byte("0123456789abcdef0123456789abcdef")

// buildGuardedApp monta el guard de navegación sobre las rutas por rol.
func buildGuardedApp(store *session.Store) *fiber.App {
	app := fiber.New()
	app.Use(apphttp.SessionMiddleware(store))
	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get(rbac.RouteAdmin, apphttp.Guard(rbac.RoleAdmin), ok)
	app.Get(rbac.RouteChef, apphttp.Guard(rbac.RoleChef), ok)
	app.Get(rbac.RouteLanding, apphttp.Guard(""), ok)
	return app
}

func sessionCookie(t *testing.T, store *session.Store, role rbac.Role) *http.Cookie {
	t.Helper()
	value, err := store.Encode(&session.Session{
		ID:       "u-1",
		Username: "prueba",
		Email:    "prueba@feedme.co",
		Role:     role,
	})
	require.NoError(t, err)
	return &http.Cookie{Name: store.CookieName(), Value: value}
}

func getPage(t *testing.T, app *fiber.App, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Sin cookie de sesión, toda ruta protegida redirige al login.
func TestGuard_SinSesionRedirigeALogin(t *testing.T) {
	store := session.NewStore("feedme_session", testHashKey, nil)
	app := buildGuardedApp(store)

	for _, path := range []string{rbac.RouteAdmin, rbac.RouteChef} {
		resp := getPage(t, app, path, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, "ruta %s", path)
		assert.Equal(t, rbac.RouteLogin, resp.Header.Get("Location"), "ruta %s", path)
	}
}

// El rol correcto entra a su pantalla.
func TestGuard_RolCorrectoEntra(t *testing.T) {
	store := session.NewStore("feedme_session", testHashKey, nil)
	app := buildGuardedApp(store)

	resp := getPage(t, app, rbac.RouteAdmin, sessionCookie(t, store, rbac.RoleAdmin))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// El rol equivocado se redirige a SU home, nunca a la del requerido.
func TestGuard_RolEquivocadoVaASuHome(t *testing.T) {
	store := session.NewStore("feedme_session", testHashKey, nil)
	app := buildGuardedApp(store)

	resp := getPage(t, app, rbac.RouteAdmin, sessionCookie(t, store, rbac.RoleChef))
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, rbac.RouteChef, resp.Header.Get("Location"),
		"el chef que intenta /admin aterriza en /chef")
}

// Una cookie corrupta equivale a no tener sesión: redirige al login.
func TestGuard_CookieCorruptaRedirigeALogin(t *testing.T) {
	store := session.NewStore("feedme_session", testHashKey, nil)
	app := buildGuardedApp(store)

	garbage := &http.Cookie{Name: store.CookieName(), Value: "no-es-una-sesion"}
	resp := getPage(t, app, rbac.RouteAdmin, garbage)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, rbac.RouteLogin, resp.Header.Get("Location"))
}

// Una cookie firmada con otra llave también se descarta.
func TestGuard_CookieDeOtraLlaveRedirigeALogin(t *testing.T) {
	store := session.NewStore("feedme_session", testHashKey, nil)
	foreign := session.NewStore("feedme_session", []byte("ffffffffffffffffffffffffffffffff"), nil)
	app := buildGuardedApp(store)

	resp := getPage(t, app, rbac.RouteAdmin, sessionCookie(t, foreign, rbac.RoleAdmin))
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, rbac.RouteLogin, resp.Header.Get("Location"))
}

// Las rutas públicas no exigen sesión.
func TestGuard_RutaPublicaSinSesion(t *testing.T) {
	store := session.NewStore("feedme_session", testHashKey, nil)
	app := buildGuardedApp(store)

	resp := getPage(t, app, rbac.RouteLanding, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
