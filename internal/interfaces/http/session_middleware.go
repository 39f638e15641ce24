package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/feedme-api/internal/application/session"
	"github.com/jhoicas/feedme-api/internal/domain/rbac"
)

// LocalSession key de la sesión decodificada en c.Locals.
const LocalSession = "session"

// SessionMiddleware lee la cookie de sesión en cada request y deja la sesión
// decodificada en c.Locals. Una cookie ausente, corrupta o manipulada deja la
// sesión en nil; el guard decide qué hacer con eso.
func SessionMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sess := store.Decode(c.Cookies(store.CookieName())); sess != nil {
			c.Locals(LocalSession, sess)
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto, o nil si no hay.
func GetSession(c *fiber.Ctx) *session.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}

// Guard protege una ruta de navegación: sin sesión redirige a /login y con
// sesión de otro rol redirige a la home canónica de ese rol. La redirección
// es 303 para que el navegador siempre haga GET del destino.
func Guard(required rbac.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		var actual rbac.Role
		if sess != nil {
			actual = sess.Role
		}
		decision := rbac.Decide(sess != nil, actual, required)
		if !decision.Allow {
			return c.Redirect(decision.RedirectTo, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// WriteSessionCookie emite la cookie de sesión firmada tras un login exitoso.
func WriteSessionCookie(c *fiber.Ctx, store *session.Store, sess *session.Session) error {
	value, err := store.Encode(sess)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     store.CookieName(),
		Value:    value,
		Expires:  time.Now().Add(store.TTL()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

// ClearSessionCookie borra la cookie de sesión (logout).
func ClearSessionCookie(c *fiber.Ctx, store *session.Store) {
	c.Cookie(&fiber.Cookie{
		Name:     store.CookieName(),
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
