// Package session implementa la fuente única de verdad de "quién está
// logueado y con qué rol". El registro del usuario viaja serializado en una
// cookie autenticada (y opcionalmente cifrada) con gorilla/securecookie; se
// escribe al hacer login, se lee en cada request y se borra al hacer logout.
package session

import (
	"crypto/rand"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/jhoicas/feedme-api/internal/domain/entity"
	"github.com/jhoicas/feedme-api/internal/domain/rbac"
)

// DefaultTTL vida de la cookie de sesión.
const DefaultTTL = 24 * time.Hour

// Session el registro del usuario autenticado tal como se persiste en el
// cliente. El rol es inmutable durante la vida de la sesión.
type Session struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	Role         rbac.Role `json:"role"`
	RestaurantID string    `json:"restaurant_id,omitempty"`
}

// FromUser arma la sesión a partir de un usuario ya autenticado. No valida
// nada más allá de la presencia del registro.
func FromUser(u *entity.User) *Session {
	return &Session{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		RestaurantID: u.RestaurantID,
	}
}

// Store codifica y decodifica la sesión hacia/desde el valor de la cookie.
// Es puro: el plumbing HTTP (escribir/borrar la cookie) vive en la capa de
// interfaces.
type Store struct {
	codec      *securecookie.SecureCookie
	cookieName string
	ttl        time.Duration
}

// NewStore construye el store. Sin hashKey se genera una llave efímera (las
// sesiones no sobreviven un reinicio del proceso; suficiente en desarrollo).
// blockKey es opcional: con él la cookie además se cifra.
func NewStore(cookieName string, hashKey, blockKey []byte) *Store {
	if cookieName == "" {
		cookieName = "feedme_session"
	}
	if len(hashKey) == 0 {
		hashKey = randomKey(32)
	}
	codec := securecookie.New(hashKey, blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(int(DefaultTTL / time.Second))
	return &Store{codec: codec, cookieName: cookieName, ttl: DefaultTTL}
}

// CookieName nombre de la cookie durable.
func (s *Store) CookieName() string { return s.cookieName }

// TTL vida de la sesión.
func (s *Store) TTL() time.Duration { return s.ttl }

// Encode serializa la sesión al valor firmado de la cookie.
func (s *Store) Encode(sess *Session) (string, error) {
	return s.codec.Encode(s.cookieName, sess)
}

// Decode reconstruye la sesión desde el valor de la cookie. Un valor corrupto,
// manipulado o con formato viejo se descarta y se devuelve nil: la sesión
// ausente es el estado de recuperación, nunca un error fatal.
func (s *Store) Decode(value string) *Session {
	if value == "" {
		return nil
	}
	var sess Session
	if err := s.codec.Decode(s.cookieName, value, &sess); err != nil {
		return nil
	}
	if !sess.Role.Valid() {
		// rol fuera del conjunto cerrado: tratar como sesión ausente
		return nil
	}
	return &sess
}

func randomKey(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("session: sin entropía del sistema: " + err.Error())
	}
	return b
}
