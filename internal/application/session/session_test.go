package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/feedme-api/internal/application/session"
	"github.com/jhoicas/feedme-api/internal/domain/entity"
	"github.com/jhoicas/feedme-api/internal/domain/rbac"
)

var (
	testHashKey  = []byte("0123456789abcdef0123456789abcdef")
	testBlockKey = []byte("fedcba9876543210fedcba9876543210")
)

func testUser() *entity.User {
	return &entity.User{
		ID:       "u-1",
		Username: "marta",
		Email:    "marta@feedme.co",
		Name:     "Marta Ruiz",
		Role:     rbac.RoleDirector,
	}
}

// Login + "reinicio del proceso" (escribir y volver a leer) reproduce la
// misma sesión: ley de ida y vuelta.
func TestStore_RoundTrip(t *testing.T) {
	store := session.NewStore("feedme_session", testHashKey, testBlockKey)

	sess := session.FromUser(testUser())
	value, err := store.Encode(sess)
	require.NoError(t, err)
	require.NotEmpty(t, value)

	got := store.Decode(value)
	require.NotNil(t, got)
	assert.Equal(t, sess, got)
}

// Un valor almacenado que no es una sesión válida deja al usuario deslogueado,
// no produce error.
func TestStore_ValorCorruptoEsSesionAusente(t *testing.T) {
	store := session.NewStore("feedme_session", testHashKey, testBlockKey)

	assert.Nil(t, store.Decode("esto-no-es-una-cookie-valida"))
	assert.Nil(t, store.Decode(""))
	assert.Nil(t, store.Decode("eyJhbGciOi.."))
}

// Una cookie firmada con otra llave (manipulada) también se descarta.
func TestStore_FirmaAjenaSeDescarta(t *testing.T) {
	storeA := session.NewStore("feedme_session", testHashKey, nil)
	storeB := session.NewStore("feedme_session", []byte("otra-llave-distinta-de-32-bytes!"), nil)

	value, err := storeA.Encode(session.FromUser(testUser()))
	require.NoError(t, err)

	assert.Nil(t, storeB.Decode(value))
}

// Un rol fuera del conjunto cerrado invalida la sesión restaurada.
func TestStore_RolDesconocidoEsSesionAusente(t *testing.T) {
	store := session.NewStore("feedme_session", testHashKey, nil)

	u := testUser()
	u.Role = rbac.Role("superuser")
	value, err := store.Encode(session.FromUser(u))
	require.NoError(t, err)

	assert.Nil(t, store.Decode(value))
}
