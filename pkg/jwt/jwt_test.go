package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "clave-de-pruebas"

func TestGenerateAndParse(t *testing.T) {
	token, err := Generate(testSecret, "u-1", "r-1", "chef", "feedme", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, restaurantID, role, err := Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "r-1", restaurantID)
	assert.Equal(t, "chef", role)
}

func TestParseRestaurantIDVacio(t *testing.T) {
	// admin y client no pertenecen a una sucursal
	token, err := Generate(testSecret, "u-2", "", "admin", "feedme", 60)
	require.NoError(t, err)

	_, restaurantID, role, err := Parse(testSecret, token)
	require.NoError(t, err)
	assert.Empty(t, restaurantID)
	assert.Equal(t, "admin", role)
}

func TestParseTokenExpirado(t *testing.T) {
	token, err := Generate(testSecret, "u-1", "r-1", "chef", "feedme", -5)
	require.NoError(t, err)

	_, _, _, err = Parse(testSecret, token)
	assert.Error(t, err)
}

func TestParseFirmaIncorrecta(t *testing.T) {
	token, err := Generate("otro-secreto", "u-1", "r-1", "chef", "feedme", 60)
	require.NoError(t, err)

	_, _, _, err = Parse(testSecret, token)
	assert.Error(t, err)
}

func TestParseTokenBasura(t *testing.T) {
	_, _, _, err := Parse(testSecret, "no.es.un.jwt")
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", "u-1", "", "admin", "feedme", 60)
	assert.Error(t, err)

	_, _, _, err = Parse("", "lo-que-sea")
	assert.Error(t, err)
}
