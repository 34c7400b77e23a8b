package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testEmail  = "operatore@gestioneolio.local"
	testIssuer = "gestione-olio-test"
)

func TestParse_TokenValido(t *testing.T) {
	tok, err := Generate(testSecret, testUserID, testEmail, testIssuer, 60)
	require.NoError(t, err)

	userID, email, err := Parse(testSecret, testIssuer, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testEmail, email)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := Generate(testSecret, testUserID, testEmail, testIssuer, 60)
	require.NoError(t, err)

	_, _, err = Parse("otro-secret", testIssuer, tok)
	assert.Error(t, err)
}

func TestParse_IssuerIncorrecto(t *testing.T) {
	tok, err := Generate(testSecret, testUserID, testEmail, "otro-emisor", 60)
	require.NoError(t, err)

	_, _, err = Parse(testSecret, testIssuer, tok)
	assert.Error(t, err)
}

// Issuer vacío en la verificación: el emisor no se comprueba.
func TestParse_SinVerificacionDeIssuer(t *testing.T) {
	tok, err := Generate(testSecret, testUserID, testEmail, "cualquiera", 60)
	require.NoError(t, err)

	_, _, err = Parse(testSecret, "", tok)
	assert.NoError(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := Generate(testSecret, testUserID, testEmail, testIssuer, -5)
	require.NoError(t, err)

	_, _, err = Parse(testSecret, testIssuer, tok)
	assert.Error(t, err)
}

func TestParse_SecretVacio(t *testing.T) {
	_, _, err := Parse("", testIssuer, "lo-que-sea")
	assert.Error(t, err)

	_, err = Generate("", testUserID, testEmail, testIssuer, 60)
	assert.Error(t, err)
}
