package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/trendify-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "trendify-test"
)

// Caso 1: Generar y parsear el token devuelve el mismo userID.
func TestJWT_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testIssuer, 60)
	require.NoError(t, err, "debe generarse un token JWT válido")

	sub, err := pkgjwt.Parse(testSecret, testIssuer, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, sub, "el subject debe ser el userID original")
}

// Caso 2: Un token vencido devuelve ErrTokenExpired, distinguible de inválido.
func TestJWT_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testIssuer, -5)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenExpired,
		"un token con exp en el pasado debe reportarse como expirado")
}

// Caso 3: Firmado con otro secret → ErrTokenInvalid.
func TestJWT_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", testUserID, testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalid)
}

// Caso 4: Issuer distinto al del servidor → ErrTokenInvalid.
func TestJWT_IssuerIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "otro-emisor", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalid,
		"un issuer inesperado no debe aceptarse")
}

// Caso 5: Basura que no es un JWT → ErrTokenInvalid.
func TestJWT_TokenMalformado(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, testIssuer, "no-es-un-jwt")
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalid)
}
