package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Caso 1: Generate/Parse recuperan los mismos claims.
func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := Generate("un-secreto", 7, "pierre", "manager", "brico-pos", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, username, role, err := Parse("un-secreto", token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
	assert.Equal(t, "pierre", username)
	assert.Equal(t, "manager", role)
}

// Caso 2: la firma con otro secreto no verifica.
func TestParse_SecretoDistinto(t *testing.T) {
	token, err := Generate("un-secreto", 7, "pierre", "manager", "brico-pos", 60)
	require.NoError(t, err)

	_, _, _, err = Parse("otro-secreto", token)
	assert.Error(t, err)
}

// Caso 3: un token expirado se rechaza en Parse.
func TestParse_Expirado(t *testing.T) {
	token, err := Generate("un-secreto", 7, "pierre", "manager", "brico-pos", -1)
	require.NoError(t, err)

	_, _, _, err = Parse("un-secreto", token)
	assert.Error(t, err)
}

// Caso 4: sin secreto no se firma ni se verifica.
func TestSecretoVacio(t *testing.T) {
	_, err := Generate("", 7, "pierre", "manager", "brico-pos", 60)
	assert.Error(t, err)

	_, _, _, err = Parse("", "lo-que-sea")
	assert.Error(t, err)
}
