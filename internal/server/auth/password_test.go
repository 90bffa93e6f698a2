package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("Str0ngP@ssw0rd", 10)
	require.NoError(t, err)
	require.NotEqual(t, "Str0ngP@ssw0rd", hash)

	assert.True(t, VerifyPassword("Str0ngP@ssw0rd", hash))
	assert.False(t, VerifyPassword("wrong-password", hash))
}

func TestHashPassword_UsesRequestedCost(t *testing.T) {
	hash, err := HashPassword("secret-password", 10)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestHashPassword_SaltsEveryHash(t *testing.T) {
	h1, err := HashPassword("same-password", 4)
	require.NoError(t, err)
	h2, err := HashPassword("same-password", 4)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword_RejectsGarbageHash(t *testing.T) {
	assert.False(t, VerifyPassword("anything", "not-a-bcrypt-hash"))
}
