package bcrypt_test

import (
	"testing"

	"github.com/sefazor/weddingplanner-backend/pkg/bcrypt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := bcrypt.HashPassword("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, "pw1", hash)
	assert.NoError(t, bcrypt.ComparePassword(hash, "pw1"))
}

func TestComparePassword_WrongPassword(t *testing.T) {
	hash, err := bcrypt.HashPassword("pw1")
	require.NoError(t, err)

	assert.Error(t, bcrypt.ComparePassword(hash, "pw2"))
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	first, err := bcrypt.HashPassword("pw1")
	require.NoError(t, err)

	second, err := bcrypt.HashPassword("pw1")
	require.NoError(t, err)

	// Same input hashes differently because each call salts anew
	assert.NotEqual(t, first, second)
}
