package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashIComparePasswords(t *testing.T) {
	hash, err := HashPassword("Lozinka123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Lozinka123!", hash)

	assert.NoError(t, ComparePasswords(hash, "Lozinka123!"))
	assert.Error(t, ComparePasswords(hash, "pogresna"))
}

func TestHashPassword_RazlicitiHashevi(t *testing.T) {
	h1, err := HashPassword("ista-lozinka")
	require.NoError(t, err)
	h2, err := HashPassword("ista-lozinka")
	require.NoError(t, err)

	// bcrypt so garantuje različite hasheve za isti ulaz.
	assert.NotEqual(t, h1, h2)
}
