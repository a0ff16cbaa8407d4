package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordSalted(t *testing.T) {
	// Same plaintext, two calls: the random salt must make the digests
	// differ while both still verify.
	h1, err := HashPassword("s3cret", 4)
	require.NoError(t, err)
	h2, err := HashPassword("s3cret", 4)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword(h1, "s3cret"))
	assert.True(t, VerifyPassword(h2, "s3cret"))
}

func TestVerifyPasswordRejectsWrong(t *testing.T) {
	h, err := HashPassword("s3cret", 4)
	require.NoError(t, err)

	assert.False(t, VerifyPassword(h, "wrong"))
	assert.False(t, VerifyPassword(h, ""))
	assert.False(t, VerifyPassword("not-a-hash", "s3cret"))
}
