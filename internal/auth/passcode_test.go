package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPlainVerifier(t *testing.T) {
	v := NewVerifier("khaliq-admin")
	assert.True(t, v.Configured())
	assert.True(t, v.Verify("khaliq-admin"))
	assert.False(t, v.Verify("khaliq-admin "))
	assert.False(t, v.Verify("KHALIQ-ADMIN"))
	assert.False(t, v.Verify(""))
}

func TestHashedVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.True(t, IsBcryptHash(string(hash)))

	v := NewVerifier(string(hash))
	assert.True(t, v.Verify("s3cret"))
	assert.False(t, v.Verify("other"))
	assert.False(t, v.Verify(string(hash)))
}

func TestUnconfiguredVerifierRejectsAll(t *testing.T) {
	v := NewVerifier("")
	assert.False(t, v.Configured())
	assert.False(t, v.Verify(""))
	assert.False(t, v.Verify("anything"))

	var nilVerifier *Verifier
	assert.False(t, nilVerifier.Verify("anything"))
}

func TestHashPasscode(t *testing.T) {
	_, err := HashPasscode("")
	assert.ErrorIs(t, err, ErrEmptyPasscode)

	hash, err := HashPasscode("pass")
	require.NoError(t, err)
	assert.NoError(t, ComparePasscode(hash, "pass"))
	assert.Error(t, ComparePasscode(hash, "nope"))
}
