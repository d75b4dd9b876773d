package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func TestUserTokenRoundTrip(t *testing.T) {
	token, err := GenerateUserToken(42, secret)
	require.NoError(t, err)

	id, err := parseToken(token, secret, roleUser)
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestDeviceTokenRoundTrip(t *testing.T) {
	token, err := GenerateDeviceToken(7, secret)
	require.NoError(t, err)

	id, err := parseToken(token, secret, rolePlayer)
	require.NoError(t, err)
	assert.Equal(t, 7, id)
}

// A device must not be able to use its token on the CMS surface, nor a
// CMS user on the device surface.
func TestTokenRolesDoNotCross(t *testing.T) {
	userToken, err := GenerateUserToken(42, secret)
	require.NoError(t, err)
	_, err = parseToken(userToken, secret, rolePlayer)
	assert.Error(t, err)

	deviceToken, err := GenerateDeviceToken(7, secret)
	require.NoError(t, err)
	_, err = parseToken(deviceToken, secret, roleUser)
	assert.Error(t, err)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateUserToken(42, secret)
	require.NoError(t, err)

	_, err = parseToken(token, "other-secret", roleUser)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter2"))
}
