package helpers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adityawp/campusmarket/pkg/helpers"
)

func TestGenOTPCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := helpers.GenOTPCode()
		assert.NoError(t, err)
		assert.Len(t, code, 6)
		assert.Regexp(t, `^\d{6}$`, code)
		seen[code] = true
	}
	// 50 draws from a million values should not all collide.
	assert.Greater(t, len(seen), 1)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := helpers.HashPassword("correct horse battery")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, helpers.CompareHashAndPassword(hash, "correct horse battery"))
	assert.False(t, helpers.CompareHashAndPassword(hash, "wrong password"))
	assert.False(t, helpers.CompareHashAndPassword("not-a-hash", "anything"))
}

func TestJWTRoundTrip(t *testing.T) {
	m := helpers.NewJWTManager("access-secret", "refresh-secret", time.Minute, time.Hour)

	tok, exp, err := m.GenerateAccessToken("u1", "sid-1")
	assert.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := m.ParseAccessToken(tok)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "sid-1", claims.SessionID)

	// Access tokens do not validate against the refresh secret.
	_, err = m.ParseRefreshToken(tok)
	assert.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	m := helpers.NewJWTManager("access-secret", "refresh-secret", -time.Minute, time.Hour)

	tok, _, err := m.GenerateAccessToken("u1", "sid-1")
	assert.NoError(t, err)

	_, err = m.ParseAccessToken(tok)
	assert.Error(t, err)
}
