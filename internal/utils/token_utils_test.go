package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestParseAndValidateJWT_RoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", testSecret, time.Hour, "ratechart")
	require.NoError(t, err)

	subject, err := ParseAndValidateJWT(token, testSecret, "ratechart")

	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	valid, err := GenerateJWT("user-1", testSecret, time.Hour, "ratechart")
	require.NoError(t, err)
	expired, err := GenerateJWT("user-1", testSecret, -time.Minute, "ratechart")
	require.NoError(t, err)
	noSubject, err := GenerateJWT("", testSecret, time.Hour, "ratechart")
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
		issuer string
		target error
	}{
		{"wrong secret", valid, "another-secret-key-0123456789", "", jwt.ErrTokenSignatureInvalid},
		{"wrong issuer", valid, testSecret, "someone-else", jwt.ErrTokenInvalidIssuer},
		{"expired", expired, testSecret, "", jwt.ErrTokenExpired},
		{"missing subject", noSubject, testSecret, "", jwt.ErrTokenInvalidClaims},
		{"garbage", "not-a-token", testSecret, "", jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAndValidateJWT(tt.token, tt.secret, tt.issuer)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}
