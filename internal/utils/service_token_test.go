package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestIssueAndParseServiceToken(t *testing.T) {
	token, err := IssueServiceToken("rental-backend", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseServiceToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "rental-backend", claims.Subject)
	assert.Equal(t, ServiceTokenIssuer, claims.Issuer)
}

func TestParseServiceToken_Rejects(t *testing.T) {
	valid, err := IssueServiceToken("svc", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseServiceToken(valid, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "svc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredToken, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = ParseServiceToken(expiredToken, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = ParseServiceToken(noSubject, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidClaims)

	_, err = ParseServiceToken("garbage", testSecret)
	assert.Error(t, err)
}

func TestIssueServiceToken_Validation(t *testing.T) {
	_, err := IssueServiceToken("", testSecret, time.Hour)
	assert.Error(t, err)
	_, err = IssueServiceToken("svc", testSecret, 0)
	assert.Error(t, err)
}
