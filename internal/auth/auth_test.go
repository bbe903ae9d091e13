package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"orders-api/internal/auth"
)

func Test_Password_RoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("s3cret", 4)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	require.True(t, auth.CheckPassword("s3cret", hash))
	require.False(t, auth.CheckPassword("wrong", hash))
}

func Test_Password_DefaultCost(t *testing.T) {
	hash, err := auth.HashPassword("s3cret", 0)
	require.NoError(t, err)
	require.True(t, auth.CheckPassword("s3cret", hash))
}

func Test_JWT_IssueParse(t *testing.T) {
	m := auth.NewJWTManager("test-secret", "orders-api", time.Hour)

	token, err := m.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UID)
	require.Equal(t, "orders-api", claims.Issuer)
}

func Test_JWT_WrongSecret(t *testing.T) {
	m := auth.NewJWTManager("test-secret", "orders-api", time.Hour)
	other := auth.NewJWTManager("another-secret", "orders-api", time.Hour)

	token, err := m.Issue(1)
	require.NoError(t, err)

	_, err = other.Parse(token)
	require.Error(t, err)
}

func Test_JWT_WrongIssuer(t *testing.T) {
	m := auth.NewJWTManager("test-secret", "orders-api", time.Hour)
	other := auth.NewJWTManager("test-secret", "someone-else", time.Hour)

	token, err := m.Issue(1)
	require.NoError(t, err)

	_, err = other.Parse(token)
	require.Error(t, err)
}

func Test_JWT_Expired(t *testing.T) {
	m := auth.NewJWTManager("test-secret", "orders-api", -2*time.Minute)

	token, err := m.Issue(1)
	require.NoError(t, err)

	_, err = m.Parse(token)
	require.Error(t, err)
}
