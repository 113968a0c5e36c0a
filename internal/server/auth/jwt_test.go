package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mockview/mockview/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := "user-123"

	tok, err := GenerateToken(userID, secret, time.Hour)
	require.NoError(t, err)

	gotUserID, err := ParseToken(tok, secret)
	require.NoError(t, err)
	require.Equal(t, userID, gotUserID)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken("u1", secret, -1*time.Second)
	require.NoError(t, err)

	_, err = ParseToken(tok, secret)
	require.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u2", []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tok, []byte("wrong-secret"))
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParseToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("not.a.jwt", []byte("k"))
	require.Error(t, err)
}

func TestTokenRemainingValidity(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	t.Run("valid token has positive remainder", func(t *testing.T) {
		tok, err := GenerateToken("u3", secret, time.Hour)
		require.NoError(t, err)

		remaining := TokenRemainingValidity(tok)
		require.Greater(t, remaining, 59*time.Minute)
		require.LessOrEqual(t, remaining, time.Hour)
	})

	t.Run("expired token reports zero", func(t *testing.T) {
		tok, err := GenerateToken("u4", secret, -time.Minute)
		require.NoError(t, err)

		require.Equal(t, time.Duration(0), TokenRemainingValidity(tok))
	})

	t.Run("garbage reports zero", func(t *testing.T) {
		require.Equal(t, time.Duration(0), TokenRemainingValidity("garbage"))
	})
}
