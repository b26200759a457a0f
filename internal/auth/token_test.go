package auth

import (
	"testing"
	"time"

	"github.com/iparr-biocorellc/backoffice/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.GenerateToken("user-42")
	require.NoError(t, err)

	userID, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestParseTokenFailures(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	t.Run("garbage", func(t *testing.T) {
		_, err := tm.ParseToken("not.a.token")
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("other-secret", time.Hour)
		token, err := other.GenerateToken("user-42")
		require.NoError(t, err)

		_, err = tm.ParseToken(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewTokenManager("test-secret", -time.Minute)
		token, err := expired.GenerateToken("user-42")
		require.NoError(t, err)

		_, err = tm.ParseToken(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}
