package token_test

import (
	"testing"
	"time"

	"github.com/Ksaiko-Vlad/sofa-order-service/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SignAndParse(t *testing.T) {
	m := token.NewManager("test-secret-at-least-16", time.Hour)

	raw, err := m.Sign(42, "driver")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "driver", claims.Role)
}

func TestManager_ParseRejects(t *testing.T) {
	m := token.NewManager("test-secret-at-least-16", time.Hour)

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := token.NewManager("another-secret-16chars", time.Hour)
		raw, err := other.Sign(1, "manager")
		require.NoError(t, err)

		_, err = m.Parse(raw)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		short := token.NewManager("test-secret-at-least-16", -time.Minute)
		raw, err := short.Sign(1, "manager")
		require.NoError(t, err)

		_, err = m.Parse(raw)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})
}
