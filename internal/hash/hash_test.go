package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	h, err := HashPassword("password")
	require.NoError(t, err)
	require.NotEmpty(t, h)
	require.NotEqual(t, "password", h)

	h2, err := HashPassword("password")
	require.NoError(t, err)
	require.NotEqual(t, h, h2, "salts must differ between calls")
}

func TestCheckPassword(t *testing.T) {
	h, err := HashPassword("password")
	require.NoError(t, err)

	require.True(t, CheckPassword(h, "password"))
	require.False(t, CheckPassword(h, "Password"))
	require.False(t, CheckPassword(h, ""))
	require.False(t, CheckPassword("not-a-bcrypt-hash", "password"))
}
