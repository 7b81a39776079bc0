package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bookverse/inventory/pkg/errors"
)

// TestManager_GenerateAndParse 测试Token生成与解析往返
func TestManager_GenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour, "bookverse-inventory")

	token, err := m.GenerateToken("user-1", "dev@bookverse.dev", "Dev",
		[]string{"inventory:admin"}, []string{"inventory:write"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "dev@bookverse.dev", claims.Email)
	assert.Equal(t, "Dev", claims.Name)
	assert.Equal(t, []string{"inventory:admin"}, claims.Roles)
	assert.Equal(t, "bookverse-inventory", claims.Issuer)
}

// TestManager_ParseToken_WrongSecret 测试密钥不匹配
func TestManager_ParseToken_WrongSecret(t *testing.T) {
	m := NewManager("secret-a", time.Hour, "test")
	token, err := m.GenerateToken("user-1", "", "", nil, nil)
	require.NoError(t, err)

	other := NewManager("secret-b", time.Hour, "test")
	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

// TestManager_ParseToken_Expired 测试过期Token
func TestManager_ParseToken_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Hour, "test") // 生成即过期
	token, err := m.GenerateToken("user-1", "", "", nil, nil)
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

// TestManager_ParseToken_Garbage 测试非法Token串
func TestManager_ParseToken_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour, "test")

	_, err := m.ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
