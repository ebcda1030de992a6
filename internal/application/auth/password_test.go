package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
)

var entityUser = entity.User{ID: "u1", Email: "jefe@bar.test", Role: entity.RoleManager}

func TestHashPassword_Idempotente(t *testing.T) {
	hash, err := HashPassword("supersecreta")
	require.NoError(t, err)
	assert.NotEqual(t, "supersecreta", hash)
	assert.True(t, IsHashed(hash))

	again, err := HashPassword(hash)
	require.NoError(t, err)
	assert.Equal(t, hash, again)
	assert.True(t, CheckPassword(again, "supersecreta"))
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correcta1")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "correcta1"))
	assert.False(t, CheckPassword(hash, "incorrecta"))
	assert.False(t, CheckPassword("no-es-hash", "correcta1"))
}

func TestCheckRole(t *testing.T) {
	ok, err := CheckRole(&entityUser, "manager")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckRole(&entityUser, "supplier")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = CheckRole(nil, "manager")
	assert.ErrorIs(t, err, ErrNoSubject)

	_, err = CheckRole("no-es-un-usuario", "manager")
	assert.ErrorIs(t, err, ErrNoSubject)
}
