package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUser_SetPassword(t *testing.T) {
	user := &User{Username: "alice", Email: "alice@example.com"}

	require.NoError(t, user.SetPassword("secret"))
	require.NotEmpty(t, user.PasswordHash)
	require.NotContains(t, user.PasswordHash, "secret")

	require.True(t, user.CheckPassword("secret"))
	require.False(t, user.CheckPassword("Secret"))
	require.False(t, user.CheckPassword(""))
}

func TestUser_SetPassword_Rehash(t *testing.T) {
	user := &User{Username: "alice", Email: "alice@example.com"}

	require.NoError(t, user.SetPassword("first"))
	require.NoError(t, user.SetPassword("second"))

	require.False(t, user.CheckPassword("first"))
	require.True(t, user.CheckPassword("second"))
}

func TestUser_GetRoles(t *testing.T) {
	employee := &User{Username: "bob"}
	require.Equal(t, "", employee.GetRoles())

	manager := &User{Username: "carol", IsManager: true}
	require.Equal(t, RoleManager, manager.GetRoles())
}
