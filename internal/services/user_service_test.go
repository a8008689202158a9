package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eqb/projects-api/internal/constants"
	"github.com/eqb/projects-api/internal/models"
	"github.com/eqb/projects-api/internal/repository"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(repository.NewMemoryUserRepository())
}

func createUser(t *testing.T, s *UserService, username, email, password string) *models.User {
	t.Helper()

	user, err := s.CreateUser(CreateUserInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

func TestUserService_CreateUser(t *testing.T) {
	s := newUserService(t)

	user := createUser(t, s, "alice", "alice@example.com", "secret")
	require.NotZero(t, user.ID)
	require.False(t, user.IsManager)

	found, err := s.GetUserByUsername("alice")
	require.NoError(t, err)
	require.Equal(t, "alice", found.Username)
	require.Equal(t, "alice@example.com", found.Email)

	require.True(t, found.CheckPassword("secret"))
	require.False(t, found.CheckPassword("wrong"))
}

func TestUserService_CreateUser_Duplicates(t *testing.T) {
	s := newUserService(t)

	createUser(t, s, "alice", "alice@example.com", "secret")

	_, err := s.CreateUser(CreateUserInput{
		Username: "alice",
		Email:    "fresh@example.com",
		Password: "secret",
	})
	require.ErrorIs(t, err, ErrUsernameTaken)

	_, err = s.CreateUser(CreateUserInput{
		Username: "fresh",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_GetUserByEmail(t *testing.T) {
	s := newUserService(t)

	createUser(t, s, "alice", "alice@example.com", "secret")

	user, err := s.GetUserByEmail("alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)

	_, err = s.GetUserByEmail("nobody@example.com")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Authenticate(t *testing.T) {
	s := newUserService(t)

	createUser(t, s, "alice", "alice@example.com", "secret")

	user, err := s.Authenticate("alice", "secret")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)

	_, err = s.Authenticate("alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Authenticate("nobody", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_TokenLifecycle(t *testing.T) {
	s := newUserService(t)

	user := createUser(t, s, "alice", "alice@example.com", "secret")

	token, err := s.IssueToken(user, constants.TokenTTL)
	require.NoError(t, err)
	require.Len(t, token, 32)

	checked, err := s.CheckToken(token)
	require.NoError(t, err)
	require.Equal(t, user.Username, checked.Username)

	require.NoError(t, s.RevokeToken(checked))

	_, err = s.CheckToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestUserService_CheckToken_Expired(t *testing.T) {
	s := newUserService(t)

	user := createUser(t, s, "alice", "alice@example.com", "secret")

	token, err := s.IssueToken(user, -time.Second)
	require.NoError(t, err)

	_, err = s.CheckToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestUserService_CheckToken_Unknown(t *testing.T) {
	s := newUserService(t)

	_, err := s.CheckToken("ffffffffffffffffffffffffffffffff")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestUserService_IssueToken_AlwaysFresh(t *testing.T) {
	s := newUserService(t)

	user := createUser(t, s, "alice", "alice@example.com", "secret")

	first, err := s.IssueToken(user, constants.TokenTTL)
	require.NoError(t, err)

	second, err := s.IssueToken(user, constants.TokenTTL)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// Superseded token is inert, the fresh one authenticates.
	_, err = s.CheckToken(first)
	require.ErrorIs(t, err, ErrInvalidToken)

	checked, err := s.CheckToken(second)
	require.NoError(t, err)
	require.Equal(t, user.Username, checked.Username)
}

func TestUserService_CurrentOrNewToken_ReusesLiveToken(t *testing.T) {
	s := newUserService(t)

	user := createUser(t, s, "alice", "alice@example.com", "secret")

	first, err := s.CurrentOrNewToken(user)
	require.NoError(t, err)

	second, err := s.CurrentOrNewToken(user)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestUserService_CurrentOrNewToken_ReplacesNearlyExpired(t *testing.T) {
	s := newUserService(t)

	user := createUser(t, s, "alice", "alice@example.com", "secret")

	// Inside the reuse window: must be replaced.
	first, err := s.IssueToken(user, 30*time.Second)
	require.NoError(t, err)

	second, err := s.CurrentOrNewToken(user)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestUserService_PromoteToManager(t *testing.T) {
	s := newUserService(t)

	user := createUser(t, s, "alice", "alice@example.com", "secret")
	require.Equal(t, "", user.GetRoles())

	require.NoError(t, s.PromoteToManager(user))

	found, err := s.GetUserByUsername("alice")
	require.NoError(t, err)
	require.True(t, found.IsManager)
	require.Equal(t, models.RoleManager, found.GetRoles())
}

func TestUserService_DeleteUser(t *testing.T) {
	s := newUserService(t)

	user := createUser(t, s, "alice", "alice@example.com", "secret")

	require.NoError(t, s.DeleteUser(user.ID))

	_, err := s.GetUser(user.ID)
	require.ErrorIs(t, err, ErrUserNotFound)

	require.ErrorIs(t, s.DeleteUser(user.ID), ErrUserNotFound)
}
