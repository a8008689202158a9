package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/eqb/projects-api/internal/constants"
	"github.com/eqb/projects-api/internal/models"
	"github.com/eqb/projects-api/internal/repository"
	"github.com/eqb/projects-api/internal/utils"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameTaken        = errors.New("please use a different username")
	ErrEmailTaken           = errors.New("please use a different e-mail")
	ErrDuplicateUser        = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// UserService handles user accounts and the token lifecycle.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUserInput represents the required information to create a new user.
type CreateUserInput struct {
	Username  string
	Email     string
	Password  string
	IsManager bool
}

// CreateUser hashes the password and persists a new user. Duplicate
// username/email surface as ErrUsernameTaken/ErrEmailTaken.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	user := &models.User{
		Username:  username,
		Email:     input.Email,
		IsManager: input.IsManager,
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, ErrFailedToHashPassword
	}

	if err := s.userRepo.Create(user); err != nil {
		// A concurrent create can still trip the unique index after the
		// lookups above passed.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, s.translateLookupErr(err)
	}
	return user, nil
}

// GetUserByUsername retrieves a user by username.
func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, s.translateLookupErr(err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email.
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, s.translateLookupErr(err)
	}
	return user, nil
}

// ListUsers returns all users ordered by username, optionally windowed.
func (s *UserService) ListUsers(offset, limit int) ([]models.User, int64, error) {
	users, total, err := s.userRepo.List(offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// DeleteUser deletes a user by ID.
func (s *UserService) DeleteUser(id uint64) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return s.translateLookupErr(err)
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// Authenticate verifies a username/password pair. This is the basic-auth
// gate; both unknown user and wrong password collapse into
// ErrInvalidCredentials.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// PromoteToManager grants the manager role. There is no demotion.
func (s *UserService) PromoteToManager(user *models.User) error {
	user.IsManager = true
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to promote user: %w", err)
	}
	return nil
}

// IssueToken mints a fresh token with an absolute UTC expiration and
// persists both on the user. It never checks whether a live token already
// exists; callers wanting reuse go through CurrentOrNewToken.
func (s *UserService) IssueToken(user *models.User, expiresIn time.Duration) (string, error) {
	token, err := utils.GenerateToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	expiration := time.Now().UTC().Add(expiresIn)
	user.Token = &token
	user.TokenExpiration = &expiration

	if err := s.userRepo.Update(user); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}

	return token, nil
}

// CurrentOrNewToken returns the stored token while it stays valid beyond
// the reuse window, otherwise issues a fresh one with the default TTL.
func (s *UserService) CurrentOrNewToken(user *models.User) (string, error) {
	now := time.Now().UTC()
	if user.Token != nil && user.TokenExpiration != nil &&
		user.TokenExpiration.UTC().After(now.Add(constants.TokenReuseWindow)) {
		return *user.Token, nil
	}

	return s.IssueToken(user, constants.TokenTTL)
}

// RevokeToken expires the current token by moving its expiration into the
// past. The token string itself stays stored but CheckToken rejects it.
func (s *UserService) RevokeToken(user *models.User) error {
	expiration := time.Now().UTC().Add(-time.Second)
	user.TokenExpiration = &expiration

	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// CheckToken resolves a bearer token to its user. An unknown token, or one
// whose expiration is at or before now (UTC), yields ErrInvalidToken. This
// is the sole gate behind bearer authentication.
func (s *UserService) CheckToken(token string) (*models.User, error) {
	user, err := s.userRepo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to find user by token: %w", err)
	}

	if user.TokenExpiration == nil || !user.TokenExpiration.UTC().After(time.Now().UTC()) {
		return nil, ErrInvalidToken
	}

	return user, nil
}

func (s *UserService) translateLookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return fmt.Errorf("failed to find user: %w", err)
}
