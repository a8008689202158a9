package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// RoleManager is the capability string granting access to mutating endpoints.
const RoleManager = "manager"

type User struct {
	ID              uint64     `gorm:"primarykey" json:"id"`
	Username        string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	Email           string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	IsManager       bool       `gorm:"not null;default:false" json:"is_manager"`
	PasswordHash    string     `gorm:"type:varchar(255)" json:"-"`
	Token           *string    `gorm:"type:varchar(32);uniqueIndex" json:"-"`
	TokenExpiration *time.Time `json:"-"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// SetPassword stores a bcrypt hash of the plaintext. The plaintext itself
// is never persisted.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// GetRoles resolves the user's capability string. Non-managers have no role.
func (u *User) GetRoles() string {
	if u.IsManager {
		return RoleManager
	}
	return ""
}
