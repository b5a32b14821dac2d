// user.go - Defines the User model for the database

package models // Declares the package name

import (
	"golang.org/x/crypto/bcrypt" // For password hashing
)

const bcryptCost = 12 // Work factor for bcrypt hashing

type User struct { // User struct represents a registered account
	ID           uint   `gorm:"primaryKey" json:"id"`            // Unique user ID (primary key)
	Username     string `gorm:"unique;not null" json:"username"` // Login name (must be unique, cannot be null)
	PasswordHash string `gorm:"not null" json:"-"`               // Bcrypt hash of the password (never serialized)
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the hash.
// It depends only on its two inputs, so it can be tested without a User row.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
