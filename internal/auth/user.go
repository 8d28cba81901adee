// Package auth handles operator accounts and request authentication. The
// back office is bootstrapped with a single profile through Init; every
// protected route then requires a bearer token issued at login.
package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both unknown emails and wrong passwords,
	// so login failures do not reveal which one happened.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAlreadyInitialized means the bootstrap profile exists; further
	// accounts are not created through the public init endpoint.
	ErrAlreadyInitialized = errors.New("profile already initialized")

	ErrInvalidToken = errors.New("invalid token")
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}
