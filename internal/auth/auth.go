// Package auth provides the login credential check.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/vendapp/vendapp/internal/model"
	"github.com/vendapp/vendapp/internal/repository"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password. Callers must not distinguish the two cases.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserStore resolves users by email.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// Authenticate looks up the user by email and compares the candidate
// password byte-for-byte against the stored value.
//
// The stored value is plaintext. This reproduces the contract of the
// system being reimplemented and must not be carried into anything that
// handles real accounts.
func Authenticate(ctx context.Context, store UserStore, email, password string) (*model.User, error) {
	user, err := store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
