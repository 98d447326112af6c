package auth

import (
	"context"
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	SetLoginState(ctx context.Context, id string, failedAttempts int, lockoutUntil *time.Time) error
}
