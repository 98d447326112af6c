package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type InMemoryUserRepository struct {
	users map[string]*User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*User),
	}
}

func (r *InMemoryUserRepository) Save(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.Email] = user
	return nil
}

func (r *InMemoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, exists := r.users[email]
	return exists, nil
}

func (r *InMemoryUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *InMemoryUserRepository) SetLoginState(
	ctx context.Context,
	id string,
	failedAttempts int,
	lockoutUntil *time.Time,
) error {
	for _, user := range r.users {
		if user.ID == id {
			user.FailedAttempts = failedAttempts
			user.LockoutUntil = lockoutUntil
			return nil
		}
	}
	return ErrUserNotFound
}
