package auth

import "time"

// User is an admin account. Password holds the bcrypt hash.
// FailedAttempts and LockoutUntil drive the login rate limit.
type User struct {
	ID             string
	Email          string
	Password       string
	Role           string
	FailedAttempts int
	LockoutUntil   *time.Time
}
