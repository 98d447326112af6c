package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Login rate limit, matching the old admin panel: 5 failures lock the
// account for 30 minutes; a session lives one hour.
const (
	MaxLoginAttempts = 5
	LockoutDuration  = 30 * time.Minute
	SessionDuration  = time.Hour
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// LockedOutError rejects a login during an active lockout window
// without consuming an attempt.
type LockedOutError struct {
	Until time.Time
}

func (e *LockedOutError) Error() string {
	remaining := time.Until(e.Until).Round(time.Minute)
	if remaining < time.Minute {
		remaining = time.Minute
	}
	return fmt.Sprintf("too many login attempts, try again in %d minutes", int(remaining.Minutes()))
}

// BadCredentialsError is a failed attempt with lockout not yet reached.
type BadCredentialsError struct {
	AttemptsLeft int
}

func (e *BadCredentialsError) Error() string {
	return fmt.Sprintf("invalid password, %d attempts remaining", e.AttemptsLeft)
}

type Service struct {
	repo     UserRepository
	sessions *SessionRegistry
}

func NewService(repo UserRepository, sessions *SessionRegistry) *Service {
	return &Service{repo: repo, sessions: sessions}
}

// --------------------------------------------------
// Register (admin provisioning)
// --------------------------------------------------
func (s *Service) Register(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, errors.New("missing required fields")
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New("email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := &User{
		Email:    email,
		Password: string(hashedPassword),
		Role:     "ADMIN",
	}
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// --------------------------------------------------
// Login
// --------------------------------------------------

// Login checks the lockout window before touching the password, so a
// locked-out caller never consumes an attempt. On success the failure
// counter resets and a registered session token is issued. The counter
// also resets when lockout is imposed, so a fresh window of attempts
// opens once the lockout elapses.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	now := time.Now()
	if user.LockoutUntil != nil && now.Before(*user.LockoutUntil) {
		return "", nil, &LockedOutError{Until: *user.LockoutUntil}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		attempts := user.FailedAttempts + 1
		if attempts >= MaxLoginAttempts {
			until := now.Add(LockoutDuration)
			if err := s.repo.SetLoginState(ctx, user.ID, 0, &until); err != nil {
				return "", nil, err
			}
			return "", nil, &LockedOutError{Until: until}
		}
		if err := s.repo.SetLoginState(ctx, user.ID, attempts, nil); err != nil {
			return "", nil, err
		}
		return "", nil, &BadCredentialsError{AttemptsLeft: MaxLoginAttempts - attempts}
	}

	if err := s.repo.SetLoginState(ctx, user.ID, 0, nil); err != nil {
		return "", nil, err
	}

	sessionID := uuid.New().String()
	token, err := GenerateToken(user.ID, user.Email, user.Role, sessionID, SessionDuration)
	if err != nil {
		return "", nil, err
	}
	s.sessions.Add(sessionID, now.Add(SessionDuration))

	return token, user, nil
}

// --------------------------------------------------
// Logout
// --------------------------------------------------

// Logout revokes the token's session; subsequent requests with the same
// token are rejected by the middleware.
func (s *Service) Logout(tokenString string) error {
	claims, err := ValidateToken(tokenString)
	if err != nil {
		return err
	}
	s.sessions.Revoke(claims.SessionID)
	return nil
}
