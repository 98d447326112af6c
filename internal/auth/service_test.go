package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestService(t *testing.T) (*Service, *InMemoryUserRepository, *SessionRegistry) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	repo := NewInMemoryUserRepository()
	sessions := NewSessionRegistry()
	return NewService(repo, sessions), repo, sessions
}

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	service, repo, _ := newTestService(t)

	password := "Password@123"
	_, err := service.Register(context.Background(), "admin@example.com", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["admin@example.com"]
	if user == nil {
		t.Fatal("user not found")
	}
	if user.Password == password {
		t.Fatal("password was stored in plain text")
	}
}

func TestLoginIssuesRegisteredSession(t *testing.T) {
	service, _, sessions := newTestService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, "admin@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, user, err := service.Login(ctx, "admin@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != "ADMIN" {
		t.Fatalf("expected ADMIN role, got %q", user.Role)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sessions.Active(claims.SessionID) {
		t.Fatal("expected session to be registered")
	}
}

func TestLockoutAfterFiveFailures(t *testing.T) {
	service, repo, _ := newTestService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, "admin@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < MaxLoginAttempts; i++ {
		_, _, err := service.Login(ctx, "admin@example.com", "wrong")
		var bad *BadCredentialsError
		if !errors.As(err, &bad) {
			t.Fatalf("attempt %d: expected BadCredentialsError, got %v", i, err)
		}
		if bad.AttemptsLeft != MaxLoginAttempts-i {
			t.Fatalf("attempt %d: expected %d attempts left, got %d", i, MaxLoginAttempts-i, bad.AttemptsLeft)
		}
	}

	// Fifth failure imposes the lockout.
	_, _, err := service.Login(ctx, "admin@example.com", "wrong")
	var locked *LockedOutError
	if !errors.As(err, &locked) {
		t.Fatalf("expected LockedOutError, got %v", err)
	}

	user := repo.users["admin@example.com"]
	if user.FailedAttempts != 0 {
		t.Fatalf("expected counter reset at lockout, got %d", user.FailedAttempts)
	}

	// A sixth attempt inside the window is rejected outright, even with
	// the correct password, and consumes nothing.
	_, _, err = service.Login(ctx, "admin@example.com", "Password@123")
	if !errors.As(err, &locked) {
		t.Fatalf("expected LockedOutError during window, got %v", err)
	}
	if user.FailedAttempts != 0 {
		t.Fatal("locked-out attempt must not consume the counter")
	}
}

func TestLoginAfterLockoutElapsed(t *testing.T) {
	service, repo, _ := newTestService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, "admin@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	past := time.Now().Add(-time.Minute)
	repo.users["admin@example.com"].LockoutUntil = &past

	if _, _, err := service.Login(ctx, "admin@example.com", "Password@123"); err != nil {
		t.Fatalf("expected login after lockout elapsed, got %v", err)
	}
}

func TestSuccessfulLoginResetsCounter(t *testing.T) {
	service, repo, _ := newTestService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, "admin@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	service.Login(ctx, "admin@example.com", "wrong")
	service.Login(ctx, "admin@example.com", "wrong")

	if _, _, err := service.Login(ctx, "admin@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := repo.users["admin@example.com"].FailedAttempts; got != 0 {
		t.Fatalf("expected counter reset on success, got %d", got)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	service, _, sessions := newTestService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, "admin@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	token, _, err := service.Login(ctx, "admin@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.Logout(token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, _ := ValidateToken(token)
	if sessions.Active(claims.SessionID) {
		t.Fatal("expected session revoked after logout")
	}
}

func TestUnknownEmailIsInvalidCredentials(t *testing.T) {
	service, _, _ := newTestService(t)

	_, _, err := service.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
