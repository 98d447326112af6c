package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Save(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO admin_users (id, email, password, role)
		VALUES ($1, $2, $3, $4)
	`, user.ID, user.Email, user.Password, user.Role)
	return err
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists int
	err := r.db.QueryRow(ctx, `
		SELECT 1 FROM admin_users WHERE email = $1 LIMIT 1
	`, email).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password, role, failed_attempts, lockout_until
		FROM admin_users
		WHERE email = $1
	`, email).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.FailedAttempts,
		&user.LockoutUntil,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *PostgresUserRepository) SetLoginState(
	ctx context.Context,
	id string,
	failedAttempts int,
	lockoutUntil *time.Time,
) error {
	_, err := r.db.Exec(ctx, `
		UPDATE admin_users
		SET failed_attempts = $1,
		    lockout_until = $2
		WHERE id = $3
	`, failedAttempts, lockoutUntil, id)
	return err
}
