package icon

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Icon, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, url, name
		FROM custom_icons
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var icons []*Icon
	for rows.Next() {
		ic := &Icon{}
		if err := rows.Scan(&ic.ID, &ic.URL, &ic.Name); err != nil {
			return nil, err
		}
		icons = append(icons, ic)
	}
	return icons, rows.Err()
}

func (r *PostgresRepository) Insert(ctx context.Context, ic *Icon) error {
	if ic.ID == "" {
		ic.ID = uuid.New().String()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO custom_icons (id, url, name)
		VALUES ($1, $2, $3)
	`, ic.ID, ic.URL, ic.Name)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM custom_icons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
