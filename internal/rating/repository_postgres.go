package rating

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, rating *Rating) error {
	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO service_ratings (id, waiter_rating, food_rating, comments, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, rating.ID, rating.WaiterRating, rating.FoodRating, rating.Comments, rating.CreatedAt)
	return err
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Rating, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, waiter_rating, food_rating, comments, created_at
		FROM service_ratings
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []*Rating
	for rows.Next() {
		rating := &Rating{}
		if err := rows.Scan(
			&rating.ID,
			&rating.WaiterRating,
			&rating.FoodRating,
			&rating.Comments,
			&rating.CreatedAt,
		); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}
