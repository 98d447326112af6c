package category

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danielfrrokaj/datarifish-menu/internal/i18n"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// LIST (ordered, with translations)
// --------------------------------------------------

func (r *PostgresRepository) List(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, image_url, order_index
		FROM categories
		ORDER BY order_index ASC NULLS LAST, created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	byID := make(map[string]*Category)

	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.ImageURL, &c.OrderIndex); err != nil {
			return nil, err
		}
		categories = append(categories, c)
		byID[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	trows, err := r.db.Query(ctx, `
		SELECT category_id, language, name
		FROM category_translations
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer trows.Close()

	for trows.Next() {
		var (
			categoryID string
			lang       string
			name       string
		)
		if err := trows.Scan(&categoryID, &lang, &name); err != nil {
			return nil, err
		}
		if c, ok := byID[categoryID]; ok {
			c.Translations = append(c.Translations, Translation{
				Language: i18n.Language(lang),
				Name:     name,
			})
		}
	}
	return categories, trows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Category, error) {
	c := &Category{}
	err := r.db.QueryRow(ctx, `
		SELECT id, image_url, order_index
		FROM categories
		WHERE id = $1
	`, id).Scan(&c.ID, &c.ImageURL, &c.OrderIndex)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT language, name
		FROM category_translations
		WHERE category_id = $1
		ORDER BY id ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t Translation
		if err := rows.Scan(&t.Language, &t.Name); err != nil {
			return nil, err
		}
		c.Translations = append(c.Translations, t)
	}
	return c, rows.Err()
}

func (r *PostgresRepository) MaxOrderIndex(ctx context.Context) (int, error) {
	var max int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(MAX(order_index), 0) FROM categories
	`).Scan(&max)
	return max, err
}

func (r *PostgresRepository) Insert(ctx context.Context, c *Category) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, image_url, order_index)
		VALUES ($1, $2, $3)
	`, c.ID, c.ImageURL, c.OrderIndex)
	return err
}

func (r *PostgresRepository) UpdateImage(ctx context.Context, id string, imageURL *string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE categories
		SET image_url = $1,
		    updated_at = now()
		WHERE id = $2
	`, imageURL, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// TRANSLATIONS (conflict-safe upsert on (category_id, language))
// --------------------------------------------------

func (r *PostgresRepository) UpsertTranslation(
	ctx context.Context,
	id string,
	lang i18n.Language,
	name string,
) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO category_translations (category_id, language, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (category_id, language)
		DO UPDATE SET name = EXCLUDED.name
	`, id, string(lang), name)
	return err
}

func (r *PostgresRepository) DeleteTranslation(
	ctx context.Context,
	id string,
	lang i18n.Language,
) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM category_translations
		WHERE category_id = $1 AND language = $2
	`, id, string(lang))
	return err
}

// --------------------------------------------------
// REORDER (both updates in one transaction)
// --------------------------------------------------

func (r *PostgresRepository) SwapOrder(ctx context.Context, first, second OrderUpdate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, u := range []OrderUpdate{first, second} {
		cmd, err := tx.Exec(ctx, `
			UPDATE categories
			SET order_index = $1,
			    updated_at = now()
			WHERE id = $2
		`, u.OrderIndex, u.ID)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return ErrNotFound
		}
	}
	return tx.Commit(ctx)
}

// Delete removes the category. Dependent menu items and translation
// rows go with it via ON DELETE CASCADE.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
