package menu

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
// READS
// --------------------------------------------------

func (r *PostgresRepository) List(ctx context.Context) ([]*Item, error) {
	return r.list(ctx, `
		SELECT id, category_id, price, image_url, availability
		FROM menu_items
		ORDER BY created_at ASC, id ASC
	`)
}

func (r *PostgresRepository) ListByCategory(ctx context.Context, categoryID string) ([]*Item, error) {
	return r.list(ctx, `
		SELECT id, category_id, price, image_url, availability
		FROM menu_items
		WHERE category_id = $1
		ORDER BY created_at ASC, id ASC
	`, categoryID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	byID := make(map[string]*Item)

	for rows.Next() {
		it := &Item{}
		if err := rows.Scan(&it.ID, &it.CategoryID, &it.Price, &it.ImageURL, &it.Available); err != nil {
			return nil, err
		}
		items = append(items, it)
		byID[it.ID] = it
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	trows, err := r.db.Query(ctx, `
		SELECT menu_item_id, language, name, COALESCE(description, '')
		FROM menu_item_translations
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer trows.Close()

	for trows.Next() {
		var (
			itemID string
			t      Translation
		)
		if err := trows.Scan(&itemID, &t.Language, &t.Name, &t.Description); err != nil {
			return nil, err
		}
		if it, ok := byID[itemID]; ok {
			it.Translations = append(it.Translations, t)
		}
	}
	return items, trows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Item, error) {
	it := &Item{}
	err := r.db.QueryRow(ctx, `
		SELECT id, category_id, price, image_url, availability
		FROM menu_items
		WHERE id = $1
	`, id).Scan(&it.ID, &it.CategoryID, &it.Price, &it.ImageURL, &it.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT language, name, COALESCE(description, '')
		FROM menu_item_translations
		WHERE menu_item_id = $1
		ORDER BY id ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t Translation
		if err := rows.Scan(&t.Language, &t.Name, &t.Description); err != nil {
			return nil, err
		}
		it.Translations = append(it.Translations, t)
	}
	return it, rows.Err()
}

// --------------------------------------------------
// WRITES
// --------------------------------------------------

func (r *PostgresRepository) Insert(ctx context.Context, it *Item) error {
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (id, category_id, price, image_url, availability)
		VALUES ($1, $2, $3, $4, $5)
	`, it.ID, it.CategoryID, it.Price, it.ImageURL, it.Available)
	return err
}

func (r *PostgresRepository) UpdateScalars(ctx context.Context, it *Item) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET category_id = $1,
		    price = $2,
		    image_url = $3,
		    availability = $4,
		    updated_at = now()
		WHERE id = $5
	`, it.CategoryID, it.Price, it.ImageURL, it.Available, it.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// TRANSLATIONS (conflict-safe upsert on (menu_item_id, language))
// --------------------------------------------------

func (r *PostgresRepository) UpsertTranslation(ctx context.Context, id string, t Translation) error {
	var description *string
	if t.Description != "" {
		description = &t.Description
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_item_translations (menu_item_id, language, name, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (menu_item_id, language)
		DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description
	`, id, string(t.Language), t.Name, description)
	return err
}

func (r *PostgresRepository) DeleteTranslation(ctx context.Context, id string, lang i18n.Language) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM menu_item_translations
		WHERE menu_item_id = $1 AND language = $2
	`, id, string(lang))
	return err
}

func (r *PostgresRepository) DeleteTranslations(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM menu_item_translations
		WHERE menu_item_id = $1
	`, id)
	return err
}

func (r *PostgresRepository) DeleteRow(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// AVAILABILITY (returns the stored value, not an optimistic flip)
// --------------------------------------------------

func (r *PostgresRepository) ToggleAvailability(ctx context.Context, id string) (bool, error) {
	var available bool
	err := r.db.QueryRow(ctx, `
		UPDATE menu_items
		SET availability = NOT availability,
		    updated_at = now()
		WHERE id = $1
		RETURNING availability
	`, id).Scan(&available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrNotFound
		}
		return false, err
	}
	return available, nil
}
