package menu

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/danielfrrokaj/datarifish-menu/internal/i18n"
)

// InMemoryRepository backs service tests. The Fail* switches force the
// corresponding call to error so partial-failure paths can be exercised.
type InMemoryRepository struct {
	items []*Item

	FailUpsertTranslation  bool
	FailDeleteTranslations bool
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Item, error) {
	out := make([]*Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *InMemoryRepository) ListByCategory(ctx context.Context, categoryID string) ([]*Item, error) {
	var out []*Item
	for _, it := range r.items {
		if it.CategoryID == categoryID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Item, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) Insert(ctx context.Context, it *Item) error {
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	// Store a copy so later repository writes do not alias the caller's
	// struct, matching the real repositories' copy-on-insert semantics.
	stored := *it
	stored.Translations = append([]Translation(nil), it.Translations...)
	r.items = append(r.items, &stored)
	return nil
}

func (r *InMemoryRepository) UpdateScalars(ctx context.Context, it *Item) error {
	stored, err := r.Get(ctx, it.ID)
	if err != nil {
		return err
	}
	stored.CategoryID = it.CategoryID
	stored.Price = it.Price
	stored.ImageURL = it.ImageURL
	stored.Available = it.Available
	return nil
}

func (r *InMemoryRepository) UpsertTranslation(ctx context.Context, id string, t Translation) error {
	if r.FailUpsertTranslation {
		return errors.New("translation write refused")
	}
	it, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	for i, existing := range it.Translations {
		if existing.Language == t.Language {
			it.Translations[i] = t
			return nil
		}
	}
	it.Translations = append(it.Translations, t)
	return nil
}

func (r *InMemoryRepository) DeleteTranslation(ctx context.Context, id string, lang i18n.Language) error {
	it, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	for i, t := range it.Translations {
		if t.Language == lang {
			it.Translations = append(it.Translations[:i], it.Translations[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *InMemoryRepository) DeleteTranslations(ctx context.Context, id string) error {
	if r.FailDeleteTranslations {
		return errors.New("translation delete refused")
	}
	it, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	it.Translations = nil
	return nil
}

func (r *InMemoryRepository) DeleteRow(ctx context.Context, id string) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) ToggleAvailability(ctx context.Context, id string) (bool, error) {
	it, err := r.Get(ctx, id)
	if err != nil {
		return false, err
	}
	it.Available = !it.Available
	return it.Available, nil
}
