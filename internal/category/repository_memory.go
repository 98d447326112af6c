package category

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/danielfrrokaj/datarifish-menu/internal/i18n"
)

// InMemoryRepository backs service tests.
type InMemoryRepository struct {
	categories []*Category
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Category, error) {
	out := make([]*Category, len(r.categories))
	copy(out, r.categories)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].OrderIndex, out[j].OrderIndex
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) MaxOrderIndex(ctx context.Context) (int, error) {
	max := 0
	for _, c := range r.categories {
		if c.OrderIndex != nil && *c.OrderIndex > max {
			max = *c.OrderIndex
		}
	}
	return max, nil
}

func (r *InMemoryRepository) Insert(ctx context.Context, c *Category) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	// Store a copy so later repository writes do not alias the caller's
	// struct, matching the real repositories' copy-on-insert semantics.
	stored := *c
	stored.Translations = append([]Translation(nil), c.Translations...)
	r.categories = append(r.categories, &stored)
	return nil
}

func (r *InMemoryRepository) UpdateImage(ctx context.Context, id string, imageURL *string) error {
	c, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	c.ImageURL = imageURL
	return nil
}

func (r *InMemoryRepository) UpsertTranslation(
	ctx context.Context,
	id string,
	lang i18n.Language,
	name string,
) error {
	c, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	for i, t := range c.Translations {
		if t.Language == lang {
			c.Translations[i].Name = name
			return nil
		}
	}
	c.Translations = append(c.Translations, Translation{Language: lang, Name: name})
	return nil
}

func (r *InMemoryRepository) DeleteTranslation(
	ctx context.Context,
	id string,
	lang i18n.Language,
) error {
	c, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	for i, t := range c.Translations {
		if t.Language == lang {
			c.Translations = append(c.Translations[:i], c.Translations[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *InMemoryRepository) SwapOrder(ctx context.Context, first, second OrderUpdate) error {
	for _, u := range []OrderUpdate{first, second} {
		c, err := r.Get(ctx, u.ID)
		if err != nil {
			return err
		}
		idx := u.OrderIndex
		c.OrderIndex = &idx
	}
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
