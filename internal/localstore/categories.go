package localstore

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/danielfrrokaj/datarifish-menu/internal/category"
	"github.com/danielfrrokaj/datarifish-menu/internal/i18n"
)

type categoryStore struct {
	s *Store
}

// Categories exposes the document's category list through the standard
// repository contract.
func (s *Store) Categories() category.Repository {
	return &categoryStore{s: s}
}

func toCategory(sc storedCategory) *category.Category {
	c := &category.Category{
		ID:         sc.ID,
		ImageURL:   sc.ImageURL,
		OrderIndex: sc.OrderIndex,
	}
	for _, lang := range i18n.Supported {
		if t, ok := sc.Translations[string(lang)]; ok {
			c.Translations = append(c.Translations, category.Translation{
				Language: lang,
				Name:     t.Name,
			})
		}
	}
	return c
}

func (r *categoryStore) List(ctx context.Context) ([]*category.Category, error) {
	if _, err := r.s.Reload(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*category.Category, 0, len(r.s.doc.Categories))
	for _, sc := range r.s.doc.Categories {
		out = append(out, toCategory(sc))
	}
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

func (r *categoryStore) Get(ctx context.Context, id string) (*category.Category, error) {
	if _, err := r.s.Reload(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, sc := range r.s.doc.Categories {
		if sc.ID == id {
			return toCategory(sc), nil
		}
	}
	return nil, category.ErrNotFound
}

func (r *categoryStore) MaxOrderIndex(ctx context.Context) (int, error) {
	if _, err := r.s.Reload(); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	max := 0
	for _, sc := range r.s.doc.Categories {
		if sc.OrderIndex != nil && *sc.OrderIndex > max {
			max = *sc.OrderIndex
		}
	}
	return max, nil
}

func (r *categoryStore) Insert(ctx context.Context, c *category.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	sc := storedCategory{
		ID:           c.ID,
		ImageURL:     c.ImageURL,
		OrderIndex:   c.OrderIndex,
		Translations: make(map[string]storedText),
	}
	for _, t := range c.Translations {
		sc.Translations[string(t.Language)] = storedText{Name: t.Name}
	}
	r.s.doc.Categories = append(r.s.doc.Categories, sc)
	return r.s.save()
}

func (r *categoryStore) find(id string) *storedCategory {
	for i := range r.s.doc.Categories {
		if r.s.doc.Categories[i].ID == id {
			return &r.s.doc.Categories[i]
		}
	}
	return nil
}

func (r *categoryStore) UpdateImage(ctx context.Context, id string, imageURL *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sc := r.find(id)
	if sc == nil {
		return category.ErrNotFound
	}
	sc.ImageURL = imageURL
	return r.s.save()
}

func (r *categoryStore) UpsertTranslation(ctx context.Context, id string, lang i18n.Language, name string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sc := r.find(id)
	if sc == nil {
		return category.ErrNotFound
	}
	if sc.Translations == nil {
		sc.Translations = make(map[string]storedText)
	}
	sc.Translations[string(lang)] = storedText{Name: name}
	return r.s.save()
}

func (r *categoryStore) DeleteTranslation(ctx context.Context, id string, lang i18n.Language) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sc := r.find(id)
	if sc == nil {
		return category.ErrNotFound
	}
	delete(sc.Translations, string(lang))
	return r.s.save()
}

// SwapOrder applies both index updates in a single save, so the pair is
// one logical operation against the document.
func (r *categoryStore) SwapOrder(ctx context.Context, first, second category.OrderUpdate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range []category.OrderUpdate{first, second} {
		sc := r.find(u.ID)
		if sc == nil {
			return category.ErrNotFound
		}
		idx := u.OrderIndex
		sc.OrderIndex = &idx
	}
	return r.s.save()
}

// Delete removes the category and cascades to its menu items.
func (r *categoryStore) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	found := false
	categories := r.s.doc.Categories[:0]
	for _, sc := range r.s.doc.Categories {
		if sc.ID == id {
			found = true
			continue
		}
		categories = append(categories, sc)
	}
	if !found {
		return category.ErrNotFound
	}
	r.s.doc.Categories = categories

	items := r.s.doc.Items[:0]
	for _, it := range r.s.doc.Items {
		if it.CategoryID == id {
			continue
		}
		items = append(items, it)
	}
	r.s.doc.Items = items

	return r.s.save()
}
