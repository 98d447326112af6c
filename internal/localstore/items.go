package localstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/danielfrrokaj/datarifish-menu/internal/i18n"
	"github.com/danielfrrokaj/datarifish-menu/internal/menu"
)

type itemStore struct {
	s *Store
}

// Items exposes the document's menu items through the standard
// repository contract.
func (s *Store) Items() menu.Repository {
	return &itemStore{s: s}
}

func toItem(si storedItem) *menu.Item {
	it := &menu.Item{
		ID:         si.ID,
		CategoryID: si.CategoryID,
		Price:      si.Price,
		ImageURL:   si.ImageURL,
		Available:  si.Availability,
	}
	for _, lang := range i18n.Supported {
		if t, ok := si.Translations[string(lang)]; ok {
			it.Translations = append(it.Translations, menu.Translation{
				Language:    lang,
				Name:        t.Name,
				Description: t.Description,
			})
		}
	}
	return it
}

func (r *itemStore) List(ctx context.Context) ([]*menu.Item, error) {
	if _, err := r.s.Reload(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*menu.Item, 0, len(r.s.doc.Items))
	for _, si := range r.s.doc.Items {
		out = append(out, toItem(si))
	}
	return out, nil
}

func (r *itemStore) ListByCategory(ctx context.Context, categoryID string) ([]*menu.Item, error) {
	if _, err := r.s.Reload(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*menu.Item
	for _, si := range r.s.doc.Items {
		if si.CategoryID == categoryID {
			out = append(out, toItem(si))
		}
	}
	return out, nil
}

func (r *itemStore) Get(ctx context.Context, id string) (*menu.Item, error) {
	if _, err := r.s.Reload(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	si := r.find(id)
	if si == nil {
		return nil, menu.ErrNotFound
	}
	return toItem(*si), nil
}

func (r *itemStore) find(id string) *storedItem {
	for i := range r.s.doc.Items {
		if r.s.doc.Items[i].ID == id {
			return &r.s.doc.Items[i]
		}
	}
	return nil
}

func (r *itemStore) Insert(ctx context.Context, it *menu.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	si := storedItem{
		ID:           it.ID,
		CategoryID:   it.CategoryID,
		Price:        it.Price,
		ImageURL:     it.ImageURL,
		Availability: it.Available,
		Translations: make(map[string]storedText),
	}
	for _, t := range it.Translations {
		si.Translations[string(t.Language)] = storedText{Name: t.Name, Description: t.Description}
	}
	r.s.doc.Items = append(r.s.doc.Items, si)
	return r.s.save()
}

func (r *itemStore) UpdateScalars(ctx context.Context, it *menu.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	si := r.find(it.ID)
	if si == nil {
		return menu.ErrNotFound
	}
	si.CategoryID = it.CategoryID
	si.Price = it.Price
	si.ImageURL = it.ImageURL
	si.Availability = it.Available
	return r.s.save()
}

func (r *itemStore) UpsertTranslation(ctx context.Context, id string, t menu.Translation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	si := r.find(id)
	if si == nil {
		return menu.ErrNotFound
	}
	if si.Translations == nil {
		si.Translations = make(map[string]storedText)
	}
	si.Translations[string(t.Language)] = storedText{Name: t.Name, Description: t.Description}
	return r.s.save()
}

func (r *itemStore) DeleteTranslation(ctx context.Context, id string, lang i18n.Language) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	si := r.find(id)
	if si == nil {
		return menu.ErrNotFound
	}
	delete(si.Translations, string(lang))
	return r.s.save()
}

func (r *itemStore) DeleteTranslations(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	si := r.find(id)
	if si == nil {
		return menu.ErrNotFound
	}
	si.Translations = make(map[string]storedText)
	return r.s.save()
}

func (r *itemStore) DeleteRow(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	items := r.s.doc.Items[:0]
	found := false
	for _, si := range r.s.doc.Items {
		if si.ID == id {
			found = true
			continue
		}
		items = append(items, si)
	}
	if !found {
		return menu.ErrNotFound
	}
	r.s.doc.Items = items
	return r.s.save()
}

func (r *itemStore) ToggleAvailability(ctx context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	si := r.find(id)
	if si == nil {
		return false, menu.ErrNotFound
	}
	si.Availability = !si.Availability
	if err := r.s.save(); err != nil {
		return false, err
	}
	return si.Availability, nil
}
