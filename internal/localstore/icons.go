package localstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/danielfrrokaj/datarifish-menu/internal/icon"
)

type iconStore struct {
	s *Store
}

// Icons exposes the document's custom icon list, the analogue of the
// separate icon storage key the static pages used.
func (s *Store) Icons() icon.Repository {
	return &iconStore{s: s}
}

func (r *iconStore) List(ctx context.Context) ([]*icon.Icon, error) {
	if _, err := r.s.Reload(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*icon.Icon, 0, len(r.s.doc.Icons))
	for _, si := range r.s.doc.Icons {
		out = append(out, &icon.Icon{ID: si.ID, URL: si.URL, Name: si.Name})
	}
	return out, nil
}

func (r *iconStore) Insert(ctx context.Context, ic *icon.Icon) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if ic.ID == "" {
		ic.ID = uuid.New().String()
	}
	r.s.doc.Icons = append(r.s.doc.Icons, storedIcon{ID: ic.ID, URL: ic.URL, Name: ic.Name})
	return r.s.save()
}

func (r *iconStore) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	icons := r.s.doc.Icons[:0]
	found := false
	for _, si := range r.s.doc.Icons {
		if si.ID == id {
			found = true
			continue
		}
		icons = append(icons, si)
	}
	if !found {
		return icon.ErrNotFound
	}
	r.s.doc.Icons = icons
	return r.s.save()
}
