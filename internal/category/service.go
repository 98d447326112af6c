package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielfrrokaj/datarifish-menu/internal/i18n"
)

var (
	ErrNoTranslations   = errors.New("at least one translation name is required")
	ErrInvalidDirection = errors.New("direction must be \"up\" or \"down\"")
)

// Input carries the editable fields of a category. Names maps language
// to the category name in that language; empty names are skipped on
// create and removed on update.
type Input struct {
	ImageURL *string
	Names    map[i18n.Language]string
}

func (in Input) hasName() bool {
	for _, name := range in.Names {
		if name != "" {
			return true
		}
	}
	return false
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Category, error) {
	return s.repo.Get(ctx, id)
}

// --------------------------------------------------
// Create
// --------------------------------------------------

// Create persists a category at the end of the display order, then one
// translation row per language with a non-empty name.
func (s *Service) Create(ctx context.Context, in Input) (*Category, error) {
	if !in.hasName() {
		return nil, ErrNoTranslations
	}

	max, err := s.repo.MaxOrderIndex(ctx)
	if err != nil {
		return nil, err
	}
	next := max + 1

	c := &Category{ImageURL: in.ImageURL, OrderIndex: &next}
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, err
	}

	for _, lang := range i18n.Supported {
		name := in.Names[lang]
		if name == "" {
			continue
		}
		if err := s.repo.UpsertTranslation(ctx, c.ID, lang, name); err != nil {
			return nil, fmt.Errorf("category saved but translation %s failed: %w", lang, err)
		}
		c.Translations = append(c.Translations, Translation{Language: lang, Name: name})
	}
	return c, nil
}

// --------------------------------------------------
// Update
// --------------------------------------------------

// Update replaces the scalar fields and reconciles the translations
// that were provided: a non-empty name is upserted, a cleared one
// removes the row. A request without any Names touches only the scalar
// fields; one that provides names must keep at least one non-empty.
func (s *Service) Update(ctx context.Context, id string, in Input) (*Category, error) {
	if len(in.Names) > 0 && !in.hasName() {
		return nil, ErrNoTranslations
	}
	if err := s.repo.UpdateImage(ctx, id, in.ImageURL); err != nil {
		return nil, err
	}

	for _, lang := range i18n.Supported {
		name, given := in.Names[lang]
		if !given {
			continue
		}
		if name == "" {
			if err := s.repo.DeleteTranslation(ctx, id, lang); err != nil {
				return nil, err
			}
			continue
		}
		if err := s.repo.UpsertTranslation(ctx, id, lang, name); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, id)
}

// --------------------------------------------------
// Reorder
// --------------------------------------------------

// Move swaps the category with its neighbor in the displayed order.
// Moving the first category up or the last one down is a no-op.
// Positions stand in for missing order_index values so the swap stays
// deterministic.
func (s *Service) Move(ctx context.Context, id, direction string) error {
	if direction != "up" && direction != "down" {
		return ErrInvalidDirection
	}

	cats, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	pos := -1
	for i, c := range cats {
		if c.ID == id {
			pos = i
			break
		}
	}
	if pos == -1 {
		return ErrNotFound
	}

	neighbor := pos - 1
	if direction == "down" {
		neighbor = pos + 1
	}
	if neighbor < 0 || neighbor >= len(cats) {
		return nil
	}

	return s.repo.SwapOrder(ctx,
		OrderUpdate{ID: cats[pos].ID, OrderIndex: effectiveIndex(cats, neighbor)},
		OrderUpdate{ID: cats[neighbor].ID, OrderIndex: effectiveIndex(cats, pos)},
	)
}

func effectiveIndex(cats []*Category, pos int) int {
	if idx := cats[pos].OrderIndex; idx != nil {
		return *idx
	}
	return pos
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

// Delete removes the category together with its translations and every
// menu item that references it.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
