package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielfrrokaj/datarifish-menu/internal/category"
	"github.com/danielfrrokaj/datarifish-menu/internal/i18n"
)

// Price bounds in minor units, checked at the input boundary on create.
// Rows that predate the bound are left alone on update.
const (
	MinPrice = 100
	MaxPrice = 10000
)

var (
	ErrNoTranslations   = errors.New("at least one translation name is required")
	ErrPriceOutOfRange  = fmt.Errorf("price must be between %d and %d minor units", MinPrice, MaxPrice)
	ErrCategoryRequired = errors.New("category_id is required")
	ErrCategoryMissing  = errors.New("category does not exist")
)

// CategoryResolver is the slice of the category repository the item
// service needs: existence checks for the foreign reference.
type CategoryResolver interface {
	Get(ctx context.Context, id string) (*category.Category, error)
}

// TranslationInput is the per-language text of an item as submitted by
// the admin form.
type TranslationInput struct {
	Name        string
	Description string
}

// Input carries the editable fields of a menu item.
type Input struct {
	CategoryID   string
	Price        *int
	ImageURL     *string
	Available    *bool
	Translations map[i18n.Language]TranslationInput
}

func (in Input) hasName() bool {
	for _, t := range in.Translations {
		if t.Name != "" {
			return true
		}
	}
	return false
}

type Service struct {
	repo       Repository
	categories CategoryResolver
}

func NewService(repo Repository, categories CategoryResolver) *Service {
	return &Service{repo: repo, categories: categories}
}

func (s *Service) List(ctx context.Context) ([]*Item, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	return s.repo.Get(ctx, id)
}

// --------------------------------------------------
// Create (item row, then translations, compensating delete)
// --------------------------------------------------

// Create validates everything before touching storage: the category
// must exist, a given price must be in bounds, and at least one language
// needs a non-empty name. If a translation insert fails after the item
// row was persisted, the row is deleted again so no item ever exists
// without translations.
func (s *Service) Create(ctx context.Context, in Input) (*Item, error) {
	if in.CategoryID == "" {
		return nil, ErrCategoryRequired
	}
	if _, err := s.categories.Get(ctx, in.CategoryID); err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return nil, ErrCategoryMissing
		}
		return nil, err
	}
	if in.Price != nil && (*in.Price < MinPrice || *in.Price > MaxPrice) {
		return nil, ErrPriceOutOfRange
	}
	if !in.hasName() {
		return nil, ErrNoTranslations
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}

	it := &Item{
		CategoryID: in.CategoryID,
		Price:      in.Price,
		ImageURL:   in.ImageURL,
		Available:  available,
	}
	if err := s.repo.Insert(ctx, it); err != nil {
		return nil, err
	}

	for _, lang := range i18n.Supported {
		t, given := in.Translations[lang]
		if !given || t.Name == "" {
			continue
		}
		tr := Translation{Language: lang, Name: t.Name, Description: t.Description}
		if err := s.repo.UpsertTranslation(ctx, it.ID, tr); err != nil {
			// Compensating delete: never leave an item with no
			// translations behind.
			if cleanupErr := s.repo.DeleteRow(ctx, it.ID); cleanupErr != nil {
				return nil, fmt.Errorf("translation failed (%w) and cleanup failed: %v", err, cleanupErr)
			}
			return nil, fmt.Errorf("saving translations: %w", err)
		}
		it.Translations = append(it.Translations, tr)
	}
	return it, nil
}

// --------------------------------------------------
// Update
// --------------------------------------------------

// Update replaces the scalar fields and reconciles translations: a
// non-empty name is upserted, a cleared one removes the row.
func (s *Service) Update(ctx context.Context, id string, in Input) (*Item, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.CategoryID == "" {
		return nil, ErrCategoryRequired
	}
	if in.CategoryID != existing.CategoryID {
		if _, err := s.categories.Get(ctx, in.CategoryID); err != nil {
			if errors.Is(err, category.ErrNotFound) {
				return nil, ErrCategoryMissing
			}
			return nil, err
		}
	}
	if !in.hasName() {
		return nil, ErrNoTranslations
	}

	available := existing.Available
	if in.Available != nil {
		available = *in.Available
	}

	if err := s.repo.UpdateScalars(ctx, &Item{
		ID:         id,
		CategoryID: in.CategoryID,
		Price:      in.Price,
		ImageURL:   in.ImageURL,
		Available:  available,
	}); err != nil {
		return nil, err
	}

	for _, lang := range i18n.Supported {
		t, given := in.Translations[lang]
		if !given {
			continue
		}
		if t.Name == "" {
			if err := s.repo.DeleteTranslation(ctx, id, lang); err != nil {
				return nil, err
			}
			continue
		}
		tr := Translation{Language: lang, Name: t.Name, Description: t.Description}
		if err := s.repo.UpsertTranslation(ctx, id, tr); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, id)
}

// --------------------------------------------------
// Delete (translations first, then the row)
// --------------------------------------------------

// Delete removes translations before the row. If the translation delete
// fails the item stays present and queryable; a half-deleted item must
// never exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteTranslations(ctx, id); err != nil {
		return fmt.Errorf("deleting translations: %w", err)
	}
	return s.repo.DeleteRow(ctx, id)
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

// ToggleAvailability flips the flag in storage and reports the stored
// value, so callers reflect what actually happened rather than an
// optimistic local flip.
func (s *Service) ToggleAvailability(ctx context.Context, id string) (bool, error) {
	return s.repo.ToggleAvailability(ctx, id)
}
