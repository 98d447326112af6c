package catalog

import (
	"context"
	"strings"

	"github.com/danielfrrokaj/datarifish-menu/internal/category"
	"github.com/danielfrrokaj/datarifish-menu/internal/i18n"
	"github.com/danielfrrokaj/datarifish-menu/internal/menu"
)

// CategorySource and ItemSource are the read-only slices of the
// repositories the public site needs. Every call re-reads storage; the
// catalog holds no snapshot that could go stale across admin mutations.
type CategorySource interface {
	List(ctx context.Context) ([]*category.Category, error)
	Get(ctx context.Context, id string) (*category.Category, error)
}

type ItemSource interface {
	ListByCategory(ctx context.Context, categoryID string) ([]*menu.Item, error)
}

// CategoryView is a category with its name already resolved for one
// display language.
type CategoryView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"image_url,omitempty"`
}

// ItemView is a menu item resolved for one display language.
type ItemView struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       *int    `json:"price,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Available   bool    `json:"availability"`
}

// Filter narrows an item listing. Search is a case-insensitive
// substring match against the resolved name, description and category
// name. The admin listing sets IncludeUnavailable.
type Filter struct {
	Search             string
	IncludeUnavailable bool
}

type Service struct {
	categories CategorySource
	items      ItemSource
}

func NewService(categories CategorySource, items ItemSource) *Service {
	return &Service{categories: categories, items: items}
}

// Categories lists every category in display order with resolved names.
func (s *Service) Categories(ctx context.Context, lang i18n.Language) ([]CategoryView, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	chain := i18n.Chain(lang)
	views := make([]CategoryView, 0, len(cats))
	for _, c := range cats {
		views = append(views, CategoryView{
			ID:       c.ID,
			Name:     c.Name(chain),
			ImageURL: c.ImageURL,
		})
	}
	return views, nil
}

// Items lists a category's items resolved for lang, filtered per f.
func (s *Service) Items(ctx context.Context, categoryID string, lang i18n.Language, f Filter) ([]ItemView, error) {
	cat, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	items, err := s.items.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	chain := i18n.Chain(lang)
	categoryName := cat.Name(chain)
	term := strings.ToLower(strings.TrimSpace(f.Search))

	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		if !it.Available && !f.IncludeUnavailable {
			continue
		}

		view := ItemView{
			ID:          it.ID,
			CategoryID:  it.CategoryID,
			Name:        it.Name(chain),
			Description: it.Description(chain),
			Price:       it.Price,
			ImageURL:    it.ImageURL,
			Available:   it.Available,
		}
		if term != "" && !matches(term, view.Name, view.Description, categoryName) {
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

func matches(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
