package menu

import (
	"context"
	"errors"

	"github.com/danielfrrokaj/datarifish-menu/internal/i18n"
)

var ErrNotFound = errors.New("menu item not found")

// Repository defines the data-access contract. The service orchestrates
// the multi-step create/delete flows on top of these primitives, so the
// ordering guarantees live there, not here.
type Repository interface {
	List(ctx context.Context) ([]*Item, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	Insert(ctx context.Context, it *Item) error
	UpdateScalars(ctx context.Context, it *Item) error
	UpsertTranslation(ctx context.Context, id string, t Translation) error
	DeleteTranslation(ctx context.Context, id string, lang i18n.Language) error
	DeleteTranslations(ctx context.Context, id string) error
	DeleteRow(ctx context.Context, id string) error
	ToggleAvailability(ctx context.Context, id string) (bool, error)
}
