package category

import (
	"context"
	"errors"

	"github.com/danielfrrokaj/datarifish-menu/internal/i18n"
)

var ErrNotFound = errors.New("category not found")

// OrderUpdate is one half of a reorder swap.
type OrderUpdate struct {
	ID         string
	OrderIndex int
}

// Repository defines the data-access contract. Service depends ONLY on
// this interface. List returns categories ascending by order_index with
// unpositioned ones last, ties broken by insertion order.
type Repository interface {
	List(ctx context.Context) ([]*Category, error)
	Get(ctx context.Context, id string) (*Category, error)
	MaxOrderIndex(ctx context.Context) (int, error)
	Insert(ctx context.Context, c *Category) error
	UpdateImage(ctx context.Context, id string, imageURL *string) error
	UpsertTranslation(ctx context.Context, id string, lang i18n.Language, name string) error
	DeleteTranslation(ctx context.Context, id string, lang i18n.Language) error
	SwapOrder(ctx context.Context, first, second OrderUpdate) error
	Delete(ctx context.Context, id string) error
}
