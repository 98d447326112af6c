package icon

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("icon not found")

type Repository interface {
	List(ctx context.Context) ([]*Icon, error)
	Insert(ctx context.Context, ic *Icon) error
	Delete(ctx context.Context, id string) error
}
