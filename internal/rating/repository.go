package rating

import "context"

// Repository defines the data-access contract. List returns newest
// first.
type Repository interface {
	Insert(ctx context.Context, r *Rating) error
	List(ctx context.Context) ([]*Rating, error)
}
