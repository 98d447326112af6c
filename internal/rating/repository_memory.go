package rating

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	ratings []*Rating
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Insert(ctx context.Context, rating *Rating) error {
	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now().UTC()
	}
	r.ratings = append(r.ratings, rating)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Rating, error) {
	out := make([]*Rating, len(r.ratings))
	copy(out, r.ratings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
