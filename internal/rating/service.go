package rating

import (
	"context"
	"errors"
	"strings"
)

var ErrRatingOutOfRange = errors.New("ratings must be between 1 and 5")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit stores one anonymous rating. Both scores are required and must
// be 1-5; the comment is optional and stored NULL when blank.
func (s *Service) Submit(ctx context.Context, waiter, food int, comments string) (*Rating, error) {
	if waiter < 1 || waiter > 5 || food < 1 || food > 5 {
		return nil, ErrRatingOutOfRange
	}

	rating := &Rating{WaiterRating: waiter, FoodRating: food}
	if trimmed := strings.TrimSpace(comments); trimmed != "" {
		rating.Comments = &trimmed
	}

	if err := s.repo.Insert(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

// List returns all ratings newest first, for the admin panel.
func (s *Service) List(ctx context.Context) ([]*Rating, error) {
	return s.repo.List(ctx)
}
