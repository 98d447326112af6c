package rating

import "time"

// Rating is one anonymous feedback submission: two 1-5 star scores and
// an optional free-text comment. Append-only; never edited or deleted.
type Rating struct {
	ID           string    `json:"id"`
	WaiterRating int       `json:"waiter_rating"`
	FoodRating   int       `json:"food_rating"`
	Comments     *string   `json:"comments,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
