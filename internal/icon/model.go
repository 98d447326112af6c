package icon

// Icon is a user-added icon reference the admin panel offers when
// picking category images.
type Icon struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Name string `json:"name"`
}
