package menu

import "github.com/danielfrrokaj/datarifish-menu/internal/i18n"

// Translation is the per-language name and description of a menu item.
type Translation struct {
	Language    i18n.Language `json:"language"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
}

// Item is a dish on the menu. Price is in minor units (cents/lekë) and
// nil when the item has no fixed price. Available items show up on the
// public menu; unavailable ones stay editable in the admin panel.
type Item struct {
	ID           string        `json:"id"`
	CategoryID   string        `json:"category_id"`
	Price        *int          `json:"price,omitempty"`
	ImageURL     *string       `json:"image_url,omitempty"`
	Available    bool          `json:"availability"`
	Translations []Translation `json:"translations"`
}

func (it *Item) entries() []i18n.Entry {
	entries := make([]i18n.Entry, 0, len(it.Translations))
	for _, t := range it.Translations {
		entries = append(entries, i18n.Entry{
			Language: t.Language,
			Values: map[string]string{
				"name":        t.Name,
				"description": t.Description,
			},
		})
	}
	return entries
}

// Name resolves the display name for the given preference chain.
func (it *Item) Name(chain []i18n.Language) string {
	return i18n.Resolve(it.entries(), "name", chain)
}

// Description resolves the description with field-level fallback: a
// language with a name but no description does not stop the walk.
func (it *Item) Description(chain []i18n.Language) string {
	return i18n.Resolve(it.entries(), "description", chain)
}
