package category

import "github.com/danielfrrokaj/datarifish-menu/internal/i18n"

// Translation is the per-language name of a category.
type Translation struct {
	Language i18n.Language `json:"language"`
	Name     string        `json:"name"`
}

// Category is the domain entity. OrderIndex is nil for categories that
// were never positioned; they sort after every positioned one.
type Category struct {
	ID           string        `json:"id"`
	ImageURL     *string       `json:"image_url,omitempty"`
	OrderIndex   *int          `json:"order_index,omitempty"`
	Translations []Translation `json:"translations"`
}

func (c *Category) entries() []i18n.Entry {
	entries := make([]i18n.Entry, 0, len(c.Translations))
	for _, t := range c.Translations {
		entries = append(entries, i18n.Entry{
			Language: t.Language,
			Values:   map[string]string{"name": t.Name},
		})
	}
	return entries
}

// Name resolves the display name for the given preference chain.
func (c *Category) Name(chain []i18n.Language) string {
	return i18n.Resolve(c.entries(), "name", chain)
}
