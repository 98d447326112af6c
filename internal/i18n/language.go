package i18n

// Language is one of the menu's supported display languages.
type Language string

const (
	English  Language = "en"
	Italian  Language = "it"
	Albanian Language = "sq"
)

// DefaultLanguage is the primary fallback for missing translations.
const DefaultLanguage = English

// Supported lists every language the site accepts, in fallback order.
var Supported = []Language{English, Italian, Albanian}

// Parse normalizes a language code from user input. The old site used
// "al" for Albanian, so it is accepted as an alias of "sq".
func Parse(code string) (Language, bool) {
	switch code {
	case "en":
		return English, true
	case "it":
		return Italian, true
	case "sq", "al":
		return Albanian, true
	}
	return "", false
}

// ParseOrDefault falls back to the default language for unknown codes.
func ParseOrDefault(code string) Language {
	if lang, ok := Parse(code); ok {
		return lang
	}
	return DefaultLanguage
}
