package i18n

// Entry is one stored translation record for an entity: a language plus
// its text fields (e.g. "name", "description").
type Entry struct {
	Language Language
	Values   map[string]string
}

// Chain builds the duplicate-free language preference list: the
// requested language first, then every supported language in fallback
// order. Empty entries are dropped.
func Chain(requested Language, prefs ...Language) []Language {
	ordered := make([]Language, 0, 1+len(prefs)+len(Supported))
	ordered = append(ordered, requested)
	ordered = append(ordered, prefs...)
	ordered = append(ordered, Supported...)

	seen := make(map[Language]bool, len(ordered))
	chain := ordered[:0]
	for _, lang := range ordered {
		if lang == "" || seen[lang] {
			continue
		}
		seen[lang] = true
		chain = append(chain, lang)
	}
	return chain
}

// Resolve returns the best value of field for the given preference
// chain. The walk is field-level: an entry whose field is empty does not
// match even if the entry itself exists. When no chained language has a
// non-empty value, the first stored entry's value is returned, empty
// string when there are no entries at all.
func Resolve(entries []Entry, field string, chain []Language) string {
	for _, lang := range chain {
		for _, e := range entries {
			if e.Language != lang {
				continue
			}
			if v := e.Values[field]; v != "" {
				return v
			}
		}
	}
	if len(entries) > 0 {
		return entries[0].Values[field]
	}
	return ""
}
