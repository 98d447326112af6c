package i18n

import "testing"

func entry(lang Language, name, description string) Entry {
	return Entry{
		Language: lang,
		Values:   map[string]string{"name": name, "description": description},
	}
}

func TestParseAcceptsAlbanianAlias(t *testing.T) {
	lang, ok := Parse("al")
	if !ok || lang != Albanian {
		t.Fatalf("expected al to parse as sq, got %q (ok=%v)", lang, ok)
	}

	if _, ok := Parse("de"); ok {
		t.Fatal("expected unsupported code to be rejected")
	}
}

func TestChainDeduplicates(t *testing.T) {
	chain := Chain(Italian)

	want := []Language{Italian, English, Albanian}
	if len(chain) != len(want) {
		t.Fatalf("expected chain %v, got %v", want, chain)
	}
	for i := range want {
		if chain[i] != want[i] {
			t.Fatalf("expected chain %v, got %v", want, chain)
		}
	}
}

func TestResolvePrefersRequestedLanguage(t *testing.T) {
	entries := []Entry{
		entry(English, "Fish Soup", "catch of the day"),
		entry(Albanian, "Supë Peshku", ""),
	}

	if got := Resolve(entries, "name", Chain(Albanian)); got != "Supë Peshku" {
		t.Fatalf("expected Albanian name, got %q", got)
	}
}

func TestResolveFallsBackToDefaultLanguage(t *testing.T) {
	entries := []Entry{
		entry(English, "Fish Soup", ""),
		entry(Albanian, "Supë Peshku", ""),
	}

	// No Italian translation stored: en is the first fallback.
	if got := Resolve(entries, "name", Chain(Italian)); got != "Fish Soup" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestResolveFieldLevelFallback(t *testing.T) {
	entries := []Entry{
		entry(Albanian, "Supë Peshku", ""),
		entry(English, "Fish Soup", "catch of the day"),
	}

	// The Albanian record exists but has no description, so the walk
	// continues to English for that field only.
	if got := Resolve(entries, "description", Chain(Albanian)); got != "catch of the day" {
		t.Fatalf("expected English description, got %q", got)
	}
	if got := Resolve(entries, "name", Chain(Albanian)); got != "Supë Peshku" {
		t.Fatalf("expected Albanian name, got %q", got)
	}
}

func TestResolveLastResortIsFirstStoredEntry(t *testing.T) {
	entries := []Entry{entry(Italian, "Zuppa di Pesce", "")}

	chain := []Language{Albanian}
	if got := Resolve(entries, "name", chain); got != "Zuppa di Pesce" {
		t.Fatalf("expected first stored entry, got %q", got)
	}

	if got := Resolve(nil, "name", chain); got != "" {
		t.Fatalf("expected empty string for empty set, got %q", got)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	entries := []Entry{
		entry(English, "Fish Soup", "catch of the day"),
		entry(Italian, "Zuppa di Pesce", ""),
	}
	chain := Chain(Italian)

	first := Resolve(entries, "description", chain)
	second := Resolve(entries, "description", chain)
	if first != second {
		t.Fatalf("resolve is not deterministic: %q vs %q", first, second)
	}
}
