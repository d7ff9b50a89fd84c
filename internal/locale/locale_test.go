package locale_test

import (
	"testing"

	"github.com/framed-app/framed/internal/locale"
)

func TestResolveFallsBackToBaseLanguage(t *testing.T) {
	text := locale.Localized(map[string]string{"en": "Hi", "ja": "こんにちは"})

	if got := locale.Resolve(text, "en-US"); got != "Hi" {
		t.Fatalf("unexpected value for en-US: got %q want %q", got, "Hi")
	}
	if got := locale.Resolve(text, "ja"); got != "こんにちは" {
		t.Fatalf("unexpected value for ja: got %q", got)
	}
	if got := locale.Resolve(text, "ja_JP"); got != "こんにちは" {
		t.Fatalf("unexpected value for ja_JP: got %q", got)
	}
}

func TestResolveMissingLanguageIsEmpty(t *testing.T) {
	text := locale.Localized(map[string]string{"en": "Hi"})
	if got := locale.Resolve(text, "fr"); got != "" {
		t.Fatalf("expected empty string for fr, got %q", got)
	}
	if got := locale.Resolve(text, "fr-CA"); got != "" {
		t.Fatalf("expected empty string for fr-CA, got %q", got)
	}
	if got := locale.Resolve(locale.Text{}, "en"); got != "" {
		t.Fatalf("expected empty string for zero text, got %q", got)
	}
}

func TestResolvePrefersExactRegion(t *testing.T) {
	text := locale.Localized(map[string]string{"en": "Colour", "en-US": "Color"})
	if got := locale.Resolve(text, "en-US"); got != "Color" {
		t.Fatalf("expected exact region match, got %q", got)
	}
	if got := locale.Resolve(text, "en-GB"); got != "Colour" {
		t.Fatalf("expected base fallback for en-GB, got %q", got)
	}
}

func TestResolvePlainIgnoresLanguage(t *testing.T) {
	if got := locale.Resolve(locale.Plain("Plain"), "anything"); got != "Plain" {
		t.Fatalf("unexpected plain value: %q", got)
	}
}

func TestFromValue(t *testing.T) {
	text, err := locale.FromValue(map[string]any{"en": "Hello", "de": "Hallo"})
	if err != nil {
		t.Fatalf("FromValue returned error: %v", err)
	}
	if got := locale.Resolve(text, "de-AT"); got != "Hallo" {
		t.Fatalf("unexpected value for de-AT: %q", got)
	}
	if tags := text.Tags(); len(tags) != 2 || tags[0] != "de" || tags[1] != "en" {
		t.Fatalf("unexpected tags: %v", tags)
	}

	empty, err := locale.FromValue(nil)
	if err != nil || !empty.IsZero() {
		t.Fatalf("expected zero text for nil, got %+v (err %v)", empty, err)
	}

	if _, err := locale.FromValue(map[string]any{"en": 12}); err == nil {
		t.Fatal("expected error for non-string locale value")
	}
	if _, err := locale.FromValue(42); err == nil {
		t.Fatal("expected error for unsupported value type")
	}
}

func TestResolveKeepsBaseSubtagAsWritten(t *testing.T) {
	for _, tc := range []struct{ key, lang string }{
		{"tl", "tl-PH"},
		{"iw", "iw-IL"},
		{"in", "in-ID"},
		{"sh", "sh-RS"},
		{"mo", "mo-MD"},
	} {
		text := locale.Localized(map[string]string{tc.key: "X"})
		if got := locale.Resolve(text, tc.lang); got != "X" {
			t.Fatalf("Resolve(%s) with key %s = %q, want %q", tc.lang, tc.key, got, "X")
		}
		if got := locale.BaseLanguage(tc.lang); got != tc.key {
			t.Fatalf("BaseLanguage(%s) = %q, want %q", tc.lang, got, tc.key)
		}
	}
}

func TestResolveFallsBackToCanonicalBase(t *testing.T) {
	text := locale.Localized(map[string]string{"he": "שלום", "id": "Halo"})
	if got := locale.Resolve(text, "iw-IL"); got != "שלום" {
		t.Fatalf("unexpected value for iw-IL: %q", got)
	}
	if got := locale.Resolve(text, "in_ID"); got != "Halo" {
		t.Fatalf("unexpected value for in_ID: %q", got)
	}
}
