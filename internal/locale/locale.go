// Package locale resolves localized marketing copy for a language tag.
package locale

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Text is either a plain string used for every language or a mapping from
// language tag to string. The zero value resolves to "" for every tag.
type Text struct {
	plain   string
	byTag   map[string]string
	isPlain bool
}

// Plain returns a Text that ignores the requested language.
func Plain(s string) Text { return Text{plain: s, isPlain: true} }

// Localized returns a Text backed by a tag -> string mapping.
func Localized(values map[string]string) Text {
	out := make(map[string]string, len(values))
	for tag, value := range values {
		out[strings.TrimSpace(tag)] = value
	}
	return Text{byTag: out}
}

// FromValue converts a decoded configuration value (string, table or nil)
// into a Text.
func FromValue(value any) (Text, error) {
	switch v := value.(type) {
	case nil:
		return Text{}, nil
	case string:
		return Plain(v), nil
	case map[string]string:
		return Localized(v), nil
	case map[string]any:
		values := make(map[string]string, len(v))
		for tag, raw := range v {
			s, ok := raw.(string)
			if !ok {
				return Text{}, fmt.Errorf("locale %q: expected string, got %T", tag, raw)
			}
			values[tag] = s
		}
		return Localized(values), nil
	default:
		return Text{}, fmt.Errorf("expected string or table of strings, got %T", value)
	}
}

// IsZero reports whether the Text carries no value at all.
func (t Text) IsZero() bool { return !t.isPlain && len(t.byTag) == 0 }

// Tags lists the languages a localized Text has values for, sorted.
func (t Text) Tags() []string {
	tags := make([]string, 0, len(t.byTag))
	for tag := range t.byTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Resolve returns the string for lang. Plain text is returned unchanged;
// otherwise the exact tag wins, then the base subtag as written ("en" for
// "en-US"), then its canonical form ("he" for "iw-IL"). Anything else
// resolves to "".
func Resolve(t Text, lang string) string {
	if t.isPlain {
		return t.plain
	}
	if len(t.byTag) == 0 {
		return ""
	}
	lang = strings.TrimSpace(lang)
	if value, ok := t.byTag[lang]; ok {
		return value
	}
	base := BaseLanguage(lang)
	if base == "" || base == lang {
		return ""
	}
	if value, ok := t.byTag[base]; ok {
		return value
	}
	if canonical := canonicalBase(lang); canonical != "" && canonical != base {
		return t.byTag[canonical]
	}
	return ""
}

// BaseLanguage strips region and script subtags from lang, keeping the
// language subtag exactly as written.
func BaseLanguage(lang string) string {
	head, _, _ := strings.Cut(strings.ReplaceAll(lang, "_", "-"), "-")
	return head
}

func canonicalBase(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return ""
	}
	base, conf := tag.Base()
	if conf == language.No {
		return ""
	}
	return base.String()
}
