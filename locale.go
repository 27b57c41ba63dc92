package chronia

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Width selects which rendering of a locale name table a token consults.
type Width int

const (
	// WidthNarrow is the minimal rendering, usually a single character.
	WidthNarrow Width = iota
	// WidthAbbreviated is the short rendering, e.g. "Jan", "Mon".
	WidthAbbreviated
	// WidthWide is the full rendering, e.g. "January", "Monday".
	WidthWide
)

// NameTable holds the three width variants of one name set. Indexes are
// field values: months are 0-based, weekdays start at Sunday, eras are
// ordered BC then AD, day periods AM then PM. A width may be left empty
// to mean "unsupported"; lookups against it simply never match.
type NameTable struct {
	Narrow      []string `json:"narrow" yaml:"narrow"`
	Abbreviated []string `json:"abbreviated" yaml:"abbreviated"`
	Wide        []string `json:"wide" yaml:"wide"`
}

func (t NameTable) names(w Width) []string {
	switch w {
	case WidthNarrow:
		return t.Narrow
	case WidthWide:
		return t.Wide
	default:
		return t.Abbreviated
	}
}

// name returns the entry at index for the given width, or "" when the
// index is out of range. Formatting the invalid sentinel reads fields as
// -1; the empty result keeps that path total instead of panicking.
func (t NameTable) name(w Width, index int) string {
	names := t.names(w)
	if index < 0 || index >= len(names) {
		return ""
	}
	return names[index]
}

// Locale carries the name tables consulted by the text-bearing pattern
// tokens. Locales are immutable once built and safe to share across
// concurrent Format and Parse calls.
type Locale struct {
	// Code is the BCP 47 tag the locale is known by, e.g. "en" or "es".
	Code string `json:"code" yaml:"code"`

	Eras       NameTable `json:"eras" yaml:"eras"`               // 2 entries: BC, AD
	Months     NameTable `json:"months" yaml:"months"`           // 12 entries, January first
	Weekdays   NameTable `json:"weekdays" yaml:"weekdays"`       // 7 entries, Sunday first
	DayPeriods NameTable `json:"day_periods" yaml:"day_periods"` // 2 entries: AM, PM

	// EraAliases lists extra accepted spellings per polarity (BC then AD)
	// when parsing era tokens, e.g. "BCE" alongside "BC".
	EraAliases [2][]string `json:"era_aliases" yaml:"era_aliases"`
}

// DefaultLocale returns the built-in English locale used whenever a call
// supplies no locale of its own.
func DefaultLocale() *Locale {
	return localeEN
}

// resolveLocale centralizes the locale-or-default decision so token
// implementations never branch on nil themselves.
func resolveLocale(loc *Locale) *Locale {
	if loc == nil {
		return localeEN
	}
	return loc
}

// widthForToken maps a token length onto a table width: three letters
// abbreviated, four wide, five or more narrow. Text-only tokens shorter
// than three letters render abbreviated as well.
func widthForToken(n int) Width {
	switch {
	case n >= 5:
		return WidthNarrow
	case n == 4:
		return WidthWide
	default:
		return WidthAbbreviated
	}
}

// matchName finds the longest entry of names matching input at pos,
// comparing case-insensitively the way lookup tables for foreign month
// and day names are usually probed. It returns the matched index and its
// byte length, or (-1, 0) when nothing matches. Ties go to the lowest
// index, so ambiguous narrow names resolve deterministically.
func matchName(input string, pos int, names []string) (index, size int) {
	index = -1
	for i, name := range names {
		if name == "" || len(name) <= size {
			continue
		}
		end := pos + len(name)
		if end > len(input) {
			continue
		}
		if strings.EqualFold(input[pos:end], name) {
			index = i
			size = len(name)
		}
	}
	return index, size
}

type eraCandidate struct {
	name     string
	negative bool
}

// eraParseCandidates merges the active width's era names with the
// locale's alias spellings, ordered longest first so a longer designator
// is never shadowed by a shorter prefix of it.
func eraParseCandidates(loc *Locale, w Width) []eraCandidate {
	var out []eraCandidate
	for polarity, name := range loc.Eras.names(w) {
		if name != "" {
			out = append(out, eraCandidate{name: name, negative: polarity == 0})
		}
	}
	for polarity, aliases := range loc.EraAliases {
		for _, alias := range aliases {
			if alias != "" {
				out = append(out, eraCandidate{name: alias, negative: polarity == 0})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].name) > len(out[j].name)
	})
	return out
}

// localeRegistry is the process-wide set of locales addressable by tag.
// Built-ins seed it; RegisterLocale extends it.
var localeRegistry = struct {
	sync.RWMutex
	byTag map[string]*Locale
}{byTag: builtinLocales()}

// RegisterLocale makes loc resolvable through LookupLocale. Registering a
// tag twice replaces the earlier entry. The locale's table shapes are
// validated first; a width may be omitted entirely but a populated width
// must carry the full entry count for its field.
func RegisterLocale(loc *Locale) error {
	if loc == nil {
		return fmt.Errorf("chronia: register locale: %w", ErrInvalidLocaleData)
	}
	if err := validateLocale(loc); err != nil {
		return err
	}
	tag := normalizeTag(loc.Code)

	localeRegistry.Lock()
	defer localeRegistry.Unlock()
	localeRegistry.byTag[tag] = loc
	return nil
}

// LookupLocale resolves a BCP 47 tag to a registered locale. Unknown
// region or script subtags fall back along the tag's parent chain, so
// "es-MX" resolves to "es". The second result reports whether any
// registered locale served the tag.
func LookupLocale(code string) (*Locale, bool) {
	tag := normalizeTag(code)
	if tag == "" {
		return nil, false
	}

	localeRegistry.RLock()
	defer localeRegistry.RUnlock()

	if loc, ok := localeRegistry.byTag[tag]; ok {
		return loc, true
	}
	for _, parent := range parentTags(tag) {
		if loc, ok := localeRegistry.byTag[parent]; ok {
			return loc, true
		}
	}
	return nil, false
}

func validateLocale(loc *Locale) error {
	if strings.TrimSpace(loc.Code) == "" {
		return fmt.Errorf("chronia: locale has no code: %w", ErrInvalidLocaleData)
	}
	tables := []struct {
		field string
		table NameTable
		want  int
	}{
		{"eras", loc.Eras, 2},
		{"months", loc.Months, 12},
		{"weekdays", loc.Weekdays, 7},
		{"day_periods", loc.DayPeriods, 2},
	}
	for _, t := range tables {
		for _, names := range [][]string{t.table.Narrow, t.table.Abbreviated, t.table.Wide} {
			if len(names) != 0 && len(names) != t.want {
				return fmt.Errorf("chronia: locale %q: %s table has %d entries, want %d: %w",
					loc.Code, t.field, len(names), t.want, ErrInvalidLocaleData)
			}
		}
	}
	return nil
}

// normalizeTag canonicalizes a locale identifier: trimmed, underscores
// replaced with hyphens, lowered through the language tag parser when it
// parses cleanly.
func normalizeTag(code string) string {
	code = strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if code == "" {
		return ""
	}
	if tag, err := language.Parse(code); err == nil {
		return tag.String()
	}
	return code
}

// parentTags returns the fallback chain for a tag, nearest parent first.
// The language tag parser drives the walk; a plain truncation pass covers
// tags the parser rejects.
func parentTags(code string) []string {
	var chain []string
	seen := map[string]struct{}{code: {}}

	appendTag := func(tag string) {
		if tag == "" || tag == "und" {
			return
		}
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		chain = append(chain, tag)
	}

	if tag, err := language.Parse(code); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			appendTag(parent.String())
		}
	}
	for current := truncateTag(code); current != ""; current = truncateTag(current) {
		appendTag(current)
	}
	return chain
}

func truncateTag(code string) string {
	if idx := strings.LastIndex(code, "-"); idx > 0 {
		return code[:idx]
	}
	return ""
}
