package matcher

import (
	"regexp"
	"sort"
	"strings"

	"github.com/2beens/fitlog/internal/catalog"
)

const MaxSuggestions = 8

type entry struct {
	name    string
	lowered string
	common  bool
}

// Matcher does fuzzy lookups over a catalog. It is immutable after New and safe
// for concurrent use; every call returns a freshly allocated slice.
type Matcher struct {
	entries []entry
	common  []string // lowercased
}

func New(c *catalog.Catalog) *Matcher {
	commonLowered := make([]string, 0, len(c.CommonNames()))
	commonSet := make(map[string]bool)
	for _, n := range c.CommonNames() {
		l := strings.ToLower(n)
		commonLowered = append(commonLowered, l)
		commonSet[l] = true
	}

	names := c.Names()
	entries := make([]entry, 0, len(names))
	for _, n := range names {
		l := strings.ToLower(n)
		entries = append(entries, entry{
			name:    n,
			lowered: l,
			common:  commonSet[l],
		})
	}

	return &Matcher{
		entries: entries,
		common:  commonLowered,
	}
}

func tokenize(input string) []string {
	return strings.Fields(strings.ToLower(input))
}

type candidate struct {
	entry
	containsPhrase bool
	startsWith     bool
	wholeWords     int
}

// FindMatchingExercises returns up to MaxSuggestions catalog names containing every
// whitespace separated token of input, best match first.
func (m *Matcher) FindMatchingExercises(input string) []string {
	tokens := tokenize(input)
	if len(tokens) == 0 {
		return []string{}
	}
	phrase := strings.Join(tokens, " ")

	wordPatterns := make([]*regexp.Regexp, 0, len(tokens))
	for _, t := range tokens {
		// a token that still fails to compile simply never counts as a whole word
		if re, err := regexp.Compile(`\b` + regexp.QuoteMeta(t) + `\b`); err == nil {
			wordPatterns = append(wordPatterns, re)
		}
	}

	var candidates []candidate
	for _, e := range m.entries {
		if !containsAll(e.lowered, tokens) {
			continue
		}
		c := candidate{
			entry:          e,
			containsPhrase: strings.Contains(e.lowered, phrase),
			startsWith:     strings.HasPrefix(e.lowered, phrase),
		}
		for _, re := range wordPatterns {
			if re.MatchString(e.lowered) {
				c.wholeWords++
			}
		}
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.containsPhrase != b.containsPhrase {
			return a.containsPhrase
		}
		if a.common != b.common {
			return a.common
		}
		if a.startsWith != b.startsWith {
			return a.startsWith
		}
		if a.wholeWords != b.wholeWords {
			return a.wholeWords > b.wholeWords
		}
		return a.name < b.name
	})

	if len(candidates) > MaxSuggestions {
		candidates = candidates[:MaxSuggestions]
	}

	result := make([]string, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, c.name)
	}
	return result
}

// ClosestMatch resolves input to a single catalog name. When no catalog entry
// contains the input, the input itself is returned unchanged.
func (m *Matcher) ClosestMatch(input string) string {
	if strings.TrimSpace(input) == "" {
		return input
	}
	lowered := strings.ToLower(input)

	for _, e := range m.entries {
		if e.lowered == lowered {
			return e.name
		}
	}

	var partial []entry
	for _, e := range m.entries {
		if strings.Contains(e.lowered, lowered) {
			partial = append(partial, e)
		}
	}
	if len(partial) == 0 {
		return input
	}

	var overlapping []entry
	for _, e := range partial {
		if m.overlapsCommon(e.lowered) {
			overlapping = append(overlapping, e)
		}
	}
	if len(overlapping) > 0 {
		partial = overlapping
	}

	sort.SliceStable(partial, func(i, j int) bool {
		return len(partial[i].name) < len(partial[j].name)
	})

	return partial[0].name
}

func (m *Matcher) overlapsCommon(lowered string) bool {
	for _, c := range m.common {
		if c == lowered || strings.Contains(c, lowered) || strings.Contains(lowered, c) {
			return true
		}
	}
	return false
}

func containsAll(s string, tokens []string) bool {
	for _, t := range tokens {
		if !strings.Contains(s, t) {
			return false
		}
	}
	return true
}
