package lfg

import (
	"sort"
	"strings"

	"github.com/Teflondom25/LFG-Bot/internal/game"
)

// MaxSuggestions is Discord's cap on autocomplete choices per response.
const MaxSuggestions = 25

// Suggestion is one autocomplete choice: a title-cased label and a value
// that round-trips through game.Normalize.
type Suggestion struct {
	Name  string
	Value string
}

// Suggest merges the static seed list with the guild's live game keys into
// a deduplicated, filtered, bounded choice list. Matching is substring
// containment, not prefix, so "rock" finds "Deep Rock Galactic". Candidates
// are compared lowercase so the two sources cannot produce case-duplicates,
// and the surviving set is sorted lexicographically before truncation to
// keep results stable across calls.
func Suggest(seed []string, live []game.Key, prefix string, limit int) []Suggestion {
	candidates := make(map[string]struct{}, len(seed)+len(live))
	for _, name := range seed {
		candidates[strings.ToLower(name)] = struct{}{}
	}
	for _, key := range live {
		candidates[strings.ToLower(key.Display())] = struct{}{}
	}

	needle := strings.ToLower(prefix)
	matches := make([]string, 0, len(candidates))
	for name := range candidates {
		if strings.Contains(name, needle) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)

	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	suggestions := make([]Suggestion, len(matches))
	for i, name := range matches {
		display := game.Normalize(name).Display()
		suggestions[i] = Suggestion{Name: display, Value: display}
	}
	return suggestions
}
