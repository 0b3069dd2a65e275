package game

import "strings"

// Key is the canonical identifier for a game within a guild. Two names that
// differ only in casing or in space-vs-hyphen word separators map to the
// same Key, so "Deep Rock Galactic" and "deep-rock-galactic" share one
// subscription record.
type Key string

// Normalize converts a user-supplied game name into its canonical key:
// lowercase, trimmed, with internal whitespace runs collapsed to a single
// hyphen. Idempotent, so keys read back from storage pass through unchanged.
func Normalize(raw string) Key {
	words := strings.Fields(strings.ToLower(raw))
	return Key(strings.Join(words, "-"))
}

// Display renders the key for humans: hyphens become spaces and each word
// is title-cased. Lossy with respect to the original casing.
func (k Key) Display() string {
	words := strings.Split(string(k), "-")
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
