package game

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadSeedList reads the newline-delimited list of well-known game names
// used to seed autocomplete. Entries are lowercased and deduplicated; blank
// lines are skipped. The list is loaded once at startup and treated as
// immutable afterwards.
func LoadSeedList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed game list: %w", err)
	}
	defer f.Close()

	seen := make(map[string]struct{})
	var games []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		games = append(games, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seed game list: %w", err)
	}

	return games, nil
}
