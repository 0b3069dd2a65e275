package lfg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Teflondom25/LFG-Bot/internal/game"
	"github.com/Teflondom25/LFG-Bot/internal/storage"
)

// FormatUserGames renders a user's subscriptions as a bullet list of
// display names, sorted for stable output.
func FormatUserGames(keys []game.Key) string {
	if len(keys) == 0 {
		return "You are not subscribed to any games yet. Use `/addgame` to subscribe!"
	}

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.Display()
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("You are subscribed to:\n")
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("- **%s**\n", name))
	}
	return sb.String()
}

// FormatRanking renders the guild's games ordered by subscriber count,
// most popular first, ties broken by key so output is deterministic.
func FormatRanking(games []storage.GameCount) string {
	if len(games) == 0 {
		return "There are no games with subscribers yet."
	}

	ranked := make([]storage.GameCount, len(games))
	copy(ranked, games)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Key < ranked[j].Key
	})

	var sb strings.Builder
	sb.WriteString("Here are the current games with subscribers:\n")
	for _, g := range ranked {
		noun := "subscribers"
		if g.Count == 1 {
			noun = "subscriber"
		}
		sb.WriteString(fmt.Sprintf("- **%s** (%d %s)\n", g.Key.Display(), g.Count, noun))
	}
	return sb.String()
}
