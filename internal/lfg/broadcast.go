package lfg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Teflondom25/LFG-Bot/internal/game"
)

// DefaultMessage is used when the requester gives no message of their own.
const DefaultMessage = "Anyone want to play?"

// Plan is a computed broadcast: who to ping and the announcement text.
// Targets never contains the requester.
type Plan struct {
	Targets []string
	Text    string
}

// Compose builds the announcement for an LFG request. The requester is
// excluded from the target set even when they are a subscriber. When no
// one else is subscribed the plan still renders, with the ping section
// replaced by a "no one else subscribed" note, so callers always post it.
func Compose(key game.Key, requester string, subscribers []string, message string) Plan {
	if message == "" {
		message = DefaultMessage
	}

	targets := make([]string, 0, len(subscribers))
	for _, id := range subscribers {
		if id != requester {
			targets = append(targets, id)
		}
	}
	sort.Strings(targets)

	pingLine := "Pinging subscribers... (no one else subscribed)"
	if len(targets) > 0 {
		mentions := make([]string, len(targets))
		for i, id := range targets {
			mentions[i] = mention(id)
		}
		pingLine = "Pinging subscribers: " + strings.Join(mentions, " ")
	}

	text := fmt.Sprintf("**LFG for %s!**\n*Started by %s*\n\n> %s\n\n%s",
		key.Display(), mention(requester), message, pingLine)

	return Plan{Targets: targets, Text: text}
}

func mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}
