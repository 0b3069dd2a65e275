package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Teflondom25/LFG-Bot/internal/game"
	"github.com/Teflondom25/LFG-Bot/internal/lfg"
)

// Discord expects an autocomplete response within three seconds.
const autocompleteTimeout = 3 * time.Second

// handleAutocomplete suggests game names for the focused option, merging
// the static seed list with the games already present in this guild. A
// store failure degrades to seed-only suggestions rather than an error:
// autocomplete is advisory and the user can still type freely.
func (b *Bot) handleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	current := focusedOptionValue(i)

	var live []game.Key
	if i.GuildID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), autocompleteTimeout)
		defer cancel()

		keys, err := b.store.AllGameKeys(ctx, i.GuildID)
		if err != nil {
			slog.Warn("Autocomplete falling back to seed list", "guild", i.GuildID, "error", err)
		} else {
			live = keys
		}
	}

	suggestions := lfg.Suggest(b.seedGames, live, current, lfg.MaxSuggestions)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: suggestionChoices(suggestions),
		},
	})
	if err != nil {
		slog.Error("Failed to respond to autocomplete", "error", err)
	}
}

// focusedOptionValue returns the value of the option being typed.
func focusedOptionValue(i *discordgo.InteractionCreate) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Focused {
			return opt.StringValue()
		}
	}
	return ""
}

func suggestionChoices(suggestions []lfg.Suggestion) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(suggestions))
	for idx, s := range suggestions {
		choices[idx] = &discordgo.ApplicationCommandOptionChoice{
			Name:  s.Name,
			Value: s.Value,
		}
	}
	return choices
}
