package bot

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Teflondom25/LFG-Bot/internal/lfg"
)

func TestCommandDefinitionsHaveAutocompleteOnGameOptions(t *testing.T) {
	b := &Bot{}

	for _, cmd := range b.getCommandDefinitions() {
		for _, opt := range cmd.Options {
			if opt.Name == "game" {
				assert.True(t, opt.Autocomplete, "command %s: game option should autocomplete", cmd.Name)
				assert.True(t, opt.Required, "command %s: game option should be required", cmd.Name)
			}
		}
	}
}

func TestCommandDefinitionsCoverAllHandlers(t *testing.T) {
	b := &Bot{}

	names := make(map[string]bool)
	for _, cmd := range b.getCommandDefinitions() {
		names[cmd.Name] = true
	}

	for _, want := range []string{"help", "addgame", "removegame", "lfg", "mygames", "listgames"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestThreadNameIncludesGameAndTime(t *testing.T) {
	at := time.Date(2024, 3, 1, 21, 7, 0, 0, time.UTC)
	b := &Bot{clock: clockwork.NewFakeClockAt(at)}

	assert.Equal(t, "LFG for Deep Rock Galactic (21:07)", b.threadName("deep-rock-galactic"))
}

func TestOptionString(t *testing.T) {
	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "lfg",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "game", Type: discordgo.ApplicationCommandOptionString, Value: "Destiny 2"},
				},
			},
		},
	}

	assert.Equal(t, "Destiny 2", optionString(i, "game"))
	assert.Equal(t, "", optionString(i, "message"))
}

func TestSuggestionChoices(t *testing.T) {
	choices := suggestionChoices([]lfg.Suggestion{
		{Name: "Destiny 2", Value: "Destiny 2"},
		{Name: "Valheim", Value: "Valheim"},
	})

	require.Len(t, choices, 2)
	assert.Equal(t, "Destiny 2", choices[0].Name)
	assert.Equal(t, "Destiny 2", choices[0].Value)
}
