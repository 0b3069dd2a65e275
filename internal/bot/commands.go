package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Teflondom25/LFG-Bot/internal/game"
	"github.com/Teflondom25/LFG-Bot/internal/lfg"
)

// storeTimeout bounds every backing-store call made from a command handler.
const storeTimeout = 10 * time.Second

// storeFailureMessage is what users see when the backing store is
// unreachable. The specific cause goes to the operator log only.
const storeFailureMessage = "Something went wrong while talking to the database. Please try again."

const helpMessage = `**🚀 LFG SUBSCRIPTION BOT HELP**
---
This bot replaces traditional reaction roles with a smart, targeted subscription system. When you use ` + "`/lfg`" + `, the bot only pings users who have **explicitly subscribed** to that game, preventing massive role spam!

**✅ Key Feature: Preventing Duplicates**
All game names are automatically converted to a standardized format (e.g., "Deep Rock Galactic" -> ` + "`deep-rock-galactic`" + `), so misspellings or casing issues won't create multiple entries.

**COMMANDS LIST:**
---
**1. Subscribing/Unsubscribing**
- **` + "`/addgame game: [Name]`" + `**: Subscribe to a game's notification list.
- **` + "`/removegame game: [Name]`" + `**: Unsubscribe from a game.

**2. Looking For Group (LFG)**
- **` + "`/lfg game: [Name] message: [Optional]`" + `**: Ping all subscribers for that game. A **new thread** is automatically created to keep the main channel clean!

**3. Checking Status**
- **` + "`/mygames`" + `**: Lists all games you are personally subscribed to.
- **` + "`/listgames`" + `**: Shows all games in the server that currently have subscribers.
- **` + "`/help`" + `**: Displays this help message.`

// Slash command definitions
func (b *Bot) getCommandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "help",
			Description: "Explains the bot's function and lists all commands",
		},
		{
			Name:        "addgame",
			Description: "Subscribe to notifications for a specific game",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "game",
					Description:  "The name of the game you want to follow (e.g., Helldivers 2)",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
		{
			Name:        "removegame",
			Description: "Unsubscribe from notifications for a specific game",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "game",
					Description:  "The name of the game you want to unfollow",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
		{
			Name:        "lfg",
			Description: "Ping all subscribers for a specific game to start a group",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "game",
					Description:  "The name of the game you want to play",
					Required:     true,
					Autocomplete: true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message",
					Description: "An optional message for your LFG (e.g., 'Need 2 more')",
				},
			},
		},
		{
			Name:        "mygames",
			Description: "List all the games you are currently subscribed to",
		},
		{
			Name:        "listgames",
			Description: "List all games that have at least one subscriber",
		},
	}
}

// registerCommands registers all slash commands with Discord. When a guild
// ID is configured, commands register to that guild only (they show up
// immediately there); otherwise they register globally.
func (b *Bot) registerCommands() error {
	slog.Info("Registering slash commands", "guild", b.config.GuildID)

	commandDefinitions := b.getCommandDefinitions()
	registeredCommands := make([]*discordgo.ApplicationCommand, 0, len(commandDefinitions))

	for _, cmd := range commandDefinitions {
		registered, err := b.session.ApplicationCommandCreate(
			b.session.State.User.ID,
			b.config.GuildID, // empty string = global command
			cmd,
		)
		if err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.Name, err)
		}
		registeredCommands = append(registeredCommands, registered)
		slog.Debug("Registered command", "name", cmd.Name)
	}

	b.commands = registeredCommands
	slog.Info("Slash commands registered", "count", len(registeredCommands))
	return nil
}

// handleHelp handles the /help command
func (b *Bot) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondEphemeral(s, i, helpMessage)
}

// handleAddGame handles the /addgame command
func (b *Bot) handleAddGame(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !requireGuild(s, i) {
		return
	}

	key := game.Normalize(optionString(i, "game"))
	if key == "" {
		respondEphemeral(s, i, "Please provide a game name.")
		return
	}

	deferResponse(s, i, true)

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := b.store.Subscribe(ctx, i.GuildID, key, requesterID(i)); err != nil {
		slog.Error("Failed to subscribe", "guild", i.GuildID, "game", key, "error", err)
		b.editResponse(s, i, storeFailureMessage)
		return
	}

	b.editResponse(s, i, fmt.Sprintf("You are now subscribed to notifications for **%s**!", key.Display()))
}

// handleRemoveGame handles the /removegame command
func (b *Bot) handleRemoveGame(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !requireGuild(s, i) {
		return
	}

	key := game.Normalize(optionString(i, "game"))
	if key == "" {
		respondEphemeral(s, i, "Please provide a game name.")
		return
	}

	deferResponse(s, i, true)

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	// Removing a subscription that never existed succeeds; only a real
	// store failure reaches the error path.
	if err := b.store.Unsubscribe(ctx, i.GuildID, key, requesterID(i)); err != nil {
		slog.Error("Failed to unsubscribe", "guild", i.GuildID, "game", key, "error", err)
		b.editResponse(s, i, storeFailureMessage)
		return
	}

	b.editResponse(s, i, fmt.Sprintf("You have been unsubscribed from **%s**.", key.Display()))
}

// handleLFG handles the /lfg command
func (b *Bot) handleLFG(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !requireGuild(s, i) {
		return
	}

	key := game.Normalize(optionString(i, "game"))
	if key == "" {
		respondEphemeral(s, i, "Please provide a game name.")
		return
	}
	message := optionString(i, "message")

	// Public reply: the starter message anchors the announcement thread.
	deferResponse(s, i, false)

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	subscribers, err := b.store.Subscribers(ctx, i.GuildID, key)
	if err != nil {
		slog.Error("Failed to load subscribers", "guild", i.GuildID, "game", key, "error", err)
		b.editResponse(s, i, storeFailureMessage)
		return
	}

	plan := lfg.Compose(key, requesterID(i), subscribers, message)

	starter := fmt.Sprintf("LFG for **%s** started! Join the thread...", key.Display())
	msg, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &starter})
	if err != nil {
		slog.Error("Failed to post LFG starter message", "guild", i.GuildID, "error", err)
		return
	}

	threadName := b.threadName(key)
	if err := b.notifier.AnnounceInThread(i.ChannelID, msg.ID, threadName, plan.Text); err != nil {
		slog.Error("Failed to announce in thread", "guild", i.GuildID, "game", key, "error", err)
		b.editResponse(s, i, "Started the LFG but could not create the thread.")
	}
}

// threadName labels the announcement thread with the game and start time.
func (b *Bot) threadName(key game.Key) string {
	return fmt.Sprintf("LFG for %s (%s)", key.Display(), b.clock.Now().Format("15:04"))
}

// handleMyGames handles the /mygames command
func (b *Bot) handleMyGames(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !requireGuild(s, i) {
		return
	}

	deferResponse(s, i, true)

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	games, err := b.store.UserGames(ctx, i.GuildID, requesterID(i))
	if err != nil {
		slog.Error("Failed to load user games", "guild", i.GuildID, "error", err)
		b.editResponse(s, i, storeFailureMessage)
		return
	}

	b.editResponse(s, i, lfg.FormatUserGames(games))
}

// handleListGames handles the /listgames command
func (b *Bot) handleListGames(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !requireGuild(s, i) {
		return
	}

	deferResponse(s, i, true)

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	games, err := b.store.PopulatedGames(ctx, i.GuildID)
	if err != nil {
		slog.Error("Failed to load populated games", "guild", i.GuildID, "error", err)
		b.editResponse(s, i, storeFailureMessage)
		return
	}

	b.editResponse(s, i, lfg.FormatRanking(games))
}

// Helper functions

// requireGuild rejects invocations outside a guild (DMs) with a
// corrective message.
func requireGuild(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if i.GuildID == "" {
		respondEphemeral(s, i, "This command only works inside a server.")
		return false
	}
	return true
}

// requesterID returns the invoking user's ID. Guild interactions carry the
// user inside Member; requireGuild runs first, so Member is set.
func requesterID(i *discordgo.InteractionCreate) string {
	return i.Member.User.ID
}

// optionString returns the named string option's value, or "" if absent.
func optionString(i *discordgo.InteractionCreate, name string) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		slog.Error("Failed to respond to interaction", "error", err)
	}
}

// deferResponse acknowledges the interaction immediately so slow store
// calls cannot hit Discord's response deadline.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) {
	data := &discordgo.InteractionResponseData{}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		slog.Error("Failed to defer interaction response", "error", err)
	}
}

func (b *Bot) editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	if err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}
