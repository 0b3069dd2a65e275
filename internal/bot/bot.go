package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/jonboulle/clockwork"

	"github.com/Teflondom25/LFG-Bot/internal/config"
	"github.com/Teflondom25/LFG-Bot/internal/storage"
)

// Bot represents the Discord bot instance
type Bot struct {
	config    *config.Config
	session   *discordgo.Session
	store     storage.SubscriptionStore
	seedGames []string
	notifier  Notifier
	clock     clockwork.Clock
	commands  []*discordgo.ApplicationCommand
}

// New creates a new Bot instance. seedGames is the immutable list of
// well-known game names that seeds autocomplete.
func New(cfg *config.Config, store storage.SubscriptionStore, seedGames []string) (*Bot, error) {
	// Create Discord session
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Set intents
	session.Identify.Intents = discordgo.IntentsGuilds

	b := &Bot{
		config:    cfg,
		session:   session,
		store:     store,
		seedGames: seedGames,
		notifier:  &discordNotifier{session: session},
		clock:     clockwork.NewRealClock(),
	}

	// Register command handlers
	b.registerHandlers()

	return b, nil
}

// Start opens the Discord connection and registers the slash commands
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	slog.Info("Connected to Discord", "user", b.session.State.User.Username)

	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	return nil
}

// Stop gracefully shuts down the bot
func (b *Bot) Stop() error {
	if b.session != nil {
		return b.session.Close()
	}
	return nil
}

// registerHandlers sets up Discord event handlers
func (b *Bot) registerHandlers() {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		slog.Info("Bot is ready", "guilds", len(r.Guilds))
	})
}

// handleInteraction processes slash command and autocomplete interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommandAutocomplete:
		b.handleAutocomplete(s, i)
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		slog.Debug("Received command", "command", data.Name, "guild", i.GuildID)

		switch data.Name {
		case "help":
			b.handleHelp(s, i)
		case "addgame":
			b.handleAddGame(s, i)
		case "removegame":
			b.handleRemoveGame(s, i)
		case "lfg":
			b.handleLFG(s, i)
		case "mygames":
			b.handleMyGames(s, i)
		case "listgames":
			b.handleListGames(s, i)
		default:
			slog.Warn("Unknown command", "command", data.Name)
		}
	}
}
