package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/albie-bot/albie/internal/aodata"
	"github.com/albie-bot/albie/internal/catalog"
)

// Bot represents the Discord bot.
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	Registry *CommandRegistry
	Deps     *Deps
}

// Config holds the bot configuration.
type Config struct {
	Token string
	AppID string
}

// Deps bundles everything command handlers need. A single value is threaded
// through the registry so handlers stay plain functions.
type Deps struct {
	Store      *catalog.Store
	Market     *aodata.Client
	TierEmojis []string

	OnlyWorkChannels bool
	WorkChannelIDs   []string
	DebugChannelID   string
	Debug            bool
}

// isWorkChannel reports whether commands are allowed in channelID.
func (d *Deps) isWorkChannel(channelID string) bool {
	if !d.OnlyWorkChannels {
		return true
	}
	for _, id := range d.WorkChannelIDs {
		if id == channelID {
			return true
		}
	}
	return false
}

// New creates a new Discord bot.
func New(cfg Config, deps *Deps) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		Session:  s,
		AppID:    cfg.AppID,
		Registry: NewCommandRegistry(),
		Deps:     deps,
	}, nil
}

// Start opens the gateway connection.
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop closes the gateway connection.
func (b *Bot) Stop() {
	b.Session.Close()
}

// Run runs the bot until a termination signal is received.
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

// RegisterCommands pushes the registry's commands to Discord, replacing
// whatever set is currently registered for the application.
func (b *Bot) RegisterCommands() error {
	desired := make([]*discordgo.ApplicationCommand, 0, len(b.Registry.Commands))
	for _, cmd := range b.Registry.Commands {
		desired = append(desired, cmd)
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desired); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	slog.Info("Commands registered", "count", len(desired))
	return nil
}

func (b *Bot) ready(s *discordgo.Session, _ *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Deps)
	}
}
