package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/albie-bot/albie/internal/aodata"
	"github.com/albie-bot/albie/internal/catalog"
	"github.com/albie-bot/albie/internal/config"
	"github.com/albie-bot/albie/internal/discord"
	"github.com/albie-bot/albie/internal/emoji"
	"github.com/albie-bot/albie/internal/logger"
	"github.com/albie-bot/albie/internal/metrics"
	"github.com/albie-bot/albie/internal/server"
)

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	market := aodata.New(aodata.Config{
		ItemDumpURL: cfg.ItemDumpURL,
		PricesURL:   cfg.PricesURL,
		HistoryURL:  cfg.HistoryURL,
	})

	store := catalog.NewStore(cfg.ItemsPath, market)
	items, err := store.Load(context.Background())
	if err != nil {
		slog.Error("Failed to load item catalog", "error", err)
		os.Exit(1)
	}
	metrics.CatalogItems.Set(float64(len(items)))
	slog.Info("Item catalog loaded", "items", len(items))

	ops := server.New(cfg.OpsPort)
	ops.Start()
	defer ops.Stop()

	bot, err := discord.New(discord.Config{
		Token: cfg.DiscordToken,
		AppID: cfg.DiscordAppID,
	}, &discord.Deps{
		Store:            store,
		Market:           market,
		TierEmojis:       emoji.TierEmojis(cfg.EmojisPath),
		OnlyWorkChannels: cfg.OnlyWorkChannels,
		WorkChannelIDs:   cfg.WorkChannelIDs,
		DebugChannelID:   cfg.DebugChannelID,
		Debug:            cfg.Debug,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	registerCommands(bot, []CommandFactory{
		discord.PriceCommand,
		discord.PingCommand,
	})

	if err := bot.RegisterCommands(); err != nil {
		slog.Error("Failed to register commands", "error", err)
		// Don't exit - bot can still run if commands are already registered
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
