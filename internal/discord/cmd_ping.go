package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/albie-bot/albie/internal/metrics"
)

// PingCommand returns the ping command definition and handler.
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check that the bot is alive",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, _ *Deps) {
		if !deferResponse(s, i) {
			return
		}
		msg := "Pong! 🏓"
		if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Content: &msg,
		}); err != nil {
			slog.Error("Failed to send ping response", "error", err)
		}
		metrics.RecordCommand("ping", nil)
	}

	return cmd, handler
}
