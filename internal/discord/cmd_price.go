package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/albie-bot/albie/internal/logger"
	"github.com/albie-bot/albie/internal/metrics"
	"github.com/albie-bot/albie/internal/plot"
	"github.com/albie-bot/albie/internal/search"
)

// historyDays is the span of the price history chart.
const historyDays = 7

// PriceCommand returns the price command definition and handler. The item
// argument is free text: display names, identifiers and the generated
// "T4.1 dagger" shorthands all resolve through the fuzzy matcher.
func PriceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "price",
		Description: "Look up current market prices for an item",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Item name or identifier (fuzzy matched)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "quick",
				Description: "Skip the 7-day history chart (faster)",
			},
		},
	}

	return cmd, handlePrice
}

func handlePrice(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !deps.isWorkChannel(i.ChannelID) {
		return
	}
	if !deferResponse(s, i) {
		return
	}

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	opts := optionMap(i)
	query := opts["item"].StringValue()
	quick := false
	if opt, ok := opts["quick"]; ok {
		quick = opt.BoolValue()
	}

	debugEcho(s, deps, fmt.Sprintf("/price %s", query))

	items := deps.Store.Items()

	start := time.Now()
	candidates, err := search.Match(query, items, search.DefaultTopK)
	metrics.MatchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RecordCommand("price", err)
		switch {
		case errors.Is(err, search.ErrEmptyQuery):
			respondError(s, i, MsgNoItemGiven)
		case errors.Is(err, search.ErrEmptyCatalog):
			log.Error("Match ran against empty catalog")
			respondError(s, i, MsgCatalogEmpty)
		default:
			log.Error("Match failed", "query", query, "error", err)
			respondError(s, i, MsgGenericError)
		}
		return
	}

	primary := items[candidates[0].Index]
	suggestions := buildSuggestions(items, candidates[1:], deps.TierEmojis)

	log.Info("Resolved query",
		"query", query,
		"item", primary.UniqueName,
		"distance", candidates[0].Distance)

	prices, err := deps.Market.FetchPrices(ctx, primary.UniqueName)
	if err != nil {
		log.Error("Price fetch failed", "item", primary.UniqueName, "error", err)
		metrics.RecordCommand("price", err)
		respondError(s, i, MsgAPIError)
		return
	}

	embed := buildPriceEmbed(primary, prices, suggestions, deps.Market.ItemIconURL(primary.UniqueName))

	if !quick {
		if file := renderHistoryChart(ctx, deps, primary.UniqueName, primary.DisplayName()); file != nil {
			sendEmbedWithFile(s, i, embed, file)
			metrics.RecordCommand("price", nil)
			debugEcho(s, deps, fmt.Sprintf("/price %s | Matched -> %s (%s)", query, primary.DisplayName(), primary.UniqueName))
			return
		}
		// Chart failed; the prices are still worth sending.
	}

	sendEmbed(s, i, embed)
	metrics.RecordCommand("price", nil)
	debugEcho(s, deps, fmt.Sprintf("/price %s | Matched -> %s (%s)", query, primary.DisplayName(), primary.UniqueName))
}

// renderHistoryChart fetches and renders the history chart, or returns nil
// when there is nothing to attach. History problems never fail the command.
func renderHistoryChart(ctx context.Context, deps *Deps, itemID, itemName string) *discordgo.File {
	log := logger.FromContext(ctx)

	history, err := deps.Market.FetchHistory(ctx, itemID, historyDays)
	if err != nil {
		log.Warn("History fetch failed", "item", itemID, "error", err)
		return nil
	}

	png, err := plot.Render(itemID, itemName, history)
	if err != nil {
		if !errors.Is(err, plot.ErrNoData) {
			log.Warn("Chart render failed", "item", itemID, "error", err)
		}
		return nil
	}

	return &discordgo.File{
		Name:        "plot.png",
		ContentType: "image/png",
		Reader:      bytes.NewReader(png),
	}
}

// debugEcho mirrors handled queries into the configured debug channel.
func debugEcho(s *discordgo.Session, deps *Deps, message string) {
	if !deps.Debug || deps.DebugChannelID == "" {
		return
	}
	if _, err := s.ChannelMessageSend(deps.DebugChannelID, message); err != nil {
		logger.FromContext(context.Background()).Warn("Debug echo failed", "error", err)
	}
}
