package discord

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/albie-bot/albie/internal/aodata"
	"github.com/albie-bot/albie/internal/catalog"
	"github.com/albie-bot/albie/internal/search"
)

// Embed appearance.
const (
	embedColor  = 0xe6b800
	embedFooter = "Albie • prices from the Albion Online Data Project"
)

// staleCutoffSeconds is ~3 years; order dates past that are placeholder
// values from the API and shown as NIL.
const staleCutoffSeconds = 94608000

// Suggestion is one alternative match offered below the price table.
type Suggestion struct {
	Emoji string
	Name  string
	ID    string
}

// buildSuggestions renders the non-primary candidates. Candidates may repeat
// an item (the matcher does not dedupe); the suggestion list shows them as
// ranked, numbered with the tier emojis.
func buildSuggestions(items []catalog.Item, candidates []search.Candidate, emojis []string) []Suggestion {
	out := make([]Suggestion, 0, len(candidates))
	for n, c := range candidates {
		item := items[c.Index]
		var emoji string
		if n < len(emojis) {
			emoji = emojis[n]
		}
		out = append(out, Suggestion{
			Emoji: emoji,
			Name:  item.DisplayName(),
			ID:    item.UniqueName,
		})
	}
	return out
}

// buildPriceEmbed assembles the price overview: min sell and max buy orders
// per city with their ages, alternative matches, and the item thumbnail.
func buildPriceEmbed(item catalog.Item, prices []aodata.CityPrice, suggestions []Suggestion, iconURL string) *discordgo.MessageEmbed {
	em := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Current Prices for:\n**%s (%s)**", item.DisplayName(), item.UniqueName),
		Color: embedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: embedFooter,
		},
	}

	now := time.Now().UTC()
	var sellLoc, sellPrice, sellAge strings.Builder
	var buyLoc, buyPrice, buyAge strings.Builder

	for _, p := range prices {
		if p.SellPriceMin == 0 && p.BuyPriceMax == 0 {
			continue
		}
		location := p.City + qualityLabel(p.Quality)

		if p.SellPriceMin != 0 {
			sellLoc.WriteString(location + "\n")
			sellPrice.WriteString(strconv.Itoa(p.SellPriceMin) + "\n")
			sellAge.WriteString(relativeTime(p.SellPriceMinDate, now) + "\n")
		}
		if p.BuyPriceMax != 0 {
			buyLoc.WriteString(location + "\n")
			buyPrice.WriteString(strconv.Itoa(p.BuyPriceMax) + "\n")
			buyAge.WriteString(relativeTime(p.BuyPriceMaxDate, now) + "\n")
		}
	}

	if sellPrice.Len() > 0 {
		em.Fields = append(em.Fields,
			&discordgo.MessageEmbedField{Name: "Locations", Value: sellLoc.String(), Inline: true},
			&discordgo.MessageEmbedField{Name: "Min Sell Price", Value: sellPrice.String(), Inline: true},
			&discordgo.MessageEmbedField{Name: "Last Updated", Value: sellAge.String(), Inline: true},
		)
	}
	if buyPrice.Len() > 0 {
		em.Fields = append(em.Fields,
			&discordgo.MessageEmbedField{Name: "Locations", Value: buyLoc.String(), Inline: true},
			&discordgo.MessageEmbedField{Name: "Max Buy Price", Value: buyPrice.String(), Inline: true},
			&discordgo.MessageEmbedField{Name: "Last Updated", Value: buyAge.String(), Inline: true},
		)
	}
	if len(em.Fields) == 0 {
		em.Fields = append(em.Fields, &discordgo.MessageEmbedField{
			Name:   "NO DATA",
			Value:  "There are no data for this item.",
			Inline: true,
		})
	}

	if len(suggestions) > 0 {
		lines := make([]string, 0, len(suggestions))
		for _, sug := range suggestions {
			lines = append(lines, fmt.Sprintf("%s %s (%s)", sug.Emoji, sug.Name, sug.ID))
		}
		em.Fields = append(em.Fields, &discordgo.MessageEmbedField{
			Name:   "Suggestions:",
			Value:  strings.Join(lines, "\n"),
			Inline: false,
		})
	}

	em.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: iconURL}
	return em
}

// relativeTime renders how long ago an order timestamp was observed.
// Unparseable or placeholder-old timestamps come out as "NIL".
func relativeTime(timestamp string, now time.Time) string {
	ts, err := time.Parse(aodata.TimestampLayout, timestamp)
	if err != nil {
		return "NIL"
	}

	seconds := now.Sub(ts).Seconds()
	switch {
	case seconds >= staleCutoffSeconds:
		return "NIL"
	case seconds >= 3600:
		return fmt.Sprintf("%.1f hours ago", math.Round(seconds/360)/10)
	case seconds >= 60:
		return fmt.Sprintf("%d mins ago", int(math.Round(seconds/60)))
	default:
		return fmt.Sprintf("%d sec ago", int(math.Round(seconds)))
	}
}

// qualityLabel annotates a city entry with the order's item quality.
// Quality 0 and 1 are the norm and stay unlabeled.
func qualityLabel(quality int) string {
	switch quality {
	case 2:
		return " (Good)"
	case 3:
		return " (Outstanding)"
	case 4:
		return " (Excellent)"
	case 5:
		return " (Masterpiece)"
	default:
		return ""
	}
}
