// Package emoji resolves the tier reaction emojis used on price responses.
package emoji

import (
	"encoding/json"
	"fmt"
	"os"
)

// Tiers is the number of item tiers in the game.
const Tiers = 8

// defaults are the keycap digit emojis 1-8, used whenever no custom emoji
// is configured for a tier.
var defaults = [Tiers]string{
	"1⃣", "2⃣", "3⃣", "4⃣",
	"5⃣", "6⃣", "7⃣", "8⃣",
}

// TierEmojis returns one emoji per tier, lowest first. The optional JSON
// config file maps "t1".."t8" to custom (e.g. guild) emojis; missing file,
// unreadable file or missing keys fall back per-tier to the defaults.
func TierEmojis(path string) []string {
	overrides := loadOverrides(path)

	emojis := make([]string, Tiers)
	for i := 0; i < Tiers; i++ {
		key := fmt.Sprintf("t%d", i+1)
		if custom, ok := overrides[key]; ok && custom != "" {
			emojis[i] = custom
			continue
		}
		emojis[i] = defaults[i]
	}
	return emojis
}

func loadOverrides(path string) map[string]string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var overrides map[string]string
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil
	}
	return overrides
}
