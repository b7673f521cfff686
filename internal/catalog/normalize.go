package catalog

import (
	"fmt"
	"strings"
)

// Enrich builds the searchable catalog from the raw item dump by generating
// common-name aliases for every item. Aliases are appended in rule order and
// never deduplicated. Each rule is best-effort: items without an EN-US
// display name still get the identifier-derived shorthands, and nothing
// aborts processing of the remaining items.
//
// The returned slice is index-stable; match results reference items by
// position in it.
func Enrich(raw []RawItem) []Item {
	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		item := Item{
			UniqueName:     r.UniqueName,
			LocalizedNames: r.LocalizedNames,
			CommonNames:    []string{},
		}
		id := ParseIdentifier(r.UniqueName)

		addTierShorthand(id, &item)
		substituteLongTierName(id, &item)
		substituteLongEnchantName(id, &item)

		items = append(items, item)
	}
	return items
}

// addTierShorthand appends the "T4.1 ADEPTS_DAGGER" style alias. Enchant-0
// items additionally get the bare "T4 ADEPTS_DAGGER" form.
func addTierShorthand(id ParsedIdentifier, item *Item) {
	item.CommonNames = append(item.CommonNames,
		fmt.Sprintf("T%d.%d %s", id.Tier, id.Enchant, id.BaseName))
	if id.Enchant == 0 {
		item.CommonNames = append(item.CommonNames,
			fmt.Sprintf("T%d %s", id.Tier, id.BaseName))
	}
}

// substituteLongTierName replaces a leading tier adjective ("Adept's" etc.)
// in the EN-US display name with the short tier/enchant code, so "Adept's
// Dagger" also answers to "T4.0 Dagger" and "T4 Dagger".
func substituteLongTierName(id ParsedIdentifier, item *Item) {
	fields := displayNameFields(item)
	if len(fields) == 0 || !longTierNames[fields[0]] {
		return
	}

	short := fmt.Sprintf("T%d.%d", id.Tier, id.Enchant)
	item.CommonNames = append(item.CommonNames, joinWords(short, fields[1:]))
	if id.Enchant == 0 {
		short = fmt.Sprintf("T%d", id.Tier)
		item.CommonNames = append(item.CommonNames, joinWords(short, fields[1:]))
	}
}

// substituteLongEnchantName replaces a leading enchant quality ("Uncommon",
// "Rare", ...) with the short tier/enchant code. When the second word is a
// resource material name a variant with that word dropped is emitted too,
// since players type "t4.1 logs" rather than "t4.1 birch logs".
func substituteLongEnchantName(id ParsedIdentifier, item *Item) {
	fields := displayNameFields(item)
	if len(fields) == 0 || !longEnchantNames[fields[0]] {
		return
	}
	dropMaterial := len(fields) > 1 && resourceNames[fields[1]]

	short := fmt.Sprintf("T%d.%d", id.Tier, id.Enchant)
	item.CommonNames = append(item.CommonNames, joinWords(short, fields[1:]))
	if dropMaterial {
		item.CommonNames = append(item.CommonNames, joinWords(short, fields[2:]))
	}
	if id.Enchant == 0 {
		short = fmt.Sprintf("T%d", id.Tier)
		item.CommonNames = append(item.CommonNames, joinWords(short, fields[1:]))
		if dropMaterial {
			item.CommonNames = append(item.CommonNames, joinWords(short, fields[2:]))
		}
	}
}

// displayNameFields returns the whitespace-split EN-US display name, or nil
// when the item has no EN-US localization (the substitution rules then skip).
func displayNameFields(item *Item) []string {
	name, ok := item.LocalizedNames[LocaleENUS]
	if !ok {
		return nil
	}
	return strings.Fields(name)
}

func joinWords(short string, rest []string) string {
	return strings.Join(append([]string{short}, rest...), " ")
}
