package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enrichOne(t *testing.T, raw RawItem) Item {
	t.Helper()
	items := Enrich([]RawItem{raw})
	require.Len(t, items, 1)
	return items[0]
}

func TestEnrichTierShorthand(t *testing.T) {
	tests := []struct {
		name        string
		uniqueID    string
		wantAliases []string
	}{
		{
			name:        "enchant zero gets dotted and bare forms",
			uniqueID:    "T4_BAG",
			wantAliases: []string{"T4.0 BAG", "T4 BAG"},
		},
		{
			name:        "enchanted item gets only the dotted form",
			uniqueID:    "T4_ADEPTS_DAGGER@1",
			wantAliases: []string{"T4.1 ADEPTS_DAGGER"},
		},
		{
			name:        "unparseable identifier still gets shorthands",
			uniqueID:    "UNIQUE_HIDEOUT",
			wantAliases: []string{"T1.0 UNIQUE_HIDEOUT", "T1 UNIQUE_HIDEOUT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := enrichOne(t, RawItem{UniqueName: tt.uniqueID})
			assert.Equal(t, tt.wantAliases, item.CommonNames)
		})
	}
}

func TestEnrichLongTierSubstitution(t *testing.T) {
	item := enrichOne(t, RawItem{
		UniqueName:     "T3_DAGGER",
		LocalizedNames: map[string]string{LocaleENUS: "Adept's Dagger"},
	})

	assert.Contains(t, item.CommonNames, "T3.0 Dagger")
	assert.Contains(t, item.CommonNames, "T3 Dagger")
}

func TestEnrichLongTierSubstitutionEnchanted(t *testing.T) {
	item := enrichOne(t, RawItem{
		UniqueName:     "T4_DAGGER@2",
		LocalizedNames: map[string]string{LocaleENUS: "Adept's Dagger"},
	})

	assert.Contains(t, item.CommonNames, "T4.2 Dagger")
	assert.NotContains(t, item.CommonNames, "T4 Dagger")
}

func TestEnrichLongEnchantSubstitution(t *testing.T) {
	item := enrichOne(t, RawItem{
		UniqueName:     "T4_WOOD@1",
		LocalizedNames: map[string]string{LocaleENUS: "Uncommon Birch Logs"},
	})

	// Full substitution plus the material-dropped variant.
	assert.Contains(t, item.CommonNames, "T4.1 Birch Logs")
	assert.Contains(t, item.CommonNames, "T4.1 Logs")
}

func TestEnrichLongEnchantSubstitutionEnchantZero(t *testing.T) {
	item := enrichOne(t, RawItem{
		UniqueName:     "T4_WOOD",
		LocalizedNames: map[string]string{LocaleENUS: "Uncommon Birch Logs"},
	})

	assert.Contains(t, item.CommonNames, "T4.0 Birch Logs")
	assert.Contains(t, item.CommonNames, "T4.0 Logs")
	assert.Contains(t, item.CommonNames, "T4 Birch Logs")
	assert.Contains(t, item.CommonNames, "T4 Logs")
}

func TestEnrichEnchantSubstitutionKeepsUnknownMaterial(t *testing.T) {
	item := enrichOne(t, RawItem{
		UniqueName:     "T5_THING@1",
		LocalizedNames: map[string]string{LocaleENUS: "Rare Widget"},
	})

	assert.Contains(t, item.CommonNames, "T5.1 Widget")
	// "Widget" is not a known material, so no dropped variant.
	assert.NotContains(t, item.CommonNames, "T5.1")
}

func TestEnrichMissingLocalizationSkipsSubstitutions(t *testing.T) {
	item := enrichOne(t, RawItem{UniqueName: "T4_BAG"})

	// Only the identifier shorthands; no panic, no extra aliases.
	assert.Equal(t, []string{"T4.0 BAG", "T4 BAG"}, item.CommonNames)
}

func TestEnrichPreservesInputOrderAndFields(t *testing.T) {
	raw := []RawItem{
		{UniqueName: "T4_BAG", LocalizedNames: map[string]string{LocaleENUS: "Bag", "DE-DE": "Tasche"}},
		{UniqueName: "T5_BAG"},
	}

	items := Enrich(raw)
	require.Len(t, items, 2)
	assert.Equal(t, "T4_BAG", items[0].UniqueName)
	assert.Equal(t, "T5_BAG", items[1].UniqueName)
	assert.Equal(t, raw[0].LocalizedNames, items[0].LocalizedNames)
}

// Re-running enrichment over an already enriched catalog may re-append
// aliases (the rules read raw fields, not previous output), but it must not
// corrupt identifiers or localized names.
func TestEnrichRerunDoesNotCorrupt(t *testing.T) {
	first := Enrich([]RawItem{{
		UniqueName:     "T3_DAGGER",
		LocalizedNames: map[string]string{LocaleENUS: "Adept's Dagger"},
	}})

	again := Enrich([]RawItem{{
		UniqueName:     first[0].UniqueName,
		LocalizedNames: first[0].LocalizedNames,
	}})

	require.Len(t, again, 1)
	assert.Equal(t, first[0].UniqueName, again[0].UniqueName)
	assert.Equal(t, first[0].LocalizedNames, again[0].LocalizedNames)
	assert.Equal(t, first[0].CommonNames, again[0].CommonNames)
}

func TestEnrichNeverDeduplicates(t *testing.T) {
	// A display name already matching the shorthand output shape keeps
	// both copies; the normalizer does not dedupe.
	item := enrichOne(t, RawItem{
		UniqueName:     "T3_DAGGER",
		LocalizedNames: map[string]string{LocaleENUS: "Adept's Dagger"},
	})

	count := 0
	for _, name := range item.CommonNames {
		if name == "T3.0 Dagger" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Len(t, item.CommonNames, 4) // T3.0 DAGGER, T3 DAGGER, T3.0 Dagger, T3 Dagger
}
