package catalog

// LocaleENUS is the locale the alias substitution rules read display names from.
const LocaleENUS = "EN-US"

// RawItem is a single entry of the ao-bin-dumps formatted item dump.
// The dump carries more fields per item; everything beyond the identifier
// and the localized names is irrelevant here and dropped on decode.
type RawItem struct {
	UniqueName     string            `json:"UniqueName"`
	LocalizedNames map[string]string `json:"LocalizedNames"`
}

// Item is one searchable catalog entry: the raw identifier and localized
// names plus the generated common-name aliases. Items are built once per
// catalog refresh and treated as read-only afterwards.
type Item struct {
	UniqueName     string            `json:"UniqueName"`
	LocalizedNames map[string]string `json:"LocalizedNames"`
	CommonNames    []string          `json:"CommonNames"`
}

// DisplayName returns the EN-US display name, falling back to the raw
// identifier for items the dump ships without localization.
func (it Item) DisplayName() string {
	if name, ok := it.LocalizedNames[LocaleENUS]; ok && name != "" {
		return name
	}
	return it.UniqueName
}
