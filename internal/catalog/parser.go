package catalog

import (
	"regexp"
	"strconv"
)

// Defaults applied when an identifier (or one of its numeric parts) does not
// parse. Tier 1 / enchant 0 is the plainest form an item can take.
const (
	DefaultTier    = 1
	DefaultEnchant = 0
)

// identifierPattern matches identifiers shaped T<tier>_<NAME> with an
// optional @<enchant> suffix, e.g. "T4_ADEPTS_DAGGER@1".
var identifierPattern = regexp.MustCompile(`(?:T(\d))_(\w+)(?:@(\d))?`)

// ParsedIdentifier is the structured form of an item identifier. It only
// exists transiently during alias generation and is never persisted.
type ParsedIdentifier struct {
	Tier     int
	BaseName string
	Enchant  int
}

// ParseIdentifier extracts tier, base name and enchant level from a raw item
// identifier. Identifiers that don't match the expected shape yield the whole
// input as base name with default tier and enchant, so unknown formats still
// produce something searchable. ParseIdentifier never fails.
func ParseIdentifier(uniqueID string) ParsedIdentifier {
	m := identifierPattern.FindStringSubmatch(uniqueID)
	if m == nil {
		return ParsedIdentifier{Tier: DefaultTier, BaseName: uniqueID, Enchant: DefaultEnchant}
	}
	return ParsedIdentifier{
		Tier:     atoiOr(m[1], DefaultTier),
		BaseName: m[2],
		Enchant:  atoiOr(m[3], DefaultEnchant),
	}
}

// atoiOr parses s as an integer, falling back instead of failing. Tier and
// enchant fall back independently of each other.
func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
