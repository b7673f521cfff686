// Package search ranks catalog items by textual similarity to free-text
// user input, so "t4 bag", "adepts dagger" or a misspelled identifier all
// resolve to catalog entries.
package search

import (
	"errors"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/albie-bot/albie/internal/catalog"
)

// DefaultTopK is the candidate count used when the caller passes topK <= 0:
// one primary match plus three suggestions.
const DefaultTopK = 4

// maxDistance is contributed for fields an item is missing entirely.
const maxDistance = 1.0

// Sentinel errors for match preconditions.
var (
	// ErrEmptyCatalog means matching ran against zero items. Returning an
	// empty result would be misleading, so this is a hard failure.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrEmptyQuery means the query was empty or whitespace-only. Every
	// item would be equally maximally distant, so the query is rejected.
	ErrEmptyQuery = errors.New("query is empty")
)

// Candidate is one scored match. Index refers into the catalog slice the
// query ran against. Distance is 0 for identical strings (after
// lowercasing) and 1 for no resemblance.
type Candidate struct {
	Index    int
	Distance float64
}

// Match ranks items by similarity to query and returns the topK best
// candidates, closest first.
//
// Every searchable field contributes an independent candidate: the item
// identifier, the closest localized name, and each generated common name.
// The result is the top of that flat multiset, so a single item may appear
// more than once when several of its fields score well. Suggestion lists
// rely on that; do not collapse candidates per item.
//
// Match never mutates items and is safe for concurrent callers over the
// same catalog snapshot.
func Match(query string, items []catalog.Item, topK int) ([]Candidate, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	q := strings.ToLower(query)

	// Identifier and localized-name contributions plus one per common name.
	candidates := make([]Candidate, 0, len(items)*3)
	for i := range items {
		item := &items[i]
		candidates = append(candidates,
			Candidate{Index: i, Distance: identifierDistance(q, item)},
			Candidate{Index: i, Distance: localizedDistance(q, item)})
		for _, name := range item.CommonNames {
			candidates = append(candidates,
				Candidate{Index: i, Distance: distance(q, strings.ToLower(name))})
		}
	}

	// Stable sort: ties keep insertion order, which is ascending item index
	// with a fixed field order per item. Repeated queries therefore return
	// identical output.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Distance < candidates[b].Distance
	})

	if topK > len(candidates) {
		topK = len(candidates)
	}
	return candidates[:topK], nil
}

func identifierDistance(q string, item *catalog.Item) float64 {
	if item.UniqueName == "" {
		return maxDistance
	}
	return distance(q, strings.ToLower(item.UniqueName))
}

// localizedDistance returns the closest distance across every localization.
// Items without localized names contribute the maximal distance instead of
// being skipped. Taking the minimum makes map iteration order irrelevant.
func localizedDistance(q string, item *catalog.Item) float64 {
	best := maxDistance
	for _, name := range item.LocalizedNames {
		if d := distance(q, strings.ToLower(name)); d < best {
			best = d
		}
	}
	return best
}

// distance is 1 - SequenceMatcher ratio between two lowercased strings,
// compared character-wise.
func distance(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return 1 - m.Ratio()
}
