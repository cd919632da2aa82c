package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/tOgg1/hue/internal/models"
)

// Match is a fuzzy search hit.
type Match struct {
	Scheme         models.ColorScheme
	Score          int
	MatchedIndexes []int
}

type schemeSource []models.ColorScheme

func (s schemeSource) String(i int) string { return s[i].Name }
func (s schemeSource) Len() int            { return len(s) }

// Find ranks schemes whose names fuzzily match query, best first.
// An empty query returns every scheme in catalog order. A case-insensitive exact name match
// always ranks first.
func Find(schemes []models.ColorScheme, query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]Match, len(schemes))
		for i, cs := range schemes {
			out[i] = Match{Scheme: cs}
		}
		return out
	}

	results := fuzzy.FindFrom(query, schemeSource(schemes))
	out := make([]Match, 0, len(results))
	for _, r := range results {
		m := Match{
			Scheme:         schemes[r.Index],
			Score:          r.Score,
			MatchedIndexes: r.MatchedIndexes,
		}
		if strings.EqualFold(m.Scheme.Name, query) {
			out = append([]Match{m}, out...)
			continue
		}
		out = append(out, m)
	}
	return out
}

// Resolve returns the scheme best matching query, preferring exact names.
func Resolve(schemes []models.ColorScheme, query string) (models.ColorScheme, bool) {
	for _, cs := range schemes {
		if cs.Name == query {
			return cs, true
		}
	}
	matches := Find(schemes, query)
	if len(matches) == 0 || strings.TrimSpace(query) == "" {
		return models.ColorScheme{}, false
	}
	return matches[0].Scheme, true
}
