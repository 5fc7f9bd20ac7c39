package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/soundprediction/herorag/pkg/driver"
	"github.com/soundprediction/herorag/pkg/types"
)

// heroAlias maps a lowercase mention to the canonical hero name.
type heroAlias struct {
	Alias     string
	Canonical string
}

// Aliases are checked longest-first so that multi-word names win over
// any name they might contain ("wonder woman" is never read as a
// mention of a hypothetical "woman" alias).
var heroAliases = []heroAlias{
	{"superman", "Superman"},
	{"batman", "Batman"},
	{"wonder woman", "Wonder Woman"},
	{"flash", "Flash"},
}

func init() {
	sort.SliceStable(heroAliases, func(i, j int) bool {
		return len(heroAliases[i].Alias) > len(heroAliases[j].Alias)
	})
}

// Intent keyword sets, matched as substrings of the lowercase query.
var (
	relationshipKeywords = []string{"teammate", "team", "ally", "friend", "relationship", "connect", "related"}
	basicKeywords        = []string{"who", "what", "about"}
	teamTriggers         = []string{"justice league", "team member"}
)

// basicTeammateCap bounds the teammates shown for basic lookups.
const basicTeammateCap = 2

// GraphRetriever maps a query to entity mentions and a query intent,
// then issues one or more pattern queries against the graph store.
// Results of multiple fetches are concatenated in fetch order with no
// deduplication. Graph store failures propagate; there is no fallback
// for missing entity data.
type GraphRetriever struct {
	graph driver.GraphStore
}

// NewGraphRetriever creates a retriever over the given graph store.
func NewGraphRetriever(graph driver.GraphStore) *GraphRetriever {
	return &GraphRetriever{graph: graph}
}

// Search retrieves graph results relevant to the query.
func (r *GraphRetriever) Search(ctx context.Context, query string) ([]types.GraphResult, error) {
	queryLower := strings.ToLower(query)

	if hero := RecognizeHero(queryLower); hero != "" {
		return r.searchHero(ctx, queryLower, hero)
	}

	if containsAny(queryLower, teamTriggers) {
		results, err := r.graph.QueryPattern(ctx, driver.PatternTeamMembers, "")
		if err != nil {
			return nil, fmt.Errorf("team member search: %w", err)
		}
		return results, nil
	}

	// No entity recognized: broad listing.
	results, err := r.graph.QueryPattern(ctx, driver.PatternAllHeroes, "")
	if err != nil {
		return nil, fmt.Errorf("hero listing: %w", err)
	}
	return results, nil
}

func (r *GraphRetriever) searchHero(ctx context.Context, queryLower, hero string) ([]types.GraphResult, error) {
	details, err := r.graph.QueryPattern(ctx, driver.PatternHeroDetails, hero)
	if err != nil {
		return nil, fmt.Errorf("hero details for %s: %w", hero, err)
	}
	results := details

	switch {
	case containsAny(queryLower, relationshipKeywords):
		teammates, err := r.graph.QueryPattern(ctx, driver.PatternTeammates, hero)
		if err != nil {
			return nil, fmt.Errorf("teammates for %s: %w", hero, err)
		}
		results = append(results, teammates...)

		relationships, err := r.graph.QueryPattern(ctx, driver.PatternHeroRelationships, hero)
		if err != nil {
			return nil, fmt.Errorf("relationships for %s: %w", hero, err)
		}
		results = append(results, relationships...)

	case containsAny(queryLower, basicKeywords):
		// Basic lookups still get a couple of teammates so the graph's
		// relational context shows up in the answer.
		teammates, err := r.graph.QueryPattern(ctx, driver.PatternTeammates, hero)
		if err != nil {
			return nil, fmt.Errorf("teammates for %s: %w", hero, err)
		}
		if len(teammates) > basicTeammateCap {
			teammates = teammates[:basicTeammateCap]
		}
		results = append(results, teammates...)
	}

	return results, nil
}

// RecognizeHero returns the canonical hero name mentioned in the
// lowercase query, or "" when none matches. Longer aliases win.
func RecognizeHero(queryLower string) string {
	for _, alias := range heroAliases {
		if strings.Contains(queryLower, alias.Alias) {
			return alias.Canonical
		}
	}
	return ""
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
