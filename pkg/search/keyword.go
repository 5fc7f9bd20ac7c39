// Package search implements the two retrieval strategies of the demo:
// keyword-overlap scoring over the document corpus and pattern-based
// traversal over the knowledge graph.
package search

import (
	"sort"
	"strings"

	"github.com/soundprediction/herorag/pkg/docstore"
	"github.com/soundprediction/herorag/pkg/types"
)

// Scoring weights. A title hit counts double a content hit, and a
// character-name mention in the query is worth five content hits.
const (
	titleWeight    = 2
	characterBonus = 5
	scoreDivisor   = 10.0
)

// KeywordRetriever scores documents against a query by word overlap.
// It has no side effects and is safe for concurrent use.
type KeywordRetriever struct {
	store *docstore.Store
}

// NewKeywordRetriever creates a retriever over the given store.
func NewKeywordRetriever(store *docstore.Store) *KeywordRetriever {
	return &KeywordRetriever{store: store}
}

// Search returns the topK highest-scoring documents for the query.
// Documents with zero overlap are dropped. Results are sorted by
// descending similarity; ties keep the store's insertion order.
func (r *KeywordRetriever) Search(query string, topK int) []types.ScoredDocument {
	if topK <= 0 {
		return nil
	}

	queryLower := strings.ToLower(query)
	queryWords := wordSet(queryLower)

	var scored []types.ScoredDocument
	for _, doc := range r.store.All() {
		contentOverlap := overlap(queryWords, wordSet(strings.ToLower(doc.Content)))
		titleOverlap := overlap(queryWords, wordSet(strings.ToLower(doc.Title))) * titleWeight

		characterMatch := 0
		if doc.Character != "" && strings.Contains(queryLower, strings.ToLower(doc.Character)) {
			characterMatch = characterBonus
		}

		total := contentOverlap + titleOverlap + characterMatch
		if total == 0 {
			continue
		}

		scored = append(scored, types.ScoredDocument{
			Document:   doc,
			Similarity: float64(total) / scoreDivisor,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}

func wordSet(s string) map[string]struct{} {
	words := strings.Fields(s)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for w := range a {
		if _, ok := b[w]; ok {
			count++
		}
	}
	return count
}
