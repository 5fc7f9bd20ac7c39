package herorag

import (
	"context"

	"github.com/soundprediction/herorag/pkg/driver"
	"github.com/soundprediction/herorag/pkg/nlp"
	"github.com/soundprediction/herorag/pkg/types"
)

// Focused interfaces for consumers that need only part of the client.
// The HeroRAG interface composes them; depend on the smallest one that
// meets your needs.

// DocumentSearcher provides keyword retrieval over the document corpus.
type DocumentSearcher interface {
	// SearchDocuments returns the topK highest-scoring documents.
	SearchDocuments(query string, topK int) []types.ScoredDocument
}

// GraphSearcher provides pattern retrieval over the knowledge graph.
type GraphSearcher interface {
	// SearchGraph retrieves graph results relevant to the query. Graph
	// store failures propagate; there is no retrieval fallback.
	SearchGraph(ctx context.Context, query string) ([]types.GraphResult, error)
}

// Answerer provides the full retrieve-and-generate surface consumed by
// UIs. Answers never fail on backend errors; the Method tag records
// the path taken.
type Answerer interface {
	// AnswerTraditional retrieves with keyword scoring and generates an
	// answer. topK <= 0 uses the default.
	AnswerTraditional(ctx context.Context, query string, topK int) types.Answer

	// AnswerGraph retrieves with graph patterns and generates an answer.
	// The error is non-nil only when the graph store is unreachable.
	AnswerGraph(ctx context.Context, query string) (types.Answer, error)
}

// GraphAdmin provides graph setup and visualization export.
type GraphAdmin interface {
	// Seed clears the graph and recreates the fixed dataset. It must
	// complete before graph queries are issued.
	Seed(ctx context.Context) error

	// ExportGraph returns the full graph for visualization.
	ExportGraph(ctx context.Context) (*driver.GraphExport, error)
}

// StatusReporter exposes backend status for UI panels.
type StatusReporter interface {
	// Ready reports whether a language-model backend is configured.
	Ready() bool

	// Describe reports the selected backend kind and model.
	Describe() nlp.Description
}

// HeroRAG composes the full client surface.
type HeroRAG interface {
	DocumentSearcher
	GraphSearcher
	Answerer
	GraphAdmin
	StatusReporter

	// Close releases the graph connection and backend resources.
	Close(ctx context.Context) error
}

var _ HeroRAG = (*Client)(nil)
