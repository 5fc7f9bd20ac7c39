package herorag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/soundprediction/herorag/pkg/answer"
	"github.com/soundprediction/herorag/pkg/config"
	"github.com/soundprediction/herorag/pkg/docstore"
	"github.com/soundprediction/herorag/pkg/driver"
	"github.com/soundprediction/herorag/pkg/logger"
	"github.com/soundprediction/herorag/pkg/nlp"
	"github.com/soundprediction/herorag/pkg/search"
	"github.com/soundprediction/herorag/pkg/types"
)

// DefaultTopK bounds traditional retrieval when the caller passes no
// explicit limit.
const DefaultTopK = 5

// Client wires the document store, graph store, retrievers, and answer
// generator together. Construct it with New, or assemble the pieces
// from pkg/ directly for finer control.
type Client struct {
	log     *slog.Logger
	docs    *docstore.Store
	graph   driver.GraphStore
	keyword *search.KeywordRetriever
	pattern *search.GraphRetriever
	backend nlp.Client // nil when no backend is configured
	gen     *answer.Generator
}

// Options overrides parts of the default construction.
type Options struct {
	// Graph replaces the config-driven graph store, e.g. with a
	// MemoryGraph for offline runs.
	Graph driver.GraphStore

	// Backend replaces backend detection, e.g. with answer.NewMockClient.
	Backend nlp.Client

	// Logger replaces the config-driven logger.
	Logger *slog.Logger
}

// New creates a client from the configuration. Backend selection
// happens here, once: the first configured backend wins and is kept
// for the client's lifetime. A missing backend is not an error; the
// client runs in simple mode.
func New(cfg *config.Config, opts *Options) (*Client, error) {
	if opts == nil {
		opts = &Options{}
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewLogger(cfg.Log.Level, cfg.Log.Format)
	}

	docs := docstore.NewSuperheroStore()
	log.Info("Documents loaded", "count", docs.Len())

	graph := opts.Graph
	if graph == nil {
		var err error
		graph, err = newGraphStore(cfg.Graph)
		if err != nil {
			return nil, fmt.Errorf("failed to create graph store: %w", err)
		}
	}

	backend := opts.Backend
	if backend == nil {
		var err error
		backend, err = nlp.Detect(cfg.LLM)
		switch {
		case errors.Is(err, nlp.ErrNoBackend):
			log.Warn("No LLM backend configured, answers will use simple mode")
			backend = nil
		case err != nil:
			return nil, err
		default:
			desc := backend.Describe()
			log.Info("Backend configured", "backend", desc.Backend, "model", desc.Model)
			if cfg.CircuitBreaker.Enabled {
				backend = nlp.NewCircuitBreakerClient(backend, cfg.CircuitBreaker, log, desc.Backend)
			}
		}
	}

	return &Client{
		log:     log,
		docs:    docs,
		graph:   graph,
		keyword: search.NewKeywordRetriever(docs),
		pattern: search.NewGraphRetriever(graph),
		backend: backend,
		gen:     answer.NewGenerator(backend, log),
	}, nil
}

func newGraphStore(cfg config.GraphConfig) (driver.GraphStore, error) {
	switch cfg.Driver {
	case "memory":
		return driver.NewMemoryGraph(), nil
	case "", "neo4j":
		return driver.NewNeo4jGraph(cfg.URI, cfg.Username, cfg.Password, cfg.Database)
	default:
		return nil, fmt.Errorf("unknown graph driver %q", cfg.Driver)
	}
}

// SearchDocuments implements DocumentSearcher.
func (c *Client) SearchDocuments(query string, topK int) []types.ScoredDocument {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return c.keyword.Search(query, topK)
}

// SearchGraph implements GraphSearcher.
func (c *Client) SearchGraph(ctx context.Context, query string) ([]types.GraphResult, error) {
	return c.pattern.Search(ctx, query)
}

// AnswerTraditional implements Answerer.
func (c *Client) AnswerTraditional(ctx context.Context, query string, topK int) types.Answer {
	docs := c.SearchDocuments(query, topK)
	items := make([]types.ContextItem, len(docs))
	for i, doc := range docs {
		items[i] = doc
	}
	return c.gen.Generate(ctx, items, query, types.ModeTraditional)
}

// AnswerGraph implements Answerer.
func (c *Client) AnswerGraph(ctx context.Context, query string) (types.Answer, error) {
	results, err := c.pattern.Search(ctx, query)
	if err != nil {
		return types.Answer{}, err
	}
	items := make([]types.ContextItem, len(results))
	for i, r := range results {
		items[i] = r
	}
	return c.gen.Generate(ctx, items, query, types.ModeGraph), nil
}

// Seed implements GraphAdmin.
func (c *Client) Seed(ctx context.Context) error {
	if err := c.graph.Clear(ctx); err != nil {
		return err
	}
	if err := c.graph.Populate(ctx); err != nil {
		return err
	}
	c.log.Info("Graph populated", "heroes", 4, "team", driver.TeamName)
	return nil
}

// ExportGraph implements GraphAdmin.
func (c *Client) ExportGraph(ctx context.Context) (*driver.GraphExport, error) {
	return c.graph.Export(ctx)
}

// Ready implements StatusReporter.
func (c *Client) Ready() bool {
	return c.backend != nil
}

// Describe implements StatusReporter.
func (c *Client) Describe() nlp.Description {
	if c.backend == nil {
		return nlp.NotConfigured()
	}
	return c.backend.Describe()
}

// Close implements HeroRAG.
func (c *Client) Close(ctx context.Context) error {
	var errs []error
	if c.backend != nil {
		if err := c.backend.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := c.graph.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
