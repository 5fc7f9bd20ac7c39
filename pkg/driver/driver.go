// Package driver provides the knowledge graph store behind the graph
// retrieval path. Two implementations exist: Neo4jGraph for a live
// Neo4j database and MemoryGraph for offline demos and tests.
package driver

import (
	"context"
	"fmt"

	"github.com/soundprediction/herorag/pkg/types"
)

// Pattern is one of the fixed query patterns the graph store answers.
type Pattern string

const (
	// PatternAllHeroes lists every hero node.
	PatternAllHeroes Pattern = "all_heroes"
	// PatternHeroRelationships lists every edge incident to a hero.
	PatternHeroRelationships Pattern = "hero_relationships"
	// PatternTeammates lists heroes connected to a hero by TEAMMATE edges.
	PatternTeammates Pattern = "teammates"
	// PatternTeamMembers lists heroes that are MEMBER_OF the team.
	PatternTeamMembers Pattern = "team_members"
	// PatternHeroDetails returns the full property set of one hero.
	PatternHeroDetails Pattern = "hero_details"
)

// GraphStore is the capability interface the retrieval core depends on.
// Clear and Populate are setup operations and must complete before any
// query is issued; the store does not enforce that ordering.
type GraphStore interface {
	// Clear removes all nodes and relationships.
	Clear(ctx context.Context) error

	// Populate creates the fixed superhero dataset.
	Populate(ctx context.Context) error

	// QueryPattern runs one of the fixed query patterns. Entity names the
	// hero for the per-hero patterns and is ignored otherwise. Patterns
	// that require an entity return no results when it is empty.
	QueryPattern(ctx context.Context, pattern Pattern, entity string) ([]types.GraphResult, error)

	// Export returns the full graph for visualization.
	Export(ctx context.Context) (*GraphExport, error)

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}

// ExportNode is one node of the visualization export. IDs are assigned
// by the store and are stable within a session only.
type ExportNode struct {
	ID         int64          `json:"id"`
	Labels     []string       `json:"labels"`
	Properties map[string]any `json:"properties"`
}

// ExportRelationship is one edge of the visualization export.
type ExportRelationship struct {
	Source     int64          `json:"source"`
	Target     int64          `json:"target"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
}

// GraphExport is the node/relationship dump consumed by graph renderers.
type GraphExport struct {
	Nodes         []ExportNode         `json:"nodes"`
	Relationships []ExportRelationship `json:"relationships"`
}

// UnavailableError indicates the graph store could not be reached. There
// is no fallback for missing entity data, so callers see this directly.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("graph store unavailable during %s: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support for UnavailableError.
func (e *UnavailableError) Is(target error) bool {
	_, ok := target.(*UnavailableError)
	return ok
}
