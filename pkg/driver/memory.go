package driver

import (
	"context"
	"fmt"
	"sync"

	"github.com/soundprediction/herorag/pkg/types"
)

// MemoryGraph implements GraphStore entirely in memory. It backs the
// offline demo mode and the test suite, where a live Neo4j instance is
// not available. Node ids are assigned on Populate and are not stable
// across a Clear/Populate cycle.
type MemoryGraph struct {
	mu     sync.RWMutex
	nodes  []memNode
	edges  []memEdge
	byName map[string]int64
	nextID int64
}

type memNode struct {
	id     int64
	labels []string
	props  map[string]any
}

type memEdge struct {
	source  int64
	target  int64
	relType types.RelType
}

// NewMemoryGraph creates an empty in-memory graph store.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{byName: make(map[string]int64)}
}

// Clear removes all nodes and relationships.
func (m *MemoryGraph) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nodes = nil
	m.edges = nil
	m.byName = make(map[string]int64)
	return nil
}

// Populate creates the fixed superhero dataset.
func (m *MemoryGraph) Populate(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, hero := range heroSeeds() {
		m.addNode([]string{"Hero"}, map[string]any{
			"name":      hero.Name,
			"real_name": hero.RealName,
			"powers":    hero.Powers,
			"origin":    hero.Origin,
			"team":      hero.Team,
		})
	}

	team := justiceLeagueSeed()
	m.addNode([]string{"Team"}, map[string]any{
		"name":    team.Name,
		"type":    team.Type,
		"founded": team.Founded,
	})

	for _, edge := range edgeSeeds() {
		if err := m.addEdge(edge.From, edge.To, edge.Type); err != nil {
			return err
		}
	}
	for _, hero := range heroSeeds() {
		if err := m.addEdge(hero.Name, team.Name, types.RelMemberOf); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryGraph) addNode(labels []string, props map[string]any) {
	m.nextID++
	node := memNode{id: m.nextID, labels: labels, props: props}
	m.nodes = append(m.nodes, node)
	if name, ok := props["name"].(string); ok {
		m.byName[name] = node.id
	}
}

func (m *MemoryGraph) addEdge(from, to string, relType types.RelType) error {
	source, ok := m.byName[from]
	if !ok {
		return fmt.Errorf("unknown node %q", from)
	}
	target, ok := m.byName[to]
	if !ok {
		return fmt.Errorf("unknown node %q", to)
	}
	m.edges = append(m.edges, memEdge{source: source, target: target, relType: relType})
	return nil
}

// QueryPattern runs one of the fixed query patterns.
func (m *MemoryGraph) QueryPattern(_ context.Context, pattern Pattern, entity string) ([]types.GraphResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	switch pattern {
	case PatternAllHeroes:
		return m.allHeroes(), nil
	case PatternHeroDetails:
		if entity == "" {
			return nil, nil
		}
		return m.heroDetails(entity), nil
	case PatternHeroRelationships:
		if entity == "" {
			return nil, nil
		}
		return m.heroRelationships(entity), nil
	case PatternTeammates:
		if entity == "" {
			return nil, nil
		}
		return m.teammates(entity), nil
	case PatternTeamMembers:
		return m.teamMembers(), nil
	default:
		return nil, fmt.Errorf("unknown query pattern %q", pattern)
	}
}

func (m *MemoryGraph) allHeroes() []types.GraphResult {
	results := make([]types.GraphResult, 0, len(m.nodes))
	for _, node := range m.nodes {
		if hasLabel(node, "Hero") {
			results = append(results, heroSummaryFromProps(node.props))
		}
	}
	return results
}

func (m *MemoryGraph) heroDetails(entity string) []types.GraphResult {
	var results []types.GraphResult
	for _, node := range m.nodes {
		if hasLabel(node, "Hero") && node.props["name"] == entity {
			results = append(results, heroSummaryFromProps(node.props))
		}
	}
	return results
}

func (m *MemoryGraph) heroRelationships(entity string) []types.GraphResult {
	id, ok := m.byName[entity]
	if !ok {
		return nil
	}
	var results []types.GraphResult
	for _, edge := range m.edges {
		var otherID int64
		switch id {
		case edge.source:
			otherID = edge.target
		case edge.target:
			otherID = edge.source
		default:
			continue
		}
		other, ok := m.nodeByID(otherID)
		if !ok {
			continue
		}
		results = append(results, types.RelationshipTriple{
			Hero:            entity,
			Relationship:    edge.relType,
			ConnectedTo:     propString(other.props, "name"),
			ConnectedLabels: other.labels,
		})
	}
	return results
}

func (m *MemoryGraph) teammates(entity string) []types.GraphResult {
	id, ok := m.byName[entity]
	if !ok {
		return nil
	}
	var results []types.GraphResult
	for _, edge := range m.edges {
		if edge.relType != types.RelTeammate {
			continue
		}
		var otherID int64
		switch id {
		case edge.source:
			otherID = edge.target
		case edge.target:
			otherID = edge.source
		default:
			continue
		}
		other, ok := m.nodeByID(otherID)
		if !ok || !hasLabel(other, "Hero") {
			continue
		}
		results = append(results, types.TeammatePair{
			Teammate: propString(other.props, "name"),
			RealName: propString(other.props, "real_name"),
		})
	}
	return results
}

func (m *MemoryGraph) teamMembers() []types.GraphResult {
	teamID, ok := m.byName[TeamName]
	if !ok {
		return nil
	}
	var results []types.GraphResult
	for _, edge := range m.edges {
		if edge.relType != types.RelMemberOf || edge.target != teamID {
			continue
		}
		hero, ok := m.nodeByID(edge.source)
		if !ok {
			continue
		}
		results = append(results, types.TeamMembership{
			Hero:   propString(hero.props, "name"),
			Powers: propStringSlice(hero.props, "powers"),
		})
	}
	return results
}

// Export returns the full graph for visualization.
func (m *MemoryGraph) Export(_ context.Context) (*GraphExport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	export := &GraphExport{
		Nodes:         make([]ExportNode, 0, len(m.nodes)),
		Relationships: make([]ExportRelationship, 0, len(m.edges)),
	}
	for _, node := range m.nodes {
		export.Nodes = append(export.Nodes, ExportNode{
			ID:         node.id,
			Labels:     node.labels,
			Properties: node.props,
		})
	}
	for _, edge := range m.edges {
		export.Relationships = append(export.Relationships, ExportRelationship{
			Source:     edge.source,
			Target:     edge.target,
			Type:       string(edge.relType),
			Properties: map[string]any{},
		})
	}
	return export, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryGraph) Close(_ context.Context) error {
	return nil
}

func (m *MemoryGraph) nodeByID(id int64) (memNode, bool) {
	for _, node := range m.nodes {
		if node.id == id {
			return node, true
		}
	}
	return memNode{}, false
}

func hasLabel(node memNode, label string) bool {
	for _, l := range node.labels {
		if l == label {
			return true
		}
	}
	return false
}

func heroSummaryFromProps(props map[string]any) types.HeroSummary {
	return types.HeroSummary{
		Name:     propString(props, "name"),
		RealName: propString(props, "real_name"),
		Powers:   propStringSlice(props, "powers"),
		Origin:   propString(props, "origin"),
		Team:     propString(props, "team"),
	}
}

func propString(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}

func propStringSlice(props map[string]any, key string) []string {
	s, _ := props[key].([]string)
	return s
}
