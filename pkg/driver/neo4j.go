package driver

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/soundprediction/herorag/pkg/types"
)

// Neo4jGraph implements GraphStore against a Neo4j database.
type Neo4jGraph struct {
	client   neo4j.DriverWithContext
	database string
}

// NewNeo4jGraph creates a Neo4j-backed graph store.
func NewNeo4jGraph(uri, username, password, database string) (*Neo4jGraph, error) {
	client, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if database == "" {
		database = "neo4j"
	}

	return &Neo4jGraph{
		client:   client,
		database: database,
	}, nil
}

// Clear removes all nodes and relationships.
func (n *Neo4jGraph) Clear(ctx context.Context) error {
	session := n.client.NewSession(ctx, neo4j.SessionConfig{DatabaseName: n.database})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, "MATCH (n) DETACH DELETE n", nil)
		return nil, err
	})
	if err != nil {
		return &UnavailableError{Op: "clear", Err: err}
	}
	return nil
}

// Populate creates the fixed superhero dataset.
func (n *Neo4jGraph) Populate(ctx context.Context) error {
	session := n.client.NewSession(ctx, neo4j.SessionConfig{DatabaseName: n.database})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, hero := range heroSeeds() {
			query := `
				CREATE (h:Hero {
					name: $name,
					real_name: $real_name,
					powers: $powers,
					origin: $origin,
					team: $team
				})
			`
			_, err := tx.Run(ctx, query, map[string]any{
				"name":      hero.Name,
				"real_name": hero.RealName,
				"powers":    hero.Powers,
				"origin":    hero.Origin,
				"team":      hero.Team,
			})
			if err != nil {
				return nil, err
			}
		}

		team := justiceLeagueSeed()
		_, err := tx.Run(ctx, `
			CREATE (t:Team {name: $name, type: $type, founded: $founded})
		`, map[string]any{
			"name":    team.Name,
			"type":    team.Type,
			"founded": team.Founded,
		})
		if err != nil {
			return nil, err
		}

		for _, edge := range edgeSeeds() {
			// Relationship types cannot be parameterized in Cypher; the
			// type comes from the closed RelType set, never from input.
			query := fmt.Sprintf(`
				MATCH (h1:Hero {name: $from})
				MATCH (h2:Hero {name: $to})
				CREATE (h1)-[:%s]->(h2)
			`, edge.Type)
			_, err := tx.Run(ctx, query, map[string]any{
				"from": edge.From,
				"to":   edge.To,
			})
			if err != nil {
				return nil, err
			}
		}

		for _, hero := range heroSeeds() {
			_, err := tx.Run(ctx, `
				MATCH (h:Hero {name: $name})
				MATCH (t:Team {name: $team})
				CREATE (h)-[:MEMBER_OF]->(t)
			`, map[string]any{
				"name": hero.Name,
				"team": team.Name,
			})
			if err != nil {
				return nil, err
			}
		}

		return nil, nil
	})
	if err != nil {
		return &UnavailableError{Op: "populate", Err: err}
	}
	return nil
}

// QueryPattern runs one of the fixed query patterns.
func (n *Neo4jGraph) QueryPattern(ctx context.Context, pattern Pattern, entity string) ([]types.GraphResult, error) {
	var query string
	params := map[string]any{}

	switch pattern {
	case PatternAllHeroes:
		query = `
			MATCH (h:Hero)
			RETURN h.name as name, h.real_name as real_name, h.powers as powers,
			       h.origin as origin, h.team as team
		`
	case PatternHeroRelationships:
		if entity == "" {
			return nil, nil
		}
		query = `
			MATCH (h:Hero {name: $entity})-[r]-(connected)
			RETURN h.name as hero, type(r) as relationship,
			       connected.name as connected_to, labels(connected) as connected_type
		`
		params["entity"] = entity
	case PatternTeammates:
		if entity == "" {
			return nil, nil
		}
		query = `
			MATCH (h:Hero {name: $entity})-[:TEAMMATE]-(teammate:Hero)
			RETURN teammate.name as teammate, teammate.real_name as real_name
		`
		params["entity"] = entity
	case PatternTeamMembers:
		query = `
			MATCH (h:Hero)-[:MEMBER_OF]->(t:Team {name: $team})
			RETURN h.name as hero, h.powers as powers
		`
		params["team"] = TeamName
	case PatternHeroDetails:
		if entity == "" {
			return nil, nil
		}
		query = `
			MATCH (h:Hero {name: $entity})
			RETURN h.name as name, h.real_name as real_name, h.powers as powers,
			       h.origin as origin, h.team as team
		`
		params["entity"] = entity
	default:
		return nil, fmt.Errorf("unknown query pattern %q", pattern)
	}

	records, err := n.readRecords(ctx, query, params)
	if err != nil {
		return nil, &UnavailableError{Op: string(pattern), Err: err}
	}

	results := make([]types.GraphResult, 0, len(records))
	for _, record := range records {
		switch pattern {
		case PatternAllHeroes, PatternHeroDetails:
			results = append(results, heroSummaryFromRecord(record))
		case PatternHeroRelationships:
			results = append(results, relationshipFromRecord(record))
		case PatternTeammates:
			results = append(results, teammateFromRecord(record))
		case PatternTeamMembers:
			results = append(results, membershipFromRecord(record))
		}
	}
	return results, nil
}

// Export returns the full graph for visualization.
func (n *Neo4jGraph) Export(ctx context.Context) (*GraphExport, error) {
	nodeRecords, err := n.readRecords(ctx, `
		MATCH (n)
		RETURN id(n) as id, labels(n) as labels, properties(n) as props
	`, nil)
	if err != nil {
		return nil, &UnavailableError{Op: "export nodes", Err: err}
	}

	export := &GraphExport{
		Nodes:         make([]ExportNode, 0, len(nodeRecords)),
		Relationships: []ExportRelationship{},
	}
	for _, record := range nodeRecords {
		export.Nodes = append(export.Nodes, ExportNode{
			ID:         recordInt64(record, "id"),
			Labels:     recordStringSlice(record, "labels"),
			Properties: recordMap(record, "props"),
		})
	}

	relRecords, err := n.readRecords(ctx, `
		MATCH (a)-[r]->(b)
		RETURN id(a) as source, id(b) as target, type(r) as type, properties(r) as props
	`, nil)
	if err != nil {
		return nil, &UnavailableError{Op: "export relationships", Err: err}
	}
	for _, record := range relRecords {
		export.Relationships = append(export.Relationships, ExportRelationship{
			Source:     recordInt64(record, "source"),
			Target:     recordInt64(record, "target"),
			Type:       recordString(record, "type"),
			Properties: recordMap(record, "props"),
		})
	}

	return export, nil
}

// Close releases the underlying connection.
func (n *Neo4jGraph) Close(ctx context.Context) error {
	return n.client.Close(ctx)
}

func (n *Neo4jGraph) readRecords(ctx context.Context, query string, params map[string]any) ([]*db.Record, error) {
	session := n.client.NewSession(ctx, neo4j.SessionConfig{DatabaseName: n.database})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, err
	}

	records, ok := result.([]*db.Record)
	if !ok {
		return nil, fmt.Errorf("unexpected result type %T", result)
	}
	return records, nil
}

func heroSummaryFromRecord(record *db.Record) types.HeroSummary {
	return types.HeroSummary{
		Name:     recordString(record, "name"),
		RealName: recordString(record, "real_name"),
		Powers:   recordStringSlice(record, "powers"),
		Origin:   recordString(record, "origin"),
		Team:     recordString(record, "team"),
	}
}

func relationshipFromRecord(record *db.Record) types.RelationshipTriple {
	return types.RelationshipTriple{
		Hero:            recordString(record, "hero"),
		Relationship:    types.RelType(recordString(record, "relationship")),
		ConnectedTo:     recordString(record, "connected_to"),
		ConnectedLabels: recordStringSlice(record, "connected_type"),
	}
}

func teammateFromRecord(record *db.Record) types.TeammatePair {
	return types.TeammatePair{
		Teammate: recordString(record, "teammate"),
		RealName: recordString(record, "real_name"),
	}
}

func membershipFromRecord(record *db.Record) types.TeamMembership {
	return types.TeamMembership{
		Hero:   recordString(record, "hero"),
		Powers: recordStringSlice(record, "powers"),
	}
}
