package driver

import (
	"context"
	"testing"

	"github.com/soundprediction/herorag/pkg/types"
)

func populatedGraph(t *testing.T) *MemoryGraph {
	t.Helper()
	g := NewMemoryGraph()
	ctx := context.Background()
	if err := g.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if err := g.Populate(ctx); err != nil {
		t.Fatalf("Populate() error = %v", err)
	}
	return g
}

func TestMemoryGraphAllHeroes(t *testing.T) {
	g := populatedGraph(t)

	results, err := g.QueryPattern(context.Background(), PatternAllHeroes, "")
	if err != nil {
		t.Fatalf("QueryPattern() error = %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d heroes, want 4", len(results))
	}

	names := map[string]bool{}
	for _, r := range results {
		hero, ok := r.(types.HeroSummary)
		if !ok {
			t.Fatalf("unexpected result type %T", r)
		}
		names[hero.Name] = true
	}
	for _, want := range []string{"Superman", "Batman", "Wonder Woman", "Flash"} {
		if !names[want] {
			t.Errorf("missing hero %q", want)
		}
	}
}

func TestMemoryGraphHeroDetails(t *testing.T) {
	g := populatedGraph(t)

	results, err := g.QueryPattern(context.Background(), PatternHeroDetails, "Superman")
	if err != nil {
		t.Fatalf("QueryPattern() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	hero := results[0].(types.HeroSummary)
	if hero.RealName != "Clark Kent" {
		t.Errorf("RealName = %q, want Clark Kent", hero.RealName)
	}
	if hero.Origin != "Krypton" {
		t.Errorf("Origin = %q, want Krypton", hero.Origin)
	}
	if hero.Team != TeamName {
		t.Errorf("Team = %q, want %q", hero.Team, TeamName)
	}
}

func TestMemoryGraphTeammates(t *testing.T) {
	g := populatedGraph(t)

	// Batman has three TEAMMATE edges: one inbound from Superman and two
	// outbound to Wonder Woman and Flash. Matching must be undirected.
	results, err := g.QueryPattern(context.Background(), PatternTeammates, "Batman")
	if err != nil {
		t.Fatalf("QueryPattern() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d teammates, want 3", len(results))
	}

	names := map[string]bool{}
	for _, r := range results {
		pair := r.(types.TeammatePair)
		if pair.Teammate == "Batman" {
			t.Error("Batman listed as his own teammate")
		}
		names[pair.Teammate] = true
	}
	for _, want := range []string{"Superman", "Wonder Woman", "Flash"} {
		if !names[want] {
			t.Errorf("missing teammate %q", want)
		}
	}
}

func TestMemoryGraphHeroRelationships(t *testing.T) {
	g := populatedGraph(t)

	// Superman: 3 TEAMMATE + 3 ALLY + 1 MEMBER_OF = 7 edges, both directions.
	results, err := g.QueryPattern(context.Background(), PatternHeroRelationships, "Superman")
	if err != nil {
		t.Fatalf("QueryPattern() error = %v", err)
	}
	if len(results) != 7 {
		t.Fatalf("got %d relationships, want 7", len(results))
	}

	var memberOf int
	for _, r := range results {
		triple := r.(types.RelationshipTriple)
		if triple.Hero != "Superman" {
			t.Errorf("Hero = %q, want Superman", triple.Hero)
		}
		if triple.Relationship == types.RelMemberOf {
			memberOf++
			if triple.ConnectedTo != TeamName {
				t.Errorf("MEMBER_OF connected to %q, want %q", triple.ConnectedTo, TeamName)
			}
		}
	}
	if memberOf != 1 {
		t.Errorf("got %d MEMBER_OF edges, want 1", memberOf)
	}
}

func TestMemoryGraphTeamMembers(t *testing.T) {
	g := populatedGraph(t)

	results, err := g.QueryPattern(context.Background(), PatternTeamMembers, "")
	if err != nil {
		t.Fatalf("QueryPattern() error = %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d members, want 4", len(results))
	}

	for _, r := range results {
		member := r.(types.TeamMembership)
		if len(member.Powers) == 0 {
			t.Errorf("member %q has no powers", member.Hero)
		}
	}
}

func TestMemoryGraphEntityRequired(t *testing.T) {
	g := populatedGraph(t)

	for _, pattern := range []Pattern{PatternHeroDetails, PatternTeammates, PatternHeroRelationships} {
		results, err := g.QueryPattern(context.Background(), pattern, "")
		if err != nil {
			t.Errorf("QueryPattern(%s, \"\") error = %v", pattern, err)
		}
		if len(results) != 0 {
			t.Errorf("QueryPattern(%s, \"\") returned %d results, want 0", pattern, len(results))
		}
	}
}

func TestMemoryGraphUnknownPattern(t *testing.T) {
	g := populatedGraph(t)

	if _, err := g.QueryPattern(context.Background(), Pattern("bogus"), ""); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

func TestMemoryGraphExport(t *testing.T) {
	g := populatedGraph(t)

	export, err := g.Export(context.Background())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if len(export.Nodes) != 5 {
		t.Errorf("got %d nodes, want 5 (4 heroes + 1 team)", len(export.Nodes))
	}
	if len(export.Relationships) != 13 {
		t.Errorf("got %d relationships, want 13 (6 TEAMMATE + 3 ALLY + 4 MEMBER_OF)", len(export.Relationships))
	}

	ids := map[int64]bool{}
	for _, node := range export.Nodes {
		if ids[node.ID] {
			t.Errorf("duplicate node id %d", node.ID)
		}
		ids[node.ID] = true
	}
	for _, rel := range export.Relationships {
		if !ids[rel.Source] || !ids[rel.Target] {
			t.Errorf("relationship %s references unknown node", rel.Type)
		}
	}
}

func TestMemoryGraphClearEmptiesResults(t *testing.T) {
	g := populatedGraph(t)
	ctx := context.Background()

	if err := g.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	results, err := g.QueryPattern(ctx, PatternAllHeroes, "")
	if err != nil {
		t.Fatalf("QueryPattern() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results after clear, want 0", len(results))
	}
}
