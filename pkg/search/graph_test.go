package search

import (
	"context"
	"errors"
	"testing"

	"github.com/soundprediction/herorag/pkg/driver"
	"github.com/soundprediction/herorag/pkg/types"
)

func populatedRetriever(t *testing.T) *GraphRetriever {
	t.Helper()
	graph := driver.NewMemoryGraph()
	if err := graph.Populate(context.Background()); err != nil {
		t.Fatalf("Populate() error = %v", err)
	}
	return NewGraphRetriever(graph)
}

func TestRecognizeHero(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"tell me about superman", "Superman"},
		{"who is wonder woman", "Wonder Woman"},
		{"batman's gadgets", "Batman"},
		{"how fast is flash", "Flash"},
		{"what about aquaman", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := RecognizeHero(tt.query); got != tt.want {
				t.Errorf("RecognizeHero(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestGraphSearchRelationshipIntent(t *testing.T) {
	retriever := populatedRetriever(t)

	results, err := retriever.Search(context.Background(), "Who are Superman's teammates?")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	var summaries, teammates int
	for _, r := range results {
		switch v := r.(type) {
		case types.HeroSummary:
			summaries++
			if v.Name != "Superman" {
				t.Errorf("hero summary for %q, want Superman", v.Name)
			}
		case types.TeammatePair:
			teammates++
		}
	}
	if summaries == 0 {
		t.Error("no hero summary in relationship query results")
	}
	if teammates == 0 {
		t.Error("no teammates in relationship query results")
	}
}

func TestGraphSearchDetailsOnly(t *testing.T) {
	retriever := populatedRetriever(t)

	// No relationship keywords and no who/what/about keywords: the hero
	// summary is the only result.
	results, err := retriever.Search(context.Background(), "superman powers")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if _, ok := results[0].(types.HeroSummary); !ok {
		t.Errorf("result type = %T, want HeroSummary", results[0])
	}
}

func TestGraphSearchBasicLookupShowsTeammates(t *testing.T) {
	retriever := populatedRetriever(t)

	results, err := retriever.Search(context.Background(), "Tell me about batman")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	var summaries, teammates int
	for _, r := range results {
		switch r.(type) {
		case types.HeroSummary:
			summaries++
		case types.TeammatePair:
			teammates++
		}
	}
	if summaries != 1 {
		t.Errorf("got %d hero summaries, want 1", summaries)
	}
	if teammates != basicTeammateCap {
		t.Errorf("got %d teammates, want %d", teammates, basicTeammateCap)
	}
}

func TestGraphSearchBatmanTeammates(t *testing.T) {
	retriever := populatedRetriever(t)

	results, err := retriever.Search(context.Background(), "Who are Batman's teammates?")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	names := map[string]int{}
	for _, r := range results {
		if pair, ok := r.(types.TeammatePair); ok {
			if pair.Teammate == "Batman" {
				t.Error("Batman listed as his own teammate")
			}
			names[pair.Teammate]++
		}
	}

	if len(names) != 3 {
		t.Fatalf("got %d distinct teammates %v, want 3", len(names), names)
	}
	for _, want := range []string{"Superman", "Wonder Woman", "Flash"} {
		if names[want] != 1 {
			t.Errorf("teammate %q count = %d, want 1", want, names[want])
		}
	}
}

func TestGraphSearchTeamListing(t *testing.T) {
	retriever := populatedRetriever(t)

	results, err := retriever.Search(context.Background(), "List the justice league roster")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	for _, r := range results {
		if _, ok := r.(types.TeamMembership); !ok {
			t.Errorf("result type = %T, want TeamMembership", r)
		}
	}
}

func TestGraphSearchDefaultListing(t *testing.T) {
	retriever := populatedRetriever(t)

	results, err := retriever.Search(context.Background(), "strongest heroes")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	for _, r := range results {
		if _, ok := r.(types.HeroSummary); !ok {
			t.Errorf("result type = %T, want HeroSummary", r)
		}
	}
}

func TestGraphSearchEmptyGraph(t *testing.T) {
	retriever := NewGraphRetriever(driver.NewMemoryGraph())

	results, err := retriever.Search(context.Background(), "superman powers")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results from an empty graph, want 0", len(results))
	}
}

// failingGraph fails every query to exercise error propagation.
type failingGraph struct {
	driver.MemoryGraph
}

func (f *failingGraph) QueryPattern(context.Context, driver.Pattern, string) ([]types.GraphResult, error) {
	return nil, &driver.UnavailableError{Op: "query", Err: errors.New("connection refused")}
}

func TestGraphSearchPropagatesStoreErrors(t *testing.T) {
	retriever := NewGraphRetriever(&failingGraph{})

	_, err := retriever.Search(context.Background(), "who is superman")
	if err == nil {
		t.Fatal("expected error from unreachable graph store")
	}
	if !errors.Is(err, &driver.UnavailableError{}) {
		t.Errorf("error = %v, want UnavailableError", err)
	}
}
