package types

import (
	"fmt"
	"strings"
)

// GraphResult is the tagged union of records a graph pattern query can
// return. The variants are closed: a consumer switching over them covers
// every shape the graph retriever produces.
type GraphResult interface {
	ContextItem
	graphResult()
}

// HeroSummary is the full property set of a single hero node.
type HeroSummary struct {
	Name     string   `json:"name"`
	RealName string   `json:"real_name"`
	Powers   []string `json:"powers"`
	Origin   string   `json:"origin"`
	Team     string   `json:"team"`
}

func (HeroSummary) graphResult() {}

// ContextLine implements ContextItem.
func (h HeroSummary) ContextLine() string {
	return "[HERO] " + h.Content()
}

// Content implements ContextItem.
func (h HeroSummary) Content() string {
	var b strings.Builder
	b.WriteString(h.Name)
	if h.RealName != "" {
		fmt.Fprintf(&b, " (real name: %s)", h.RealName)
	}
	if len(h.Powers) > 0 {
		fmt.Fprintf(&b, " has powers: %s", joinPowers(h.Powers))
	}
	if h.Origin != "" {
		fmt.Fprintf(&b, ", from %s", h.Origin)
	}
	if h.Team != "" {
		fmt.Fprintf(&b, ", member of %s", h.Team)
	}
	return b.String()
}

// RelationshipTriple is one edge incident to a hero, in either direction.
type RelationshipTriple struct {
	Hero            string   `json:"hero"`
	Relationship    RelType  `json:"relationship"`
	ConnectedTo     string   `json:"connected_to"`
	ConnectedLabels []string `json:"connected_type"`
}

func (RelationshipTriple) graphResult() {}

// ContextLine implements ContextItem.
func (r RelationshipTriple) ContextLine() string {
	return "[RELATIONSHIP] " + r.Content()
}

// Content implements ContextItem.
func (r RelationshipTriple) Content() string {
	if r.Relationship == RelMemberOf {
		return fmt.Sprintf("%s is a member of %s", r.Hero, r.ConnectedTo)
	}
	return fmt.Sprintf("%s and %s are %s", r.Hero, r.ConnectedTo, r.Relationship)
}

// TeammatePair names one teammate of the queried hero.
type TeammatePair struct {
	Teammate string `json:"teammate"`
	RealName string `json:"real_name"`
}

func (TeammatePair) graphResult() {}

// ContextLine implements ContextItem.
func (t TeammatePair) ContextLine() string {
	return "[TEAMMATE] " + t.Content()
}

// Content implements ContextItem.
func (t TeammatePair) Content() string {
	if t.RealName != "" {
		return fmt.Sprintf("%s (real name: %s) is a teammate", t.Teammate, t.RealName)
	}
	return fmt.Sprintf("%s is a teammate", t.Teammate)
}

// TeamMembership is one row of the full team-member listing.
type TeamMembership struct {
	Hero   string   `json:"hero"`
	Powers []string `json:"powers"`
}

func (TeamMembership) graphResult() {}

// ContextLine implements ContextItem.
func (m TeamMembership) ContextLine() string {
	return "[MEMBER] " + m.Content()
}

// Content implements ContextItem.
func (m TeamMembership) Content() string {
	if len(m.Powers) > 0 {
		return fmt.Sprintf("%s is a team member with powers: %s", m.Hero, joinPowers(m.Powers))
	}
	return fmt.Sprintf("%s is a team member", m.Hero)
}
