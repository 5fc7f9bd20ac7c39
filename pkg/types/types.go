package types

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors
var (
	ErrEmptyID      = errors.New("id cannot be empty")
	ErrEmptyContent = errors.New("content cannot be empty")
	ErrDuplicateID  = errors.New("duplicate document id")
)

// Mode identifies which retrieval strategy produced a result.
type Mode string

const (
	// ModeTraditional is keyword-scored retrieval over the document corpus.
	ModeTraditional Mode = "traditional"
	// ModeGraph is pattern-based retrieval over the knowledge graph.
	ModeGraph Mode = "graph"
)

// ContextItem is any retrieved item that can be rendered into the prompt
// context sent to the language model. Both scored documents and graph
// results implement it.
type ContextItem interface {
	// ContextLine returns a single human-readable line for the LLM prompt.
	ContextLine() string

	// Content returns the raw content used by the fallback answer path.
	Content() string
}

// Document is one entry in the fixed corpus.
type Document struct {
	ID        string `json:"id" mapstructure:"id"`
	Title     string `json:"title" mapstructure:"title"`
	Content   string `json:"content" mapstructure:"content"`
	Character string `json:"character,omitempty" mapstructure:"character"`
}

// Validate checks if the Document has all required fields set.
func (d *Document) Validate() error {
	if d.ID == "" {
		return ErrEmptyID
	}
	if d.Content == "" {
		return ErrEmptyContent
	}
	return nil
}

// ScoredDocument is a Document plus the relevance weight assigned by the
// keyword retriever. Similarity is the raw overlap score divided by 10 and
// is not clamped, so a document matching many query words can exceed 1.0.
type ScoredDocument struct {
	Document
	Similarity float64 `json:"similarity"`
}

// ContextLine implements ContextItem.
func (d ScoredDocument) ContextLine() string {
	return fmt.Sprintf("[%s] (relevance: %.2f) %s", d.Title, d.Similarity, d.Document.Content)
}

// Content implements ContextItem.
func (d ScoredDocument) Content() string {
	return d.Document.Content
}

// RelType is the closed set of relationship types in the superhero graph.
type RelType string

const (
	RelTeammate RelType = "TEAMMATE"
	RelAlly     RelType = "ALLY"
	RelMemberOf RelType = "MEMBER_OF"
)

// Answer is the envelope returned by the answer generator. Method records
// which path produced the text: "<mode>_llm" for genuine model output,
// "<mode>_fallback" when the backend failed and the answer was synthesized
// from the retrieved context, and "<mode>_simple" when no backend is
// configured at all.
type Answer struct {
	Text      string        `json:"answer"`
	Retrieved []ContextItem `json:"retrieved_docs"`
	Method    string        `json:"method"`
}

func joinPowers(powers []string) string {
	return strings.Join(powers, ", ")
}
