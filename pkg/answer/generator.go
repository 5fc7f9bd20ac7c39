// Package answer builds prompt context from retrieved items, dispatches
// to the selected language-model backend, and synthesizes deterministic
// answers when no backend is configured or the backend call fails.
package answer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/soundprediction/herorag/pkg/nlp"
	"github.com/soundprediction/herorag/pkg/types"
)

// Context caps. The LLM prompt carries up to five retrieved items; the
// simple no-backend answer lists up to three.
const (
	promptContextCap = 5
	simpleContextCap = 3
)

// SystemPrompt grounds the model in the superhero domain.
const SystemPrompt = "You are a helpful assistant that answers questions about superheroes " +
	"based on the provided context. Always use the specific information from the context in your response."

// Generator turns retrieved items and a query into an Answer. A nil
// backend client puts the generator in simple mode, where answers are
// deterministic concatenations of the retrieved context.
type Generator struct {
	client nlp.Client
	log    *slog.Logger
}

// NewGenerator creates a generator. Client may be nil.
func NewGenerator(client nlp.Client, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{client: client, log: log}
}

// Generate produces an answer for the query from the retrieved items.
// It never returns an error: backend failures are converted into
// fallback answers and the Method tag records which path ran.
func (g *Generator) Generate(ctx context.Context, retrieved []types.ContextItem, query string, mode types.Mode) types.Answer {
	if g.client == nil {
		return g.simpleAnswer(retrieved, mode)
	}

	prompt := BuildPrompt(BuildContext(retrieved), query)

	text, err := g.client.Generate(ctx, SystemPrompt, prompt)
	if err != nil {
		return g.fallbackAnswer(err, retrieved, mode)
	}

	g.log.Info("Answer generated", "mode", mode, "retrieved", len(retrieved))
	return types.Answer{
		Text:      strings.TrimSpace(text),
		Retrieved: retrieved,
		Method:    string(mode) + "_llm",
	}
}

// fallbackAnswer is the single site where backend errors are absorbed.
// The caller still sees which path ran through the Method tag.
func (g *Generator) fallbackAnswer(err error, retrieved []types.ContextItem, mode types.Mode) types.Answer {
	g.log.Warn("Backend call failed, using fallback answer", "mode", mode, "error", err)

	text := fmt.Sprintf("LLM Error: %v.", err)
	if len(retrieved) > 0 {
		text += " Fallback: " + retrieved[0].Content()
	} else {
		text += " No information found."
	}

	return types.Answer{
		Text:      text,
		Retrieved: retrieved,
		Method:    string(mode) + "_fallback",
	}
}

func (g *Generator) simpleAnswer(retrieved []types.ContextItem, mode types.Mode) types.Answer {
	if len(retrieved) == 0 {
		return types.Answer{
			Text:      noInfoMessage(mode),
			Retrieved: []types.ContextItem{},
			Method:    string(mode) + "_simple",
		}
	}

	var b strings.Builder
	if mode == types.ModeGraph {
		b.WriteString("Based on the knowledge graph:\n\n")
	} else {
		b.WriteString("Based on the available information:\n\n")
	}

	for i, item := range retrieved {
		if i >= simpleContextCap {
			break
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, simpleLine(item))
	}

	return types.Answer{
		Text:      b.String(),
		Retrieved: retrieved,
		Method:    string(mode) + "_simple",
	}
}

func simpleLine(item types.ContextItem) string {
	if doc, ok := item.(types.ScoredDocument); ok {
		return fmt.Sprintf("%s: %s", doc.Title, doc.Document.Content)
	}
	return item.ContextLine()
}

func noInfoMessage(mode types.Mode) string {
	if mode == types.ModeGraph {
		return "No relevant information found in the knowledge graph."
	}
	return "No relevant information found."
}

// BuildContext renders up to promptContextCap retrieved items as one
// context block, one line per item.
func BuildContext(retrieved []types.ContextItem) string {
	if len(retrieved) == 0 {
		return "No relevant information found."
	}

	lines := make([]string, 0, promptContextCap)
	for i, item := range retrieved {
		if i >= promptContextCap {
			break
		}
		lines = append(lines, item.ContextLine())
	}
	return strings.Join(lines, "\n\n")
}

// BuildPrompt embeds the context block and the query into the single
// instruction prompt sent as the user message.
func BuildPrompt(contextBlock, query string) string {
	return fmt.Sprintf(`Answer the question based on the provided context. Use specific details from the context in your response.

CONTEXT INFORMATION:
%s

QUESTION: %s

INSTRUCTIONS:
- Answer based on the context provided
- Include specific details like names, powers, relationships when available
- Be concise but informative
- If the context doesn't contain the answer, say so clearly`, contextBlock, query)
}
