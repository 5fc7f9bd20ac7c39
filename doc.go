// Package herorag is a comparative retrieval-augmented generation demo
// over a small fixed superhero domain. It contrasts two retrieval
// strategies feeding one answer generator:
//
//   - Traditional RAG: keyword-overlap scoring over five fixed
//     biography documents.
//   - Graph RAG: entity recognition and pattern queries over a Neo4j
//     (or in-memory) knowledge graph of heroes and their relationships.
//
// The answer generator sends the retrieved context to the first
// configured language-model backend (OpenAI, Groq, or a local Ollama
// server) and degrades gracefully: backend failures produce a fallback
// answer built from the retrieved context, and with no backend
// configured answers are deterministic concatenations of the context.
// The Method tag on every Answer records which path produced it.
package herorag
