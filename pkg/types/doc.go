// Package types defines the core data structures shared across the
// herorag retrieval and answer-generation pipeline: documents scored by
// the keyword retriever, the tagged set of graph query results produced
// by the graph retriever, and the Answer envelope returned to callers.
package types
