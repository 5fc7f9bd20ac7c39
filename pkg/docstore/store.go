// Package docstore holds the in-memory document corpus used by the
// traditional retrieval path. Documents are loaded in bulk at startup
// and are immutable afterwards.
package docstore

import (
	"fmt"

	"github.com/soundprediction/herorag/pkg/types"
)

// Store is an ordered, read-only collection of documents. Insertion
// order is preserved and is the tie-break order for search results.
type Store struct {
	docs []types.Document
	byID map[string]int
}

// New creates a store from the given documents. Every document must
// validate and ids must be unique.
func New(docs []types.Document) (*Store, error) {
	s := &Store{
		docs: make([]types.Document, 0, len(docs)),
		byID: make(map[string]int, len(docs)),
	}
	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			return nil, fmt.Errorf("invalid document %q: %w", doc.ID, err)
		}
		if _, exists := s.byID[doc.ID]; exists {
			return nil, fmt.Errorf("document %q: %w", doc.ID, types.ErrDuplicateID)
		}
		s.byID[doc.ID] = len(s.docs)
		s.docs = append(s.docs, doc)
	}
	return s, nil
}

// All returns the documents in insertion order. The returned slice is
// shared; callers must not modify it.
func (s *Store) All() []types.Document {
	return s.docs
}

// Get returns the document with the given id.
func (s *Store) Get(id string) (types.Document, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return types.Document{}, false
	}
	return s.docs[idx], true
}

// Len returns the number of documents in the store.
func (s *Store) Len() int {
	return len(s.docs)
}
