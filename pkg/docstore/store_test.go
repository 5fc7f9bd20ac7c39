package docstore

import (
	"errors"
	"testing"

	"github.com/soundprediction/herorag/pkg/types"
)

func TestNewRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name    string
		docs    []types.Document
		wantErr error
	}{
		{
			name: "duplicate id",
			docs: []types.Document{
				{ID: "a", Content: "first"},
				{ID: "a", Content: "second"},
			},
			wantErr: types.ErrDuplicateID,
		},
		{
			name:    "empty content",
			docs:    []types.Document{{ID: "a"}},
			wantErr: types.ErrEmptyContent,
		},
		{
			name:    "empty id",
			docs:    []types.Document{{Content: "text"}},
			wantErr: types.ErrEmptyID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.docs)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStorePreservesInsertionOrder(t *testing.T) {
	docs := []types.Document{
		{ID: "c", Content: "third"},
		{ID: "a", Content: "first"},
		{ID: "b", Content: "second"},
	}

	store, err := New(docs)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	all := store.All()
	for i, doc := range docs {
		if all[i].ID != doc.ID {
			t.Errorf("All()[%d].ID = %q, want %q", i, all[i].ID, doc.ID)
		}
	}
}

func TestSuperheroStore(t *testing.T) {
	store := NewSuperheroStore()

	if store.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", store.Len())
	}

	doc, ok := store.Get("superman_bio")
	if !ok {
		t.Fatal("superman_bio not found")
	}
	if doc.Character != "Superman" {
		t.Errorf("Character = %q, want Superman", doc.Character)
	}

	if _, ok := store.Get("aquaman_bio"); ok {
		t.Error("Get() returned a document for an unknown id")
	}
}
