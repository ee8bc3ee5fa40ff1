package store

import (
	"context"

	"github.com/phrazzld/volunteer-api/internal/domain"
)

// Document is the complete persisted state: both entity collections,
// each in insertion order. It is the single source of truth; the
// registry's in-memory copy and the persisted form must be identical
// after every successful mutation.
type Document struct {
	Users      []domain.User     `json:"users"`
	Activities []domain.Activity `json:"activities"`
}

// NewDocument returns an empty document with both collections
// initialised, so a fresh store serialises as {"users": [],
// "activities": []} rather than nulls.
func NewDocument() *Document {
	return &Document{
		Users:      []domain.User{},
		Activities: []domain.Activity{},
	}
}

// DocumentStore defines the interface for whole-document persistence.
//
// The registry loads the document once at startup and writes it back in
// full on every successful mutation (write-through, no write-behind).
type DocumentStore interface {
	// Load returns the stored document. A missing or unparseable backing
	// file is a recovered condition, not a failure: implementations must
	// report it as a warning and return an empty document with a nil
	// error. Unknown fields in the stored form are tolerated and
	// dropped; they are not retained by the in-memory model.
	Load(ctx context.Context) (*Document, error)

	// Save serialises the full document, overwriting prior content.
	// Non-ASCII text must survive the round trip byte-for-byte.
	Save(ctx context.Context, doc *Document) error
}
