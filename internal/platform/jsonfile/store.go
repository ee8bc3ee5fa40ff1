// Package jsonfile implements the store.DocumentStore interface using a
// single JSON file as the storage backend. The file is stable,
// human-inspectable text: indent-2, UTF-8, no escaping of non-ASCII
// characters, so it can be diffed or hand-edited between runs.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/volunteer-api/internal/domain"
	"github.com/phrazzld/volunteer-api/internal/platform/logger"
	"github.com/phrazzld/volunteer-api/internal/store"
)

// Store persists the whole document to a single JSON file.
//
// One active process is assumed: concurrent processes writing the same
// backing file can race and silently overwrite each other's changes.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a JSON file implementation of the DocumentStore
// interface backed by the file at path. If logger is nil, a default
// logger will be used.
func NewStore(path string, logger *slog.Logger) *Store {
	if path == "" {
		panic("path cannot be empty")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		path:   path,
		logger: logger.With(slog.String("component", "jsonfile_store")),
	}
}

// Ensure Store implements store.DocumentStore interface
var _ store.DocumentStore = (*Store)(nil)

// Load implements store.DocumentStore.Load.
// A missing or corrupt backing file is recovered by returning an empty
// document; it is logged as a warning and never surfaced as an error.
// Unknown JSON fields are ignored, so loading then saving drops any
// extraneous data the file may have carried.
func (s *Store) Load(ctx context.Context) (*store.Document, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		log.Debug("no existing data file, starting empty",
			slog.String("path", s.path))
		return store.NewDocument(), nil
	}
	if err != nil {
		log.Warn("data file unreadable, reinitialising to empty collections",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return store.NewDocument(), nil
	}

	doc := store.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		log.Warn("data file corrupt, reinitialising to empty collections",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return store.NewDocument(), nil
	}

	// A hand-edited file may carry null collections; normalise so the
	// registry never sees a nil slice.
	if doc.Users == nil {
		doc.Users = []domain.User{}
	}
	if doc.Activities == nil {
		doc.Activities = []domain.Activity{}
	}

	return doc, nil
}

// Save implements store.DocumentStore.Save.
// The full document is serialised with two-space indentation and HTML
// escaping disabled, so Chinese activity names round-trip exactly as
// written.
func (s *Store) Save(ctx context.Context, doc *store.Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	return nil
}
