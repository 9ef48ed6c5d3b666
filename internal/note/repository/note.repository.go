package repository

import (
	"context"
	"errors"

	"github.com/emresolakcbu/Connectinno-Notes-Api/internal/note/model"
)

// ErrNotFound is returned when no note exists under the requested id.
var ErrNotFound = errors.New("note not found")

// NoteRepository is the document-store capability the service is written
// against. Two backends implement it: Firestore (managed) and Postgres
// (self-hosted). Timestamps are assigned by the store, never by callers.
type NoteRepository interface {
	// ListByUser returns the user's notes ordered by updated_at descending.
	ListByUser(ctx context.Context, userID string) ([]model.Note, error)

	// Get fetches a single note by id, ErrNotFound when absent.
	Get(ctx context.Context, id string) (model.Note, error)

	// Create inserts a new note and returns its generated id. The note's
	// CreatedAt/UpdatedAt are ignored; the store stamps both.
	Create(ctx context.Context, note model.Note) (string, error)

	// Update applies the given fields to an existing note and refreshes
	// updated_at. Fields not present in the map are untouched.
	Update(ctx context.Context, id string, fields map[string]any) error

	// Delete removes a note permanently.
	Delete(ctx context.Context, id string) error
}
