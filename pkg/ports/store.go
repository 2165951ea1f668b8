package ports

import (
	"context"
	"errors"

	"github.com/aretw0/rewind/pkg/history"
)

// ErrDocumentNotFound is returned when a document ID cannot be found in the store.
var ErrDocumentNotFound = errors.New("document not found")

// Store defines the interface for holding the history of many documents.
// Implementations keep values for the lifetime of the owning process; they are
// a registry, not a durable backend.
type Store[T any] interface {
	// Save records the history for a given document ID.
	Save(ctx context.Context, documentID string, h history.History[T]) error

	// Load retrieves the history for a given document ID.
	// Returns ErrDocumentNotFound if the document does not exist.
	Load(ctx context.Context, documentID string) (history.History[T], error)

	// Delete removes the history for a given document ID.
	Delete(ctx context.Context, documentID string) error

	// List returns the IDs of all known documents.
	List(ctx context.Context) ([]string, error)
}
