// Package store persists contact records. Stores are interface-driven to keep
// the service testable and to allow swapping the in-memory and Mongo
// implementations without rewiring business code.
package store

import (
	"context"
	"errors"

	"agenda/internal/contact"
)

// ErrNotFound keeps store-specific misses consistent across implementations.
// A malformed identifier is also a miss: the id is opaque to callers.
var ErrNotFound = errors.New("contact record not found")

// Store is the document-collection abstraction over contact records.
type Store interface {
	// Insert persists a new record and returns it with the assigned id.
	Insert(ctx context.Context, rec contact.Record) (contact.Record, error)
	// FindByID returns the record with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (contact.Record, error)
	// FindByTelefono returns the record with an exact phone match, or ErrNotFound.
	FindByTelefono(ctx context.Context, telefono string) (contact.Record, error)
	// FindAll returns every record in the store's natural order.
	FindAll(ctx context.Context) ([]contact.Record, error)
	// Update replaces the mutable fields of the record with the given id.
	Update(ctx context.Context, id string, rec contact.Record) error
	// Delete removes the record with the given id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}
