package ports

import (
	"context"

	"github.com/AndrewSerra/serverless-todo-api/internal/domain/todo"
)

// TodoStore defines the storage port for the todo table: a single-table
// key-value store keyed by todo ID with a secondary index for listing by
// owner. Implemented by outbound storage adapters; called by the
// application layer.
//
// The store does not enforce ownership: Get, Update, Delete, and
// SetAttachmentURL address items by todo ID alone. Ownership checks are the
// application layer's responsibility.
type TodoStore interface {
	// ListByOwner queries the owner index and returns all items for the
	// user. An owner with no items yields an empty slice, not an error;
	// a backend failure yields domain.ErrUnavailable.
	ListByOwner(ctx context.Context, userID string) ([]todo.Item, error)

	// Get returns the item with the given ID.
	// Returns domain.ErrNotFound if no such item exists.
	Get(ctx context.Context, todoID string) (*todo.Item, error)

	// Create inserts a new item.
	Create(ctx context.Context, item *todo.Item) error

	// Update unconditionally overwrites the item's name, due date, and done
	// flag. Existence is not checked at this layer.
	Update(ctx context.Context, todoID string, upd todo.Update) error

	// Delete removes the item. Deleting a non-existent ID is not an error.
	Delete(ctx context.Context, todoID string) error

	// SetAttachmentURL unconditionally sets the item's attachment URL.
	SetAttachmentURL(ctx context.Context, todoID, url string) error
}

// AttachmentStore defines the object-storage port for todo attachments.
type AttachmentStore interface {
	// SignedUploadURL returns a time-limited URL authorizing a client to
	// upload directly to object storage under the given key. The key is not
	// checked against any todo record.
	SignedUploadURL(ctx context.Context, objectKey string) (string, error)

	// PublicURL returns the retrieval URL for the given key. The URL is
	// constructed deterministically; it is well-formed even if no object
	// was ever uploaded under the key.
	PublicURL(objectKey string) string
}
