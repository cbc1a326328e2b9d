package ports

import (
	"context"

	"github.com/AndrewSerra/serverless-todo-api/internal/domain/todo"
)

// CreateTodoRequest carries the caller-supplied fields for creating a todo.
// Everything else on the item is server-assigned.
type CreateTodoRequest struct {
	Name    string
	DueDate string
}

// TodoService defines the service port for todo operations. Implemented by
// the application layer; called by inbound adapters (handlers). Every
// operation is scoped to the calling user: items owned by another user are
// indistinguishable from absent ones.
type TodoService interface {
	// Create validates the request, assigns a todo ID and creation
	// timestamp, and persists a new item with done=false and no attachment.
	// Returns domain.ErrValidation if the request fails validation.
	Create(ctx context.Context, userID string, req CreateTodoRequest) (*todo.Item, error)

	// List returns all items owned by the user, in no guaranteed order.
	// An owner with no items yields an empty slice, not an error.
	List(ctx context.Context, userID string) ([]todo.Item, error)

	// Get returns a single item by ID.
	// Returns domain.ErrNotFound if the item does not exist or is owned by
	// another user.
	Get(ctx context.Context, userID, todoID string) (*todo.Item, error)

	// Update replaces the item's name, due date, and done flag.
	// Returns domain.ErrNotFound if the item does not exist or is owned by
	// another user; domain.ErrValidation if the update fails validation.
	Update(ctx context.Context, userID, todoID string, upd todo.Update) error

	// Delete removes the item.
	// Returns domain.ErrNotFound if the item does not exist or is owned by
	// another user.
	Delete(ctx context.Context, userID, todoID string) error

	// AttachFile records the public URL of the object stored under
	// attachmentID on the item. The attachment ID must be the same one the
	// upload URL was issued for, so that the recorded URL always matches
	// the object key the client was authorized to upload to.
	// Returns domain.ErrNotFound if the item does not exist or is owned by
	// another user.
	AttachFile(ctx context.Context, userID, todoID, attachmentID string) error

	// SignedUploadURL issues a time-limited URL authorizing a direct client
	// upload of the object stored under attachmentID. It does not touch any
	// todo record.
	SignedUploadURL(ctx context.Context, attachmentID string) (string, error)
}
