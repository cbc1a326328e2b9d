// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AndrewSerra/serverless-todo-api/internal/domain"
	"github.com/AndrewSerra/serverless-todo-api/internal/domain/todo"
	"github.com/AndrewSerra/serverless-todo-api/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService by orchestrating the todo table
// and the attachment object store. It owns the two domain rules the storage
// layer deliberately does not enforce: an operation on a todo must first
// confirm the todo exists, and a todo is only visible to its owner.
type TodoService struct {
	store       ports.TodoStore
	attachments ports.AttachmentStore
	logger      *slog.Logger
	now         func() time.Time
}

// NewTodoService creates a TodoService. The store port provides access to
// the todo table; the attachments port issues signed upload URLs and derives
// public retrieval URLs. The logger is used for structured request/error
// logging.
func NewTodoService(store ports.TodoStore, attachments ports.AttachmentStore, logger *slog.Logger) *TodoService {
	return &TodoService{
		store:       store,
		attachments: attachments,
		logger:      logger,
		now:         time.Now,
	}
}

// Create validates the request, assigns a todo ID and creation timestamp,
// and persists a new item with done=false and no attachment.
func (s *TodoService) Create(ctx context.Context, userID string, req ports.CreateTodoRequest) (*todo.Item, error) {
	item := todo.New(uuid.NewString(), userID, req.Name, req.DueDate, s.now())

	if err := item.Validate(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating todo",
		slog.String("todo_id", item.TodoID),
		slog.String("user_id", userID),
	)

	if err := s.store.Create(ctx, item); err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "Create"),
			slog.String("todo_id", item.TodoID),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating todo: %w", err)
	}

	return item, nil
}

// List returns all items owned by the user, in no guaranteed order.
func (s *TodoService) List(ctx context.Context, userID string) ([]todo.Item, error) {
	s.logger.InfoContext(ctx, "listing todos", slog.String("user_id", userID))

	items, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "List"),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return items, nil
}

// Get returns a single item by ID, or domain.ErrNotFound if it does not
// exist or is owned by another user.
func (s *TodoService) Get(ctx context.Context, userID, todoID string) (*todo.Item, error) {
	return s.getOwned(ctx, "Get", userID, todoID)
}

// Update replaces the item's name, due date, and done flag. A missing or
// foreign-owned target is surfaced as domain.ErrNotFound rather than being
// silently treated as success.
func (s *TodoService) Update(ctx context.Context, userID, todoID string, upd todo.Update) error {
	if err := upd.Validate(); err != nil {
		return err
	}

	if _, err := s.getOwned(ctx, "Update", userID, todoID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "updating todo",
		slog.String("todo_id", todoID),
		slog.String("user_id", userID),
	)

	if err := s.store.Update(ctx, todoID, upd); err != nil {
		s.logger.ErrorContext(ctx, "failed to update todo",
			slog.String("operation", "Update"),
			slog.String("todo_id", todoID),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return fmt.Errorf("updating todo: %w", err)
	}

	return nil
}

// Delete removes the item after confirming it exists and belongs to the
// caller. The store-level delete itself is idempotent.
func (s *TodoService) Delete(ctx context.Context, userID, todoID string) error {
	if _, err := s.getOwned(ctx, "Delete", userID, todoID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "deleting todo",
		slog.String("todo_id", todoID),
		slog.String("user_id", userID),
	)

	if err := s.store.Delete(ctx, todoID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "Delete"),
			slog.String("todo_id", todoID),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return fmt.Errorf("deleting todo: %w", err)
	}

	return nil
}

// AttachFile records the public URL of the object stored under attachmentID
// on the item. The public URL is derived deterministically, so the recorded
// URL matches the object key the caller was authorized to upload to as long
// as the same attachment ID is threaded through both operations.
func (s *TodoService) AttachFile(ctx context.Context, userID, todoID, attachmentID string) error {
	s.logger.InfoContext(ctx, "recording attachment",
		slog.String("todo_id", todoID),
		slog.String("user_id", userID),
		slog.String("attachment_id", attachmentID),
	)

	url := s.attachments.PublicURL(attachmentID)

	if _, err := s.getOwned(ctx, "AttachFile", userID, todoID); err != nil {
		return err
	}

	if err := s.store.SetAttachmentURL(ctx, todoID, url); err != nil {
		s.logger.ErrorContext(ctx, "failed to record attachment url",
			slog.String("operation", "AttachFile"),
			slog.String("todo_id", todoID),
			slog.String("attachment_id", attachmentID),
			slog.Any("error", err),
		)
		return fmt.Errorf("recording attachment url: %w", err)
	}

	return nil
}

// SignedUploadURL issues a time-limited upload URL for the given attachment
// ID. It does not touch any todo record.
func (s *TodoService) SignedUploadURL(ctx context.Context, attachmentID string) (string, error) {
	s.logger.InfoContext(ctx, "generating signed upload url",
		slog.String("attachment_id", attachmentID),
	)

	url, err := s.attachments.SignedUploadURL(ctx, attachmentID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to generate signed upload url",
			slog.String("operation", "SignedUploadURL"),
			slog.String("attachment_id", attachmentID),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("generating signed upload url: %w", err)
	}

	return url, nil
}

// getOwned loads the item and enforces the ownership rule. The underlying
// lookup is by todo ID alone; an item owned by another user is reported as
// domain.ErrNotFound so its existence is not leaked across users.
func (s *TodoService) getOwned(ctx context.Context, operation, userID, todoID string) (*todo.Item, error) {
	item, err := s.store.Get(ctx, todoID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo",
			slog.String("operation", operation),
			slog.String("todo_id", todoID),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}

	if item.UserID != userID {
		s.logger.WarnContext(ctx, "todo owned by another user",
			slog.String("operation", operation),
			slog.String("todo_id", todoID),
			slog.String("user_id", userID),
		)
		return nil, fmt.Errorf("todo %s: %w", todoID, domain.ErrNotFound)
	}

	return item, nil
}
