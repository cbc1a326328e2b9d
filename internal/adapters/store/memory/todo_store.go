// Package memory provides in-memory implementations of the storage ports,
// used by the local profile and by service-level tests. Items are held in a
// mutex-guarded map keyed by todo ID, mirroring the per-key atomicity of the
// real backend.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/AndrewSerra/serverless-todo-api/internal/domain"
	"github.com/AndrewSerra/serverless-todo-api/internal/domain/todo"
	"github.com/AndrewSerra/serverless-todo-api/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoStore = (*TodoStore)(nil)

// TodoStore is an in-memory implementation of [ports.TodoStore].
// Safe for concurrent use.
type TodoStore struct {
	mu    sync.RWMutex
	items map[string]todo.Item
}

// NewTodoStore creates an empty in-memory todo store.
func NewTodoStore() *TodoStore {
	return &TodoStore{items: make(map[string]todo.Item)}
}

// ListByOwner returns all items owned by the user. An owner with no items
// yields an empty slice.
func (s *TodoStore) ListByOwner(_ context.Context, userID string) ([]todo.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]todo.Item, 0)
	for _, item := range s.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

// Get returns the item with the given ID, or domain.ErrNotFound.
func (s *TodoStore) Get(_ context.Context, todoID string) (*todo.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[todoID]
	if !ok {
		return nil, fmt.Errorf("todo %s: %w", todoID, domain.ErrNotFound)
	}
	return &item, nil
}

// Create inserts a new item.
func (s *TodoStore) Create(_ context.Context, item *todo.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[item.TodoID] = *item
	return nil
}

// Update unconditionally overwrites the item's mutable fields. Updating an
// absent key is a no-op, matching the backend's unconditional write.
func (s *TodoStore) Update(_ context.Context, todoID string, upd todo.Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[todoID]
	if !ok {
		return nil
	}
	item.Name = upd.Name
	item.DueDate = upd.DueDate
	item.Done = upd.Done
	s.items[todoID] = item
	return nil
}

// Delete removes the item. Deleting a non-existent ID is not an error.
func (s *TodoStore) Delete(_ context.Context, todoID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, todoID)
	return nil
}

// SetAttachmentURL unconditionally sets the item's attachment URL.
func (s *TodoStore) SetAttachmentURL(_ context.Context, todoID, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[todoID]
	if !ok {
		return nil
	}
	item.AttachmentURL = &url
	s.items[todoID] = item
	return nil
}
