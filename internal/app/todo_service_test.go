package app_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/AndrewSerra/serverless-todo-api/internal/adapters/store/memory"
	"github.com/AndrewSerra/serverless-todo-api/internal/app"
	"github.com/AndrewSerra/serverless-todo-api/internal/domain"
	"github.com/AndrewSerra/serverless-todo-api/internal/domain/todo"
	"github.com/AndrewSerra/serverless-todo-api/internal/ports"
)

const attachmentBase = "http://localhost:9000/attachments"

func newService(t *testing.T) *app.TodoService {
	t.Helper()
	return app.NewTodoService(
		memory.NewTodoStore(),
		memory.NewAttachmentStore(attachmentBase),
		slog.New(slog.DiscardHandler),
	)
}

func mustCreate(t *testing.T, svc *app.TodoService, userID, name string) *todo.Item {
	t.Helper()
	item, err := svc.Create(context.Background(), userID, ports.CreateTodoRequest{Name: name})
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", name, err)
	}
	return item
}

func TestCreate_ServerAssignedFields(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	item := mustCreate(t, svc, "user-1", "Buy milk")

	if item.TodoID == "" {
		t.Error("TodoID is empty")
	}
	if item.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", item.UserID)
	}
	if item.Done {
		t.Error("Done = true, want false")
	}
	if item.AttachmentURL != nil {
		t.Errorf("AttachmentURL = %v, want nil", *item.AttachmentURL)
	}
	if item.CreatedAt == "" {
		t.Error("CreatedAt is empty")
	}
}

func TestCreate_UniqueIDs(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	seen := make(map[string]bool)
	for range 50 {
		item := mustCreate(t, svc, "user-1", "task")
		if seen[item.TodoID] {
			t.Fatalf("duplicate todo ID %q", item.TodoID)
		}
		seen[item.TodoID] = true
	}
}

func TestCreate_ValidationError(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	_, err := svc.Create(context.Background(), "user-1", ports.CreateTodoRequest{Name: "  "})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Create with blank name = %v, want ErrValidation", err)
	}
}

func TestList_ScopedToOwner(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := context.Background()

	a1 := mustCreate(t, svc, "alice", "a1")
	a2 := mustCreate(t, svc, "alice", "a2")
	mustCreate(t, svc, "bob", "b1")

	items, err := svc.List(ctx, "alice")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("List returned %d items, want 2", len(items))
	}
	ids := map[string]bool{items[0].TodoID: true, items[1].TodoID: true}
	if !ids[a1.TodoID] || !ids[a2.TodoID] {
		t.Errorf("List returned %v, want exactly alice's items", ids)
	}
}

func TestList_EmptyForUnknownOwner(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	items, err := svc.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("List returned %d items, want 0", len(items))
	}
}

func TestUpdate_ThenGet(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := context.Background()

	item := mustCreate(t, svc, "user-1", "Buy milk")

	upd := todo.Update{Name: "Buy milk", DueDate: "2026-01-01", Done: true}
	if err := svc.Update(ctx, "user-1", item.TodoID, upd); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := svc.Get(ctx, "user-1", item.TodoID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.Done || got.DueDate != "2026-01-01" {
		t.Errorf("after update got done=%v dueDate=%q, want done=true dueDate=2026-01-01", got.Done, got.DueDate)
	}
	if got.CreatedAt != item.CreatedAt {
		t.Errorf("CreatedAt changed on update: %q -> %q", item.CreatedAt, got.CreatedAt)
	}
}

func TestUpdate_Idempotent(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := context.Background()

	item := mustCreate(t, svc, "user-1", "Buy milk")
	upd := todo.Update{Name: "Buy oat milk", DueDate: "2026-02-02", Done: true}

	for range 2 {
		if err := svc.Update(ctx, "user-1", item.TodoID, upd); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}

	got, err := svc.Get(ctx, "user-1", item.TodoID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != upd.Name || got.DueDate != upd.DueDate || got.Done != upd.Done {
		t.Errorf("stored state %+v does not match update %+v", got, upd)
	}
}

func TestUpdate_MissingTodo(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	err := svc.Update(context.Background(), "user-1", "no-such-id", todo.Update{Name: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update on missing todo = %v, want ErrNotFound", err)
	}
}

func TestDelete_ThenGet(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := context.Background()

	item := mustCreate(t, svc, "user-1", "Buy milk")

	if err := svc.Delete(ctx, "user-1", item.TodoID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, err := svc.Get(ctx, "user-1", item.TodoID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}
}

func TestDelete_MissingTodo(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	err := svc.Delete(context.Background(), "user-1", "no-such-id")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete on missing todo = %v, want ErrNotFound", err)
	}
}

func TestOwnership_CrossUserAccessRejected(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := context.Background()

	item := mustCreate(t, svc, "alice", "alice's task")

	if _, err := svc.Get(ctx, "bob", item.TodoID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get as non-owner = %v, want ErrNotFound", err)
	}
	if err := svc.Update(ctx, "bob", item.TodoID, todo.Update{Name: "hijacked"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update as non-owner = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, "bob", item.TodoID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete as non-owner = %v, want ErrNotFound", err)
	}

	// The owner's item is untouched.
	got, err := svc.Get(ctx, "alice", item.TodoID)
	if err != nil {
		t.Fatalf("Get as owner failed: %v", err)
	}
	if got.Name != "alice's task" {
		t.Errorf("Name = %q, want unchanged", got.Name)
	}
}

func TestAttachmentFlow(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := context.Background()

	item := mustCreate(t, svc, "user-1", "Buy milk")
	attachmentID := "att-123"

	uploadURL, err := svc.SignedUploadURL(ctx, attachmentID)
	if err != nil {
		t.Fatalf("SignedUploadURL failed: %v", err)
	}
	if !strings.Contains(uploadURL, attachmentID) {
		t.Errorf("upload URL %q does not contain attachment ID", uploadURL)
	}

	if err := svc.AttachFile(ctx, "user-1", item.TodoID, attachmentID); err != nil {
		t.Fatalf("AttachFile failed: %v", err)
	}

	got, err := svc.Get(ctx, "user-1", item.TodoID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.AttachmentURL == nil {
		t.Fatal("AttachmentURL is nil after AttachFile")
	}
	if !strings.Contains(*got.AttachmentURL, attachmentID) {
		t.Errorf("AttachmentURL %q does not contain attachment ID", *got.AttachmentURL)
	}
}

func TestAttachFile_MissingTodo(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	err := svc.AttachFile(context.Background(), "user-1", "no-such-id", "att-1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("AttachFile on missing todo = %v, want ErrNotFound", err)
	}
}
