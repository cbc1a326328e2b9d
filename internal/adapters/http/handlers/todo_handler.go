package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/AndrewSerra/serverless-todo-api/internal/adapters/http/dto"
	"github.com/AndrewSerra/serverless-todo-api/internal/adapters/http/middleware"
	"github.com/AndrewSerra/serverless-todo-api/internal/ports"
)

// TodoHandler handles HTTP requests for todo CRUD and attachment operations.
// The authenticated user ID is read from the request context, where the auth
// middleware stores it; every operation is scoped to that user.
type TodoHandler struct {
	service ports.TodoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// ListTodos handles GET /todos. Returns all todos owned by the caller.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	items, err := h.service.List(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(items))
}

// CreateTodo handles POST /todos. Returns the created item with its
// server-assigned identifier and timestamp.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.Create(r.Context(), userID, req.ToCreateRequest())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemResponse(created))
}

// GetTodo handles GET /todos/{todoId}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	todoID, err := parseTodoID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	item, err := h.service.Get(r.Context(), userID, todoID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemResponse(item))
}

// UpdateTodo handles PATCH /todos/{todoId}. The request body is a full
// replacement of the mutable fields; the response carries no body.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	todoID, err := parseTodoID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.Update(r.Context(), userID, todoID, req.ToUpdate()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// DeleteTodo handles DELETE /todos/{todoId}. The response carries no body.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	todoID, err := parseTodoID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), userID, todoID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// GenerateUploadURL handles POST /todos/{todoId}/attachment. It mints a fresh
// attachment identifier, records the resulting attachment URL on the todo, and
// returns a presigned URL the caller uploads the file to. The todo's
// attachment URL is valid once that upload completes.
func (h *TodoHandler) GenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	todoID, err := parseTodoID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	attachmentID := uuid.NewString()

	uploadURL, err := h.service.SignedUploadURL(r.Context(), attachmentID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.AttachFile(r.Context(), userID, todoID, attachmentID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.UploadURLResponse{UploadURL: uploadURL})
}
