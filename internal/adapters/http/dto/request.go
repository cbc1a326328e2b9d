// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"strings"

	"github.com/AndrewSerra/serverless-todo-api/internal/domain"
	"github.com/AndrewSerra/serverless-todo-api/internal/domain/todo"
	"github.com/AndrewSerra/serverless-todo-api/internal/ports"
)

// CreateTodoRequest represents the JSON body for creating a new todo.
type CreateTodoRequest struct {
	Name    string `json:"name"`
	DueDate string `json:"dueDate,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTodoRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}
	return nil
}

// ToCreateRequest converts the DTO to the service-layer request.
func (r *CreateTodoRequest) ToCreateRequest() ports.CreateTodoRequest {
	return ports.CreateTodoRequest{
		Name:    r.Name,
		DueDate: r.DueDate,
	}
}

// UpdateTodoRequest represents the JSON body for updating an existing todo.
// All three mutable fields are replaced wholesale; this is not a partial
// patch, so none of the fields are optional.
type UpdateTodoRequest struct {
	Name    string `json:"name"`
	DueDate string `json:"dueDate"`
	Done    bool   `json:"done"`
}

// Validate checks the update against the domain rules.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTodoRequest) Validate() error {
	upd := r.ToUpdate()
	return upd.Validate()
}

// ToUpdate converts the DTO to the domain update value.
func (r *UpdateTodoRequest) ToUpdate() todo.Update {
	return todo.Update{
		Name:    r.Name,
		DueDate: r.DueDate,
		Done:    r.Done,
	}
}
