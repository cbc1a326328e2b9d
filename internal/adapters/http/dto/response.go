package dto

import "github.com/AndrewSerra/serverless-todo-api/internal/domain/todo"

// ItemResponse wraps a single todo item in HTTP responses. The item's own
// JSON tags carry the wire field names.
type ItemResponse struct {
	Item todo.Item `json:"item"`
}

// ListResponse wraps the caller's todo items in HTTP responses.
type ListResponse struct {
	Items []todo.Item `json:"items"`
}

// UploadURLResponse carries the signed upload URL issued for an attachment.
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
}

// ToItemResponse converts a domain item to an HTTP response DTO.
func ToItemResponse(item *todo.Item) ItemResponse {
	return ItemResponse{Item: *item}
}

// ToListResponse converts a slice of domain items to an HTTP response DTO.
// A nil slice is rendered as an empty JSON array, never null.
func ToListResponse(items []todo.Item) ListResponse {
	if items == nil {
		items = []todo.Item{}
	}
	return ListResponse{Items: items}
}
