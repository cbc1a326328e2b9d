// Package todo defines the todo item entity and its value types. A todo is a
// single task record owned by one user; the owner never changes after
// creation and at most one file can be attached to it.
package todo

import (
	"strings"
	"time"

	"github.com/AndrewSerra/serverless-todo-api/internal/domain"
)

// dueDateLayout is the calendar-date format accepted for due dates.
const dueDateLayout = "2006-01-02"

// Item is a single todo record. Field names on the wire (JSON) and in the
// backing table (dynamodbav) match the original API contract exactly.
// AttachmentURL is a pointer so that it serializes as null until an
// attachment has been uploaded.
type Item struct {
	TodoID        string  `json:"todoId" dynamodbav:"todoId"`
	UserID        string  `json:"userId" dynamodbav:"userId"`
	Name          string  `json:"name" dynamodbav:"name"`
	DueDate       string  `json:"dueDate,omitempty" dynamodbav:"dueDate,omitempty"`
	CreatedAt     string  `json:"createdAt" dynamodbav:"createdAt"`
	Done          bool    `json:"done" dynamodbav:"done"`
	AttachmentURL *string `json:"attachmentUrl" dynamodbav:"attachmentUrl"`
}

// Update holds the three mutable fields of an item. Applying an Update is a
// full replacement of all three, not a partial patch.
type Update struct {
	Name    string
	DueDate string
	Done    bool
}

// New constructs an item for the given owner with server-assigned fields:
// a fresh CreatedAt stamp, done=false, and no attachment.
func New(todoID, userID, name, dueDate string, now time.Time) *Item {
	return &Item{
		TodoID:    todoID,
		UserID:    userID,
		Name:      name,
		DueDate:   dueDate,
		CreatedAt: now.UTC().Format(time.RFC3339),
		Done:      false,
	}
}

// Validate checks business rules for the item's caller-supplied fields.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (i *Item) Validate() error {
	return validateFields(i.Name, i.DueDate)
}

// Validate checks business rules for an update.
func (u *Update) Validate() error {
	return validateFields(u.Name, u.DueDate)
}

func validateFields(name, dueDate string) error {
	fields := make(map[string]string)

	if strings.TrimSpace(name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if dueDate != "" {
		if _, err := time.Parse(dueDateLayout, dueDate); err != nil {
			fields["dueDate"] = "must be a date in YYYY-MM-DD format"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
