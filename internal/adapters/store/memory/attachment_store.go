package memory

import (
	"context"
	"fmt"

	"github.com/AndrewSerra/serverless-todo-api/internal/ports"
)

// Compile-time interface check.
var _ ports.AttachmentStore = (*AttachmentStore)(nil)

// AttachmentStore is an in-memory implementation of [ports.AttachmentStore].
// No objects are actually stored; URLs are derived from a fixed base so that
// the attachment flow can be exercised end to end.
type AttachmentStore struct {
	baseURL string
}

// NewAttachmentStore creates an attachment store that derives URLs from the
// given base (e.g. "http://localhost:9000/attachments").
func NewAttachmentStore(baseURL string) *AttachmentStore {
	return &AttachmentStore{baseURL: baseURL}
}

// SignedUploadURL returns an upload URL for the given key. No signature is
// involved; the URL only needs to be stable and key-specific.
func (s *AttachmentStore) SignedUploadURL(_ context.Context, objectKey string) (string, error) {
	return fmt.Sprintf("%s/%s?upload=1", s.baseURL, objectKey), nil
}

// PublicURL returns the retrieval URL for the given key.
func (s *AttachmentStore) PublicURL(objectKey string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, objectKey)
}
