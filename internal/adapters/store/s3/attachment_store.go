// Package s3 implements the attachment storage port on S3. Clients upload
// attachment objects directly to the bucket using presigned PUT URLs; the
// service itself never proxies file bytes.
package s3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/AndrewSerra/serverless-todo-api/internal/domain"
	"github.com/AndrewSerra/serverless-todo-api/internal/platform/config"
	"github.com/AndrewSerra/serverless-todo-api/internal/ports"
)

// Compile-time interface check.
var _ ports.AttachmentStore = (*AttachmentStore)(nil)

// PresignAPI is the subset of the S3 presign client used by the store.
type PresignAPI interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// AttachmentStore implements ports.AttachmentStore on an S3 bucket.
type AttachmentStore struct {
	presigner PresignAPI
	cfg       config.AttachmentsConfig
}

// NewAttachmentStore creates an S3-backed attachment store.
func NewAttachmentStore(presigner PresignAPI, cfg config.AttachmentsConfig) *AttachmentStore {
	return &AttachmentStore{presigner: presigner, cfg: cfg}
}

// SignedUploadURL presigns a PUT of the given object key, valid for the
// configured TTL.
func (s *AttachmentStore) SignedUploadURL(ctx context.Context, objectKey string) (string, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(s.cfg.URLTTL))
	if err != nil {
		return "", fmt.Errorf("presigning upload for %s: %w: %w", objectKey, err, domain.ErrUnavailable)
	}
	return req.URL, nil
}

// PublicURL returns the bucket's virtual-hosted retrieval URL for the key.
// The URL is deterministic and valid regardless of whether the object exists.
func (s *AttachmentStore) PublicURL(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.cfg.Bucket, objectKey)
}
