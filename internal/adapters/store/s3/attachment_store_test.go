package s3_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/AndrewSerra/serverless-todo-api/internal/adapters/store/s3"
	"github.com/AndrewSerra/serverless-todo-api/internal/domain"
	"github.com/AndrewSerra/serverless-todo-api/internal/platform/config"
)

type fakePresigner struct {
	presignPutObject func(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

func (f *fakePresigner) PresignPutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	return f.presignPutObject(ctx, params, optFns...)
}

func attachmentsConfig() config.AttachmentsConfig {
	return config.AttachmentsConfig{
		Driver: "s3",
		Bucket: "todo-api-attachments",
		URLTTL: 5 * time.Minute,
	}
}

func TestSignedUploadURL(t *testing.T) {
	t.Parallel()

	presigner := &fakePresigner{
		presignPutObject: func(_ context.Context, params *awss3.PutObjectInput, _ ...func(*awss3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
			if aws.ToString(params.Bucket) != "todo-api-attachments" {
				t.Errorf("Bucket = %q, want todo-api-attachments", aws.ToString(params.Bucket))
			}
			if aws.ToString(params.Key) != "attachment-1" {
				t.Errorf("Key = %q, want attachment-1", aws.ToString(params.Key))
			}
			return &v4.PresignedHTTPRequest{
				URL: "https://todo-api-attachments.s3.amazonaws.com/attachment-1?X-Amz-Signature=abc",
			}, nil
		},
	}

	store := s3.NewAttachmentStore(presigner, attachmentsConfig())

	url, err := store.SignedUploadURL(context.Background(), "attachment-1")
	if err != nil {
		t.Fatalf("SignedUploadURL error: %v", err)
	}
	if url == "" {
		t.Error("SignedUploadURL returned empty URL")
	}
}

func TestSignedUploadURL_PresignFailure(t *testing.T) {
	t.Parallel()

	presigner := &fakePresigner{
		presignPutObject: func(_ context.Context, _ *awss3.PutObjectInput, _ ...func(*awss3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
			return nil, errors.New("credentials expired")
		},
	}

	store := s3.NewAttachmentStore(presigner, attachmentsConfig())

	_, err := store.SignedUploadURL(context.Background(), "attachment-1")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestPublicURL(t *testing.T) {
	t.Parallel()

	store := s3.NewAttachmentStore(&fakePresigner{}, attachmentsConfig())

	want := "https://todo-api-attachments.s3.amazonaws.com/attachment-1"
	if got := store.PublicURL("attachment-1"); got != want {
		t.Errorf("PublicURL = %q, want %q", got, want)
	}
}
