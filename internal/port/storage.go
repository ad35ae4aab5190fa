package port

import (
	"context"
	"io"
)

// UploadInput encapsulates the parameters needed to upload an object.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput contains the result of a successful upload.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage abstracts cloud object storage operations.
//
// PresignPut is part of the collaborator contract but no workflow calls it:
// upload-time PUT presigning exists in the stored record format only and is
// pending product clarification.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	PresignGet(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
	PresignPut(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
