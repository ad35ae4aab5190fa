package domain

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrNotFound              = errors.New("file not found")
	ErrObjectStoreFailed     = errors.New("object store upload failed")
	ErrMetadataPersistFailed = errors.New("metadata persist failed")
	ErrMetadataLookupFailed  = errors.New("metadata lookup failed")
	ErrIngestionFailed       = errors.New("ingestion stream emit failed")
	ErrPresignFailed         = errors.New("presigned url generation failed")
)
