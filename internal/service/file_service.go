package service

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"cloudbox/internal/config"
	"cloudbox/internal/domain"
	"cloudbox/internal/port"
)

// FileUploadInput is the DTO for file upload requests.
type FileUploadInput struct {
	UserID      string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// FileService defines the upload/fetch workflow contract.
type FileService interface {
	Upload(ctx context.Context, input FileUploadInput) (*domain.FileMetadata, error)
	Fetch(ctx context.Context, userID, fileID string) (string, error)
}

type fileService struct {
	repo    port.FileMetadataRepository
	storage port.ObjectStorage
	ingest  port.IngestPipeline
	cfg     *config.S3Config
}

// NewFileService creates a new FileService implementation.
func NewFileService(
	repo port.FileMetadataRepository,
	storage port.ObjectStorage,
	ingest port.IngestPipeline,
	cfg *config.S3Config,
) FileService {
	return &fileService{
		repo:    repo,
		storage: storage,
		ingest:  ingest,
		cfg:     cfg,
	}
}

// Upload mints a file ID, then writes the metadata record to the ingest stream,
// the metadata table, and finally the file bytes to the object store, in that
// order. The three writes are not transactional: a failure part-way through
// leaves earlier writes behind as orphaned artifacts. That gap is logged and
// surfaced as a 502-class error, never masked.
func (s *fileService) Upload(ctx context.Context, input FileUploadInput) (*domain.FileMetadata, error) {
	if err := validateUploadInput(input); err != nil {
		return nil, err
	}

	fileID := domain.NewFileID()
	fileKey := domain.FileKey(input.UserID, fileID, input.FileName)

	meta := &domain.FileMetadata{
		UserID:    input.UserID,
		FileID:    fileID,
		FileName:  input.FileName,
		FileKey:   fileKey,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.ingest.Emit(ctx, meta); err != nil {
		log.Printf("fileService.Upload: ingest emit failed for %s: %v", fileKey, err)
		return nil, domain.ErrIngestionFailed
	}

	if err := s.repo.Put(ctx, meta); err != nil {
		log.Printf("fileService.Upload: metadata put failed for %s (stream event orphaned): %v", fileKey, err)
		return nil, domain.ErrMetadataPersistFailed
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         fileKey,
		Body:        input.Body,
		ContentType: contentType,
		Size:        input.Size,
	})
	if err != nil {
		log.Printf("fileService.Upload: object store upload failed for %s (metadata and stream event orphaned): %v", fileKey, err)
		return nil, domain.ErrObjectStoreFailed
	}

	return meta, nil
}

// Fetch looks up the metadata record and returns a fresh presigned GET URL for
// the stored file key. Read-only and safe to retry.
func (s *fileService) Fetch(ctx context.Context, userID, fileID string) (string, error) {
	if userID == "" || fileID == "" {
		return "", domain.ErrInvalidInput
	}

	meta, err := s.repo.Get(ctx, userID, fileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		log.Printf("fileService.Fetch: metadata lookup failed for user %s file %s: %v", userID, fileID, err)
		return "", domain.ErrMetadataLookupFailed
	}

	url, err := s.storage.PresignGet(ctx, s.cfg.Bucket, meta.FileKey, s.cfg.PresignExpiry)
	if err != nil {
		log.Printf("fileService.Fetch: presign failed for %s: %v", meta.FileKey, err)
		return "", domain.ErrPresignFailed
	}
	return url, nil
}

func validateUploadInput(input FileUploadInput) error {
	if input.UserID == "" || input.FileName == "" || input.Size <= 0 {
		return domain.ErrInvalidInput
	}
	// The storage key embeds both values around the delimiter; allowing it
	// through would make keys ambiguous.
	if strings.Contains(input.UserID, domain.KeyDelimiter) || strings.Contains(input.FileName, domain.KeyDelimiter) {
		return domain.ErrInvalidInput
	}
	return nil
}
