package port

import (
	"context"

	"cloudbox/internal/domain"
)

// FileMetadataRepository abstracts the key-value metadata table. Records are
// keyed by (user_id, file_id) and immutable once written.
type FileMetadataRepository interface {
	Put(ctx context.Context, meta *domain.FileMetadata) error
	// Get returns domain.ErrNotFound when no record exists for the key pair.
	Get(ctx context.Context, userID, fileID string) (*domain.FileMetadata, error)
	// Ping verifies the table is reachable. Used by the readiness probe.
	Ping(ctx context.Context) error
}
