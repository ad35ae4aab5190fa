package port

import (
	"context"

	"cloudbox/internal/domain"
)

// IngestPipeline abstracts the streaming ingestion service. Emit is a single
// best-effort put; the implementation owns record serialization. No delivery
// guarantee exists beyond success or failure of the call itself.
type IngestPipeline interface {
	Emit(ctx context.Context, meta *domain.FileMetadata) error
}
