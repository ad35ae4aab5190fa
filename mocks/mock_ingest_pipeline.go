package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cloudbox/internal/domain"
)

// MockIngestPipeline is a mock implementation of port.IngestPipeline.
type MockIngestPipeline struct {
	mock.Mock
}

func (m *MockIngestPipeline) Emit(ctx context.Context, meta *domain.FileMetadata) error {
	args := m.Called(ctx, meta)
	return args.Error(0)
}
