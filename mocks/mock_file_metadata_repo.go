package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cloudbox/internal/domain"
)

// MockFileMetadataRepo is a mock implementation of port.FileMetadataRepository.
type MockFileMetadataRepo struct {
	mock.Mock
}

func (m *MockFileMetadataRepo) Put(ctx context.Context, meta *domain.FileMetadata) error {
	args := m.Called(ctx, meta)
	return args.Error(0)
}

func (m *MockFileMetadataRepo) Get(ctx context.Context, userID, fileID string) (*domain.FileMetadata, error) {
	args := m.Called(ctx, userID, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FileMetadata), args.Error(1)
}

func (m *MockFileMetadataRepo) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
