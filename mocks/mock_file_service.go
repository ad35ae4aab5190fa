package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cloudbox/internal/domain"
	"cloudbox/internal/service"
)

// MockFileService is a mock implementation of service.FileService.
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Upload(ctx context.Context, input service.FileUploadInput) (*domain.FileMetadata, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FileMetadata), args.Error(1)
}

func (m *MockFileService) Fetch(ctx context.Context, userID, fileID string) (string, error) {
	args := m.Called(ctx, userID, fileID)
	return args.String(0), args.Error(1)
}
