package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockTokenVerifier is a mock implementation of port.TokenVerifier.
type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(token string) error {
	args := m.Called(token)
	return args.Error(0)
}
