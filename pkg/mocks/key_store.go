package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockKeyStore is a testify mock for auth.KeyStore.
type MockKeyStore struct {
	mock.Mock
}

func (m *MockKeyStore) SaveDeployKey(nodeURL, key string) error {
	args := m.Called(nodeURL, key)
	return args.Error(0)
}

func (m *MockKeyStore) IdentifyAccessToken(nodeURL, flagValue string) (string, error) {
	args := m.Called(nodeURL, flagValue)
	return args.String(0), args.Error(1)
}
