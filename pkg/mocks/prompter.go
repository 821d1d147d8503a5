package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockPrompter is a testify mock for ui.Prompter.
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) Ask(question string) (string, error) {
	args := m.Called(question)
	return args.String(0), args.Error(1)
}

func (m *MockPrompter) AskSecret(question string) (string, error) {
	args := m.Called(question)
	return args.String(0), args.Error(1)
}
