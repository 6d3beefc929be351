package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGenerator mocks the ai.Generator interface.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt, systemInstruction string) (string, error) {
	args := m.Called(ctx, prompt, systemInstruction)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) TestConnection(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}
