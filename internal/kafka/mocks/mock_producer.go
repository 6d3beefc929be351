package mocks

import (
	"github.com/stretchr/testify/mock"

	"finance-dashboard/internal/models"
)

// MockProducer mocks the kafka.Producer interface.
type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) SendTransactionEvent(event *models.TransactionEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}
