package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"finance-dashboard/internal/models"
)

// MockUserRepository mocks storage.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id int64) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(email, hashedPassword, fullName string) (*models.User, error) {
	args := m.Called(email, hashedPassword, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(id int64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// MockTransactionRepository mocks storage.TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(userID int64, filter models.TransactionFilter) ([]*models.Transaction, error) {
	args := m.Called(userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsSince(userID int64, since string) ([]*models.Transaction, error) {
	args := m.Called(userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) GetTransactionByID(id, userID int64) (*models.Transaction, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CreateTransaction(userID int64, tc *models.TransactionCreate) (*models.Transaction, error) {
	args := m.Called(userID, tc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(id, userID int64, upd *models.TransactionUpdate) (*models.Transaction, error) {
	args := m.Called(id, userID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(id, userID int64) (bool, error) {
	args := m.Called(id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) RecentTransactions(userID int64, limit int) ([]*models.Transaction, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumAmountByType(userID int64, txType string) (float64, error) {
	args := m.Called(userID, txType)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockTransactionRepository) SumAmountByTypeSince(userID int64, txType, since string) (float64, error) {
	args := m.Called(userID, txType, since)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockTransactionRepository) SumAmountByTypeInMonth(userID int64, txType string, month time.Month, year int) (float64, error) {
	args := m.Called(userID, txType, month, year)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockTransactionRepository) SumAmountByTypeBetween(userID int64, txType, start, end string) (float64, error) {
	args := m.Called(userID, txType, start, end)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockTransactionRepository) SumAmountByTypeOnDate(userID int64, txType, date string) (float64, error) {
	args := m.Called(userID, txType, date)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockTransactionRepository) ExpensesByCategory(userID int64) (map[string]float64, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

func (m *MockTransactionRepository) ExpensesByCategorySince(userID int64, since string) (map[string]float64, error) {
	args := m.Called(userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}
