package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"finance-dashboard/internal/models"
)

// MockAuthService mocks the services.AuthService interface.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(req *models.RegisterRequest) (*models.User, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Authenticate(email, password string) (*models.User, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockTransactionService mocks the services.TransactionService interface.
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) List(userID int64, filter models.TransactionFilter) ([]*models.Transaction, error) {
	args := m.Called(userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

func (m *MockTransactionService) Get(id, userID int64) (*models.Transaction, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionService) Create(userID int64, req *models.TransactionCreate) (*models.Transaction, error) {
	args := m.Called(userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionService) Update(id, userID int64, req *models.TransactionUpdate) (*models.Transaction, error) {
	args := m.Called(id, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionService) Delete(id, userID int64) (bool, error) {
	args := m.Called(id, userID)
	return args.Bool(0), args.Error(1)
}

// MockDashboardService mocks the services.DashboardService interface.
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetSummary(userID int64) (*models.DashboardSummary, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardSummary), args.Error(1)
}

func (m *MockDashboardService) GetTrends(userID int64, period string, limit int) (*models.TrendsResponse, error) {
	args := m.Called(userID, period, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrendsResponse), args.Error(1)
}

// MockAIChatService mocks the services.AIChatService interface.
type MockAIChatService struct {
	mock.Mock
}

func (m *MockAIChatService) QuickQuestions() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockAIChatService) SendMessage(ctx context.Context, user *models.User, question string, includeContext bool) (*models.ChatResponse, error) {
	args := m.Called(ctx, user, question, includeContext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatResponse), args.Error(1)
}

func (m *MockAIChatService) AnalyzeBudget(ctx context.Context, user *models.User, periodDays int) (*models.ChatResponse, error) {
	args := m.Called(ctx, user, periodDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatResponse), args.Error(1)
}

func (m *MockAIChatService) History(ctx context.Context, userID int64) ([]models.ChatExchange, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatExchange), args.Error(1)
}

func (m *MockAIChatService) CheckHealth(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}
