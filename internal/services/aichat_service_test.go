package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"finance-dashboard/internal/ai"
	aimocks "finance-dashboard/internal/ai/mocks"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/storage/mocks"
)

func newAIChatService(generator *aimocks.MockGenerator, txRepo *mocks.MockTransactionRepository) *AIChatServiceImpl {
	service := NewAIChatService(generator, txRepo, nil)
	service.now = fixedNow
	return service
}

func TestAIChatService_SendMessage_WithContext(t *testing.T) {
	generator := new(aimocks.MockGenerator)
	txRepo := new(mocks.MockTransactionRepository)
	service := newAIChatService(generator, txRepo)

	user := &models.User{ID: 7, Email: "alice@example.com", FullName: "Alice"}
	transactions := []*models.Transaction{
		{TransactionDate: "2026-08-19", Description: "Lunch", Amount: 20, Type: models.TypeExpense, Category: "Food & Dining"},
		{TransactionDate: "2026-08-01", Description: "Paycheck", Amount: 3000, Type: models.TypeIncome, Category: "Salary"},
	}

	txRepo.On("ListTransactionsSince", int64(7), "2026-07-21").Return(transactions, nil)
	generator.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Name: Alice") &&
			strings.Contains(prompt, "Monthly Income: $3000.00") &&
			strings.Contains(prompt, "Why is my spending high?")
	}), ai.SystemPrompt).Return("Because lunch.", nil)

	resp, err := service.SendMessage(context.Background(), user, "Why is my spending high?", true)

	require.NoError(t, err)
	assert.Equal(t, "Because lunch.", resp.Response)
	assert.Equal(t, fixedNow(), resp.Timestamp)
	generator.AssertExpectations(t)
}

func TestAIChatService_SendMessage_WithoutContext(t *testing.T) {
	generator := new(aimocks.MockGenerator)
	txRepo := new(mocks.MockTransactionRepository)
	service := newAIChatService(generator, txRepo)

	user := &models.User{ID: 7, Email: "alice@example.com"}

	txRepo.On("ListTransactionsSince", int64(7), "2026-07-21").
		Return([]*models.Transaction{{Type: models.TypeExpense, Amount: 1}}, nil)
	// The raw question goes out untouched.
	generator.On("Generate", mock.Anything, "What is compound interest?", ai.SystemPrompt).
		Return("Interest on interest.", nil)

	resp, err := service.SendMessage(context.Background(), user, "What is compound interest?", false)

	require.NoError(t, err)
	assert.Equal(t, "Interest on interest.", resp.Response)
}

func TestAIChatService_SendMessage_NoTransactionsFallsBack(t *testing.T) {
	generator := new(aimocks.MockGenerator)
	txRepo := new(mocks.MockTransactionRepository)
	service := newAIChatService(generator, txRepo)

	user := &models.User{ID: 7, Email: "alice@example.com"}

	txRepo.On("ListTransactionsSince", int64(7), "2026-07-21").Return([]*models.Transaction{}, nil)
	// An empty window means no context block even when requested.
	generator.On("Generate", mock.Anything, "Any tips?", ai.SystemPrompt).Return("Save more.", nil)

	resp, err := service.SendMessage(context.Background(), user, "Any tips?", true)

	require.NoError(t, err)
	assert.Equal(t, "Save more.", resp.Response)
}

func TestAIChatService_SendMessage_GeneratorError(t *testing.T) {
	generator := new(aimocks.MockGenerator)
	txRepo := new(mocks.MockTransactionRepository)
	service := newAIChatService(generator, txRepo)

	user := &models.User{ID: 7, Email: "alice@example.com"}

	txRepo.On("ListTransactionsSince", int64(7), "2026-07-21").Return([]*models.Transaction{}, nil)
	generator.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return("", assert.AnError)

	resp, err := service.SendMessage(context.Background(), user, "Hi", true)

	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestAIChatService_AnalyzeBudget(t *testing.T) {
	generator := new(aimocks.MockGenerator)
	txRepo := new(mocks.MockTransactionRepository)
	service := newAIChatService(generator, txRepo)

	user := &models.User{ID: 7, Email: "alice@example.com"}

	txRepo.On("SumAmountByTypeSince", int64(7), models.TypeIncome, "2026-07-21").Return(3000.0, nil)
	txRepo.On("ExpensesByCategorySince", int64(7), "2026-07-21").
		Return(map[string]float64{"Food & Dining": 600, "Transportation": 150}, nil)
	generator.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Monthly Income: $3000.00") &&
			strings.Contains(prompt, "Total Spending: $750.00") &&
			strings.Contains(prompt, "Savings Rate: 75.0%") &&
			strings.Contains(prompt, "50/30/20")
	}), ai.SystemPrompt).Return("Looks healthy.", nil)

	resp, err := service.AnalyzeBudget(context.Background(), user, 30)

	require.NoError(t, err)
	assert.Equal(t, "Looks healthy.", resp.Response)
	generator.AssertExpectations(t)
}

func TestAIChatService_History_NoStore(t *testing.T) {
	service := newAIChatService(new(aimocks.MockGenerator), new(mocks.MockTransactionRepository))

	history, err := service.History(context.Background(), 7)

	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestAIChatService_CheckHealth(t *testing.T) {
	generator := new(aimocks.MockGenerator)
	service := newAIChatService(generator, new(mocks.MockTransactionRepository))

	generator.On("TestConnection", mock.Anything).Return(true).Once()
	assert.Equal(t, "healthy", service.CheckHealth(context.Background()))

	generator.On("TestConnection", mock.Anything).Return(false).Once()
	assert.Equal(t, "unhealthy", service.CheckHealth(context.Background()))
}

func TestAIChatService_QuickQuestions(t *testing.T) {
	service := newAIChatService(new(aimocks.MockGenerator), new(mocks.MockTransactionRepository))

	questions := service.QuickQuestions()

	assert.Equal(t, ai.QuickQuestions, questions)
	assert.NotEmpty(t, questions)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Alice", displayName(&models.User{Email: "alice@example.com", FullName: "Alice"}))
	assert.Equal(t, "alice", displayName(&models.User{Email: "alice@example.com"}))
	assert.Equal(t, "weird", displayName(&models.User{Email: "weird"}))
}
