package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	kafkamocks "finance-dashboard/internal/kafka/mocks"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/storage/mocks"
)

var testCategories = []string{"Food & Dining", "Transportation", "Salary", "Other"}

func TestTransactionService_Create(t *testing.T) {
	txRepo := new(mocks.MockTransactionRepository)
	service := NewTransactionService(txRepo, nil, testCategories)

	req := &models.TransactionCreate{
		Amount:          42.50,
		Description:     "Lunch",
		Type:            models.TypeExpense,
		Category:        "Food & Dining",
		TransactionDate: "2026-08-20",
	}

	txRepo.On("CreateTransaction", int64(7), req).Return(&models.Transaction{
		ID:              1,
		UserID:          7,
		Amount:          42.50,
		Description:     "Lunch",
		Type:            models.TypeExpense,
		Category:        "Food & Dining",
		TransactionDate: "2026-08-20",
	}, nil)

	tx, err := service.Create(7, req)

	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, int64(1), tx.ID)
	txRepo.AssertExpectations(t)
}

func TestTransactionService_Create_InvalidCategory(t *testing.T) {
	txRepo := new(mocks.MockTransactionRepository)
	service := NewTransactionService(txRepo, nil, testCategories)

	tx, err := service.Create(7, &models.TransactionCreate{
		Amount:          10,
		Description:     "x",
		Type:            models.TypeExpense,
		Category:        "Yachts",
		TransactionDate: "2026-08-20",
	})

	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Nil(t, tx)
	// Nothing may reach the store when the category is rejected.
	txRepo.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestTransactionService_Create_PublishesAudit(t *testing.T) {
	txRepo := new(mocks.MockTransactionRepository)
	producer := new(kafkamocks.MockProducer)
	service := NewTransactionService(txRepo, producer, testCategories)

	req := &models.TransactionCreate{
		Amount:          100,
		Description:     "Paycheck",
		Type:            models.TypeIncome,
		Category:        "Salary",
		TransactionDate: "2026-08-01",
	}
	created := &models.Transaction{
		ID: 3, UserID: 7, Amount: 100, Type: models.TypeIncome,
		Category: "Salary", TransactionDate: "2026-08-01",
	}

	txRepo.On("CreateTransaction", int64(7), req).Return(created, nil)
	producer.On("SendTransactionEvent", mock.MatchedBy(func(e *models.TransactionEvent) bool {
		return e.EventType == "transaction.created" &&
			e.Data.TransactionID == 3 &&
			e.Data.UserID == 7 &&
			e.EventID != ""
	})).Return(nil)

	_, err := service.Create(7, req)

	require.NoError(t, err)
	producer.AssertExpectations(t)
}

func TestTransactionService_Create_AuditFailureIsSwallowed(t *testing.T) {
	txRepo := new(mocks.MockTransactionRepository)
	producer := new(kafkamocks.MockProducer)
	service := NewTransactionService(txRepo, producer, testCategories)

	req := &models.TransactionCreate{
		Amount: 10, Description: "x", Type: models.TypeExpense,
		Category: "Other", TransactionDate: "2026-08-20",
	}

	txRepo.On("CreateTransaction", int64(7), req).
		Return(&models.Transaction{ID: 4, UserID: 7, Category: "Other"}, nil)
	producer.On("SendTransactionEvent", mock.Anything).Return(assert.AnError)

	tx, err := service.Create(7, req)

	require.NoError(t, err)
	assert.NotNil(t, tx)
}

func TestTransactionService_Update_InvalidCategory(t *testing.T) {
	txRepo := new(mocks.MockTransactionRepository)
	service := NewTransactionService(txRepo, nil, testCategories)

	bad := "Yachts"
	tx, err := service.Update(1, 7, &models.TransactionUpdate{Category: &bad})

	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Nil(t, tx)
	txRepo.AssertNotCalled(t, "UpdateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransactionService_Update_NotOwned(t *testing.T) {
	txRepo := new(mocks.MockTransactionRepository)
	service := NewTransactionService(txRepo, nil, testCategories)

	amount := 55.0
	upd := &models.TransactionUpdate{Amount: &amount}

	txRepo.On("UpdateTransaction", int64(1), int64(7), upd).Return(nil, nil)

	tx, err := service.Update(1, 7, upd)

	require.NoError(t, err)
	assert.Nil(t, tx)
}

func TestTransactionService_Delete(t *testing.T) {
	txRepo := new(mocks.MockTransactionRepository)
	service := NewTransactionService(txRepo, nil, testCategories)

	existing := &models.Transaction{ID: 1, UserID: 7, Category: "Other"}
	txRepo.On("GetTransactionByID", int64(1), int64(7)).Return(existing, nil)
	txRepo.On("DeleteTransaction", int64(1), int64(7)).Return(true, nil)

	deleted, err := service.Delete(1, 7)

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestTransactionService_Delete_NotFound(t *testing.T) {
	txRepo := new(mocks.MockTransactionRepository)
	service := NewTransactionService(txRepo, nil, testCategories)

	txRepo.On("GetTransactionByID", int64(99), int64(7)).Return(nil, nil)

	deleted, err := service.Delete(99, 7)

	require.NoError(t, err)
	assert.False(t, deleted)
	txRepo.AssertNotCalled(t, "DeleteTransaction", mock.Anything, mock.Anything)
}
