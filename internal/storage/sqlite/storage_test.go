package sqlite

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-dashboard/config"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/storage"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	cfg := &config.Config{
		DB: config.DBConfig{DBPath: filepath.Join(t.TempDir(), "test.db")},
	}
	s, err := NewConnection(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestUser(t *testing.T, s *SQLiteStorage, email string) *models.User {
	t.Helper()
	user, err := s.CreateUser(email, "$2a$10$fakehashfakehashfakehash", "Test User")
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func createTestTransaction(t *testing.T, s *SQLiteStorage, userID int64, amount float64, txType, category, date string) *models.Transaction {
	t.Helper()
	tx, err := s.CreateTransaction(userID, &models.TransactionCreate{
		Amount:          amount,
		Description:     "test transaction",
		Type:            txType,
		Category:        category,
		TransactionDate: date,
	})
	require.NoError(t, err)
	require.NotNil(t, tx)
	return tx
}

func TestUsers_CreateAndGet(t *testing.T) {
	s := newTestStorage(t)

	created := createTestUser(t, s, "alice@example.com")
	assert.Equal(t, "alice@example.com", created.Email)
	assert.True(t, created.IsActive)
	assert.NotZero(t, created.ID)

	byEmail, err := s.GetUserByEmail("alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := s.GetUserByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "alice@example.com", byID.Email)

	missing, err := s.GetUserByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUsers_DuplicateEmail(t *testing.T) {
	s := newTestStorage(t)

	createTestUser(t, s, "alice@example.com")

	dup, err := s.CreateUser("alice@example.com", "otherhash", "Other")
	assert.ErrorIs(t, err, storage.ErrEmailExists)
	assert.Nil(t, dup)
}

func TestUsers_DeleteCascades(t *testing.T) {
	s := newTestStorage(t)

	user := createTestUser(t, s, "alice@example.com")
	tx := createTestTransaction(t, s, user.ID, 10, models.TypeExpense, "Other", "2026-08-01")

	deleted, err := s.DeleteUser(user.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// The user's transactions must go with the account.
	orphan, err := s.GetTransactionByID(tx.ID, user.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan)

	deleted, err = s.DeleteUser(user.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTransactions_OwnershipIsolation(t *testing.T) {
	s := newTestStorage(t)

	alice := createTestUser(t, s, "alice@example.com")
	bob := createTestUser(t, s, "bob@example.com")

	aliceTx := createTestTransaction(t, s, alice.ID, 42, models.TypeExpense, "Other", "2026-08-01")

	// Bob sees nothing of Alice's transaction through any path.
	got, err := s.GetTransactionByID(aliceTx.ID, bob.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	amount := 999.0
	updated, err := s.UpdateTransaction(aliceTx.ID, bob.ID, &models.TransactionUpdate{Amount: &amount})
	require.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := s.DeleteTransaction(aliceTx.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	// Alice's row is untouched.
	intact, err := s.GetTransactionByID(aliceTx.ID, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, intact)
	assert.Equal(t, 42.0, intact.Amount)

	list, err := s.ListTransactions(bob.ID, models.TransactionFilter{Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTransactions_ListOrderingAndFilters(t *testing.T) {
	s := newTestStorage(t)
	user := createTestUser(t, s, "alice@example.com")

	createTestTransaction(t, s, user.ID, 10, models.TypeExpense, "Food & Dining", "2026-08-01")
	createTestTransaction(t, s, user.ID, 20, models.TypeIncome, "Salary", "2026-08-03")
	createTestTransaction(t, s, user.ID, 30, models.TypeExpense, "Transportation", "2026-08-02")

	list, err := s.ListTransactions(user.ID, models.TransactionFilter{Limit: 20})
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Newest date first.
	assert.Equal(t, "2026-08-03", list[0].TransactionDate)
	assert.Equal(t, "2026-08-02", list[1].TransactionDate)
	assert.Equal(t, "2026-08-01", list[2].TransactionDate)

	expenses, err := s.ListTransactions(user.ID, models.TransactionFilter{Type: models.TypeExpense, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, expenses, 2)

	food, err := s.ListTransactions(user.ID, models.TransactionFilter{Category: "Food & Dining", Limit: 20})
	require.NoError(t, err)
	require.Len(t, food, 1)
	assert.Equal(t, 10.0, food[0].Amount)

	page, err := s.ListTransactions(user.ID, models.TransactionFilter{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "2026-08-02", page[0].TransactionDate)
}

func TestTransactions_SameDateTieBreak(t *testing.T) {
	s := newTestStorage(t)
	user := createTestUser(t, s, "alice@example.com")

	first := createTestTransaction(t, s, user.ID, 1, models.TypeExpense, "Other", "2026-08-01")
	second := createTestTransaction(t, s, user.ID, 2, models.TypeExpense, "Other", "2026-08-01")

	list, err := s.ListTransactions(user.ID, models.TransactionFilter{Limit: 20})
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Equal dates and creation timestamps fall back to id descending.
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestTransactions_PartialUpdate(t *testing.T) {
	s := newTestStorage(t)
	user := createTestUser(t, s, "alice@example.com")

	tx := createTestTransaction(t, s, user.ID, 50, models.TypeExpense, "Other", "2026-08-01")

	amount := 75.5
	updated, err := s.UpdateTransaction(tx.ID, user.ID, &models.TransactionUpdate{Amount: &amount})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, 75.5, updated.Amount)
	// Untouched fields keep their values.
	assert.Equal(t, tx.Description, updated.Description)
	assert.Equal(t, tx.Type, updated.Type)
	assert.Equal(t, tx.Category, updated.Category)
	assert.Equal(t, tx.TransactionDate, updated.TransactionDate)
}

func TestTransactions_EmptyUpdateIsOwnershipCheckedRead(t *testing.T) {
	s := newTestStorage(t)
	user := createTestUser(t, s, "alice@example.com")

	tx := createTestTransaction(t, s, user.ID, 50, models.TypeExpense, "Other", "2026-08-01")

	got, err := s.UpdateTransaction(tx.ID, user.ID, &models.TransactionUpdate{})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tx.ID, got.ID)

	missing, err := s.UpdateTransaction(99999, user.ID, &models.TransactionUpdate{})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTransactions_ListSince(t *testing.T) {
	s := newTestStorage(t)
	user := createTestUser(t, s, "alice@example.com")

	createTestTransaction(t, s, user.ID, 10, models.TypeExpense, "Other", "2026-06-01")
	createTestTransaction(t, s, user.ID, 20, models.TypeExpense, "Other", "2026-08-01")
	createTestTransaction(t, s, user.ID, 30, models.TypeExpense, "Other", "2026-08-15")

	since, err := s.ListTransactionsSince(user.ID, "2026-08-01")
	require.NoError(t, err)
	require.Len(t, since, 2)
	assert.Equal(t, "2026-08-15", since[0].TransactionDate)
}

func TestAggregates_Sums(t *testing.T) {
	s := newTestStorage(t)
	user := createTestUser(t, s, "alice@example.com")
	other := createTestUser(t, s, "bob@example.com")

	createTestTransaction(t, s, user.ID, 3000, models.TypeIncome, "Salary", "2026-08-01")
	createTestTransaction(t, s, user.ID, 100, models.TypeExpense, "Food & Dining", "2026-08-02")
	createTestTransaction(t, s, user.ID, 50, models.TypeExpense, "Food & Dining", "2026-08-10")
	createTestTransaction(t, s, user.ID, 200, models.TypeExpense, "Transportation", "2026-07-15")
	// Another user's rows must not leak into the aggregates.
	createTestTransaction(t, s, other.ID, 9999, models.TypeExpense, "Other", "2026-08-02")

	income, err := s.SumAmountByType(user.ID, models.TypeIncome)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, income)

	expense, err := s.SumAmountByType(user.ID, models.TypeExpense)
	require.NoError(t, err)
	assert.Equal(t, 350.0, expense)

	sinceAug, err := s.SumAmountByTypeSince(user.ID, models.TypeExpense, "2026-08-01")
	require.NoError(t, err)
	assert.Equal(t, 150.0, sinceAug)

	august, err := s.SumAmountByTypeInMonth(user.ID, models.TypeExpense, 8, 2026)
	require.NoError(t, err)
	assert.Equal(t, 150.0, august)

	july, err := s.SumAmountByTypeInMonth(user.ID, models.TypeExpense, 7, 2026)
	require.NoError(t, err)
	assert.Equal(t, 200.0, july)

	// Half-open window: the end date is excluded.
	window, err := s.SumAmountByTypeBetween(user.ID, models.TypeExpense, "2026-08-02", "2026-08-10")
	require.NoError(t, err)
	assert.Equal(t, 100.0, window)

	onDate, err := s.SumAmountByTypeOnDate(user.ID, models.TypeExpense, "2026-08-10")
	require.NoError(t, err)
	assert.Equal(t, 50.0, onDate)

	noRows, err := s.SumAmountByTypeOnDate(user.ID, models.TypeIncome, "2020-01-01")
	require.NoError(t, err)
	assert.Zero(t, noRows)
}

func TestAggregates_ExpensesByCategory(t *testing.T) {
	s := newTestStorage(t)
	user := createTestUser(t, s, "alice@example.com")

	createTestTransaction(t, s, user.ID, 100, models.TypeExpense, "Food & Dining", "2026-08-02")
	createTestTransaction(t, s, user.ID, 50, models.TypeExpense, "Food & Dining", "2026-07-01")
	createTestTransaction(t, s, user.ID, 30, models.TypeExpense, "Transportation", "2026-08-05")
	// Income never contributes, whatever its category.
	createTestTransaction(t, s, user.ID, 3000, models.TypeIncome, "Salary", "2026-08-01")

	all, err := s.ExpensesByCategory(user.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		"Food & Dining":  150,
		"Transportation": 30,
	}, all)

	recent, err := s.ExpensesByCategorySince(user.ID, "2026-08-01")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		"Food & Dining":  100,
		"Transportation": 30,
	}, recent)
}

func TestTransactions_RecentTransactions(t *testing.T) {
	s := newTestStorage(t)
	user := createTestUser(t, s, "alice@example.com")

	for day := 1; day <= 12; day++ {
		date := fmt.Sprintf("2026-08-%02d", day)
		createTestTransaction(t, s, user.ID, float64(day), models.TypeExpense, "Other", date)
	}

	recent, err := s.RecentTransactions(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, recent, 10)
	assert.Equal(t, "2026-08-12", recent[0].TransactionDate)
	assert.Equal(t, "2026-08-03", recent[9].TransactionDate)
}
