package sqlite

import (
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/storage"
)

// UserRepository implements storage.UserRepository on SQLite.
type UserRepository struct {
	storage *SQLiteStorage
}

// NewUserRepository creates the SQLite-backed user repository.
func NewUserRepository(s *SQLiteStorage) storage.UserRepository {
	return &UserRepository{storage: s}
}

func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	return r.storage.GetUserByEmail(email)
}

func (r *UserRepository) GetUserByID(id int64) (*models.User, error) {
	return r.storage.GetUserByID(id)
}

func (r *UserRepository) CreateUser(email, hashedPassword, fullName string) (*models.User, error) {
	return r.storage.CreateUser(email, hashedPassword, fullName)
}

func (r *UserRepository) DeleteUser(id int64) (bool, error) {
	return r.storage.DeleteUser(id)
}

// TransactionRepository implements storage.TransactionRepository on SQLite.
type TransactionRepository struct {
	storage *SQLiteStorage
}

// NewTransactionRepository creates the SQLite-backed transaction repository.
func NewTransactionRepository(s *SQLiteStorage) storage.TransactionRepository {
	return &TransactionRepository{storage: s}
}

func (r *TransactionRepository) ListTransactions(userID int64, filter models.TransactionFilter) ([]*models.Transaction, error) {
	return r.storage.ListTransactions(userID, filter)
}

func (r *TransactionRepository) ListTransactionsSince(userID int64, since string) ([]*models.Transaction, error) {
	return r.storage.ListTransactionsSince(userID, since)
}

func (r *TransactionRepository) GetTransactionByID(id, userID int64) (*models.Transaction, error) {
	return r.storage.GetTransactionByID(id, userID)
}

func (r *TransactionRepository) CreateTransaction(userID int64, tc *models.TransactionCreate) (*models.Transaction, error) {
	return r.storage.CreateTransaction(userID, tc)
}

func (r *TransactionRepository) UpdateTransaction(id, userID int64, upd *models.TransactionUpdate) (*models.Transaction, error) {
	return r.storage.UpdateTransaction(id, userID, upd)
}

func (r *TransactionRepository) DeleteTransaction(id, userID int64) (bool, error) {
	return r.storage.DeleteTransaction(id, userID)
}

func (r *TransactionRepository) RecentTransactions(userID int64, limit int) ([]*models.Transaction, error) {
	return r.storage.RecentTransactions(userID, limit)
}

func (r *TransactionRepository) SumAmountByType(userID int64, txType string) (float64, error) {
	return r.storage.SumAmountByType(userID, txType)
}

func (r *TransactionRepository) SumAmountByTypeSince(userID int64, txType, since string) (float64, error) {
	return r.storage.SumAmountByTypeSince(userID, txType, since)
}

func (r *TransactionRepository) SumAmountByTypeInMonth(userID int64, txType string, month time.Month, year int) (float64, error) {
	return r.storage.SumAmountByTypeInMonth(userID, txType, month, year)
}

func (r *TransactionRepository) SumAmountByTypeBetween(userID int64, txType, start, end string) (float64, error) {
	return r.storage.SumAmountByTypeBetween(userID, txType, start, end)
}

func (r *TransactionRepository) SumAmountByTypeOnDate(userID int64, txType, date string) (float64, error) {
	return r.storage.SumAmountByTypeOnDate(userID, txType, date)
}

func (r *TransactionRepository) ExpensesByCategory(userID int64) (map[string]float64, error) {
	return r.storage.ExpensesByCategory(userID)
}

func (r *TransactionRepository) ExpensesByCategorySince(userID int64, since string) (map[string]float64, error) {
	return r.storage.ExpensesByCategorySince(userID, since)
}
