package storage

import (
	"errors"
	"time"

	"finance-dashboard/internal/models"
)

// ErrEmailExists signals a duplicate-email insert into the credential store.
var ErrEmailExists = errors.New("email already registered")

// UserRepository persists user records. Lookups return (nil, nil) when no
// row matches.
type UserRepository interface {
	// GetUserByEmail returns the user with the given email, or nil.
	GetUserByEmail(email string) (*models.User, error)

	// GetUserByID returns the user with the given id, or nil.
	GetUserByID(id int64) (*models.User, error)

	// CreateUser inserts a user; the password is already hashed by the
	// caller. Returns ErrEmailExists on a duplicate email.
	CreateUser(email, hashedPassword, fullName string) (*models.User, error)

	// DeleteUser removes a user; transactions cascade with it.
	DeleteUser(id int64) (bool, error)
}

// TransactionRepository persists transactions. Every read and mutation
// filters by owner in the same query, so an unowned id behaves exactly like
// a missing one.
type TransactionRepository interface {
	// ListTransactions returns the owner's transactions, newest
	// transaction_date first, ties broken by created_at then id descending.
	ListTransactions(userID int64, filter models.TransactionFilter) ([]*models.Transaction, error)

	// ListTransactionsSince returns transactions dated on or after since
	// (YYYY-MM-DD), newest first.
	ListTransactionsSince(userID int64, since string) ([]*models.Transaction, error)

	// GetTransactionByID returns the transaction only when owned, else nil.
	GetTransactionByID(id, userID int64) (*models.Transaction, error)

	// CreateTransaction inserts a transaction with auto timestamps.
	CreateTransaction(userID int64, tc *models.TransactionCreate) (*models.Transaction, error)

	// UpdateTransaction applies only the non-nil fields. Returns the
	// updated row, or nil when the id is absent or not owned. Never inserts.
	UpdateTransaction(id, userID int64, upd *models.TransactionUpdate) (*models.Transaction, error)

	// DeleteTransaction removes the row when owned; reports whether a row
	// was deleted.
	DeleteTransaction(id, userID int64) (bool, error)

	// RecentTransactions returns the owner's most recent transactions.
	RecentTransactions(userID int64, limit int) ([]*models.Transaction, error)

	// SumAmountByType sums amounts of the given type; 0 for no rows.
	SumAmountByType(userID int64, txType string) (float64, error)

	// SumAmountByTypeSince sums amounts dated on or after since.
	SumAmountByTypeSince(userID int64, txType, since string) (float64, error)

	// SumAmountByTypeInMonth sums amounts whose transaction_date falls in
	// the given calendar month and year.
	SumAmountByTypeInMonth(userID int64, txType string, month time.Month, year int) (float64, error)

	// SumAmountByTypeBetween sums amounts in the half-open range
	// [start, end) of YYYY-MM-DD dates.
	SumAmountByTypeBetween(userID int64, txType, start, end string) (float64, error)

	// SumAmountByTypeOnDate sums amounts dated exactly on date.
	SumAmountByTypeOnDate(userID int64, txType, date string) (float64, error)

	// ExpensesByCategory maps category to summed amount over expense rows
	// only; empty map for no expenses.
	ExpensesByCategory(userID int64) (map[string]float64, error)

	// ExpensesByCategorySince is ExpensesByCategory bounded to dates on or
	// after since.
	ExpensesByCategorySince(userID int64, since string) (map[string]float64, error)
}
