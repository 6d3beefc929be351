package sqlite

import (
	"database/sql"
	"strings"
	"time"

	"finance-dashboard/internal/models"
)

// listOrder makes listings deterministic: newest transaction_date first,
// ties broken by creation time then id.
const listOrder = ` ORDER BY transaction_date DESC, created_at DESC, id DESC`

const transactionColumns = `id, user_id, amount, description, type, category, transaction_date, created_at, updated_at`

// ListTransactions returns the owner's transactions with optional type and
// category filters, paginated with skip/limit.
func (s *SQLiteStorage) ListTransactions(userID int64, filter models.TransactionFilter) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = ?`
	args := []interface{}{userID}

	if filter.Type != "" {
		query += ` AND type = ?`
		args = append(args, filter.Type)
	}
	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, filter.Category)
	}

	query += listOrder + ` LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Skip)

	return s.queryTransactions(query, args...)
}

// ListTransactionsSince returns transactions dated on or after since
// (YYYY-MM-DD compares lexicographically), newest first.
func (s *SQLiteStorage) ListTransactionsSince(userID int64, since string) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE user_id = ? AND transaction_date >= ?` + listOrder
	return s.queryTransactions(query, userID, since)
}

// GetTransactionByID looks up id and owner in the same query, so an
// unowned transaction is indistinguishable from a missing one.
func (s *SQLiteStorage) GetTransactionByID(id, userID int64) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ? AND user_id = ?`

	var tx models.Transaction
	err := s.DB.QueryRow(query, id, userID).Scan(
		&tx.ID, &tx.UserID, &tx.Amount, &tx.Description, &tx.Type,
		&tx.Category, &tx.TransactionDate, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// CreateTransaction inserts a transaction and returns the stored row with
// generated id and timestamps.
func (s *SQLiteStorage) CreateTransaction(userID int64, tc *models.TransactionCreate) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, amount, description, type, category, transaction_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	var id int64
	err := retryOperation(func() error {
		res, execErr := s.DB.Exec(query, userID, tc.Amount, tc.Description, tc.Type, tc.Category, tc.TransactionDate)
		if execErr != nil {
			return execErr
		}
		id, execErr = res.LastInsertId()
		return execErr
	}, 3, 50*time.Millisecond)
	if err != nil {
		return nil, err
	}

	return s.GetTransactionByID(id, userID)
}

// UpdateTransaction applies only the supplied fields. The owner filter sits
// in the WHERE clause of the UPDATE itself; zero affected rows means absent
// or not owned, and nothing is ever inserted.
func (s *SQLiteStorage) UpdateTransaction(id, userID int64, upd *models.TransactionUpdate) (*models.Transaction, error) {
	sets := make([]string, 0, 6)
	args := make([]interface{}, 0, 8)

	if upd.Amount != nil {
		sets = append(sets, "amount = ?")
		args = append(args, *upd.Amount)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.Type != nil {
		sets = append(sets, "type = ?")
		args = append(args, *upd.Type)
	}
	if upd.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *upd.Category)
	}
	if upd.TransactionDate != nil {
		sets = append(sets, "transaction_date = ?")
		args = append(args, *upd.TransactionDate)
	}

	if len(sets) == 0 {
		// nothing to change; still an ownership-checked read
		return s.GetTransactionByID(id, userID)
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	query := `UPDATE transactions SET ` + strings.Join(sets, ", ") + ` WHERE id = ? AND user_id = ?`
	args = append(args, id, userID)

	var affected int64
	err := retryOperation(func() error {
		res, execErr := s.DB.Exec(query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	}, 3, 50*time.Millisecond)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}

	return s.GetTransactionByID(id, userID)
}

// DeleteTransaction removes the row when owned by userID.
func (s *SQLiteStorage) DeleteTransaction(id, userID int64) (bool, error) {
	var affected int64
	err := retryOperation(func() error {
		res, execErr := s.DB.Exec(`DELETE FROM transactions WHERE id = ? AND user_id = ?`, id, userID)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	}, 3, 50*time.Millisecond)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// RecentTransactions returns the owner's most recent transactions.
func (s *SQLiteStorage) RecentTransactions(userID int64, limit int) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = ?` + listOrder + ` LIMIT ?`
	return s.queryTransactions(query, userID, limit)
}

func (s *SQLiteStorage) queryTransactions(query string, args ...interface{}) ([]*models.Transaction, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]*models.Transaction, 0)
	for rows.Next() {
		var tx models.Transaction
		err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Amount, &tx.Description, &tx.Type,
			&tx.Category, &tx.TransactionDate, &tx.CreatedAt, &tx.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}
