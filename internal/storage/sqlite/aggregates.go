package sqlite

import (
	"fmt"
	"time"

	"finance-dashboard/internal/models"
)

// SumAmountByType sums the owner's amounts of one type; 0 when no rows.
func (s *SQLiteStorage) SumAmountByType(userID int64, txType string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = ? AND type = ?
	`
	return s.querySum(query, userID, txType)
}

// SumAmountByTypeSince sums amounts dated on or after since (YYYY-MM-DD).
func (s *SQLiteStorage) SumAmountByTypeSince(userID int64, txType, since string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = ? AND type = ? AND transaction_date >= ?
	`
	return s.querySum(query, userID, txType, since)
}

// SumAmountByTypeInMonth sums amounts whose transaction_date falls in the
// given calendar month and year.
func (s *SQLiteStorage) SumAmountByTypeInMonth(userID int64, txType string, month time.Month, year int) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = ? AND type = ?
		  AND strftime('%m', transaction_date) = ?
		  AND strftime('%Y', transaction_date) = ?
	`
	return s.querySum(query, userID, txType, fmt.Sprintf("%02d", int(month)), fmt.Sprintf("%04d", year))
}

// SumAmountByTypeBetween sums amounts in the half-open date range
// [start, end).
func (s *SQLiteStorage) SumAmountByTypeBetween(userID int64, txType, start, end string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = ? AND type = ? AND transaction_date >= ? AND transaction_date < ?
	`
	return s.querySum(query, userID, txType, start, end)
}

// SumAmountByTypeOnDate sums amounts dated exactly on date.
func (s *SQLiteStorage) SumAmountByTypeOnDate(userID int64, txType, date string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = ? AND type = ? AND transaction_date = ?
	`
	return s.querySum(query, userID, txType, date)
}

// ExpensesByCategory groups the owner's expense amounts by category.
// Income rows never contribute, whatever category they carry.
func (s *SQLiteStorage) ExpensesByCategory(userID int64) (map[string]float64, error) {
	query := `
		SELECT category, SUM(amount)
		FROM transactions
		WHERE user_id = ? AND type = ?
		GROUP BY category
	`
	return s.queryCategorySums(query, userID, models.TypeExpense)
}

// ExpensesByCategorySince bounds ExpensesByCategory to dates on or after
// since.
func (s *SQLiteStorage) ExpensesByCategorySince(userID int64, since string) (map[string]float64, error) {
	query := `
		SELECT category, SUM(amount)
		FROM transactions
		WHERE user_id = ? AND type = ? AND transaction_date >= ?
		GROUP BY category
	`
	return s.queryCategorySums(query, userID, models.TypeExpense, since)
}

func (s *SQLiteStorage) querySum(query string, args ...interface{}) (float64, error) {
	var sum float64
	if err := s.DB.QueryRow(query, args...).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

func (s *SQLiteStorage) queryCategorySums(query string, args ...interface{}) (map[string]float64, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[string]float64)
	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, err
		}
		sums[category] = total
	}

	return sums, rows.Err()
}
