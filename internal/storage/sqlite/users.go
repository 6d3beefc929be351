package sqlite

import (
	"database/sql"
	"strings"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/storage"
)

// GetUserByEmail returns the user with the given email, or nil.
func (s *SQLiteStorage) GetUserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, email, hashed_password, full_name, is_active, created_at, updated_at
		FROM users
		WHERE email = ?
	`
	return s.scanUser(s.DB.QueryRow(query, email))
}

// GetUserByID returns the user with the given id, or nil.
func (s *SQLiteStorage) GetUserByID(id int64) (*models.User, error) {
	query := `
		SELECT id, email, hashed_password, full_name, is_active, created_at, updated_at
		FROM users
		WHERE id = ?
	`
	return s.scanUser(s.DB.QueryRow(query, id))
}

// CreateUser inserts a user record. The caller supplies the bcrypt hash;
// plaintext never reaches this layer. Duplicate emails surface as
// storage.ErrEmailExists.
func (s *SQLiteStorage) CreateUser(email, hashedPassword, fullName string) (*models.User, error) {
	query := `
		INSERT INTO users (email, hashed_password, full_name, is_active)
		VALUES (?, ?, ?, 1)
	`

	var id int64
	err := retryOperation(func() error {
		res, execErr := s.DB.Exec(query, email, hashedPassword, fullName)
		if execErr != nil {
			return execErr
		}
		id, execErr = res.LastInsertId()
		return execErr
	}, 3, 50*time.Millisecond)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, storage.ErrEmailExists
		}
		return nil, err
	}

	return s.GetUserByID(id)
}

// DeleteUser removes a user; owned transactions cascade via the FK.
func (s *SQLiteStorage) DeleteUser(id int64) (bool, error) {
	res, err := s.DB.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQLiteStorage) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.HashedPassword, &u.FullName, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
