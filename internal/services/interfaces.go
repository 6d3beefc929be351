package services

import (
	"context"
	"errors"

	"finance-dashboard/internal/models"
)

// ErrEmailTaken signals a registration against an existing email.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCategory signals a category outside the allow-list; nothing is
// persisted when it is returned.
var ErrInvalidCategory = errors.New("invalid category")

// AuthService handles registration and credential checks.
type AuthService interface {
	// Register creates the account; the plaintext password is hashed here
	// and never stored. Returns ErrEmailTaken on a duplicate email.
	Register(req *models.RegisterRequest) (*models.User, error)

	// Authenticate returns the user on valid credentials, or (nil, nil)
	// for a wrong password, unknown email or inactive account.
	Authenticate(email, password string) (*models.User, error)

	// GetUserByEmail looks up a user, or (nil, nil) when absent.
	GetUserByEmail(email string) (*models.User, error)
}

// TransactionService is the ownership-checked CRUD surface.
type TransactionService interface {
	List(userID int64, filter models.TransactionFilter) ([]*models.Transaction, error)
	Get(id, userID int64) (*models.Transaction, error)
	Create(userID int64, req *models.TransactionCreate) (*models.Transaction, error)
	Update(id, userID int64, req *models.TransactionUpdate) (*models.Transaction, error)
	Delete(id, userID int64) (bool, error)
}

// DashboardService computes summaries and trend series.
type DashboardService interface {
	GetSummary(userID int64) (*models.DashboardSummary, error)
	GetTrends(userID int64, period string, limit int) (*models.TrendsResponse, error)
}

// AIChatService assembles financial context and talks to the AI gateway.
type AIChatService interface {
	QuickQuestions() []string
	SendMessage(ctx context.Context, user *models.User, question string, includeContext bool) (*models.ChatResponse, error)
	AnalyzeBudget(ctx context.Context, user *models.User, periodDays int) (*models.ChatResponse, error)
	History(ctx context.Context, userID int64) ([]models.ChatExchange, error)
	CheckHealth(ctx context.Context) string
}
