package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"finance-dashboard/internal/ai"
	"finance-dashboard/internal/logger"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/redis"
	"finance-dashboard/internal/storage"
)

// contextWindowDays bounds the transaction window embedded in chat prompts.
const contextWindowDays = 30

// AIChatServiceImpl implements AIChatService. history may be nil; chat
// history is then simply not stored.
type AIChatServiceImpl struct {
	generator    ai.Generator
	transactions storage.TransactionRepository
	history      *redis.Client
	now          func() time.Time
}

// NewAIChatService creates the AI chat service. history may be nil.
func NewAIChatService(generator ai.Generator, transactions storage.TransactionRepository, history *redis.Client) *AIChatServiceImpl {
	return &AIChatServiceImpl{
		generator:    generator,
		transactions: transactions,
		history:      history,
		now:          time.Now,
	}
}

func (s *AIChatServiceImpl) QuickQuestions() []string {
	return ai.QuickQuestions
}

// SendMessage answers a chat question. With context enabled the last 30
// days of transactions are embedded into the prompt; with no transactions
// in the window the raw question is sent, exactly as if context were off.
func (s *AIChatServiceImpl) SendMessage(ctx context.Context, user *models.User, question string, includeContext bool) (*models.ChatResponse, error) {
	since := s.now().AddDate(0, 0, -contextWindowDays).Format(models.DateLayout)

	transactions, err := s.transactions.ListTransactionsSince(user.ID, since)
	if err != nil {
		return nil, err
	}

	prompt := question
	if includeContext && len(transactions) > 0 {
		var income float64
		txContext := make([]ai.TransactionContext, 0, len(transactions))
		for _, t := range transactions {
			if t.Type == models.TypeIncome {
				income += t.Amount
			}
			txContext = append(txContext, ai.TransactionContext{
				Date:        t.TransactionDate,
				Description: t.Description,
				Amount:      t.Amount,
				Type:        t.Type,
				Category:    t.Category,
			})
		}

		prompt = ai.BuildUserContextPrompt(ai.UserContext{
			Name:   displayName(user),
			Income: income,
		}, txContext, question)
	}

	logger.LogEvent(logger.EventAIRequest, "api-server", "gemini", map[string]interface{}{
		"user_id":         user.ID,
		"include_context": includeContext,
	})

	text, err := s.generator.Generate(ctx, prompt, ai.SystemPrompt)
	if err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventAIResponse, "api-server", "gemini", map[string]interface{}{
		"user_id": user.ID,
		"chars":   len(text),
	})

	response := &models.ChatResponse{Response: text, Timestamp: s.now()}
	s.saveExchange(ctx, user.ID, question, text, response.Timestamp)
	return response, nil
}

// AnalyzeBudget runs a budget review over the trailing periodDays window.
func (s *AIChatServiceImpl) AnalyzeBudget(ctx context.Context, user *models.User, periodDays int) (*models.ChatResponse, error) {
	since := s.now().AddDate(0, 0, -periodDays).Format(models.DateLayout)

	income, err := s.transactions.SumAmountByTypeSince(user.ID, models.TypeIncome, since)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.transactions.ExpensesByCategorySince(user.ID, since)
	if err != nil {
		return nil, err
	}

	var totalSpending float64
	for _, amount := range byCategory {
		totalSpending += amount
	}

	prompt := ai.BuildBudgetAnalysisPrompt(income, totalSpending, byCategory)

	logger.LogEvent(logger.EventAIRequest, "api-server", "gemini", map[string]interface{}{
		"user_id":     user.ID,
		"period_days": periodDays,
	})

	text, err := s.generator.Generate(ctx, prompt, ai.SystemPrompt)
	if err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventAIResponse, "api-server", "gemini", map[string]interface{}{
		"user_id": user.ID,
		"chars":   len(text),
	})

	response := &models.ChatResponse{Response: text, Timestamp: s.now()}
	s.saveExchange(ctx, user.ID, "Budget analysis", text, response.Timestamp)
	return response, nil
}

// History returns stored exchanges, newest first. Without a history store
// it returns an empty list.
func (s *AIChatServiceImpl) History(ctx context.Context, userID int64) ([]models.ChatExchange, error) {
	if s.history == nil {
		return []models.ChatExchange{}, nil
	}
	return s.history.GetChatHistory(ctx, userID)
}

// CheckHealth reports "healthy" or "unhealthy" based on a canary call.
func (s *AIChatServiceImpl) CheckHealth(ctx context.Context) string {
	if s.generator.TestConnection(ctx) {
		return "healthy"
	}
	return "unhealthy"
}

// saveExchange stores the exchange best-effort; a history failure never
// fails the chat request.
func (s *AIChatServiceImpl) saveExchange(ctx context.Context, userID int64, question, response string, ts time.Time) {
	if s.history == nil {
		return
	}

	exchange := models.ChatExchange{
		ID:        uuid.New().String(),
		Question:  question,
		Response:  response,
		Timestamp: ts,
	}
	if err := s.history.SaveChatExchange(ctx, userID, exchange); err != nil {
		log.Printf("Warning: failed to save chat exchange: %v", err)
		return
	}

	logger.LogEvent(logger.EventRedisSaved, "api-server", "redis", map[string]interface{}{
		"user_id": userID,
	})
}

// displayName prefers the full name and falls back to the email local part.
func displayName(user *models.User) string {
	if user.FullName != "" {
		return user.FullName
	}
	if at := strings.Index(user.Email, "@"); at > 0 {
		return user.Email[:at]
	}
	return user.Email
}
