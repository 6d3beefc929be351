package services

import (
	"log"
	"time"

	"github.com/google/uuid"

	"finance-dashboard/internal/kafka"
	"finance-dashboard/internal/logger"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/storage"
)

// TransactionServiceImpl implements TransactionService. The category
// allow-list is injected at construction; Kafka is optional and audit
// publishing is best effort.
type TransactionServiceImpl struct {
	transactions storage.TransactionRepository
	producer     kafka.Producer
	categories   map[string]struct{}
}

// NewTransactionService creates the transaction service. producer may be
// nil when Kafka is not configured.
func NewTransactionService(transactions storage.TransactionRepository, producer kafka.Producer, categories []string) TransactionService {
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return &TransactionServiceImpl{
		transactions: transactions,
		producer:     producer,
		categories:   set,
	}
}

func (s *TransactionServiceImpl) validCategory(category string) bool {
	_, ok := s.categories[category]
	return ok
}

func (s *TransactionServiceImpl) List(userID int64, filter models.TransactionFilter) ([]*models.Transaction, error) {
	return s.transactions.ListTransactions(userID, filter)
}

func (s *TransactionServiceImpl) Get(id, userID int64) (*models.Transaction, error) {
	return s.transactions.GetTransactionByID(id, userID)
}

// Create validates the category before anything is persisted.
func (s *TransactionServiceImpl) Create(userID int64, req *models.TransactionCreate) (*models.Transaction, error) {
	if !s.validCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	tx, err := s.transactions.CreateTransaction(userID, req)
	if err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventTransactionCreated, "api-server", "sqlite", map[string]interface{}{
		"transaction_id": tx.ID,
		"user_id":        userID,
		"type":           tx.Type,
		"category":       tx.Category,
	})
	s.publishAudit("transaction.created", tx)

	return tx, nil
}

// Update validates the new category (when one is supplied) before touching
// the row. A nil result with nil error means not found or not owned.
func (s *TransactionServiceImpl) Update(id, userID int64, req *models.TransactionUpdate) (*models.Transaction, error) {
	if req.Category != nil && !s.validCategory(*req.Category) {
		return nil, ErrInvalidCategory
	}

	tx, err := s.transactions.UpdateTransaction(id, userID, req)
	if err != nil || tx == nil {
		return tx, err
	}

	logger.LogEvent(logger.EventTransactionUpdated, "api-server", "sqlite", map[string]interface{}{
		"transaction_id": tx.ID,
		"user_id":        userID,
	})
	s.publishAudit("transaction.updated", tx)

	return tx, nil
}

func (s *TransactionServiceImpl) Delete(id, userID int64) (bool, error) {
	tx, err := s.transactions.GetTransactionByID(id, userID)
	if err != nil {
		return false, err
	}
	if tx == nil {
		return false, nil
	}

	deleted, err := s.transactions.DeleteTransaction(id, userID)
	if err != nil || !deleted {
		return deleted, err
	}

	logger.LogEvent(logger.EventTransactionDeleted, "api-server", "sqlite", map[string]interface{}{
		"transaction_id": id,
		"user_id":        userID,
	})
	s.publishAudit("transaction.deleted", tx)

	return true, nil
}

// publishAudit sends the audit event when a producer is configured. A
// broker failure is logged and swallowed: the mutation already committed.
func (s *TransactionServiceImpl) publishAudit(eventType string, tx *models.Transaction) {
	if s.producer == nil {
		return
	}

	event := &models.TransactionEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now(),
		Data: models.TransactionEventData{
			TransactionID:   tx.ID,
			UserID:          tx.UserID,
			Amount:          tx.Amount,
			Type:            tx.Type,
			Category:        tx.Category,
			TransactionDate: tx.TransactionDate,
		},
	}

	if err := s.producer.SendTransactionEvent(event); err != nil {
		log.Printf("Warning: failed to publish audit event %s: %v", eventType, err)
		return
	}

	logger.LogEvent(logger.EventKafkaSent, "api-server", "kafka", map[string]interface{}{
		"event_type":     eventType,
		"transaction_id": tx.ID,
	})
}
