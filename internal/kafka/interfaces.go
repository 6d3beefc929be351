package kafka

import (
	"finance-dashboard/internal/models"
)

// Producer publishes transaction audit events.
type Producer interface {
	SendTransactionEvent(event *models.TransactionEvent) error

	Close() error
}
