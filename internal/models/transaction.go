package models

import (
	"time"
)

// Transaction types form a closed two-value enumeration.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// DateLayout is the wire and storage format of transaction_date.
// Transaction dates are calendar dates with no time component.
const DateLayout = "2006-01-02"

// Transaction represents a single financial event owned by one user.
type Transaction struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Amount          float64   `json:"amount"`
	Description     string    `json:"description"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	TransactionDate string    `json:"transaction_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TransactionCreate is the creation payload. Category membership in the
// allow-list is checked by the service layer, not by binding.
type TransactionCreate struct {
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	Description     string  `json:"description" binding:"required,min=1,max=500"`
	Type            string  `json:"type" binding:"required,oneof=income expense"`
	Category        string  `json:"category" binding:"required,min=1,max=50"`
	TransactionDate string  `json:"transaction_date" binding:"required,datetime=2006-01-02"`
}

// TransactionUpdate is a partial update: nil fields keep their prior values.
type TransactionUpdate struct {
	Amount          *float64 `json:"amount" binding:"omitempty,gt=0"`
	Description     *string  `json:"description" binding:"omitempty,min=1,max=500"`
	Type            *string  `json:"type" binding:"omitempty,oneof=income expense"`
	Category        *string  `json:"category" binding:"omitempty,min=1,max=50"`
	TransactionDate *string  `json:"transaction_date" binding:"omitempty,datetime=2006-01-02"`
}

// TransactionFilter narrows and pages a transaction listing.
type TransactionFilter struct {
	Type     string
	Category string
	Skip     int
	Limit    int
}

// TransactionEvent is the audit event published to Kafka after a mutation.
type TransactionEvent struct {
	EventID   string               `json:"event_id"`
	EventType string               `json:"event_type"`
	Timestamp time.Time            `json:"timestamp"`
	Data      TransactionEventData `json:"data"`
}

// TransactionEventData carries the mutated transaction's key fields.
type TransactionEventData struct {
	TransactionID   int64   `json:"transaction_id"`
	UserID          int64   `json:"user_id"`
	Amount          float64 `json:"amount"`
	Type            string  `json:"type"`
	Category        string  `json:"category"`
	TransactionDate string  `json:"transaction_date"`
}
