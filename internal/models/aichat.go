package models

import (
	"time"
)

// ChatMessageRequest is the AI chat payload. IncludeContext defaults to
// true when omitted.
type ChatMessageRequest struct {
	Question       string `json:"question" binding:"required,min=1,max=500"`
	IncludeContext *bool  `json:"include_context"`
}

// ChatResponse is the AI reply with its generation timestamp.
type ChatResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// QuickQuestionsResponse lists suggested questions.
type QuickQuestionsResponse struct {
	Questions []string `json:"questions"`
}

// BudgetAnalysisRequest selects the trailing analysis window in days.
type BudgetAnalysisRequest struct {
	PeriodDays int `json:"period_days" binding:"omitempty,min=1,max=365"`
}

// AIHealthResponse reports AI gateway connectivity.
type AIHealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatExchange is one stored question/answer pair in the chat history.
type ChatExchange struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
