package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"finance-dashboard/internal/models"
)

const defaultBudgetPeriodDays = 30

// GetQuickQuestions returns suggested chat questions
// @Summary Quick questions
// @Description Returns the predefined questions shown as chat suggestions
// @Tags ai-chat
// @Produce json
// @Success 200 {object} models.QuickQuestionsResponse "Questions"
// @Router /ai-chat/quick-questions [get]
func (h *Handlers) GetQuickQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, models.QuickQuestionsResponse{Questions: h.aiChatService.QuickQuestions()})
}

// SendChatMessage forwards a question to the AI coach
// @Summary Send a chat message
// @Description Answers the question, optionally embedding the user's last 30 days of transactions as context
// @Tags ai-chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body models.ChatMessageRequest true "Question"
// @Success 200 {object} models.ChatResponse "AI reply"
// @Failure 422 {object} map[string]string "Validation failed"
// @Failure 500 {object} map[string]string "AI generation failed"
// @Router /ai-chat/message [post]
func (h *Handlers) SendChatMessage(c *gin.Context) {
	user := currentUser(c)

	var req models.ChatMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	includeContext := true
	if req.IncludeContext != nil {
		includeContext = *req.IncludeContext
	}

	resp, err := h.aiChatService.SendMessage(c.Request.Context(), user, req.Question, includeContext)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate response: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AnalyzeBudget requests a budget review
// @Summary Analyze budget
// @Description Runs an AI budget analysis over the trailing period
// @Tags ai-chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.BudgetAnalysisRequest true "Analysis window"
// @Success 200 {object} models.ChatResponse "Analysis"
// @Failure 422 {object} map[string]string "Validation failed"
// @Failure 500 {object} map[string]string "Analysis failed"
// @Router /ai-chat/analyze-budget [post]
func (h *Handlers) AnalyzeBudget(c *gin.Context) {
	user := currentUser(c)

	var req models.BudgetAnalysisRequest
	if !bindJSON(c, &req) {
		return
	}

	periodDays := req.PeriodDays
	if periodDays == 0 {
		periodDays = defaultBudgetPeriodDays
	}

	resp, err := h.aiChatService.AnalyzeBudget(c.Request.Context(), user, periodDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetChatHistory returns stored chat exchanges
// @Summary Chat history
// @Description Returns the user's recent question/answer pairs, newest first
// @Tags ai-chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]models.ChatExchange "History"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Router /ai-chat/history [get]
func (h *Handlers) GetChatHistory(c *gin.Context) {
	user := currentUser(c)

	history, err := h.aiChatService.History(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get chat history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

// GetAIHealth reports AI gateway connectivity
// @Summary AI health check
// @Description Sends a canary prompt to the model and reports healthy or unhealthy
// @Tags ai-chat
// @Produce json
// @Success 200 {object} models.AIHealthResponse "Status"
// @Router /ai-chat/health [get]
func (h *Handlers) GetAIHealth(c *gin.Context) {
	status := h.aiChatService.CheckHealth(c.Request.Context())
	c.JSON(http.StatusOK, models.AIHealthResponse{
		Status:    status,
		Service:   "gemini-api",
		Timestamp: time.Now(),
	})
}
