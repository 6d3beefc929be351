package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"finance-dashboard/internal/auth"
	"finance-dashboard/internal/generator"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
)

type Handlers struct {
	authService        services.AuthService
	tokens             *auth.TokenService
	transactionService services.TransactionService
	dashboardService   services.DashboardService
	aiChatService      services.AIChatService
	generator          *generator.TransactionGenerator
	categories         []string
}

// NewHandlers creates the REST API handlers.
func NewHandlers(
	authService services.AuthService,
	tokens *auth.TokenService,
	transactionService services.TransactionService,
	dashboardService services.DashboardService,
	aiChatService services.AIChatService,
	categories []string,
) *Handlers {
	return &Handlers{
		authService:        authService,
		tokens:             tokens,
		transactionService: transactionService,
		dashboardService:   dashboardService,
		aiChatService:      aiChatService,
		generator:          generator.NewTransactionGenerator(),
		categories:         categories,
	}
}

// currentUser returns the user placed in the context by AuthMiddleware.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(currentUserKey).(*models.User)
}

// bindJSON binds and validates the request body. Malformed JSON is a 400,
// a failed validation rule is a 422; the response is written either way.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return false
	}
	return true
}

// queryInt parses a query parameter, clamping into [min, max]. Absent or
// unparseable values fall back to the default.
func queryInt(c *gin.Context, name string, defaultValue, min, max int) int {
	value := defaultValue
	if raw := c.Query(name); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			value = parsed
		}
	}
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return value
}

// pathID parses the numeric id path parameter; a non-numeric id behaves
// like a missing resource.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return 0, false
	}
	return id, true
}
