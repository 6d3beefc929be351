package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
)

func (h *Handlers) invalidCategoryResponse(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": fmt.Sprintf("Invalid category. Must be one of: %s", strings.Join(h.categories, ", ")),
	})
}

// ListTransactions returns the current user's transactions
// @Summary List transactions
// @Description Returns the user's transactions, newest first, with optional type/category filters and pagination
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Maximum records to return (1-100)" default(20)
// @Param type query string false "Filter by type (income|expense)"
// @Param category query string false "Filter by category"
// @Success 200 {array} models.Transaction "Transactions"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Router /transactions [get]
func (h *Handlers) ListTransactions(c *gin.Context) {
	user := currentUser(c)

	filter := models.TransactionFilter{
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Skip:     queryInt(c, "skip", 0, 0, 1<<30),
		Limit:    queryInt(c, "limit", 20, 1, 100),
	}

	transactions, err := h.transactionService.List(user.ID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// GetTransaction returns one transaction by id
// @Summary Get a transaction
// @Description Returns a single transaction; someone else's id looks identical to a missing one
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} models.Transaction "Transaction"
// @Failure 404 {object} map[string]string "Not found or not owned"
// @Router /transactions/{id} [get]
func (h *Handlers) GetTransaction(c *gin.Context) {
	user := currentUser(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	tx, err := h.transactionService.Get(id, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transaction"})
		return
	}
	if tx == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	c.JSON(http.StatusOK, tx)
}

// CreateTransaction records a new transaction
// @Summary Create a transaction
// @Description Creates a transaction owned by the current user
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param transaction body models.TransactionCreate true "Transaction data"
// @Success 201 {object} models.Transaction "Created transaction"
// @Failure 400 {object} map[string]string "Invalid category or malformed body"
// @Failure 422 {object} map[string]string "Validation failed"
// @Router /transactions [post]
func (h *Handlers) CreateTransaction(c *gin.Context) {
	user := currentUser(c)

	var req models.TransactionCreate
	if !bindJSON(c, &req) {
		return
	}

	tx, err := h.transactionService.Create(user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			h.invalidCategoryResponse(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// UpdateTransaction partially updates a transaction
// @Summary Update a transaction
// @Description Applies only the provided fields; omitted fields keep their values
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param transaction body models.TransactionUpdate true "Fields to update"
// @Success 200 {object} models.Transaction "Updated transaction"
// @Failure 400 {object} map[string]string "Invalid category or malformed body"
// @Failure 404 {object} map[string]string "Not found or not owned"
// @Failure 422 {object} map[string]string "Validation failed"
// @Router /transactions/{id} [put]
func (h *Handlers) UpdateTransaction(c *gin.Context) {
	user := currentUser(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.TransactionUpdate
	if !bindJSON(c, &req) {
		return
	}

	tx, err := h.transactionService.Update(id, user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			h.invalidCategoryResponse(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		return
	}
	if tx == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	c.JSON(http.StatusOK, tx)
}

// DeleteTransaction removes a transaction
// @Summary Delete a transaction
// @Description Deletes the transaction when it exists and is owned by the current user
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Not found or not owned"
// @Router /transactions/{id} [delete]
func (h *Handlers) DeleteTransaction(c *gin.Context) {
	user := currentUser(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := h.transactionService.Delete(id, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// GenerateSampleTransaction produces a random transaction payload
// @Summary Generate a sample transaction
// @Description Returns a random valid transaction payload for demos and manual testing; nothing is persisted
// @Tags transactions
// @Produce json
// @Success 200 {object} models.TransactionCreate "Sample transaction"
// @Router /transactions/generate [get]
func (h *Handlers) GenerateSampleTransaction(c *gin.Context) {
	c.JSON(http.StatusOK, h.generator.GenerateTransaction())
}

// GetCategories returns the category allow-list
// @Summary List valid categories
// @Description Returns the categories accepted by create and update
// @Tags transactions
// @Produce json
// @Success 200 {object} map[string][]string "Categories"
// @Router /transactions/categories [get]
func (h *Handlers) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.categories})
}
