package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboardSummary returns the user's financial position
// @Summary Dashboard summary
// @Description Returns lifetime totals, the ten most recent transactions and the per-category expense breakdown
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardSummary "Summary"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Router /dashboard/summary [get]
func (h *Handlers) GetDashboardSummary(c *gin.Context) {
	user := currentUser(c)

	summary, err := h.dashboardService.GetSummary(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetTransactionTrends returns income/expense series over time
// @Summary Transaction trends
// @Description Returns per-period income and expense buckets, oldest first
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param period query string false "Bucket size (daily|weekly|monthly)" default(monthly)
// @Param limit query int false "Number of buckets (1-30)" default(12)
// @Success 200 {object} models.TrendsResponse "Trend series"
// @Failure 422 {object} map[string]string "Unknown period"
// @Router /dashboard/trends [get]
func (h *Handlers) GetTransactionTrends(c *gin.Context) {
	user := currentUser(c)

	period := c.DefaultQuery("period", "monthly")
	switch period {
	case "daily", "weekly", "monthly":
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "period must be one of: daily, weekly, monthly"})
		return
	}

	limit := queryInt(c, "limit", 12, 1, 30)

	trends, err := h.dashboardService.GetTrends(user.ID, period, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get trends"})
		return
	}

	c.JSON(http.StatusOK, trends)
}
