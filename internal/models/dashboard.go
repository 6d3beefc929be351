package models

// DashboardSummary aggregates a user's financial position. Monetary totals
// are serialized as fixed-point decimal strings ("1234.50").
type DashboardSummary struct {
	TotalIncome        string            `json:"total_income"`
	TotalExpense       string            `json:"total_expense"`
	Balance            string            `json:"balance"`
	RecentTransactions []*Transaction    `json:"recent_transactions"`
	ExpensesByCategory map[string]string `json:"expenses_by_category"`
}

// TrendPoint is one period bucket of the trend series.
type TrendPoint struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// TrendsResponse is the trend series response, oldest bucket first.
type TrendsResponse struct {
	Data   []TrendPoint `json:"data"`
	Period string       `json:"period"`
}
