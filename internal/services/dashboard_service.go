package services

import (
	"fmt"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/storage"
)

const recentTransactionsLimit = 10

// DashboardServiceImpl implements DashboardService over the transaction
// aggregates. now is injectable so trend windows are testable.
type DashboardServiceImpl struct {
	transactions storage.TransactionRepository
	now          func() time.Time
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(transactions storage.TransactionRepository) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		transactions: transactions,
		now:          time.Now,
	}
}

// money formats a monetary total as a fixed two-decimal string.
func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// GetSummary computes lifetime totals, the ten most recent transactions and
// the per-category expense breakdown. Collections are empty, never null.
func (s *DashboardServiceImpl) GetSummary(userID int64) (*models.DashboardSummary, error) {
	totalIncome, err := s.transactions.SumAmountByType(userID, models.TypeIncome)
	if err != nil {
		return nil, err
	}

	totalExpense, err := s.transactions.SumAmountByType(userID, models.TypeExpense)
	if err != nil {
		return nil, err
	}

	recent, err := s.transactions.RecentTransactions(userID, recentTransactionsLimit)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.transactions.ExpensesByCategory(userID)
	if err != nil {
		return nil, err
	}

	expensesByCategory := make(map[string]string, len(byCategory))
	for category, total := range byCategory {
		expensesByCategory[category] = money(total)
	}

	return &models.DashboardSummary{
		TotalIncome:        money(totalIncome),
		TotalExpense:       money(totalExpense),
		Balance:            money(totalIncome - totalExpense),
		RecentTransactions: recent,
		ExpensesByCategory: expensesByCategory,
	}, nil
}

// GetTrends returns exactly limit buckets, oldest first. An unknown period
// falls back to daily; the handler rejects it before we get here. Monthly
// buckets step back in 30-day strides and sum the calendar month each
// stride lands in, so a long month can repeat and a short one can be
// skipped. The dashboard graph tolerates that; exact calendar arithmetic
// would change the emitted labels.
func (s *DashboardServiceImpl) GetTrends(userID int64, period string, limit int) (*models.TrendsResponse, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > 30 {
		limit = 30
	}

	now := s.now()
	data := make([]models.TrendPoint, 0, limit)

	for i := limit - 1; i >= 0; i-- {
		var point models.TrendPoint
		var err error

		switch period {
		case "monthly":
			point, err = s.monthlyPoint(userID, now.AddDate(0, 0, -i*30))
		case "weekly":
			point, err = s.weeklyPoint(userID, now.AddDate(0, 0, -(i+1)*7), now.AddDate(0, 0, -i*7))
		default:
			point, err = s.dailyPoint(userID, now.AddDate(0, 0, -i))
		}
		if err != nil {
			return nil, err
		}
		data = append(data, point)
	}

	return &models.TrendsResponse{Data: data, Period: period}, nil
}

func (s *DashboardServiceImpl) monthlyPoint(userID int64, ref time.Time) (models.TrendPoint, error) {
	income, err := s.transactions.SumAmountByTypeInMonth(userID, models.TypeIncome, ref.Month(), ref.Year())
	if err != nil {
		return models.TrendPoint{}, err
	}
	expense, err := s.transactions.SumAmountByTypeInMonth(userID, models.TypeExpense, ref.Month(), ref.Year())
	if err != nil {
		return models.TrendPoint{}, err
	}
	return models.TrendPoint{
		Date:    ref.Format("Jan 2006"),
		Income:  income,
		Expense: expense,
	}, nil
}

func (s *DashboardServiceImpl) weeklyPoint(userID int64, start, end time.Time) (models.TrendPoint, error) {
	startDate := start.Format(models.DateLayout)
	endDate := end.Format(models.DateLayout)

	income, err := s.transactions.SumAmountByTypeBetween(userID, models.TypeIncome, startDate, endDate)
	if err != nil {
		return models.TrendPoint{}, err
	}
	expense, err := s.transactions.SumAmountByTypeBetween(userID, models.TypeExpense, startDate, endDate)
	if err != nil {
		return models.TrendPoint{}, err
	}
	return models.TrendPoint{
		Date:    "Week " + start.Format("01/02"),
		Income:  income,
		Expense: expense,
	}, nil
}

func (s *DashboardServiceImpl) dailyPoint(userID int64, day time.Time) (models.TrendPoint, error) {
	date := day.Format(models.DateLayout)

	income, err := s.transactions.SumAmountByTypeOnDate(userID, models.TypeIncome, date)
	if err != nil {
		return models.TrendPoint{}, err
	}
	expense, err := s.transactions.SumAmountByTypeOnDate(userID, models.TypeExpense, date)
	if err != nil {
		return models.TrendPoint{}, err
	}
	return models.TrendPoint{
		Date:    day.Format("Jan 02"),
		Income:  income,
		Expense: expense,
	}, nil
}
