package generator

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"finance-dashboard/config"
	"finance-dashboard/internal/models"
)

// TransactionGenerator produces plausible sample transactions for demos
// and seeding. Safe for concurrent use: one instance is shared across
// request handlers and the mutex serializes access to the random source.
type TransactionGenerator struct {
	mu         sync.Mutex
	rand       *rand.Rand
	categories []string
}

func NewTransactionGenerator() *TransactionGenerator {
	return &TransactionGenerator{
		rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		categories: config.DefaultCategories,
	}
}

var expenseDescriptions = map[string][]string{
	"Food & Dining":     {"Grocery run", "Lunch out", "Coffee", "Dinner with friends"},
	"Shopping":          {"New shoes", "Electronics", "Clothes", "Household items"},
	"Transportation":    {"Fuel", "Bus pass", "Taxi ride", "Parking"},
	"Bills & Utilities": {"Electricity bill", "Internet bill", "Phone bill", "Water bill"},
	"Entertainment":     {"Cinema tickets", "Concert", "Streaming subscription", "Video game"},
	"Healthcare":        {"Pharmacy", "Dental checkup", "Doctor visit", "Glasses"},
	"Education":         {"Online course", "Textbooks", "Language classes", "Workshop fee"},
	"Personal Care":     {"Haircut", "Gym membership", "Skincare", "Spa visit"},
	"Travel":            {"Flight tickets", "Hotel night", "Train tickets", "Car rental"},
	"Other":             {"Gift", "Donation", "Repair", "Miscellaneous"},
}

var incomeDescriptions = map[string][]string{
	"Income": {"Monthly salary", "Bonus payment", "Dividend payout", "Freelance payment"},
	"Other":  {"Cash gift", "Refund", "Side gig payment"},
}

// GenerateExpense produces a random expense dated within the last 60 days.
func (g *TransactionGenerator) GenerateExpense() *models.TransactionCreate {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generateExpense()
}

func (g *TransactionGenerator) generateExpense() *models.TransactionCreate {
	category := g.pickCategory(expenseDescriptions)
	return &models.TransactionCreate{
		Amount:          g.roundToTwoDecimals(5.0 + g.rand.Float64()*295.0),
		Description:     g.pickDescription(expenseDescriptions, category),
		Type:            models.TypeExpense,
		Category:        category,
		TransactionDate: g.recentDate(),
	}
}

// GenerateIncome produces a random income entry dated within the last 60
// days.
func (g *TransactionGenerator) GenerateIncome() *models.TransactionCreate {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generateIncome()
}

func (g *TransactionGenerator) generateIncome() *models.TransactionCreate {
	category := g.pickCategory(incomeDescriptions)
	return &models.TransactionCreate{
		Amount:          g.roundToTwoDecimals(500.0 + g.rand.Float64()*4500.0),
		Description:     g.pickDescription(incomeDescriptions, category),
		Type:            models.TypeIncome,
		Category:        category,
		TransactionDate: g.recentDate(),
	}
}

// GenerateTransaction produces an expense four times out of five, matching
// the usual shape of personal spending data.
func (g *TransactionGenerator) GenerateTransaction() *models.TransactionCreate {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.rand.Intn(5) == 0 {
		return g.generateIncome()
	}
	return g.generateExpense()
}

func (g *TransactionGenerator) pickCategory(pool map[string][]string) string {
	candidates := make([]string, 0, len(pool))
	for _, category := range g.categories {
		if _, ok := pool[category]; ok {
			candidates = append(candidates, category)
		}
	}
	return candidates[g.rand.Intn(len(candidates))]
}

func (g *TransactionGenerator) pickDescription(pool map[string][]string, category string) string {
	options := pool[category]
	return options[g.rand.Intn(len(options))]
}

func (g *TransactionGenerator) recentDate() string {
	daysAgo := g.rand.Intn(60)
	return time.Now().AddDate(0, 0, -daysAgo).Format(models.DateLayout)
}

func (g *TransactionGenerator) roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
