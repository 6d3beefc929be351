package ai

import (
	"fmt"
	"sort"
	"strings"
)

// SystemPrompt is the fixed financial-coach instruction sent alongside
// every contextualized request. It travels with the prompt, never inside
// the user context block.
const SystemPrompt = `You are an expert AI Financial Coach for the Finance Dashboard app.

Your role:
- Analyze user spending patterns and provide actionable insights
- Answer questions about personal finance clearly and concisely
- Suggest practical ways to save money and improve financial health
- Be encouraging and supportive, not judgmental
- Use emojis sparingly for emphasis (1-2 per response max)

Guidelines:
- Keep responses under 200 words unless detailed analysis is requested
- Always cite specific numbers from the user's data when available
- Provide 2-3 concrete suggestions rather than generic advice
- If data is insufficient, ask clarifying questions
- Never recommend risky investments or financial products

Response Format:
- Start with a direct answer to the question
- Provide supporting data/evidence
- End with 1-2 actionable suggestions
- Format responses in plain text without bold (**) or other markdown

Example:
  User: "What are my biggest expenses?"
  Good Response:
  Your Bills & Utilities category is your largest expense at $4000.00, making up 54.1% of your total spending. Transportation comes second at $2000.00 (27%). Here are some ways to reduce these:
  1. Review your utility bills for any services you're not using
  2. Consider carpooling or public transport to reduce transportation costs

  Bad Response:
  Your **Bills & Utilities** category is your **largest expense** at **$4000.00**...`

// QuickQuestions is the fixed suggestion list served without auth.
var QuickQuestions = []string{
	"Why is my spending high this month?",
	"How can I save more money?",
	"What's my biggest expense category?",
	"Am I on track with my budget?",
	"Give me 3 ways to reduce spending",
	"Analyze my spending patterns",
}

// UserContext carries the display data embedded in the context prompt.
type UserContext struct {
	Name   string
	Income float64
}

// TransactionContext is one transaction line of the context window.
type TransactionContext struct {
	Date        string
	Description string
	Amount      float64
	Type        string
	Category    string
}

// BuildUserContextPrompt formats the user's trailing-window finances and
// question into one prompt block. Pure function: totals are re-derived from
// the supplied transaction list, newest first.
func BuildUserContextPrompt(user UserContext, transactions []TransactionContext, question string) string {
	var totalSpent, totalIncome float64
	categorySpending := make(map[string]float64)

	for _, t := range transactions {
		switch t.Type {
		case "expense":
			totalSpent += t.Amount
			category := t.Category
			if category == "" {
				category = "Other"
			}
			categorySpending[category] += t.Amount
		case "income":
			totalIncome += t.Amount
		}
	}

	categoryBreakdown := "No expenses recorded"
	if totalSpent > 0 {
		lines := make([]string, 0, len(categorySpending))
		for _, cat := range sortedByAmountDesc(categorySpending) {
			amt := categorySpending[cat]
			lines = append(lines, fmt.Sprintf("- %s: $%.2f (%.1f%%)", cat, amt, amt/totalSpent*100))
		}
		categoryBreakdown = strings.Join(lines, "\n")
	}

	recentBlock := "No transactions"
	if len(transactions) > 0 {
		recent := transactions
		if len(recent) > 10 {
			recent = recent[:10]
		}
		lines := make([]string, 0, len(recent))
		for _, t := range recent {
			category := t.Category
			if category == "" {
				category = "N/A"
			}
			lines = append(lines, fmt.Sprintf("- %s: %s - $%.2f (%s)", t.Date, t.Description, t.Amount, category))
		}
		recentBlock = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`USER FINANCIAL CONTEXT:
====================
Name: %s
Monthly Income: $%.2f

CURRENT PERIOD SUMMARY:
- Total Spent: $%.2f
- Total Income: $%.2f
- Net: $%.2f

SPENDING BY CATEGORY:
%s

RECENT TRANSACTIONS (Last 10):
%s

USER QUESTION:
%s

Please provide a helpful, data-driven response based on the above context.`,
		user.Name, user.Income,
		totalSpent, totalIncome, totalIncome-totalSpent,
		categoryBreakdown,
		recentBlock,
		question,
	)
}

// BuildBudgetAnalysisPrompt formats a budget-only analysis request.
// Savings rate is (income - spending) / income * 100, zero when income is
// zero.
func BuildBudgetAnalysisPrompt(income, totalSpending float64, categoryBreakdown map[string]float64) string {
	categoriesText := "No expenses recorded"
	if totalSpending > 0 {
		lines := make([]string, 0, len(categoryBreakdown))
		for _, cat := range sortedByAmountDesc(categoryBreakdown) {
			amt := categoryBreakdown[cat]
			lines = append(lines, fmt.Sprintf("- %s: $%.2f (%.1f%%)", cat, amt, amt/totalSpending*100))
		}
		categoriesText = strings.Join(lines, "\n")
	}

	savingsRate := 0.0
	if income > 0 {
		savingsRate = (income - totalSpending) / income * 100
	}

	return fmt.Sprintf(`Analyze this budget and provide recommendations:

Monthly Income: $%.2f
Total Spending: $%.2f
Savings Rate: %.1f%%

Category Breakdown:
%s

Provide:
1. Overall assessment (good/concerning/needs improvement)
2. Apply the 50/30/20 rule and compare with actual spending
3. Top 2-3 specific recommendations to improve financial health`,
		income, totalSpending, savingsRate, categoriesText,
	)
}

// sortedByAmountDesc orders category names by summed amount, largest first;
// name ascending on equal amounts keeps output deterministic.
func sortedByAmountDesc(sums map[string]float64) []string {
	categories := make([]string, 0, len(sums))
	for cat := range sums {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool {
		if sums[categories[i]] != sums[categories[j]] {
			return sums[categories[i]] > sums[categories[j]]
		}
		return categories[i] < categories[j]
	})
	return categories
}
