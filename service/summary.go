package service

import (
	"sort"

	"moneymap/models"
)

// DailyTotal is the total spent on one calendar day.
type DailyTotal struct {
	Date  string       `json:"date"`
	Total models.Money `json:"total"`
}

// Summary is the derived aggregation of a user's expenses. It is never
// persisted; every request recomputes it from the full expense set.
// The JSON keys are camelCase because the mobile dashboard consumes
// them as-is.
type Summary struct {
	CategoryTotals map[string]models.Money `json:"categoryTotals"`
	DailyTotals    []DailyTotal            `json:"dailyTotals"`
}

// BuildSummary groups expenses by category and by calendar day in a
// single pass. Days are keyed by the stored date's UTC calendar day
// ("2006-01-02") and emitted in ascending order; categories without
// expenses are simply absent, not zero-filled. Notes play no part in
// aggregation.
func BuildSummary(expenses []models.Expense) Summary {
	categories := make(map[string]models.Money)
	days := make(map[string]models.Money)

	for _, e := range expenses {
		categories[e.Category] += e.Amount
		days[e.Date.String()] += e.Amount
	}

	dates := make([]string, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	daily := make([]DailyTotal, 0, len(dates))
	for _, d := range dates {
		daily = append(daily, DailyTotal{Date: d, Total: days[d]})
	}

	return Summary{
		CategoryTotals: categories,
		DailyTotals:    daily,
	}
}
