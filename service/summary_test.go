package service

import (
	"encoding/json"
	"testing"
	"time"

	"moneymap/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(amount models.Money, category string, date models.Date) models.Expense {
	return models.Expense{UserID: 1, Amount: amount, Category: category, Date: date}
}

func TestBuildSummaryCategoryTotals(t *testing.T) {
	jan1 := models.NewDate(2024, time.January, 1)
	s := BuildSummary([]models.Expense{
		expense(1000, "Food", jan1),
		expense(500, "Food", jan1),
		expense(2000, "Transport", jan1),
	})

	assert.Equal(t, map[string]models.Money{
		"Food":      1500,
		"Transport": 2000,
	}, s.CategoryTotals)
}

func TestBuildSummaryDailyTotals(t *testing.T) {
	s := BuildSummary([]models.Expense{
		expense(1000, "Food", models.NewDate(2024, time.January, 2)),
		expense(500, "Transport", models.NewDate(2024, time.January, 2)),
		expense(100, "Food", models.NewDate(2024, time.January, 1)),
	})

	// ascending by date, one entry per distinct day
	require.Len(t, s.DailyTotals, 2)
	assert.Equal(t, DailyTotal{Date: "2024-01-01", Total: 100}, s.DailyTotals[0])
	assert.Equal(t, DailyTotal{Date: "2024-01-02", Total: 1500}, s.DailyTotals[1])
}

func TestBuildSummaryEmpty(t *testing.T) {
	s := BuildSummary(nil)

	// empty aggregates serialize as {} and [], not null
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"categoryTotals":{},"dailyTotals":[]}`, string(b))
}

func TestBuildSummaryNotesIrrelevant(t *testing.T) {
	jan1 := models.NewDate(2024, time.January, 1)
	with := expense(1000, "Food", jan1)
	with.Note = "team lunch"
	without := expense(1000, "Food", jan1)

	a := BuildSummary([]models.Expense{with})
	b := BuildSummary([]models.Expense{without})
	assert.Equal(t, a, b)
}

func TestBuildSummaryJSONShape(t *testing.T) {
	s := BuildSummary([]models.Expense{
		expense(4250, "Rent", models.NewDate(2024, time.March, 1)),
	})

	b, err := json.Marshal(s)
	require.NoError(t, err)
	// camelCase keys and decimal amounts, as the dashboard expects
	assert.JSONEq(t, `{
		"categoryTotals": {"Rent": 42.50},
		"dailyTotals": [{"date": "2024-03-01", "total": 42.50}]
	}`, string(b))
}
