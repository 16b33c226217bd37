package models

import (
	"time"
)

// Expense is a single recorded spend event. UserID is set at creation
// and never changes; every query against expenses is scoped by it.
// Date is the calendar day of the spend, distinct from CreatedAt.
type Expense struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Amount    Money     `json:"amount" gorm:"type:bigint;not null"`
	Category  string    `json:"category" gorm:"size:50;not null"`
	Note      string    `json:"note" gorm:"size:255"`
	Date      Date      `json:"date" gorm:"type:date;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
}

// TableName sets the table name.
func (Expense) TableName() string {
	return "expenses"
}

// Suggested categories, matching the picker in the mobile app.
// Categories are free-form strings; this list is advisory only.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategorySubscriptions = "Subscriptions"
	CategoryEntertainment = "Entertainment"
	CategoryHealth        = "Health"
	CategoryRent          = "Rent"
	CategoryGroceries     = "Groceries"
	CategoryBills         = "Bills"
)

// GetCategories returns the suggested category names.
func GetCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategorySubscriptions,
		CategoryEntertainment,
		CategoryHealth,
		CategoryRent,
		CategoryGroceries,
		CategoryBills,
	}
}
