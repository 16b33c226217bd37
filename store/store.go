// Package store is the persistence layer for expense records. Handlers
// depend on the ExpenseStore interface only, so tests run against the
// in-memory implementation while production uses MySQL through gorm.
package store

import (
	"errors"

	"moneymap/models"
)

// ErrNotFound is returned when a record does not exist or belongs to a
// different owner. Callers cannot tell the two cases apart; that keeps
// a caller from probing which ids exist.
var ErrNotFound = errors.New("expense not found")

// Patch is a partial update for an expense. Nil fields are left
// unchanged. The owner id is deliberately not part of a Patch, so
// ownership can never be rewritten after creation.
type Patch struct {
	Amount   *models.Money
	Category *string
	Note     *string
	Date     *models.Date
}

// ExpenseStore is the per-user expense collection contract. Every read
// and write is scoped to an owner id.
type ExpenseStore interface {
	// Create persists the expense and fills in its id and timestamps.
	Create(expense *models.Expense) error

	// ListByOwner returns the owner's expenses, most recent date first.
	ListByOwner(ownerID uint) ([]models.Expense, error)

	// FindByIDAndOwner returns ErrNotFound if the id does not exist or
	// belongs to another owner.
	FindByIDAndOwner(id, ownerID uint) (*models.Expense, error)

	// UpdateByIDAndOwner applies the patch and returns the post-update
	// record, under the same ErrNotFound rule.
	UpdateByIDAndOwner(id, ownerID uint, patch Patch) (*models.Expense, error)

	// DeleteByIDAndOwner removes and returns the record, under the same
	// ErrNotFound rule.
	DeleteByIDAndOwner(id, ownerID uint) (*models.Expense, error)
}
