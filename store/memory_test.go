package store

import (
	"testing"
	"time"

	"moneymap/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExpense(ownerID uint, amount models.Money, category string, date models.Date) *models.Expense {
	return &models.Expense{
		UserID:   ownerID,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
}

func TestMemoryStoreCreateAndFind(t *testing.T) {
	s := NewMemoryStore()

	e := newExpense(1, 4250, "Rent", models.NewDate(2024, time.January, 15))
	require.NoError(t, s.Create(e))
	assert.NotZero(t, e.ID)
	assert.False(t, e.CreatedAt.IsZero())

	// round trip: identical amount, category, date
	got, err := s.FindByIDAndOwner(e.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, models.Money(4250), got.Amount)
	assert.Equal(t, "Rent", got.Category)
	assert.Equal(t, "2024-01-15", got.Date.String())
}

func TestMemoryStoreOwnershipIsolation(t *testing.T) {
	s := NewMemoryStore()

	mine := newExpense(1, 1000, "Food", models.NewDate(2024, time.January, 1))
	require.NoError(t, s.Create(mine))

	// another user cannot see, update, or delete the record, and the
	// failure is indistinguishable from a missing id
	_, err := s.FindByIDAndOwner(mine.ID, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	cat := "Hijacked"
	_, err = s.UpdateByIDAndOwner(mine.ID, 2, Patch{Category: &cat})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.DeleteByIDAndOwner(mine.ID, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := s.ListByOwner(2)
	require.NoError(t, err)
	assert.Empty(t, list)

	// the record is untouched
	got, err := s.FindByIDAndOwner(mine.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Food", got.Category)
}

func TestMemoryStoreListOrder(t *testing.T) {
	s := NewMemoryStore()

	older := newExpense(1, 100, "Food", models.NewDate(2024, time.January, 1))
	newer := newExpense(1, 200, "Food", models.NewDate(2024, time.January, 3))
	middle := newExpense(1, 300, "Food", models.NewDate(2024, time.January, 2))
	require.NoError(t, s.Create(older))
	require.NoError(t, s.Create(newer))
	require.NoError(t, s.Create(middle))

	list, err := s.ListByOwner(1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2024-01-03", list[0].Date.String())
	assert.Equal(t, "2024-01-02", list[1].Date.String())
	assert.Equal(t, "2024-01-01", list[2].Date.String())
}

func TestMemoryStoreUpdatePatch(t *testing.T) {
	s := NewMemoryStore()

	e := newExpense(1, 1000, "Food", models.NewDate(2024, time.January, 1))
	e.Note = "lunch"
	require.NoError(t, s.Create(e))

	amount := models.Money(1500)
	updated, err := s.UpdateByIDAndOwner(e.ID, 1, Patch{Amount: &amount})
	require.NoError(t, err)

	// patched field changed, everything else kept
	assert.Equal(t, models.Money(1500), updated.Amount)
	assert.Equal(t, "Food", updated.Category)
	assert.Equal(t, "lunch", updated.Note)
	// owner is not patchable at all
	assert.Equal(t, uint(1), updated.UserID)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()

	e := newExpense(1, 1000, "Food", models.NewDate(2024, time.January, 1))
	require.NoError(t, s.Create(e))

	deleted, err := s.DeleteByIDAndOwner(e.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, e.ID, deleted.ID)

	// deleting again reports NotFound, not a silent success
	_, err = s.DeleteByIDAndOwner(e.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.FindByIDAndOwner(e.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
