package store

import (
	"sort"
	"sync"
	"time"

	"moneymap/models"
)

// memoryStore is an in-memory ExpenseStore with the same contract as
// the MySQL implementation. Handler and client tests run against it.
type memoryStore struct {
	mu       sync.RWMutex
	nextID   uint
	expenses map[uint]models.Expense
}

// NewMemoryStore returns an empty in-memory ExpenseStore.
func NewMemoryStore() ExpenseStore {
	return &memoryStore{
		nextID:   1,
		expenses: make(map[uint]models.Expense),
	}
}

func (s *memoryStore) Create(expense *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	expense.ID = s.nextID
	expense.CreatedAt = now
	expense.UpdatedAt = now
	s.nextID++
	s.expenses[expense.ID] = *expense
	return nil
}

func (s *memoryStore) ListByOwner(ownerID uint) ([]models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Expense
	for _, e := range s.expenses {
		if e.UserID == ownerID {
			out = append(out, e)
		}
	}
	// most recent date first, newest record breaking ties
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.After(out[j].Date.Time)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *memoryStore) FindByIDAndOwner(id, ownerID uint) (*models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.expenses[id]
	if !ok || e.UserID != ownerID {
		return nil, ErrNotFound
	}
	out := e
	return &out, nil
}

func (s *memoryStore) UpdateByIDAndOwner(id, ownerID uint, patch Patch) (*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.expenses[id]
	if !ok || e.UserID != ownerID {
		return nil, ErrNotFound
	}

	if patch.Amount != nil {
		e.Amount = *patch.Amount
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	if patch.Note != nil {
		e.Note = *patch.Note
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	e.UpdatedAt = time.Now()
	s.expenses[id] = e

	out := e
	return &out, nil
}

func (s *memoryStore) DeleteByIDAndOwner(id, ownerID uint) (*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.expenses[id]
	if !ok || e.UserID != ownerID {
		return nil, ErrNotFound
	}
	delete(s.expenses, id)

	out := e
	return &out, nil
}
