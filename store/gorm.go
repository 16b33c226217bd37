package store

import (
	"errors"

	"moneymap/models"

	"gorm.io/gorm"
)

// gormStore is the MySQL-backed ExpenseStore.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a gorm handle in the ExpenseStore contract.
func NewGormStore(db *gorm.DB) ExpenseStore {
	return &gormStore{db: db}
}

func (s *gormStore) Create(expense *models.Expense) error {
	return s.db.Create(expense).Error
}

func (s *gormStore) ListByOwner(ownerID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.Where("user_id = ?", ownerID).
		Order("date DESC, id DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (s *gormStore) FindByIDAndOwner(id, ownerID uint) (*models.Expense, error) {
	var expense models.Expense
	err := s.db.Where("id = ? AND user_id = ?", id, ownerID).First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

func (s *gormStore) UpdateByIDAndOwner(id, ownerID uint, patch Patch) (*models.Expense, error) {
	expense, err := s.FindByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if patch.Amount != nil {
		updates["amount"] = *patch.Amount
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Note != nil {
		updates["note"] = *patch.Note
	}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if len(updates) == 0 {
		return expense, nil
	}

	if err := s.db.Model(expense).Updates(updates).Error; err != nil {
		return nil, err
	}

	// return the post-update state
	return s.FindByIDAndOwner(id, ownerID)
}

func (s *gormStore) DeleteByIDAndOwner(id, ownerID uint) (*models.Expense, error) {
	expense, err := s.FindByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(expense).Error; err != nil {
		return nil, err
	}
	return expense, nil
}
