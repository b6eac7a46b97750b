package store

import (
	"context"

	"gorm.io/gorm"

	"punchcard-backend/models"
)

// TransactionStore specifies ledger persistence operations. The ledger is
// append-only: no update or delete methods exist.
type TransactionStore interface {
	Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error)
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]models.Transaction, error)
	List(ctx context.Context, limit int) ([]models.Transaction, error)
}

// GormTransactionStore implements TransactionStore using GORM.
type GormTransactionStore struct {
	db *gorm.DB
}

func NewGormTransactionStore(db *gorm.DB) *GormTransactionStore {
	return &GormTransactionStore{db: db}
}

func (s *GormTransactionStore) Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (s *GormTransactionStore) ListByCustomer(ctx context.Context, customerID string, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *GormTransactionStore) List(ctx context.Context, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}
