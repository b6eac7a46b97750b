package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"punchcard-backend/models"
)

// ErrInsufficientPunches is returned by SpendPunches when the customer's
// balance is below the requested tier at update time.
var ErrInsufficientPunches = errors.New("insufficient punches")

// CustomerStore specifies customer persistence operations. Implementations
// are injected into controllers; missing records surface as
// gorm.ErrRecordNotFound.
type CustomerStore interface {
	Create(ctx context.Context, c *models.Customer) (*models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	FindByContact(ctx context.Context, identifier string) (*models.Customer, error)
	ContactExists(ctx context.Context, phone, email *string) (bool, error)
	List(ctx context.Context, limit int) ([]models.Customer, error)
	AddPunches(ctx context.Context, id string, punches int, amount float64) (*models.Customer, error)
	SpendPunches(ctx context.Context, id string, tier int) (*models.Customer, error)
}

// GormCustomerStore implements CustomerStore using GORM.
type GormCustomerStore struct {
	db *gorm.DB
}

func NewGormCustomerStore(db *gorm.DB) *GormCustomerStore {
	return &GormCustomerStore{db: db}
}

func (s *GormCustomerStore) Create(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GormCustomerStore) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByContact matches the identifier against stored phones exactly and
// stored emails case-insensitively. Both fields are normalized at write
// time, so a single two-clause query suffices.
func (s *GormCustomerStore) FindByContact(ctx context.Context, identifier string) (*models.Customer, error) {
	var c models.Customer
	err := s.db.WithContext(ctx).
		Where("phone = ? OR email = ?", identifier, strings.ToLower(identifier)).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ContactExists reports whether any customer already holds the given phone
// or email. Nil arguments are skipped; at least one must be non-nil.
func (s *GormCustomerStore) ContactExists(ctx context.Context, phone, email *string) (bool, error) {
	q := s.db.WithContext(ctx).Model(&models.Customer{})
	switch {
	case phone != nil && email != nil:
		q = q.Where("phone = ? OR email = ?", *phone, *email)
	case phone != nil:
		q = q.Where("phone = ?", *phone)
	default:
		q = q.Where("email = ?", *email)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormCustomerStore) List(ctx context.Context, limit int) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// AddPunches increments the punch counter and running spend total in a
// single expression-based update, then returns the refreshed record.
func (s *GormCustomerStore) AddPunches(ctx context.Context, id string, punches int, amount float64) (*models.Customer, error) {
	res := s.db.WithContext(ctx).Model(&models.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"punches":     gorm.Expr("punches + ?", punches),
			"total_spent": gorm.Expr("total_spent + ?", amount),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.GetByID(ctx, id)
}

// SpendPunches decrements the punch counter by the tier size. The balance
// check lives in the UPDATE's WHERE clause, so two concurrent redemptions
// cannot jointly overdraw the counter below zero.
func (s *GormCustomerStore) SpendPunches(ctx context.Context, id string, tier int) (*models.Customer, error) {
	res := s.db.WithContext(ctx).Model(&models.Customer{}).
		Where("id = ? AND punches >= ?", id, tier).
		Update("punches", gorm.Expr("punches - ?", tier))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Either the customer is unknown or the balance was spent first;
		// re-read to tell the two apart.
		if _, err := s.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrInsufficientPunches
	}
	return s.GetByID(ctx, id)
}
