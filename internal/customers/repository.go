package customers

import (
	"context"
	"errors"
	"fmt"

	"cinebox/internal/shared/fault"

	"gorm.io/gorm"
)

// Repository provides access to customers
type Repository interface {
	FindByPhone(ctx context.Context, phone string) (*Customer, error)
	// ResolveByPhone finds or creates a customer inside tx. An
	// existing customer with a different recorded name gets the name
	// refreshed.
	ResolveByPhone(ctx context.Context, tx *gorm.DB, name, phone string) (*Customer, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByPhone(ctx context.Context, phone string) (*Customer, error) {
	var customer Customer
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: customer with phone %s", fault.ErrNotFound, phone)
	}
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return &customer, nil
}

func (r *repository) ResolveByPhone(ctx context.Context, tx *gorm.DB, name, phone string) (*Customer, error) {
	var customer Customer
	err := tx.WithContext(ctx).Where("phone = ?", phone).First(&customer).Error
	switch {
	case err == nil:
		if customer.Name != name {
			customer.Name = name
			if err := tx.WithContext(ctx).Save(&customer).Error; err != nil {
				return nil, fmt.Errorf("refresh customer name: %w", err)
			}
		}
		return &customer, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		customer = Customer{Name: name, Phone: phone}
		if err := tx.WithContext(ctx).Create(&customer).Error; err != nil {
			return nil, fmt.Errorf("create customer: %w", err)
		}
		// Re-read to confirm the row landed with an id.
		var created Customer
		if err := tx.WithContext(ctx).Where("phone = ?", phone).First(&created).Error; err != nil {
			return nil, fmt.Errorf("%w: customer insert not visible", fault.ErrStorageUnavailable)
		}
		return &created, nil

	default:
		return nil, fmt.Errorf("resolve customer: %w", err)
	}
}
