package pricing

import (
	"context"
	"errors"
	"fmt"

	"cinebox/internal/shared/fault"

	"gorm.io/gorm"
)

// Repository provides access to price listings
type Repository interface {
	FindAll(ctx context.Context) ([]PriceListing, error)
	FindByID(ctx context.Context, priceID int64) (*PriceListing, error)
	FindByTypeAndDay(ctx context.Context, showType, day string) (*PriceListing, error)
	Create(ctx context.Context, listing *PriceListing) error
	UpdatePrice(ctx context.Context, priceID int64, price int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]PriceListing, error) {
	var listings []PriceListing
	err := r.db.WithContext(ctx).Order("price_id ASC").Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("list price listings: %w", err)
	}
	return listings, nil
}

func (r *repository) FindByID(ctx context.Context, priceID int64) (*PriceListing, error) {
	var listing PriceListing
	err := r.db.WithContext(ctx).Where("price_id = ?", priceID).First(&listing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: price listing %d", fault.ErrNotFound, priceID)
	}
	if err != nil {
		return nil, fmt.Errorf("find price listing: %w", err)
	}
	return &listing, nil
}

func (r *repository) FindByTypeAndDay(ctx context.Context, showType, day string) (*PriceListing, error) {
	var listing PriceListing
	err := r.db.WithContext(ctx).
		Where("type = ? AND day = ?", showType, day).
		First(&listing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: price listing for %s/%s", fault.ErrNotFound, showType, day)
	}
	if err != nil {
		return nil, fmt.Errorf("find price listing: %w", err)
	}
	return &listing, nil
}

func (r *repository) Create(ctx context.Context, listing *PriceListing) error {
	if err := r.db.WithContext(ctx).Create(listing).Error; err != nil {
		return fmt.Errorf("create price listing: %w", err)
	}
	return nil
}

func (r *repository) UpdatePrice(ctx context.Context, priceID int64, price int) error {
	result := r.db.WithContext(ctx).Model(&PriceListing{}).
		Where("price_id = ?", priceID).
		Update("price", price)
	if result.Error != nil {
		return fmt.Errorf("update price listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: price listing %d", fault.ErrNotFound, priceID)
	}
	return nil
}
