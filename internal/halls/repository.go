package halls

import (
	"context"
	"errors"
	"fmt"

	"cinebox/internal/shared/fault"

	"gorm.io/gorm"
)

// Repository provides access to hall configuration
type Repository interface {
	FindAll(ctx context.Context) ([]Hall, error)
	FindByID(ctx context.Context, hallID int) (*Hall, error)
	Create(ctx context.Context, hall *Hall) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Hall, error) {
	var halls []Hall
	err := r.db.WithContext(ctx).
		Preload("Sections").
		Order("hall_id ASC").
		Find(&halls).Error
	if err != nil {
		return nil, fmt.Errorf("list halls: %w", err)
	}
	return halls, nil
}

func (r *repository) FindByID(ctx context.Context, hallID int) (*Hall, error) {
	var hall Hall
	err := r.db.WithContext(ctx).
		Preload("Sections").
		Where("hall_id = ?", hallID).
		First(&hall).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: hall %d", fault.ErrNotFound, hallID)
	}
	if err != nil {
		return nil, fmt.Errorf("find hall: %w", err)
	}
	return &hall, nil
}

func (r *repository) Create(ctx context.Context, hall *Hall) error {
	if err := r.db.WithContext(ctx).Create(hall).Error; err != nil {
		return fmt.Errorf("create hall: %w", err)
	}
	return nil
}
