package staff

import (
	"context"
	"errors"
	"fmt"

	"cinebox/internal/shared/fault"

	"gorm.io/gorm"
)

// Repository provides access to staff accounts
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*Staff, error)
	Create(ctx context.Context, s *Staff) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Staff, error) {
	var s Staff
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: staff %q", fault.ErrNotFound, username)
	}
	if err != nil {
		return nil, fmt.Errorf("find staff: %w", err)
	}
	return &s, nil
}

func (r *repository) Create(ctx context.Context, s *Staff) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create staff: %w", err)
	}
	return nil
}
