package shows

import (
	"context"
	"errors"
	"fmt"

	"cinebox/internal/shared/fault"

	"gorm.io/gorm"
)

// Repository provides access to the show schedule
type Repository interface {
	Create(ctx context.Context, show *Show) error
	ExistsByID(ctx context.Context, showID int64) (bool, error)
	FindByID(ctx context.Context, showID int64) (*Show, error)
	FindOnDate(ctx context.Context, date string) ([]Show, error)
	FindByMovieDateType(ctx context.Context, movieID int64, date, showType string) ([]Show, error)
	FindByHallAndDate(ctx context.Context, hallID int, date string) ([]Show, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, show *Show) error {
	if err := r.db.WithContext(ctx).Create(show).Error; err != nil {
		return fmt.Errorf("create show: %w", err)
	}
	return nil
}

func (r *repository) ExistsByID(ctx context.Context, showID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Show{}).
		Where("show_id = ?", showID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check show id: %w", err)
	}
	return count > 0, nil
}

func (r *repository) FindByID(ctx context.Context, showID int64) (*Show, error) {
	var show Show
	err := r.db.WithContext(ctx).Where("show_id = ?", showID).First(&show).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: show %d", fault.ErrNotFound, showID)
	}
	if err != nil {
		return nil, fmt.Errorf("find show: %w", err)
	}
	return &show, nil
}

func (r *repository) FindOnDate(ctx context.Context, date string) ([]Show, error) {
	var result []Show
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&result).Error
	if err != nil {
		return nil, fmt.Errorf("shows on %s: %w", date, err)
	}
	return result, nil
}

func (r *repository) FindByMovieDateType(ctx context.Context, movieID int64, date, showType string) ([]Show, error) {
	var result []Show
	err := r.db.WithContext(ctx).
		Where("movie_id = ? AND date = ? AND type = ?", movieID, date, showType).
		Order("time ASC").
		Find(&result).Error
	if err != nil {
		return nil, fmt.Errorf("shows for movie %d on %s: %w", movieID, date, err)
	}
	return result, nil
}

func (r *repository) FindByHallAndDate(ctx context.Context, hallID int, date string) ([]Show, error) {
	var result []Show
	err := r.db.WithContext(ctx).
		Where("hall_id = ? AND date = ?", hallID, date).
		Find(&result).Error
	if err != nil {
		return nil, fmt.Errorf("shows for hall %d on %s: %w", hallID, date, err)
	}
	return result, nil
}
