package movies

import (
	"context"
	"errors"
	"fmt"

	"cinebox/internal/shared/fault"

	"gorm.io/gorm"
)

// Repository provides access to the movie catalogue
type Repository interface {
	Create(ctx context.Context, movie *Movie) error
	ExistsByID(ctx context.Context, movieID int64) (bool, error)
	FindByID(ctx context.Context, movieID int64) (*Movie, error)
	// FindWithShowsOn returns movies that have at least one show
	// scheduled on the date.
	FindWithShowsOn(ctx context.Context, date string) ([]Movie, error)
	// FindActiveOn returns movies whose run window covers the date.
	FindActiveOn(ctx context.Context, date string) ([]Movie, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, movie *Movie) error {
	if err := r.db.WithContext(ctx).Create(movie).Error; err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	return nil
}

func (r *repository) ExistsByID(ctx context.Context, movieID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Movie{}).
		Where("movie_id = ?", movieID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check movie id: %w", err)
	}
	return count > 0, nil
}

func (r *repository) FindByID(ctx context.Context, movieID int64) (*Movie, error) {
	var movie Movie
	err := r.db.WithContext(ctx).
		Preload("Formats").
		Where("movie_id = ?", movieID).
		First(&movie).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: movie %d", fault.ErrNotFound, movieID)
	}
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return &movie, nil
}

func (r *repository) FindWithShowsOn(ctx context.Context, date string) ([]Movie, error) {
	var result []Movie
	err := r.db.WithContext(ctx).
		Preload("Formats").
		Joins("JOIN shows ON shows.movie_id = movies.movie_id AND shows.date = ?", date).
		Distinct("movies.*").
		Order("movies.name ASC").
		Find(&result).Error
	if err != nil {
		return nil, fmt.Errorf("movies with shows on %s: %w", date, err)
	}
	return result, nil
}

func (r *repository) FindActiveOn(ctx context.Context, date string) ([]Movie, error) {
	var result []Movie
	err := r.db.WithContext(ctx).
		Preload("Formats").
		Where("show_start <= ? AND show_end >= ?", date, date).
		Order("name ASC").
		Find(&result).Error
	if err != nil {
		return nil, fmt.Errorf("movies active on %s: %w", date, err)
	}
	return result, nil
}
