package movies

import (
	"context"
	"fmt"
	"time"

	"cinebox/internal/shared/constants"
	"cinebox/internal/shared/fault"
	"cinebox/pkg/cache"
	"cinebox/pkg/ident"
	"cinebox/pkg/logger"
)

const dateLayout = "2006-01-02"

// CreateMovieRequest is the manager payload for adding a movie
type CreateMovieRequest struct {
	Name      string   `json:"name" binding:"required"`
	Length    int      `json:"length" binding:"required,gt=0"`
	Language  string   `json:"language" binding:"required"`
	ShowStart string   `json:"show_start" binding:"required"`
	ShowEnd   string   `json:"show_end" binding:"required"`
	Formats   []string `json:"formats" binding:"required,min=1"`
}

// Service manages the movie catalogue
type Service interface {
	CreateMovie(ctx context.Context, req CreateMovieRequest) (*Movie, error)
	MoviesOnDate(ctx context.Context, date string) ([]Movie, error)
	ActiveMovies(ctx context.Context, date string) ([]Movie, error)
	GetMovie(ctx context.Context, movieID int64) (*Movie, error)
}

type service struct {
	repo  Repository
	cache cache.Service
	log   *logger.Logger
}

func NewService(repo Repository, cacheSvc cache.Service, log *logger.Logger) Service {
	return &service{repo: repo, cache: cacheSvc, log: log}
}

// ValidateDate checks a YYYY-MM-DD date string
func ValidateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", fault.ErrInvalidInput, date)
	}
	return nil
}

func (s *service) CreateMovie(ctx context.Context, req CreateMovieRequest) (*Movie, error) {
	if err := ValidateDate(req.ShowStart); err != nil {
		return nil, err
	}
	if err := ValidateDate(req.ShowEnd); err != nil {
		return nil, err
	}
	if req.ShowEnd < req.ShowStart {
		return nil, fmt.Errorf("%w: show_end precedes show_start", fault.ErrInvalidInput)
	}

	movieID, err := s.allocateMovieID(ctx)
	if err != nil {
		return nil, err
	}

	movie := &Movie{
		MovieID:   movieID,
		Name:      req.Name,
		Length:    req.Length,
		Language:  req.Language,
		ShowStart: req.ShowStart,
		ShowEnd:   req.ShowEnd,
	}
	for _, format := range req.Formats {
		movie.Formats = append(movie.Formats, MovieFormat{MovieID: movieID, Name: format})
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.DeletePattern(ctx, constants.CachePatternMoviesAll)
	}
	return movie, nil
}

// allocateMovieID draws random 7-digit ids until one is unused,
// bounded by MaxIDAllocationRetries.
func (s *service) allocateMovieID(ctx context.Context) (int64, error) {
	for attempt := 0; attempt < constants.MaxIDAllocationRetries; attempt++ {
		candidate, err := ident.NewMovieID()
		if err != nil {
			return 0, fmt.Errorf("generate movie id: %w", err)
		}
		taken, err := s.repo.ExistsByID(ctx, candidate)
		if err != nil {
			return 0, err
		}
		if !taken {
			return candidate, nil
		}
		s.log.LogIDCollision(ctx, "movie", candidate)
	}
	return 0, fmt.Errorf("%w: movie id allocation", fault.ErrCollisionExhausted)
}

func (s *service) MoviesOnDate(ctx context.Context, date string) ([]Movie, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	if s.cache != nil {
		var result []Movie
		key := fmt.Sprintf(constants.CacheKeyMoviesOnDate, date)
		err := s.cache.GetOrSet(ctx, key, constants.CacheTTLMoviesOnDate, func() (interface{}, error) {
			return s.repo.FindWithShowsOn(ctx, date)
		}, &result)
		return result, err
	}
	return s.repo.FindWithShowsOn(ctx, date)
}

func (s *service) ActiveMovies(ctx context.Context, date string) ([]Movie, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	return s.repo.FindActiveOn(ctx, date)
}

func (s *service) GetMovie(ctx context.Context, movieID int64) (*Movie, error) {
	return s.repo.FindByID(ctx, movieID)
}
