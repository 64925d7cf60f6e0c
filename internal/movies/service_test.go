package movies

import (
	"context"
	"testing"

	"cinebox/internal/shared/fault"
	"cinebox/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, movie *Movie) error {
	return m.Called(ctx, movie).Error(0)
}

func (m *mockRepository) ExistsByID(ctx context.Context, movieID int64) (bool, error) {
	args := m.Called(ctx, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, movieID int64) (*Movie, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Movie), args.Error(1)
}

func (m *mockRepository) FindWithShowsOn(ctx context.Context, date string) ([]Movie, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Movie), args.Error(1)
}

func (m *mockRepository) FindActiveOn(ctx context.Context, date string) ([]Movie, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Movie), args.Error(1)
}

func validCreateRequest() CreateMovieRequest {
	return CreateMovieRequest{
		Name:      "Sample Feature",
		Length:    150,
		Language:  "English",
		ShowStart: "2026-09-01",
		ShowEnd:   "2026-09-30",
		Formats:   []string{"2D", "3D"},
	}
}

func TestCreateMovie(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil, logger.New())

	repo.On("ExistsByID", mock.Anything, mock.Anything).Return(false, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	movie, err := svc.CreateMovie(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, movie.MovieID, int64(1_000_000))
	assert.LessOrEqual(t, movie.MovieID, int64(9_999_999))
	require.Len(t, movie.Formats, 2)
	assert.Equal(t, movie.MovieID, movie.Formats[0].MovieID)
	repo.AssertExpectations(t)
}

func TestCreateMovieRetriesIDCollision(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil, logger.New())

	// First two candidates are taken, third is free.
	repo.On("ExistsByID", mock.Anything, mock.Anything).Return(true, nil).Twice()
	repo.On("ExistsByID", mock.Anything, mock.Anything).Return(false, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.CreateMovie(context.Background(), validCreateRequest())
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "ExistsByID", 3)
}

func TestCreateMovieIDAllocationExhausted(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil, logger.New())

	repo.On("ExistsByID", mock.Anything, mock.Anything).Return(true, nil)

	_, err := svc.CreateMovie(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, fault.ErrCollisionExhausted)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repo.AssertNumberOfCalls(t, "ExistsByID", 10)
}

func TestCreateMovieInvalidDates(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil, logger.New())

	req := validCreateRequest()
	req.ShowEnd = "2026-08-01" // before start

	_, err := svc.CreateMovie(context.Background(), req)
	assert.ErrorIs(t, err, fault.ErrInvalidInput)

	req = validCreateRequest()
	req.ShowStart = "01-09-2026"

	_, err = svc.CreateMovie(context.Background(), req)
	assert.ErrorIs(t, err, fault.ErrInvalidInput)
}

func TestMoviesOnDateValidatesDate(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil, logger.New())

	_, err := svc.MoviesOnDate(context.Background(), "tomorrow")
	assert.ErrorIs(t, err, fault.ErrInvalidInput)
	repo.AssertNotCalled(t, "FindWithShowsOn", mock.Anything, mock.Anything)
}
