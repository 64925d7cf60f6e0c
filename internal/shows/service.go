package shows

import (
	"context"
	"fmt"
	"sort"

	"cinebox/internal/halls"
	"cinebox/internal/movies"
	"cinebox/internal/shared/constants"
	"cinebox/internal/shared/fault"
	"cinebox/pkg/cache"
	"cinebox/pkg/ident"
	"cinebox/pkg/logger"
)

// ScheduleShowRequest is the manager payload for scheduling a show
type ScheduleShowRequest struct {
	MovieID int64  `json:"movie_id" binding:"required"`
	HallID  int    `json:"hall_id" binding:"required"`
	Type    string `json:"type" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    int    `json:"time" binding:"gte=0"` // HHMM
	PriceID *int64 `json:"price_id"`
}

// ShowTiming is one scheduled time slot for a movie
type ShowTiming struct {
	ShowID int64 `json:"show_id"`
	Time   int   `json:"time"`
}

// HallSlot is a hall free for a requested slot
type HallSlot struct {
	HallID int    `json:"hall_id"`
	Name   string `json:"name"`
}

// Service manages the show schedule
type Service interface {
	ScheduleShow(ctx context.Context, req ScheduleShowRequest) (*Show, error)
	ShowsOnDate(ctx context.Context, date string) ([]Show, error)
	Timings(ctx context.Context, movieID int64, date, showType string) ([]ShowTiming, error)
	Resolve(ctx context.Context, movieID int64, date, showType string, timeHHMM int) (*Show, error)
	GetShow(ctx context.Context, showID int64) (*Show, error)
	AvailableHalls(ctx context.Context, movieID int64, date string, timeHHMM int) ([]HallSlot, error)
}

type service struct {
	repo   Repository
	movies movies.Repository
	halls  halls.Repository
	cache  cache.Service
	log    *logger.Logger
}

func NewService(repo Repository, movieRepo movies.Repository, hallRepo halls.Repository, cacheSvc cache.Service, log *logger.Logger) Service {
	return &service{repo: repo, movies: movieRepo, halls: hallRepo, cache: cacheSvc, log: log}
}

// validTime checks an HHMM integer
func validTime(hhmm int) bool {
	return hhmm >= 0 && hhmm <= 2359 && hhmm%100 < 60
}

func (s *service) ScheduleShow(ctx context.Context, req ScheduleShowRequest) (*Show, error) {
	if err := movies.ValidateDate(req.Date); err != nil {
		return nil, err
	}
	if !validTime(req.Time) {
		return nil, fmt.Errorf("%w: invalid show time %04d", fault.ErrInvalidInput, req.Time)
	}

	movie, err := s.movies.FindByID(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if req.Date < movie.ShowStart || req.Date > movie.ShowEnd {
		return nil, fmt.Errorf("%w: date %s is outside the movie's run window", fault.ErrInvalidInput, req.Date)
	}
	if !containsFormat(movie, req.Type) {
		return nil, fmt.Errorf("%w: movie is not released in format %q", fault.ErrInvalidInput, req.Type)
	}

	hall, err := s.halls.FindByID(ctx, req.HallID)
	if err != nil {
		return nil, err
	}

	free, err := s.hallIsFree(ctx, hall.HallID, req.Date, req.Time, movie.Length)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, fmt.Errorf("%w: hall %d is occupied at %04d on %s",
			fault.ErrConstraintViolation, hall.HallID, req.Time, req.Date)
	}

	showID, err := s.allocateShowID(ctx)
	if err != nil {
		return nil, err
	}

	show := &Show{
		ShowID:  showID,
		MovieID: req.MovieID,
		HallID:  req.HallID,
		Type:    req.Type,
		Date:    req.Date,
		Time:    req.Time,
		PriceID: req.PriceID,
	}
	if err := s.repo.Create(ctx, show); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.DeletePattern(ctx, constants.CachePatternShowAll)
		_ = s.cache.DeletePattern(ctx, constants.CachePatternMoviesAll)
	}
	s.log.LogShowScheduled(ctx, show.ShowID, show.MovieID, show.HallID)
	return show, nil
}

func containsFormat(movie *movies.Movie, format string) bool {
	for _, f := range movie.Formats {
		if f.Name == format {
			return true
		}
	}
	return false
}

func (s *service) allocateShowID(ctx context.Context) (int64, error) {
	for attempt := 0; attempt < constants.MaxIDAllocationRetries; attempt++ {
		candidate, err := ident.NewShowID()
		if err != nil {
			return 0, fmt.Errorf("generate show id: %w", err)
		}
		taken, err := s.repo.ExistsByID(ctx, candidate)
		if err != nil {
			return 0, err
		}
		if !taken {
			return candidate, nil
		}
		s.log.LogIDCollision(ctx, "show", candidate)
	}
	return 0, fmt.Errorf("%w: show id allocation", fault.ErrCollisionExhausted)
}

// hallIsFree reports whether the hall has no show on the date whose
// running interval overlaps [start, start+length). Intervals are
// half-open, so back-to-back shows do not conflict.
func (s *service) hallIsFree(ctx context.Context, hallID int, date string, timeHHMM, lengthMinutes int) (bool, error) {
	existing, err := s.repo.FindByHallAndDate(ctx, hallID, date)
	if err != nil {
		return false, err
	}

	newStart := HHMMToMinutes(timeHHMM)
	newEnd := newStart + lengthMinutes

	for _, other := range existing {
		otherMovie, err := s.movies.FindByID(ctx, other.MovieID)
		if err != nil {
			return false, err
		}
		otherStart := other.MinutesFromMidnight()
		otherEnd := otherStart + otherMovie.Length
		if newStart < otherEnd && newEnd > otherStart {
			return false, nil
		}
	}
	return true, nil
}

func (s *service) AvailableHalls(ctx context.Context, movieID int64, date string, timeHHMM int) ([]HallSlot, error) {
	if err := movies.ValidateDate(date); err != nil {
		return nil, err
	}
	if !validTime(timeHHMM) {
		return nil, fmt.Errorf("%w: invalid show time %04d", fault.ErrInvalidInput, timeHHMM)
	}

	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	allHalls, err := s.halls.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// Empty result is a valid outcome: every hall may be occupied.
	slots := make([]HallSlot, 0, len(allHalls))
	for _, hall := range allHalls {
		free, err := s.hallIsFree(ctx, hall.HallID, date, timeHHMM, movie.Length)
		if err != nil {
			return nil, err
		}
		if free {
			slots = append(slots, HallSlot{HallID: hall.HallID, Name: hall.Name})
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].HallID < slots[j].HallID })
	return slots, nil
}

func (s *service) ShowsOnDate(ctx context.Context, date string) ([]Show, error) {
	if err := movies.ValidateDate(date); err != nil {
		return nil, err
	}
	return s.repo.FindOnDate(ctx, date)
}

func (s *service) Timings(ctx context.Context, movieID int64, date, showType string) ([]ShowTiming, error) {
	if err := movies.ValidateDate(date); err != nil {
		return nil, err
	}

	fetch := func() ([]ShowTiming, error) {
		found, err := s.repo.FindByMovieDateType(ctx, movieID, date, showType)
		if err != nil {
			return nil, err
		}
		result := make([]ShowTiming, 0, len(found))
		for _, show := range found {
			result = append(result, ShowTiming{ShowID: show.ShowID, Time: show.Time})
		}
		return result, nil
	}

	if s.cache != nil {
		var timings []ShowTiming
		key := fmt.Sprintf(constants.CacheKeyShowTimings, movieID, date, showType)
		err := s.cache.GetOrSet(ctx, key, constants.CacheTTLShowTimings, func() (interface{}, error) {
			return fetch()
		}, &timings)
		return timings, err
	}
	return fetch()
}

func (s *service) Resolve(ctx context.Context, movieID int64, date, showType string, timeHHMM int) (*Show, error) {
	if err := movies.ValidateDate(date); err != nil {
		return nil, err
	}

	found, err := s.repo.FindByMovieDateType(ctx, movieID, date, showType)
	if err != nil {
		return nil, err
	}
	for i := range found {
		if found[i].Time == timeHHMM {
			return &found[i], nil
		}
	}
	return nil, fmt.Errorf("%w: no show for movie %d at %04d on %s", fault.ErrNotFound, movieID, timeHHMM, date)
}

func (s *service) GetShow(ctx context.Context, showID int64) (*Show, error) {
	return s.repo.FindByID(ctx, showID)
}
