package seating

import (
	"context"
	"fmt"

	"cinebox/internal/shared/constants"
	"cinebox/pkg/cache"
)

// Seat statuses in the availability map
const (
	StatusAvailable = "available"
	StatusBooked    = "booked"
)

// Seat is one position in the availability map
type Seat struct {
	Number     int    `json:"number"`
	Label      string `json:"label"`
	InternalNo int    `json:"internal_no"`
	Status     string `json:"status"`
}

// SeatMap is the full availability picture for a show
type SeatMap struct {
	ShowID   int64  `json:"show_id"`
	Gold     []Seat `json:"gold"`
	Standard []Seat `json:"standard"`
}

// HallLayout is the per-class capacity of the hall a show runs in
type HallLayout struct {
	GoldCapacity     int
	StandardCapacity int
}

// LayoutProvider resolves a show to its hall layout. An unknown show
// must yield a not-found error, never an empty layout.
type LayoutProvider interface {
	LayoutForShow(ctx context.Context, showID int64) (*HallLayout, error)
}

// BookedSeatProvider returns the internal seat ids already booked for
// a show.
type BookedSeatProvider interface {
	BookedSeats(ctx context.Context, showID int64) (map[int]struct{}, error)
}

// Service builds seat availability maps
type Service interface {
	SeatMapForShow(ctx context.Context, showID int64) (*SeatMap, error)
	// InvalidateShow drops the cached map after a booking commits.
	InvalidateShow(ctx context.Context, showID int64)
}

type service struct {
	layouts LayoutProvider
	booked  BookedSeatProvider
	cache   cache.Service
}

func NewService(layouts LayoutProvider, booked BookedSeatProvider, cacheSvc cache.Service) Service {
	return &service{layouts: layouts, booked: booked, cache: cacheSvc}
}

func (s *service) SeatMapForShow(ctx context.Context, showID int64) (*SeatMap, error) {
	var seatMap SeatMap
	if s.cache != nil {
		key := fmt.Sprintf(constants.CacheKeySeatMap, showID)
		if err := s.cache.Get(ctx, key, &seatMap); err == nil {
			return &seatMap, nil
		}
	}

	built, err := s.buildSeatMap(ctx, showID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		key := fmt.Sprintf(constants.CacheKeySeatMap, showID)
		_ = s.cache.Set(ctx, key, built, constants.CacheTTLSeatMap)
	}
	return built, nil
}

func (s *service) buildSeatMap(ctx context.Context, showID int64) (*SeatMap, error) {
	layout, err := s.layouts.LayoutForShow(ctx, showID)
	if err != nil {
		return nil, err
	}

	taken, err := s.booked.BookedSeats(ctx, showID)
	if err != nil {
		return nil, err
	}

	gold, err := buildSection(ClassGold, layout.GoldCapacity, taken)
	if err != nil {
		return nil, err
	}
	standard, err := buildSection(ClassStandard, layout.StandardCapacity, taken)
	if err != nil {
		return nil, err
	}

	return &SeatMap{ShowID: showID, Gold: gold, Standard: standard}, nil
}

// buildSection lays out one class in display order. Zero capacity
// yields an empty, non-nil section.
func buildSection(class string, capacity int, taken map[int]struct{}) ([]Seat, error) {
	seats := make([]Seat, 0, capacity)
	for number := 1; number <= capacity; number++ {
		internalNo, err := Encode(number, class)
		if err != nil {
			return nil, err
		}
		label, err := Label(number)
		if err != nil {
			return nil, err
		}

		status := StatusAvailable
		if _, booked := taken[internalNo]; booked {
			status = StatusBooked
		}
		seats = append(seats, Seat{
			Number:     number,
			Label:      label,
			InternalNo: internalNo,
			Status:     status,
		})
	}
	return seats, nil
}

func (s *service) InvalidateShow(ctx context.Context, showID int64) {
	if s.cache == nil {
		return
	}
	key := fmt.Sprintf(constants.CacheKeySeatMap, showID)
	_ = s.cache.Delete(ctx, key)
}
