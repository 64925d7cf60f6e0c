package pricing

import (
	"context"
	"fmt"
	"time"

	"cinebox/internal/shared/constants"
	"cinebox/internal/shared/fault"
	"cinebox/pkg/cache"
)

// Day categories used by price listings
const (
	DayWeekday = "WEEKDAY"
	DayWeekend = "WEEKEND"
)

// QuoteRequest asks for a priced set of seats
type QuoteRequest struct {
	ShowID  int64    `json:"show_id" binding:"required"`
	Classes []string `json:"classes" binding:"required,min=1,dive,seatclass"`
}

// UpdatePriceRequest changes the base price of a listing
type UpdatePriceRequest struct {
	Price int `json:"price" binding:"gte=0"`
}

// ShowInfo is the slice of show data pricing needs, provided by the
// show schedule.
type ShowInfo struct {
	PriceID *int64
	Type    string
	Date    string
}

// ShowResolver looks up the show a quote is for
type ShowResolver interface {
	PricingInfo(ctx context.Context, showID int64) (*ShowInfo, error)
}

// Service resolves base prices and builds quotes
type Service interface {
	ListListings(ctx context.Context) ([]PriceListing, error)
	UpdateListing(ctx context.Context, priceID int64, price int) (*PriceListing, error)
	BasePriceForShow(ctx context.Context, showID int64) (int, error)
	QuoteForShow(ctx context.Context, req QuoteRequest) (*Quote, error)
}

type service struct {
	repo  Repository
	shows ShowResolver
	cache cache.Service
}

func NewService(repo Repository, shows ShowResolver, cacheSvc cache.Service) Service {
	return &service{repo: repo, shows: shows, cache: cacheSvc}
}

func (s *service) ListListings(ctx context.Context) ([]PriceListing, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) UpdateListing(ctx context.Context, priceID int64, price int) (*PriceListing, error) {
	if err := s.repo.UpdatePrice(ctx, priceID, price); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.DeletePattern(ctx, constants.CachePatternPricingAll)
	}
	return s.repo.FindByID(ctx, priceID)
}

// DayCategory maps a calendar date to the listing day category
func DayCategory(date string) (string, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("%w: invalid date %q", fault.ErrInvalidInput, date)
	}
	switch parsed.Weekday() {
	case time.Saturday, time.Sunday:
		return DayWeekend, nil
	default:
		return DayWeekday, nil
	}
}

// BasePriceForShow resolves the base standard price for a show. A show
// pinned to a listing uses it directly; otherwise the listing is looked
// up by format and day category.
func (s *service) BasePriceForShow(ctx context.Context, showID int64) (int, error) {
	info, err := s.shows.PricingInfo(ctx, showID)
	if err != nil {
		return 0, err
	}

	if info.PriceID != nil {
		listing, err := s.repo.FindByID(ctx, *info.PriceID)
		if err != nil {
			return 0, err
		}
		return listing.Price, nil
	}

	day, err := DayCategory(info.Date)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		var listing PriceListing
		key := fmt.Sprintf(constants.CacheKeyPriceListing, info.Type, day)
		err := s.cache.GetOrSet(ctx, key, constants.CacheTTLPriceListing, func() (interface{}, error) {
			return s.repo.FindByTypeAndDay(ctx, info.Type, day)
		}, &listing)
		if err != nil {
			return 0, err
		}
		return listing.Price, nil
	}

	listing, err := s.repo.FindByTypeAndDay(ctx, info.Type, day)
	if err != nil {
		return 0, err
	}
	return listing.Price, nil
}

func (s *service) QuoteForShow(ctx context.Context, req QuoteRequest) (*Quote, error) {
	base, err := s.BasePriceForShow(ctx, req.ShowID)
	if err != nil {
		return nil, err
	}
	return BuildQuote(base, req.Classes)
}
