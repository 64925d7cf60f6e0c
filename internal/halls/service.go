package halls

import (
	"context"
	"fmt"
	"strings"

	"cinebox/internal/seating"
	"cinebox/internal/shared/fault"
)

// CreateHallRequest is the manager-facing hall configuration payload
type CreateHallRequest struct {
	HallID   int              `json:"hall_id" binding:"required,gt=0"`
	Name     string           `json:"name" binding:"required"`
	Sections []SectionRequest `json:"sections" binding:"required,min=1,dive"`
}

// SectionRequest is one per-class capacity entry
type SectionRequest struct {
	Class    string `json:"class" binding:"required,seatclass"`
	Capacity int    `json:"capacity" binding:"gte=0"`
}

// Service manages hall configuration
type Service interface {
	ListHalls(ctx context.Context) ([]Hall, error)
	GetHall(ctx context.Context, hallID int) (*Hall, error)
	CreateHall(ctx context.Context, req CreateHallRequest) (*Hall, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListHalls(ctx context.Context) ([]Hall, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetHall(ctx context.Context, hallID int) (*Hall, error) {
	return s.repo.FindByID(ctx, hallID)
}

func (s *service) CreateHall(ctx context.Context, req CreateHallRequest) (*Hall, error) {
	hall := &Hall{
		HallID: req.HallID,
		Name:   strings.TrimSpace(req.Name),
	}
	if hall.Name == "" {
		return nil, fmt.Errorf("%w: hall name is required", fault.ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(req.Sections))
	for _, sec := range req.Sections {
		class, err := seating.NormalizeClass(sec.Class)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[class]; dup {
			return nil, fmt.Errorf("%w: duplicate section class %s", fault.ErrInvalidInput, class)
		}
		seen[class] = struct{}{}

		if sec.Capacity > seating.MaxSeatsPerClass {
			return nil, fmt.Errorf("%w: %s capacity %d exceeds %d seats",
				fault.ErrInvalidInput, class, sec.Capacity, seating.MaxSeatsPerClass)
		}
		// Standard seat ids share the number space below the gold
		// offset, so standard capacity must stay under it.
		if class == seating.ClassStandard && sec.Capacity >= seating.GoldSeatThreshold {
			return nil, fmt.Errorf("%w: standard capacity %d must be below %d",
				fault.ErrInvalidInput, sec.Capacity, seating.GoldSeatThreshold)
		}

		hall.Sections = append(hall.Sections, HallSection{
			HallID:   req.HallID,
			Class:    class,
			Capacity: sec.Capacity,
		})
	}

	if err := s.repo.Create(ctx, hall); err != nil {
		return nil, err
	}
	return hall, nil
}

// CapacityForClass returns the configured capacity of a class, 0 when
// the hall has no section for it
func (h *Hall) CapacityForClass(class string) int {
	for _, sec := range h.Sections {
		if sec.Class == class {
			return sec.Capacity
		}
	}
	return 0
}
