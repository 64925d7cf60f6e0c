package bookings

import (
	"context"
	"fmt"
	"strings"

	"cinebox/internal/pricing"
	"cinebox/internal/seating"
	"cinebox/internal/shared/constants"
	"cinebox/internal/shared/database"
	"cinebox/internal/shared/fault"
	"cinebox/internal/shows"
	"cinebox/pkg/cache"
	"cinebox/pkg/ident"
	"cinebox/pkg/logger"
	"cinebox/pkg/qr"
)

// ShowDirectory resolves shows for booking validation
type ShowDirectory interface {
	GetShow(ctx context.Context, showID int64) (*shows.Show, error)
}

// MovieDirectory resolves movie names for booking views
type MovieDirectory interface {
	MovieName(ctx context.Context, movieID int64) (string, error)
}

// PriceResolver resolves the base standard price for a show
type PriceResolver interface {
	BasePriceForShow(ctx context.Context, showID int64) (int, error)
}

// SeatMapInvalidator drops cached seat maps once a booking commits
type SeatMapInvalidator interface {
	InvalidateShow(ctx context.Context, showID int64)
}

// Notifier publishes booking-confirmed events. Implementations must be
// best-effort; publish failures never fail the booking.
type Notifier interface {
	PublishBookingConfirmed(ctx context.Context, bookingRef string, showID int64, seats int)
}

// Service reconciles booking requests into committed bookings
type Service interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error)
	LookupByRef(ctx context.Context, bookingRef string) (*BookingLookupResponse, error)
	TicketsForShow(ctx context.Context, showID int64) ([]TicketView, error)
	DailyReport(ctx context.Context, date string) ([]DailyBookingGroup, error)
}

type service struct {
	repo     Repository
	shows    ShowDirectory
	movies   MovieDirectory
	prices   PriceResolver
	seatMaps SeatMapInvalidator
	notifier Notifier
	cache    cache.Service
	log      *logger.Logger
}

func NewService(
	repo Repository,
	showDir ShowDirectory,
	movieDir MovieDirectory,
	prices PriceResolver,
	seatMaps SeatMapInvalidator,
	notifier Notifier,
	cacheSvc cache.Service,
	log *logger.Logger,
) Service {
	return &service{
		repo:     repo,
		shows:    showDir,
		movies:   movieDir,
		prices:   prices,
		seatMaps: seatMaps,
		notifier: notifier,
		cache:    cacheSvc,
		log:      log,
	}
}

func validPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", fault.ErrInvalidInput)
	}
	phone := strings.TrimSpace(req.CustomerPhone)
	if !validPhone(phone) {
		return nil, fmt.Errorf("%w: phone must be 10 digits", fault.ErrInvalidInput)
	}
	if len(req.Seats) == 0 {
		return nil, fmt.Errorf("%w: at least one seat is required", fault.ErrInvalidInput)
	}

	show, err := s.shows.GetShow(ctx, req.ShowID)
	if err != nil {
		return nil, err
	}

	// Encode each selection to its internal id, rejecting duplicates.
	// Selections carry their own class, so one booking may mix gold
	// and standard seats.
	internal := make([]int, 0, len(req.Seats))
	classes := make([]string, 0, len(req.Seats))
	seen := make(map[int]struct{}, len(req.Seats))
	for _, sel := range req.Seats {
		class, err := seating.NormalizeClass(sel.Class)
		if err != nil {
			return nil, err
		}
		internalNo, err := seating.Encode(sel.Number, class)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[internalNo]; dup {
			return nil, fmt.Errorf("%w: seat %d (%s) requested twice", fault.ErrInvalidInput, sel.Number, class)
		}
		seen[internalNo] = struct{}{}
		internal = append(internal, internalNo)
		classes = append(classes, class)
	}

	// Advisory availability check for a friendly error. The unique
	// constraint remains the authority under races.
	taken, err := s.repo.BookedSeats(ctx, show.ShowID)
	if err != nil {
		return nil, err
	}
	for i, internalNo := range internal {
		if _, booked := taken[internalNo]; booked {
			return nil, fmt.Errorf("%w: seat %d (%s) is already booked",
				fault.ErrConstraintViolation, req.Seats[i].Number, classes[i])
		}
	}

	base, err := s.prices.BasePriceForShow(ctx, show.ShowID)
	if err != nil {
		return nil, err
	}
	quote, err := pricing.BuildQuote(base, classes)
	if err != nil {
		return nil, err
	}

	booking, err := s.commitWithRetry(ctx, name, phone, show.ShowID, internal)
	if err != nil {
		return nil, err
	}

	if s.seatMaps != nil {
		s.seatMaps.InvalidateShow(ctx, show.ShowID)
	}
	if s.notifier != nil {
		s.notifier.PublishBookingConfirmed(ctx, booking.BookingRef, show.ShowID, len(internal))
	}
	s.log.LogBookingCreated(ctx, booking.BookingRef, show.ShowID, len(internal))

	views, err := ticketViews(booking.Tickets, base)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResponse{
		BookingRef: booking.BookingRef,
		ShowID:     show.ShowID,
		Tickets:    views,
		Pricing:    quote,
		LookupPath: "/api/v1/bookings/ref/" + booking.BookingRef,
	}, nil
}

// commitWithRetry allocates identifiers and runs the booking
// transaction, retrying with fresh numbers when the ticket-number or
// booking-ref constraint fires. A seat conflict is final.
func (s *service) commitWithRetry(ctx context.Context, name, phone string, showID int64, internalSeats []int) (*Booking, error) {
	bookingRef, err := s.allocateBookingRef(ctx)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < constants.MaxTicketAllocationRetries; attempt++ {
		tickets := make([]BookedTicket, 0, len(internalSeats))
		for _, seatNo := range internalSeats {
			ticketNo, err := s.allocateTicketNo(ctx)
			if err != nil {
				return nil, err
			}
			tickets = append(tickets, BookedTicket{
				TicketNo: ticketNo,
				ShowID:   showID,
				SeatNo:   seatNo,
			})
		}

		booking, err := s.repo.CreateBooking(ctx, name, phone, bookingRef, tickets)
		if err == nil {
			return booking, nil
		}

		switch {
		case database.IsUniqueViolation(err, database.ConstraintShowSeat):
			return nil, fmt.Errorf("%w: seat already booked for show %d", fault.ErrConstraintViolation, showID)
		case database.IsUniqueViolation(err, database.ConstraintTicketNo):
			// Raced another booking onto the same number. Fresh
			// numbers next attempt.
			continue
		case database.IsUniqueViolation(err, database.ConstraintBookingRef):
			bookingRef, err = s.allocateBookingRef(ctx)
			if err != nil {
				return nil, err
			}
			continue
		default:
			return nil, fmt.Errorf("persist booking: %w", err)
		}
	}
	return nil, fmt.Errorf("%w: booking persistence", fault.ErrCollisionExhausted)
}

func (s *service) allocateBookingRef(ctx context.Context) (string, error) {
	for attempt := 0; attempt < constants.MaxIDAllocationRetries; attempt++ {
		candidate, err := ident.NewBookingRef()
		if err != nil {
			return "", fmt.Errorf("generate booking ref: %w", err)
		}
		taken, err := s.repo.RefExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: booking ref allocation", fault.ErrCollisionExhausted)
}

func (s *service) allocateTicketNo(ctx context.Context) (int64, error) {
	for attempt := 0; attempt < constants.MaxTicketAllocationRetries; attempt++ {
		candidate, err := ident.NewTicketNo()
		if err != nil {
			return 0, fmt.Errorf("generate ticket no: %w", err)
		}
		taken, err := s.repo.TicketNoExists(ctx, candidate)
		if err != nil {
			return 0, err
		}
		if !taken {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("%w: ticket number allocation", fault.ErrCollisionExhausted)
}

// ticketViews decodes stored tickets into labelled, priced views
func ticketViews(tickets []BookedTicket, base int) ([]TicketView, error) {
	views := make([]TicketView, 0, len(tickets))
	for _, ticket := range tickets {
		display, class, err := seating.Decode(ticket.SeatNo)
		if err != nil {
			return nil, err
		}
		label, err := seating.Label(display)
		if err != nil {
			return nil, err
		}
		price, err := pricing.PriceForClass(base, class)
		if err != nil {
			return nil, err
		}
		views = append(views, TicketView{
			TicketNo: ticket.TicketNo,
			Seat:     label,
			Class:    class,
			Price:    price,
		})
	}
	return views, nil
}

func (s *service) LookupByRef(ctx context.Context, bookingRef string) (*BookingLookupResponse, error) {
	bookingRef = strings.TrimSpace(bookingRef)
	if bookingRef == "" {
		return nil, fmt.Errorf("%w: booking ref is required", fault.ErrInvalidInput)
	}

	// Bookings are immutable once committed, so the rendered lookup is
	// safe to cache.
	if s.cache != nil {
		var cached BookingLookupResponse
		key := fmt.Sprintf(constants.CacheKeyBookingRef, bookingRef)
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	booking, err := s.repo.FindByRef(ctx, bookingRef)
	if err != nil {
		return nil, err
	}
	if len(booking.Tickets) == 0 {
		return nil, fmt.Errorf("%w: booking %s has no tickets", fault.ErrNotFound, bookingRef)
	}

	showID := booking.Tickets[0].ShowID
	show, err := s.shows.GetShow(ctx, showID)
	if err != nil {
		return nil, err
	}
	movieName, err := s.movies.MovieName(ctx, show.MovieID)
	if err != nil {
		return nil, err
	}
	base, err := s.prices.BasePriceForShow(ctx, showID)
	if err != nil {
		return nil, err
	}

	views, err := ticketViews(booking.Tickets, base)
	if err != nil {
		return nil, err
	}
	classes := make([]string, len(views))
	for i, view := range views {
		classes[i] = view.Class
	}
	quote, err := pricing.BuildQuote(base, classes)
	if err != nil {
		return nil, err
	}

	qrLines := make([]qr.TicketLine, len(views))
	for i, view := range views {
		qrLines[i] = qr.TicketLine{TicketNo: view.TicketNo, Seat: view.Seat}
	}
	qrURI, err := qr.DataURI(qr.BuildPayload(bookingRef, showID, show.Date, qrLines), 256)
	if err != nil {
		return nil, fmt.Errorf("render qr: %w", err)
	}

	result := &BookingLookupResponse{
		BookingRef:    bookingRef,
		CustomerName:  booking.Customer.Name,
		CustomerPhone: booking.Customer.Phone,
		MovieName:     movieName,
		ShowID:        showID,
		ShowDate:      show.Date,
		ShowTime:      show.Time,
		HallID:        show.HallID,
		Tickets:       views,
		Pricing:       quote,
		QRCode:        qrURI,
	}
	if s.cache != nil {
		key := fmt.Sprintf(constants.CacheKeyBookingRef, bookingRef)
		_ = s.cache.Set(ctx, key, result, constants.CacheTTLBookingRef)
	}
	return result, nil
}

func (s *service) TicketsForShow(ctx context.Context, showID int64) ([]TicketView, error) {
	show, err := s.shows.GetShow(ctx, showID)
	if err != nil {
		return nil, err
	}
	tickets, err := s.repo.TicketsForShow(ctx, show.ShowID)
	if err != nil {
		return nil, err
	}
	base, err := s.prices.BasePriceForShow(ctx, show.ShowID)
	if err != nil {
		return nil, err
	}
	return ticketViews(tickets, base)
}

func (s *service) DailyReport(ctx context.Context, date string) ([]DailyBookingGroup, error) {
	rows, err := s.repo.DailyRows(ctx, date)
	if err != nil {
		return nil, err
	}

	groups := make([]DailyBookingGroup, 0)
	index := make(map[string]int)
	for _, row := range rows {
		display, class, err := seating.Decode(row.SeatNo)
		if err != nil {
			return nil, err
		}
		label, err := seating.Label(display)
		if err != nil {
			return nil, err
		}

		i, ok := index[row.BookingRef]
		if !ok {
			groups = append(groups, DailyBookingGroup{
				BookingRef:    row.BookingRef,
				CustomerName:  row.CustomerName,
				CustomerPhone: row.CustomerPhone,
				ShowID:        row.ShowID,
				ShowTime:      row.ShowTime,
				MovieName:     row.MovieName,
			})
			i = len(groups) - 1
			index[row.BookingRef] = i
		}
		groups[i].Seats = append(groups[i].Seats, label)
		groups[i].Tickets = append(groups[i].Tickets, TicketView{
			TicketNo: row.TicketNo,
			Seat:     label,
			Class:    class,
		})
	}
	return groups, nil
}
