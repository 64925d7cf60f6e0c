package bookings

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cinebox/internal/customers"
	"cinebox/internal/shared/fault"
	"cinebox/internal/shows"
	"cinebox/pkg/cache"
	"cinebox/pkg/logger"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) RefExists(ctx context.Context, bookingRef string) (bool, error) {
	args := m.Called(ctx, bookingRef)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) TicketNoExists(ctx context.Context, ticketNo int64) (bool, error) {
	args := m.Called(ctx, ticketNo)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) CreateBooking(ctx context.Context, name, phone, bookingRef string, tickets []BookedTicket) (*Booking, error) {
	args := m.Called(ctx, name, phone, bookingRef, tickets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *mockRepository) FindByRef(ctx context.Context, bookingRef string) (*Booking, error) {
	args := m.Called(ctx, bookingRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *mockRepository) BookedSeats(ctx context.Context, showID int64) (map[int]struct{}, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]struct{}), args.Error(1)
}

func (m *mockRepository) TicketsForShow(ctx context.Context, showID int64) ([]BookedTicket, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookedTicket), args.Error(1)
}

func (m *mockRepository) DailyRows(ctx context.Context, date string) ([]DailyBookingRow, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DailyBookingRow), args.Error(1)
}

type mockShowDirectory struct {
	mock.Mock
}

func (m *mockShowDirectory) GetShow(ctx context.Context, showID int64) (*shows.Show, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shows.Show), args.Error(1)
}

type mockMovieDirectory struct {
	mock.Mock
}

func (m *mockMovieDirectory) MovieName(ctx context.Context, movieID int64) (string, error) {
	args := m.Called(ctx, movieID)
	return args.String(0), args.Error(1)
}

type mockPriceResolver struct {
	mock.Mock
}

func (m *mockPriceResolver) BasePriceForShow(ctx context.Context, showID int64) (int, error) {
	args := m.Called(ctx, showID)
	return args.Int(0), args.Error(1)
}

type mockInvalidator struct {
	mock.Mock
}

func (m *mockInvalidator) InvalidateShow(ctx context.Context, showID int64) {
	m.Called(ctx, showID)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) PublishBookingConfirmed(ctx context.Context, bookingRef string, showID int64, seats int) {
	m.Called(ctx, bookingRef, showID, seats)
}

// stubCache is an in-memory cache.Service for exercising lookup caching
// without a Redis instance.
type stubCache struct {
	entries map[string][]byte
	sets    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: map[string][]byte{}}
}

func (s *stubCache) Get(_ context.Context, key string, dest interface{}) error {
	b, ok := s.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(b, dest)
}

func (s *stubCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.entries[key] = b
	s.sets++
	return nil
}

func (s *stubCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(s.entries, k)
	}
	return nil
}

func (s *stubCache) DeletePattern(context.Context, string) error { return nil }

func (s *stubCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	if err := s.Get(ctx, key, dest); err == nil {
		return nil
	}
	value, err := fetcher()
	if err != nil {
		return err
	}
	if err := s.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	return s.Get(ctx, key, dest)
}

func (s *stubCache) Ping(context.Context) error { return nil }

type fixture struct {
	repo        *mockRepository
	showDir     *mockShowDirectory
	movieDir    *mockMovieDirectory
	prices      *mockPriceResolver
	invalidator *mockInvalidator
	notifier    *mockNotifier
	svc         Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:        new(mockRepository),
		showDir:     new(mockShowDirectory),
		movieDir:    new(mockMovieDirectory),
		prices:      new(mockPriceResolver),
		invalidator: new(mockInvalidator),
		notifier:    new(mockNotifier),
	}
	f.svc = NewService(f.repo, f.showDir, f.movieDir, f.prices, f.invalidator, f.notifier, nil, logger.New())
	return f
}

var testShow = &shows.Show{
	ShowID:  4242424,
	MovieID: 1111111,
	HallID:  1,
	Type:    "2D",
	Date:    "2026-09-10",
	Time:    1800,
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		ShowID: testShow.ShowID,
		Seats: []SeatSelection{
			{Number: 1, Class: "GOLD"},
			{Number: 2, Class: "GOLD"},
		},
		CustomerName:  "Asha Rao",
		CustomerPhone: "9876543210",
	}
}

func seatUniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func TestCreateBookingSuccess(t *testing.T) {
	f := newFixture()

	f.showDir.On("GetShow", mock.Anything, testShow.ShowID).Return(testShow, nil)
	f.repo.On("BookedSeats", mock.Anything, testShow.ShowID).Return(map[int]struct{}{}, nil)
	f.prices.On("BasePriceForShow", mock.Anything, testShow.ShowID).Return(200, nil)
	f.repo.On("RefExists", mock.Anything, mock.Anything).Return(false, nil)
	f.repo.On("TicketNoExists", mock.Anything, mock.Anything).Return(false, nil)
	f.repo.On("CreateBooking", mock.Anything, "Asha Rao", "9876543210", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			tickets := args.Get(4).([]BookedTicket)
			require.Len(t, tickets, 2)
			assert.Equal(t, 1001, tickets[0].SeatNo)
			assert.Equal(t, 1002, tickets[1].SeatNo)
		}).
		Return(&Booking{
			BookingRef: "5551234",
			Tickets: []BookedTicket{
				{TicketNo: 1000000001, ShowID: testShow.ShowID, SeatNo: 1001, BookingRef: "5551234"},
				{TicketNo: 1000000002, ShowID: testShow.ShowID, SeatNo: 1002, BookingRef: "5551234"},
			},
		}, nil)
	f.invalidator.On("InvalidateShow", mock.Anything, testShow.ShowID).Return()
	f.notifier.On("PublishBookingConfirmed", mock.Anything, "5551234", testShow.ShowID, 2).Return()

	result, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "5551234", result.BookingRef)
	require.Len(t, result.Tickets, 2)
	assert.Equal(t, "A1", result.Tickets[0].Seat)
	assert.Equal(t, "GOLD", result.Tickets[0].Class)
	assert.Equal(t, 300, result.Tickets[0].Price)

	assert.Equal(t, 600, result.Pricing.PreTaxTotal)
	assert.InDelta(t, 54.0, result.Pricing.Tax.CGST, 0.001)
	assert.InDelta(t, 708.0, result.Pricing.FinalTotal, 0.001)
	assert.Equal(t, "/api/v1/bookings/ref/5551234", result.LookupPath)

	f.invalidator.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func TestCreateBookingMixedClasses(t *testing.T) {
	f := newFixture()

	f.showDir.On("GetShow", mock.Anything, testShow.ShowID).Return(testShow, nil)
	f.repo.On("BookedSeats", mock.Anything, testShow.ShowID).Return(map[int]struct{}{}, nil)
	f.prices.On("BasePriceForShow", mock.Anything, testShow.ShowID).Return(200, nil)
	f.repo.On("RefExists", mock.Anything, mock.Anything).Return(false, nil)
	f.repo.On("TicketNoExists", mock.Anything, mock.Anything).Return(false, nil)
	f.repo.On("CreateBooking", mock.Anything, "Asha Rao", "9876543210", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			tickets := args.Get(4).([]BookedTicket)
			require.Len(t, tickets, 3)
			assert.Equal(t, 1001, tickets[0].SeatNo)
			assert.Equal(t, 1002, tickets[1].SeatNo)
			assert.Equal(t, 3, tickets[2].SeatNo)
		}).
		Return(&Booking{
			BookingRef: "5551234",
			Tickets: []BookedTicket{
				{TicketNo: 1000000001, ShowID: testShow.ShowID, SeatNo: 1001, BookingRef: "5551234"},
				{TicketNo: 1000000002, ShowID: testShow.ShowID, SeatNo: 1002, BookingRef: "5551234"},
				{TicketNo: 1000000003, ShowID: testShow.ShowID, SeatNo: 3, BookingRef: "5551234"},
			},
		}, nil)
	f.invalidator.On("InvalidateShow", mock.Anything, testShow.ShowID).Return()
	f.notifier.On("PublishBookingConfirmed", mock.Anything, "5551234", testShow.ShowID, 3).Return()

	req := validRequest()
	req.Seats = []SeatSelection{
		{Number: 1, Class: "GOLD"},
		{Number: 2, Class: "GOLD"},
		{Number: 3, Class: "STANDARD"},
	}

	result, err := f.svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, result.Tickets, 3)
	assert.Equal(t, "A1", result.Tickets[0].Seat)
	assert.Equal(t, "GOLD", result.Tickets[0].Class)
	assert.Equal(t, 300, result.Tickets[0].Price)
	assert.Equal(t, "GOLD", result.Tickets[1].Class)
	assert.Equal(t, 300, result.Tickets[1].Price)
	assert.Equal(t, "A3", result.Tickets[2].Seat)
	assert.Equal(t, "STANDARD", result.Tickets[2].Class)
	assert.Equal(t, 200, result.Tickets[2].Price)

	assert.Equal(t, 800, result.Pricing.PreTaxTotal)
	assert.InDelta(t, 72.0, result.Pricing.Tax.CGST, 0.001)
	assert.InDelta(t, 72.0, result.Pricing.Tax.SGST, 0.001)
	assert.InDelta(t, 944.0, result.Pricing.FinalTotal, 0.001)
}

func TestCreateBookingSeatAlreadyTaken(t *testing.T) {
	f := newFixture()

	f.showDir.On("GetShow", mock.Anything, testShow.ShowID).Return(testShow, nil)
	f.repo.On("BookedSeats", mock.Anything, testShow.ShowID).
		Return(map[int]struct{}{1002: {}}, nil)

	_, err := f.svc.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, fault.ErrConstraintViolation)
	f.repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBookingInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateBookingRequest)
	}{
		{name: "bad phone", mutate: func(r *CreateBookingRequest) { r.CustomerPhone = "12345" }},
		{name: "phone with letters", mutate: func(r *CreateBookingRequest) { r.CustomerPhone = "98765abc10" }},
		{name: "blank name", mutate: func(r *CreateBookingRequest) { r.CustomerName = "   " }},
		{name: "unknown class", mutate: func(r *CreateBookingRequest) { r.Seats[0].Class = "BALCONY" }},
		{name: "no seats", mutate: func(r *CreateBookingRequest) { r.Seats = nil }},
		{name: "duplicate seat", mutate: func(r *CreateBookingRequest) {
			r.Seats = []SeatSelection{{Number: 3, Class: "GOLD"}, {Number: 3, Class: "GOLD"}}
		}},
		{name: "non-positive seat", mutate: func(r *CreateBookingRequest) {
			r.Seats = []SeatSelection{{Number: 0, Class: "STANDARD"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.showDir.On("GetShow", mock.Anything, testShow.ShowID).Return(testShow, nil)

			req := validRequest()
			tt.mutate(&req)

			_, err := f.svc.CreateBooking(context.Background(), req)
			assert.ErrorIs(t, err, fault.ErrInvalidInput)
			f.repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateBookingUnknownShow(t *testing.T) {
	f := newFixture()
	f.showDir.On("GetShow", mock.Anything, testShow.ShowID).Return(nil, fault.ErrNotFound)

	_, err := f.svc.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, fault.ErrNotFound)
}

func TestCreateBookingRefAllocationExhausted(t *testing.T) {
	f := newFixture()

	f.showDir.On("GetShow", mock.Anything, testShow.ShowID).Return(testShow, nil)
	f.repo.On("BookedSeats", mock.Anything, testShow.ShowID).Return(map[int]struct{}{}, nil)
	f.prices.On("BasePriceForShow", mock.Anything, testShow.ShowID).Return(200, nil)
	// Every candidate ref is taken.
	f.repo.On("RefExists", mock.Anything, mock.Anything).Return(true, nil)

	_, err := f.svc.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, fault.ErrCollisionExhausted)
}

func TestCreateBookingSeatConstraintLosesRace(t *testing.T) {
	f := newFixture()

	f.showDir.On("GetShow", mock.Anything, testShow.ShowID).Return(testShow, nil)
	f.repo.On("BookedSeats", mock.Anything, testShow.ShowID).Return(map[int]struct{}{}, nil)
	f.prices.On("BasePriceForShow", mock.Anything, testShow.ShowID).Return(200, nil)
	f.repo.On("RefExists", mock.Anything, mock.Anything).Return(false, nil)
	f.repo.On("TicketNoExists", mock.Anything, mock.Anything).Return(false, nil)
	// Another cashier commits the seat between the advisory check and
	// the transaction.
	f.repo.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, seatUniqueViolation("uq_booked_tickets_show_seat"))

	_, err := f.svc.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, fault.ErrConstraintViolation)
	f.repo.AssertNumberOfCalls(t, "CreateBooking", 1)
}

func TestCreateBookingRetriesTicketNumberCollision(t *testing.T) {
	f := newFixture()

	f.showDir.On("GetShow", mock.Anything, testShow.ShowID).Return(testShow, nil)
	f.repo.On("BookedSeats", mock.Anything, testShow.ShowID).Return(map[int]struct{}{}, nil)
	f.prices.On("BasePriceForShow", mock.Anything, testShow.ShowID).Return(200, nil)
	f.repo.On("RefExists", mock.Anything, mock.Anything).Return(false, nil)
	f.repo.On("TicketNoExists", mock.Anything, mock.Anything).Return(false, nil)

	f.repo.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, seatUniqueViolation("uq_booked_tickets_ticket_no")).Once()
	f.repo.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&Booking{
			BookingRef: "5551234",
			Tickets: []BookedTicket{
				{TicketNo: 1000000009, ShowID: testShow.ShowID, SeatNo: 1001},
				{TicketNo: 1000000010, ShowID: testShow.ShowID, SeatNo: 1002},
			},
		}, nil).Once()
	f.invalidator.On("InvalidateShow", mock.Anything, testShow.ShowID).Return()
	f.notifier.On("PublishBookingConfirmed", mock.Anything, "5551234", testShow.ShowID, 2).Return()

	result, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "5551234", result.BookingRef)
	f.repo.AssertNumberOfCalls(t, "CreateBooking", 2)
}

func TestLookupByRef(t *testing.T) {
	f := newFixture()

	f.repo.On("FindByRef", mock.Anything, "5551234").Return(&Booking{
		BookingRef: "5551234",
		Customer:   customers.Customer{Name: "Asha Rao", Phone: "9876543210"},
		Tickets: []BookedTicket{
			{TicketNo: 1000000001, ShowID: testShow.ShowID, SeatNo: 1001, BookingRef: "5551234"},
			{TicketNo: 1000000002, ShowID: testShow.ShowID, SeatNo: 12, BookingRef: "5551234"},
		},
	}, nil)
	f.showDir.On("GetShow", mock.Anything, testShow.ShowID).Return(testShow, nil)
	f.movieDir.On("MovieName", mock.Anything, testShow.MovieID).Return("Sample Feature", nil)
	f.prices.On("BasePriceForShow", mock.Anything, testShow.ShowID).Return(200, nil)

	result, err := f.svc.LookupByRef(context.Background(), "5551234")
	require.NoError(t, err)

	assert.Equal(t, "Sample Feature", result.MovieName)
	assert.Equal(t, "2026-09-10", result.ShowDate)
	assert.Equal(t, 1800, result.ShowTime)
	require.Len(t, result.Tickets, 2)

	// One gold seat and one standard seat, decoded and priced.
	assert.Equal(t, "A1", result.Tickets[0].Seat)
	assert.Equal(t, "GOLD", result.Tickets[0].Class)
	assert.Equal(t, 300, result.Tickets[0].Price)
	assert.Equal(t, "B2", result.Tickets[1].Seat)
	assert.Equal(t, "STANDARD", result.Tickets[1].Class)
	assert.Equal(t, 200, result.Tickets[1].Price)

	assert.Equal(t, 500, result.Pricing.PreTaxTotal)
	assert.NotEmpty(t, result.QRCode)
	assert.Contains(t, result.QRCode, "data:image/png;base64,")
}

func TestLookupByRefServesSecondCallFromCache(t *testing.T) {
	f := newFixture()
	sc := newStubCache()
	f.svc = NewService(f.repo, f.showDir, f.movieDir, f.prices, f.invalidator, f.notifier, sc, logger.New())

	f.repo.On("FindByRef", mock.Anything, "5551234").Return(&Booking{
		BookingRef: "5551234",
		Customer:   customers.Customer{Name: "Asha Rao", Phone: "9876543210"},
		Tickets: []BookedTicket{
			{TicketNo: 1000000001, ShowID: testShow.ShowID, SeatNo: 1001, BookingRef: "5551234"},
		},
	}, nil).Once()
	f.showDir.On("GetShow", mock.Anything, testShow.ShowID).Return(testShow, nil)
	f.movieDir.On("MovieName", mock.Anything, testShow.MovieID).Return("Sample Feature", nil)
	f.prices.On("BasePriceForShow", mock.Anything, testShow.ShowID).Return(200, nil)

	first, err := f.svc.LookupByRef(context.Background(), "5551234")
	require.NoError(t, err)
	assert.Equal(t, 1, sc.sets)

	second, err := f.svc.LookupByRef(context.Background(), "5551234")
	require.NoError(t, err)
	assert.Equal(t, first.BookingRef, second.BookingRef)
	assert.Equal(t, first.Tickets, second.Tickets)
	assert.Equal(t, first.QRCode, second.QRCode)
	f.repo.AssertNumberOfCalls(t, "FindByRef", 1)
}

func TestLookupByRefNotFound(t *testing.T) {
	f := newFixture()
	f.repo.On("FindByRef", mock.Anything, "0000000").Return(nil, fault.ErrNotFound)

	_, err := f.svc.LookupByRef(context.Background(), "0000000")
	assert.ErrorIs(t, err, fault.ErrNotFound)
}

func TestDailyReportGroupsByRef(t *testing.T) {
	f := newFixture()

	f.repo.On("DailyRows", mock.Anything, "2026-09-10").Return([]DailyBookingRow{
		{BookingRef: "5551234", CustomerName: "Asha Rao", CustomerPhone: "9876543210", ShowID: testShow.ShowID, ShowTime: 1800, MovieName: "Sample Feature", TicketNo: 1000000001, SeatNo: 1001},
		{BookingRef: "5551234", CustomerName: "Asha Rao", CustomerPhone: "9876543210", ShowID: testShow.ShowID, ShowTime: 1800, MovieName: "Sample Feature", TicketNo: 1000000002, SeatNo: 1002},
		{BookingRef: "7779999", CustomerName: "Vikram Iyer", CustomerPhone: "9123456780", ShowID: testShow.ShowID, ShowTime: 1800, MovieName: "Sample Feature", TicketNo: 1000000003, SeatNo: 15},
	}, nil)

	groups, err := f.svc.DailyReport(context.Background(), "2026-09-10")
	require.NoError(t, err)

	require.Len(t, groups, 2)
	assert.Equal(t, "5551234", groups[0].BookingRef)
	assert.Equal(t, []string{"A1", "A2"}, groups[0].Seats)
	assert.Equal(t, "7779999", groups[1].BookingRef)
	assert.Equal(t, []string{"B5"}, groups[1].Seats)
}
