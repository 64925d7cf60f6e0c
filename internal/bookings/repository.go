package bookings

import (
	"context"
	"errors"
	"fmt"

	"cinebox/internal/customers"
	"cinebox/internal/shared/fault"

	"gorm.io/gorm"
)

// DailyBookingRow is one ticket row in the manager's daily report,
// joined across bookings, customers and shows.
type DailyBookingRow struct {
	BookingRef    string
	CustomerName  string
	CustomerPhone string
	ShowID        int64
	ShowTime      int
	MovieName     string
	TicketNo      int64
	SeatNo        int
}

// Repository persists bookings and answers seat-occupancy queries
type Repository interface {
	RefExists(ctx context.Context, bookingRef string) (bool, error)
	TicketNoExists(ctx context.Context, ticketNo int64) (bool, error)
	// CreateBooking persists the customer, booking and all tickets in
	// one transaction. Constraint violations surface unwrapped for the
	// service to classify.
	CreateBooking(ctx context.Context, name, phone, bookingRef string, tickets []BookedTicket) (*Booking, error)
	FindByRef(ctx context.Context, bookingRef string) (*Booking, error)
	BookedSeats(ctx context.Context, showID int64) (map[int]struct{}, error)
	TicketsForShow(ctx context.Context, showID int64) ([]BookedTicket, error)
	DailyRows(ctx context.Context, date string) ([]DailyBookingRow, error)
}

type repository struct {
	db        *gorm.DB
	customers customers.Repository
}

func NewRepository(db *gorm.DB, customerRepo customers.Repository) Repository {
	return &repository{db: db, customers: customerRepo}
}

func (r *repository) RefExists(ctx context.Context, bookingRef string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Booking{}).
		Where("booking_ref = ?", bookingRef).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check booking ref: %w", err)
	}
	return count > 0, nil
}

func (r *repository) TicketNoExists(ctx context.Context, ticketNo int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BookedTicket{}).
		Where("ticket_no = ?", ticketNo).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check ticket no: %w", err)
	}
	return count > 0, nil
}

func (r *repository) CreateBooking(ctx context.Context, name, phone, bookingRef string, tickets []BookedTicket) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customer, err := r.customers.ResolveByPhone(ctx, tx, name, phone)
		if err != nil {
			return err
		}

		booking = Booking{
			BookingRef: bookingRef,
			CustomerID: customer.ID,
			Customer:   *customer,
		}
		if err := tx.Omit("Customer", "Tickets").Create(&booking).Error; err != nil {
			return err
		}

		for i := range tickets {
			tickets[i].BookingRef = bookingRef
		}
		if err := tx.Create(&tickets).Error; err != nil {
			return err
		}
		booking.Tickets = tickets
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) FindByRef(ctx context.Context, bookingRef string) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Tickets").
		Where("booking_ref = ?", bookingRef).
		First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: booking %s", fault.ErrNotFound, bookingRef)
	}
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return &booking, nil
}

func (r *repository) BookedSeats(ctx context.Context, showID int64) (map[int]struct{}, error) {
	var seatNos []int
	err := r.db.WithContext(ctx).Model(&BookedTicket{}).
		Where("show_id = ?", showID).
		Pluck("seat_no", &seatNos).Error
	if err != nil {
		return nil, fmt.Errorf("booked seats for show %d: %w", showID, err)
	}

	taken := make(map[int]struct{}, len(seatNos))
	for _, seatNo := range seatNos {
		taken[seatNo] = struct{}{}
	}
	return taken, nil
}

func (r *repository) TicketsForShow(ctx context.Context, showID int64) ([]BookedTicket, error) {
	var tickets []BookedTicket
	err := r.db.WithContext(ctx).
		Where("show_id = ?", showID).
		Order("seat_no ASC").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("tickets for show %d: %w", showID, err)
	}
	return tickets, nil
}

func (r *repository) DailyRows(ctx context.Context, date string) ([]DailyBookingRow, error) {
	var rows []DailyBookingRow
	err := r.db.WithContext(ctx).
		Table("booked_tickets").
		Select(`bookings.booking_ref,
			customers.name AS customer_name,
			customers.phone AS customer_phone,
			booked_tickets.show_id,
			shows.time AS show_time,
			movies.name AS movie_name,
			booked_tickets.ticket_no,
			booked_tickets.seat_no`).
		Joins("JOIN bookings ON bookings.booking_ref = booked_tickets.booking_ref").
		Joins("JOIN customers ON customers.id = bookings.customer_id").
		Joins("JOIN shows ON shows.show_id = booked_tickets.show_id").
		Joins("JOIN movies ON movies.movie_id = shows.movie_id").
		Where("shows.date = ?", date).
		Order("bookings.booking_ref, booked_tickets.seat_no").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("bookings on %s: %w", date, err)
	}
	return rows, nil
}
