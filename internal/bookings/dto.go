package bookings

import "cinebox/internal/pricing"

// SeatSelection is one requested seat: display number plus class, so a
// single booking can mix gold and standard seats.
type SeatSelection struct {
	Number int    `json:"number" binding:"required,gt=0"`
	Class  string `json:"class" binding:"required,seatclass"`
}

// CreateBookingRequest is the cashier payload for booking seats
type CreateBookingRequest struct {
	ShowID        int64           `json:"show_id" binding:"required"`
	Seats         []SeatSelection `json:"seats" binding:"required,min=1,dive"`
	CustomerName  string          `json:"customer_name" binding:"required"`
	CustomerPhone string          `json:"customer_phone" binding:"required"`
}

// TicketView is one sold seat in API responses
type TicketView struct {
	TicketNo int64  `json:"ticket_no"`
	Seat     string `json:"seat"`
	Class    string `json:"class"`
	Price    int    `json:"price"`
}

// CreateBookingResponse is the booking confirmation payload
type CreateBookingResponse struct {
	BookingRef string         `json:"booking_ref"`
	ShowID     int64          `json:"show_id"`
	Tickets    []TicketView   `json:"tickets"`
	Pricing    *pricing.Quote `json:"pricing"`
	LookupPath string         `json:"lookup_path"`
}

// BookingLookupResponse is the full booking record for a reference
type BookingLookupResponse struct {
	BookingRef    string         `json:"booking_ref"`
	CustomerName  string         `json:"customer_name"`
	CustomerPhone string         `json:"customer_phone"`
	MovieName     string         `json:"movie_name"`
	ShowID        int64          `json:"show_id"`
	ShowDate      string         `json:"show_date"`
	ShowTime      int            `json:"show_time"`
	HallID        int            `json:"hall_id"`
	Tickets       []TicketView   `json:"tickets"`
	Pricing       *pricing.Quote `json:"pricing"`
	QRCode        string         `json:"qr_code"` // PNG data URI
}

// DailyBookingGroup is one booking in the manager's daily report
type DailyBookingGroup struct {
	BookingRef    string       `json:"booking_ref"`
	CustomerName  string       `json:"customer_name"`
	CustomerPhone string       `json:"customer_phone"`
	ShowID        int64        `json:"show_id"`
	ShowTime      int          `json:"show_time"`
	MovieName     string       `json:"movie_name"`
	Seats         []string     `json:"seats"`
	Tickets       []TicketView `json:"tickets,omitempty"`
}
