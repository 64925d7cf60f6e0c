package bookings

import (
	"time"

	"cinebox/internal/customers"
)

// Booking groups the tickets sold in one counter transaction
type Booking struct {
	ID         uint      `json:"-" gorm:"primaryKey"`
	BookingRef string    `json:"booking_ref" gorm:"not null;index"`
	CustomerID uint      `json:"-" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`

	Customer customers.Customer `json:"customer" gorm:"foreignKey:CustomerID"`
	Tickets  []BookedTicket     `json:"tickets" gorm:"foreignKey:BookingRef;references:BookingRef"`
}

// BookedTicket is one sold seat. SeatNo is the internal seat id, with
// gold seats offset above the threshold.
type BookedTicket struct {
	ID         uint   `json:"-" gorm:"primaryKey"`
	TicketNo   int64  `json:"ticket_no" gorm:"not null"`
	ShowID     int64  `json:"show_id" gorm:"not null;index"`
	SeatNo     int    `json:"seat_no" gorm:"not null"`
	BookingRef string `json:"booking_ref" gorm:"not null;index"`
}

func (Booking) TableName() string      { return "bookings" }
func (BookedTicket) TableName() string { return "booked_tickets" }
