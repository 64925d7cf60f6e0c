package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Named unique constraints created by ApplyConstraints. The booking path
// inspects which one fired to decide between retrying with a fresh ticket
// number and reporting a seat conflict.
const (
	ConstraintShowSeat   = "uq_booked_tickets_show_seat"
	ConstraintTicketNo   = "uq_booked_tickets_ticket_no"
	ConstraintBookingRef = "uq_bookings_booking_ref"
	ConstraintPhone      = "uq_customers_phone"
	ConstraintUsername   = "uq_staff_username"
	ConstraintHallClass  = "uq_hall_sections_hall_class"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique violation.
// If constraint is non-empty, it must also match the violated constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// ApplyConstraints creates the unique constraints the application relies
// on for correctness. Idempotent across restarts.
func ApplyConstraints(db *gorm.DB) error {
	constraints := []struct {
		table, name, columns string
	}{
		{"booked_tickets", ConstraintShowSeat, "(show_id, seat_no)"},
		{"booked_tickets", ConstraintTicketNo, "(ticket_no)"},
		{"bookings", ConstraintBookingRef, "(booking_ref)"},
		{"customers", ConstraintPhone, "(phone)"},
		{"staff", ConstraintUsername, "(username)"},
		{"hall_sections", ConstraintHallClass, "(hall_id, class)"},
	}
	for _, c := range constraints {
		drop := fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s", c.table, c.name)
		if err := db.Exec(drop).Error; err != nil {
			return err
		}
		add := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s UNIQUE %s", c.table, c.name, c.columns)
		if err := db.Exec(add).Error; err != nil {
			return err
		}
	}
	return nil
}
