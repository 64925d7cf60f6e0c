// Package migrations wires the domain models into schema migration.
// It lives below the database package so the domain slices can depend
// on database helpers without a cycle.
package migrations

import (
	"fmt"

	"cinebox/internal/bookings"
	"cinebox/internal/customers"
	"cinebox/internal/halls"
	"cinebox/internal/movies"
	"cinebox/internal/pricing"
	"cinebox/internal/shared/database"
	"cinebox/internal/shows"
	"cinebox/internal/staff"

	"gorm.io/gorm"
)

// Migrate runs the schema migrations and applies the unique constraints
// the booking path depends on
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&staff.Staff{},
		&movies.Movie{},
		&movies.MovieFormat{},
		&halls.Hall{},
		&halls.HallSection{},
		&shows.Show{},
		&pricing.PriceListing{},
		&customers.Customer{},
		&bookings.Booking{},
		&bookings.BookedTicket{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := database.ApplyConstraints(db); err != nil {
		return fmt.Errorf("apply constraints: %w", err)
	}

	return nil
}
