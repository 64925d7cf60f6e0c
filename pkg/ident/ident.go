// Package ident generates the random numeric identifiers used across
// the box office: 7-digit show/movie ids and booking references,
// 10-digit ticket numbers. Generation is collision-checked by callers
// against storage; the hard uniqueness guarantee lives in database
// constraints, not here.
package ident

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// ShowMovieDigits covers show ids, movie ids and booking references.
	ShowMovieDigits = 7
	// TicketDigits covers ticket numbers.
	TicketDigits = 10
)

// RandomNumeric returns a uniformly random integer with exactly the
// given number of decimal digits (no leading zero).
func RandomNumeric(digits int) (int64, error) {
	if digits < 1 || digits > 18 {
		return 0, fmt.Errorf("ident: unsupported digit count %d", digits)
	}
	min := int64(1)
	for i := 1; i < digits; i++ {
		min *= 10
	}
	span := min*10 - min // e.g. 9_000_000 candidates for 7 digits

	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return 0, fmt.Errorf("ident: %w", err)
	}
	return min + n.Int64(), nil
}

// NewShowID returns a candidate 7-digit show identifier.
func NewShowID() (int64, error) { return RandomNumeric(ShowMovieDigits) }

// NewMovieID returns a candidate 7-digit movie identifier.
func NewMovieID() (int64, error) { return RandomNumeric(ShowMovieDigits) }

// NewTicketNo returns a candidate 10-digit ticket number.
func NewTicketNo() (int64, error) { return RandomNumeric(TicketDigits) }

// NewBookingRef returns a candidate booking reference as a numeric
// string, the public locator printed on tickets.
func NewBookingRef() (string, error) {
	n, err := RandomNumeric(ShowMovieDigits)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n), nil
}
