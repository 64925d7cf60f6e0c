package fault

import "errors"

// Classified failure kinds returned by service operations. Controllers
// map these onto HTTP statuses; services wrap them with context via
// fmt.Errorf("...: %w", ...) so errors.Is still matches the kind.
var (
	// ErrInvalidInput covers missing or malformed request fields.
	// Recovered locally, no state change.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound covers references to absent shows, halls, movies,
	// prices or bookings. No state change.
	ErrNotFound = errors.New("not found")

	// ErrCollisionExhausted means random identifier allocation ran out
	// of retry attempts. Fatal for the request, no partial writes.
	ErrCollisionExhausted = errors.New("identifier collision retries exhausted")

	// ErrConstraintViolation means storage rejected a duplicate seat,
	// ticket number or reference. Surfaced as a booking failure.
	ErrConstraintViolation = errors.New("storage constraint violated")

	// ErrStorageUnavailable means the database collaborator could not
	// be reached. Reported generically, operation aborted.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// IsInvalidInput reports whether err is classified as invalid input.
func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsNotFound reports whether err is classified as not found.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err is a uniqueness conflict of any kind
// (constraint violation or exhausted collision retries).
func IsConflict(err error) bool {
	return errors.Is(err, ErrConstraintViolation) || errors.Is(err, ErrCollisionExhausted)
}
