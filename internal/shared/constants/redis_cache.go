package constants

import "time"

// Cache key prefixes and templates. All keys are namespaced under "cinebox:".
const (
	CacheKeyPrefix = "cinebox:"

	// Seat availability per show. Short TTL because bookings invalidate it
	// and a stale map at the counter would double-offer seats.
	CacheKeySeatMap = CacheKeyPrefix + "shows:%d:seatmap" // show ID

	// Movie catalogue for a calendar date.
	CacheKeyMoviesOnDate = CacheKeyPrefix + "movies:date:%s" // YYYY-MM-DD

	// Show timings for a movie on a date in a format.
	CacheKeyShowTimings = CacheKeyPrefix + "shows:movie:%d:date:%s:type:%s"

	// Price listing for a screening format and day category.
	CacheKeyPriceListing = CacheKeyPrefix + "pricing:type:%s:day:%s"

	// Booking lookup by reference.
	CacheKeyBookingRef = CacheKeyPrefix + "bookings:ref:%s" // booking ref

	// Pattern helpers for invalidation.
	CachePatternShowAll    = CacheKeyPrefix + "shows:*"
	CachePatternMoviesAll  = CacheKeyPrefix + "movies:*"
	CachePatternPricingAll = CacheKeyPrefix + "pricing:*"
)

// Cache TTLs.
const (
	CacheTTLSeatMap      = 30 * time.Second
	CacheTTLMoviesOnDate = 5 * time.Minute
	CacheTTLShowTimings  = 5 * time.Minute
	CacheTTLPriceListing = 30 * time.Minute
	CacheTTLBookingRef   = 10 * time.Minute
)
