package seating

import (
	"fmt"
	"strings"

	"cinebox/internal/shared/fault"
)

// Seat classes as they appear on tickets and in requests.
const (
	ClassStandard = "STANDARD"
	ClassGold     = "GOLD"
)

// GoldSeatThreshold separates the two seat-number ranges in storage:
// standard seats keep their display number, gold seats store display
// number + threshold. Standard capacity must therefore stay below it.
const GoldSeatThreshold = 1000

// RowWidth is the number of seats per physical row when labelling.
const RowWidth = 10

// MaxSeatsPerClass bounds per-class capacity so labels never run past
// row 'Z' (26 rows of RowWidth seats).
const MaxSeatsPerClass = 26 * RowWidth

// Encode maps a 1-based display seat number and class to the internal
// seat id stored against the show.
func Encode(index int, class string) (int, error) {
	if index <= 0 {
		return 0, fmt.Errorf("%w: seat number %d must be positive", fault.ErrInvalidInput, index)
	}
	switch strings.ToUpper(class) {
	case ClassStandard:
		return index, nil
	case ClassGold:
		return index + GoldSeatThreshold, nil
	default:
		return 0, fmt.Errorf("%w: unknown seat class %q", fault.ErrInvalidInput, class)
	}
}

// Decode maps an internal seat id back to the display number and class.
func Decode(internalNo int) (int, string, error) {
	if internalNo <= 0 {
		return 0, "", fmt.Errorf("%w: internal seat id %d must be positive", fault.ErrInvalidInput, internalNo)
	}
	if internalNo > GoldSeatThreshold {
		return internalNo - GoldSeatThreshold, ClassGold, nil
	}
	return internalNo, ClassStandard, nil
}

// Label renders a 1-based display seat number as row letter plus
// 1-based column, e.g. 1 -> "A1", 11 -> "B1", 260 -> "Z10".
func Label(index int) (string, error) {
	if index <= 0 {
		return "", fmt.Errorf("%w: seat number %d must be positive", fault.ErrInvalidInput, index)
	}
	if index > MaxSeatsPerClass {
		return "", fmt.Errorf("%w: seat number %d exceeds row Z", fault.ErrInvalidInput, index)
	}
	row := (index - 1) / RowWidth
	col := (index-1)%RowWidth + 1
	return fmt.Sprintf("%c%d", 'A'+row, col), nil
}

// NormalizeClass uppercases and validates a seat class.
func NormalizeClass(class string) (string, error) {
	upper := strings.ToUpper(strings.TrimSpace(class))
	if upper != ClassStandard && upper != ClassGold {
		return "", fmt.Errorf("%w: unknown seat class %q", fault.ErrInvalidInput, class)
	}
	return upper, nil
}
