package pricing

import (
	"fmt"
	"math"

	"cinebox/internal/seating"
	"cinebox/internal/shared/fault"
)

// GST rates by base-price bracket. Half the rate goes to CGST and half
// to SGST. The bracket is decided by the base standard price, not the
// per-seat price, which keeps one tax rate per booking.
const (
	gstBracketCutoff = 100

	lowHalfRate  = 0.06
	highHalfRate = 0.09
)

// SeatPrice is the engine's per-seat output
type SeatPrice struct {
	Class string `json:"class"`
	Price int    `json:"price"`
}

// TaxBreakdown is the GST portion of a quote
type TaxBreakdown struct {
	CGSTRate float64 `json:"cgst_rate"`
	SGSTRate float64 `json:"sgst_rate"`
	CGST     float64 `json:"cgst"`
	SGST     float64 `json:"sgst"`
}

// Quote is a fully priced set of seats
type Quote struct {
	Seats       []SeatPrice  `json:"seats"`
	PreTaxTotal int          `json:"pre_tax_total"`
	Tax         TaxBreakdown `json:"tax"`
	FinalTotal  float64      `json:"final_total"`
}

// PriceForClass returns the price of one seat of the given class at the
// given base standard price. Gold is base times 1.5, truncated.
func PriceForClass(base int, class string) (int, error) {
	if base < 0 {
		return 0, fmt.Errorf("%w: negative base price %d", fault.ErrInvalidInput, base)
	}
	normalized, err := seating.NormalizeClass(class)
	if err != nil {
		return 0, err
	}
	if normalized == seating.ClassGold {
		return base * 3 / 2, nil
	}
	return base, nil
}

// halfRateFor picks the per-component GST rate for a base price
func halfRateFor(base int) float64 {
	if base > gstBracketCutoff {
		return highHalfRate
	}
	return lowHalfRate
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildQuote prices each seat class at the base price and applies GST
func BuildQuote(base int, classes []string) (*Quote, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("%w: no seats to price", fault.ErrInvalidInput)
	}

	quote := &Quote{Seats: make([]SeatPrice, 0, len(classes))}
	for _, class := range classes {
		price, err := PriceForClass(base, class)
		if err != nil {
			return nil, err
		}
		normalized, _ := seating.NormalizeClass(class)
		quote.Seats = append(quote.Seats, SeatPrice{Class: normalized, Price: price})
		quote.PreTaxTotal += price
	}

	halfRate := halfRateFor(base)
	quote.Tax = TaxBreakdown{
		CGSTRate: halfRate,
		SGSTRate: halfRate,
		CGST:     round2(float64(quote.PreTaxTotal) * halfRate),
		SGST:     round2(float64(quote.PreTaxTotal) * halfRate),
	}
	quote.FinalTotal = round2(float64(quote.PreTaxTotal) + quote.Tax.CGST + quote.Tax.SGST)
	return quote, nil
}
