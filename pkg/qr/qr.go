// Package qr renders the scannable payload printed on tickets. The
// payload format is fixed (gate scanners parse it):
//
//	Ref:<booking ref>
//	Show:<show id>
//	Date:<yyyy-mm-dd>
//	T<ticket no>:S<seat>;T<ticket no>:S<seat>;...
package qr

import (
	"encoding/base64"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// TicketLine is one ticket's contribution to the payload.
type TicketLine struct {
	TicketNo int64
	Seat     string // compact seat form, e.g. "A4(G)"
}

// BuildPayload assembles the payload string for a booking.
func BuildPayload(bookingRef string, showID int64, date string, tickets []TicketLine) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ref:%s\n", bookingRef)
	fmt.Fprintf(&b, "Show:%d\n", showID)
	fmt.Fprintf(&b, "Date:%s\n", date)
	parts := make([]string, 0, len(tickets))
	for _, t := range tickets {
		parts = append(parts, fmt.Sprintf("T%d:S%s", t.TicketNo, t.Seat))
	}
	b.WriteString(strings.Join(parts, ";"))
	return b.String()
}

// DataURI encodes the payload as a PNG QR code and returns it as an
// inline data URI suitable for an <img> src.
func DataURI(payload string, size int) (string, error) {
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(payload, qrcode.Low, size)
	if err != nil {
		return "", fmt.Errorf("qr encode: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
