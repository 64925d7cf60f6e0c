package pricing

import "time"

// PriceListing is a base standard-class price for a given screening
// format and day category. Gold prices are always derived from the
// base, never stored.
type PriceListing struct {
	PriceID   int64     `json:"price_id" gorm:"primaryKey"`
	Type      string    `json:"type" gorm:"not null"` // screening format, e.g. 2D
	Day       string    `json:"day" gorm:"not null"`  // e.g. WEEKDAY, WEEKEND
	Price     int       `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PriceListing) TableName() string { return "price_listings" }
