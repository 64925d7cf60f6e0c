package shows

import "time"

// Show is a scheduled screening. ShowID is a random 7-digit identifier.
// Time is stored as an HHMM integer, e.g. 1430 for 2:30 pm.
type Show struct {
	ShowID    int64     `json:"show_id" gorm:"primaryKey;autoIncrement:false"`
	MovieID   int64     `json:"movie_id" gorm:"not null;index"`
	HallID    int       `json:"hall_id" gorm:"not null;index"`
	Type      string    `json:"type" gorm:"not null"` // screening format, e.g. 2D
	Date      string    `json:"date" gorm:"type:date;not null;index"`
	Time      int       `json:"time" gorm:"not null"`
	PriceID   *int64    `json:"price_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Show) TableName() string { return "shows" }

// MinutesFromMidnight converts the HHMM show time to minutes
func (s *Show) MinutesFromMidnight() int {
	return HHMMToMinutes(s.Time)
}

// HHMMToMinutes converts an HHMM integer to minutes from midnight
func HHMMToMinutes(hhmm int) int {
	return (hhmm/100)*60 + hhmm%100
}
