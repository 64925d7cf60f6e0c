package halls

import "time"

// Hall is a physical auditorium
type Hall struct {
	HallID    int       `json:"hall_id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Sections []HallSection `json:"sections" gorm:"foreignKey:HallID;references:HallID"`
}

// HallSection is the per-class capacity of a hall. One row per
// (hall, class).
type HallSection struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	HallID   int    `json:"-" gorm:"not null;index"`
	Class    string `json:"class" gorm:"not null"` // STANDARD or GOLD
	Capacity int    `json:"capacity" gorm:"not null"`
}

func (Hall) TableName() string        { return "halls" }
func (HallSection) TableName() string { return "hall_sections" }
