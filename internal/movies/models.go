package movies

import "time"

// Movie is a title in the catalogue. MovieID is a random 7-digit
// identifier allocated at creation.
type Movie struct {
	MovieID   int64     `json:"movie_id" gorm:"primaryKey;autoIncrement:false"`
	Name      string    `json:"name" gorm:"not null"`
	Length    int       `json:"length" gorm:"not null"` // minutes
	Language  string    `json:"language" gorm:"not null"`
	ShowStart string    `json:"show_start" gorm:"type:date;not null"` // YYYY-MM-DD
	ShowEnd   string    `json:"show_end" gorm:"type:date;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Formats []MovieFormat `json:"formats" gorm:"foreignKey:MovieID;references:MovieID"`
}

// MovieFormat is a screening format the movie is released in, e.g.
// 2D, 3D, IMAX. One row per (movie, format).
type MovieFormat struct {
	ID      uint   `json:"-" gorm:"primaryKey"`
	MovieID int64  `json:"-" gorm:"not null;index"`
	Name    string `json:"name" gorm:"not null"`
}

func (Movie) TableName() string       { return "movies" }
func (MovieFormat) TableName() string { return "movie_formats" }

// FormatNames flattens the format rows
func (m *Movie) FormatNames() []string {
	names := make([]string, 0, len(m.Formats))
	for _, f := range m.Formats {
		names = append(names, f.Name)
	}
	return names
}
