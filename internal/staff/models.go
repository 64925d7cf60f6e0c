package staff

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff is a counter operator or manager account
type Staff struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `json:"username" gorm:"not null;index"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null"` // CASHIER or MANAGER
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName overrides the default pluralisation
func (Staff) TableName() string {
	return "staff"
}

// BeforeCreate generates the UUID when the database default is unavailable
func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
