package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Doctor is an entry in a user's doctor directory
type Doctor struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"_id"`
	UserID    string    `gorm:"size:64;not null;index" json:"user"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Degree    string    `gorm:"size:255;not null" json:"degree"`
	Location  string    `gorm:"size:255;not null" json:"location"`
	Visits    int       `gorm:"not null;default:0" json:"visits"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new doctor
func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
