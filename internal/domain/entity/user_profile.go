package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfile holds the sales representative's own details and visit counters
type UserProfile struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"_id"`
	UserID      string    `gorm:"size:64;not null;uniqueIndex" json:"userId"`
	Name        string    `gorm:"size:255" json:"name"`
	Email       string    `gorm:"size:255" json:"email"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Address     string    `gorm:"type:text" json:"address"`
	Designation string    `gorm:"size:255" json:"designation"`
	Version     int       `gorm:"not null;default:0" json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relationships
	DoctorVisits []DoctorVisit `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"doctorVisits"`
}

// BeforeCreate generates a UUID before creating a new profile
func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UserProfile model
func (UserProfile) TableName() string {
	return "user_profiles"
}

// DoctorVisit counts how many times the user engaged a doctor
type DoctorVisit struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"_id"`
	ProfileID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	DoctorID     *uuid.UUID `gorm:"type:uuid;index" json:"doctorId,omitempty"`
	DoctorName   string     `gorm:"size:255;not null" json:"doctorName"`
	DoctorDegree string     `gorm:"size:255;not null" json:"doctorDegree"`
	NoOfVisits   int        `gorm:"not null;default:0" json:"noOfVisits"`
	Position     int        `gorm:"not null;default:0" json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new visit
func (v *DoctorVisit) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DoctorVisit model
func (DoctorVisit) TableName() string {
	return "doctor_visits"
}

// HasDoctorIdentity reports whether both name and degree are non-blank
func (v *DoctorVisit) HasDoctorIdentity() bool {
	return strings.TrimSpace(v.DoctorName) != "" && strings.TrimSpace(v.DoctorDegree) != ""
}

// SameDoctor compares doctor identities case-insensitively, ignoring surrounding spaces
func SameDoctor(nameA, degreeA, nameB, degreeB string) bool {
	return strings.EqualFold(strings.TrimSpace(nameA), strings.TrimSpace(nameB)) &&
		strings.EqualFold(strings.TrimSpace(degreeA), strings.TrimSpace(degreeB))
}
