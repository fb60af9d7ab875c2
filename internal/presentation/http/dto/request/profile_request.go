package request

import "github.com/google/uuid"

// UpdateProfileRequest represents a profile update. Absent fields are kept.
type UpdateProfileRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Email       *string `json:"email" binding:"omitempty,max=255"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Address     *string `json:"address"`
	Designation *string `json:"designation" binding:"omitempty,max=255"`
}

// RecordVisitRequest represents one visit to a doctor
type RecordVisitRequest struct {
	DoctorName     string `json:"doctorName"`
	DoctorDegree   string `json:"doctorDegree"`
	DoctorLocation string `json:"doctorLocation"`
}

// VisitRequest is one row of a visit list
type VisitRequest struct {
	ID           *uuid.UUID `json:"_id"`
	DoctorName   string     `json:"doctorName"`
	DoctorDegree string     `json:"doctorDegree"`
	NoOfVisits   int        `json:"noOfVisits"`
}

// ReplaceVisitsRequest replaces the whole visit list. Version must be the
// profile version the client loaded.
type ReplaceVisitsRequest struct {
	Version      *int           `json:"version" binding:"required"`
	DoctorVisits []VisitRequest `json:"doctorVisits" binding:"dive"`
}
