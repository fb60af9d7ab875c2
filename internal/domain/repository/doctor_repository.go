package repository

//go:generate mockgen -source=doctor_repository.go -destination=mocks/mock_doctor_repository.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/medrep-crm/internal/domain/entity"
)

// DoctorRepository defines the interface for doctor directory operations.
// Finders return (nil, nil) when nothing matches.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Doctor, error)
	// FindExact matches name, degree and location exactly
	FindExact(ctx context.Context, userID, name, degree, location string) (*entity.Doctor, error)
	// FindByName matches the name exactly, skipping excludeID when set
	FindByName(ctx context.Context, userID, name string, excludeID *uuid.UUID) (*entity.Doctor, error)
	// FindByIdentity matches name and degree case-insensitively
	FindByIdentity(ctx context.Context, userID, name, degree string) (*entity.Doctor, error)
	Update(ctx context.Context, doctor *entity.Doctor) error
	Delete(ctx context.Context, id uuid.UUID) error
}
