package repository

//go:generate mockgen -source=profile_repository.go -destination=mocks/mock_profile_repository.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/medrep-crm/internal/domain/entity"
)

// ProfileRepository defines the interface for user profile operations
type ProfileRepository interface {
	// GetByUserID loads the profile with its visits in display order
	GetByUserID(ctx context.Context, userID string) (*entity.UserProfile, error)
	Create(ctx context.Context, profile *entity.UserProfile) error
	// Update saves the profile columns, not the visits
	Update(ctx context.Context, profile *entity.UserProfile) error
	// BumpVersion increments the version if it still equals expected and
	// reports whether it did
	BumpVersion(ctx context.Context, profileID uuid.UUID, expected int) (bool, error)
}

// VisitRepository defines the interface for doctor visit rows
type VisitRepository interface {
	GetByID(ctx context.Context, profileID, id uuid.UUID) (*entity.DoctorVisit, error)
	Create(ctx context.Context, visit *entity.DoctorVisit) error
	Update(ctx context.Context, visit *entity.DoctorVisit) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProfile(ctx context.Context, profileID uuid.UUID) error
	// RenameForDoctor rewrites the doctor identity on every visit linked to doctorID
	RenameForDoctor(ctx context.Context, doctorID uuid.UUID, name, degree string) error
}

// TxManager runs fn inside a database transaction. Repositories called with the
// ctx passed to fn take part in that transaction.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
