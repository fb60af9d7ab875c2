package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sangkips/medrep-crm/internal/domain/entity"
)

// ErrInvalidNamespace is returned when a user id cannot name a billing namespace
var ErrInvalidNamespace = errors.New("invalid billing namespace")

// EntryFilter narrows FindAll and DeleteMany. The zero value matches every entry.
type EntryFilter struct {
	From *time.Time // inclusive
	To   *time.Time // inclusive
	// MissingDoctorIdentity matches entries whose doctorName or doctorDegree
	// is missing, null or empty
	MissingDoctorIdentity bool
}

// BillingNamespace is the data-access handle bound to one user's billing entries.
// Lookups by id return (nil, nil) when the entry does not exist.
type BillingNamespace interface {
	Name() string
	// FindAll returns matching entries ordered by timestamp, newest first
	FindAll(ctx context.Context, filter EntryFilter) ([]entity.BillingEntry, error)
	FindByID(ctx context.Context, id string) (*entity.BillingEntry, error)
	Insert(ctx context.Context, entry *entity.BillingEntry) error
	InsertMany(ctx context.Context, entries []*entity.BillingEntry) error
	UpdateByID(ctx context.Context, id string, patch *entity.BillingPatch) (*entity.BillingEntry, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	DeleteMany(ctx context.Context, filter EntryFilter) (int64, error)
}

// BillingRegistry hands out the namespace of a user. Resolving the same user
// twice returns the same handle.
type BillingRegistry interface {
	Resolve(ctx context.Context, userID string) (BillingNamespace, error)
}
