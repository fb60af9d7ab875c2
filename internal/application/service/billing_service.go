package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/medrep-crm/internal/domain/entity"
	"github.com/sangkips/medrep-crm/internal/domain/repository"
	"github.com/sangkips/medrep-crm/pkg/apperror"
)

const (
	msgFetchFailed       = "Failed to fetch data."
	msgSaveFailed        = "Failed to save data."
	msgUpdateFailed      = "Failed to update entry."
	msgDeleteFailed      = "Failed to delete entry."
	msgSampleFailed      = "Failed to create sample data."
	msgCleanFailed       = "Failed to clean corrupted data."
	msgEntryNotFound     = "Entry not found."
	msgDoctorNotInDirect = "Doctor not found in your directory."
)

// BillingService handles a user's billing entries
type BillingService struct {
	registry   repository.BillingRegistry
	doctorRepo repository.DoctorRepository
	now        func() time.Time
}

// NewBillingService creates a new billing service
func NewBillingService(registry repository.BillingRegistry, doctorRepo repository.DoctorRepository) *BillingService {
	return &BillingService{
		registry:   registry,
		doctorRepo: doctorRepo,
		now:        time.Now,
	}
}

// ListEntries returns every entry of the user, newest first
func (s *BillingService) ListEntries(ctx context.Context, userID string) ([]entity.BillingEntry, error) {
	ns, err := resolveNamespace(ctx, s.registry, userID, msgFetchFailed)
	if err != nil {
		return nil, err
	}

	entries, err := ns.FindAll(ctx, repository.EntryFilter{})
	if err != nil {
		return nil, apperror.Wrap(err, msgFetchFailed)
	}
	return entries, nil
}

// CreateEntry validates a submission and stores it in the user's namespace
func (s *BillingService) CreateEntry(ctx context.Context, userID string, input *BillingInput) (*entity.BillingEntry, error) {
	entry, err := ValidateAndNormalize(input, s.now())
	if err != nil {
		return nil, err
	}

	if entry.DoctorID != "" {
		if err := s.checkDirectoryDoctor(ctx, userID, entry.DoctorID); err != nil {
			return nil, err
		}
	}

	ns, err := resolveNamespace(ctx, s.registry, userID, msgSaveFailed)
	if err != nil {
		return nil, err
	}
	if err := ns.Insert(ctx, entry); err != nil {
		return nil, apperror.Wrap(err, msgSaveFailed)
	}
	return entry, nil
}

func (s *BillingService) checkDirectoryDoctor(ctx context.Context, userID, doctorID string) error {
	id, err := uuid.Parse(doctorID)
	if err != nil {
		return apperror.NewFieldError("doctorId", msgDoctorNotInDirect)
	}
	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.Wrap(err, msgSaveFailed)
	}
	if doctor == nil || doctor.UserID != userID {
		return apperror.NewFieldError("doctorId", msgDoctorNotInDirect)
	}
	return nil
}

// UpdateEntry applies the supplied fields to an existing entry
func (s *BillingService) UpdateEntry(ctx context.Context, userID, id string, input *BillingInput) (*entity.BillingEntry, error) {
	patch, err := ValidatePatch(input)
	if err != nil {
		return nil, err
	}

	ns, err := resolveNamespace(ctx, s.registry, userID, msgUpdateFailed)
	if err != nil {
		return nil, err
	}

	entry, err := ns.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, apperror.Wrap(err, msgUpdateFailed)
	}
	if entry == nil {
		return nil, apperror.NewNotFoundError(msgEntryNotFound)
	}
	return entry, nil
}

// DeleteEntry removes one entry
func (s *BillingService) DeleteEntry(ctx context.Context, userID, id string) error {
	ns, err := resolveNamespace(ctx, s.registry, userID, msgDeleteFailed)
	if err != nil {
		return err
	}

	deleted, err := ns.DeleteByID(ctx, id)
	if err != nil {
		return apperror.Wrap(err, msgDeleteFailed)
	}
	if !deleted {
		return apperror.NewNotFoundError(msgEntryNotFound)
	}
	return nil
}

// CreateSampleData replaces everything in the user's namespace with three
// demonstration entries
func (s *BillingService) CreateSampleData(ctx context.Context, userID string) ([]*entity.BillingEntry, error) {
	ns, err := resolveNamespace(ctx, s.registry, userID, msgSampleFailed)
	if err != nil {
		return nil, err
	}

	if _, err := ns.DeleteMany(ctx, repository.EntryFilter{}); err != nil {
		return nil, apperror.Wrap(err, msgSampleFailed)
	}

	entries := sampleEntries(s.now())
	if err := ns.InsertMany(ctx, entries); err != nil {
		return nil, apperror.Wrap(err, msgSampleFailed)
	}
	return entries, nil
}

func sampleEntries(now time.Time) []*entity.BillingEntry {
	samples := []struct {
		name, degree, location      string
		units, total, discount, net float64
	}{
		{"Dr. John Smith", "MBBS, MD", "Mumbai", 50, 1500, 10, 1350},
		{"Dr. Sarah Johnson", "MBBS, MS", "Delhi", 75, 2000, 15, 1700},
		{"Dr. Michael Brown", "MBBS, DNB", "Bangalore", 30, 1200, 5, 1140},
	}

	entries := make([]*entity.BillingEntry, 0, len(samples))
	for _, sm := range samples {
		entries = append(entries, &entity.BillingEntry{
			DoctorName:         sm.name,
			DoctorDegree:       sm.degree,
			DoctorLocation:     sm.location,
			SampleUnits:        sm.units,
			TotalOrderAmount:   sm.total,
			DiscountPercentage: sm.discount,
			NetAmount:          sm.net,
			TotalAmount:        sm.total,
			AmountToPay:        sm.net,
			MRAmount:           sm.total - sm.net,
			Timestamp:          now,
		})
	}
	return entries
}

// SweepCorrupted deletes the entries that lack a doctor name or degree and
// returns how many were removed
func (s *BillingService) SweepCorrupted(ctx context.Context, userID string) (int64, error) {
	ns, err := resolveNamespace(ctx, s.registry, userID, msgCleanFailed)
	if err != nil {
		return 0, err
	}

	deleted, err := ns.DeleteMany(ctx, repository.EntryFilter{MissingDoctorIdentity: true})
	if err != nil {
		return 0, apperror.Wrap(err, msgCleanFailed)
	}
	return deleted, nil
}

func resolveNamespace(ctx context.Context, registry repository.BillingRegistry, userID, failMsg string) (repository.BillingNamespace, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperror.ErrUnauthorized
	}
	ns, err := registry.Resolve(ctx, userID)
	if errors.Is(err, repository.ErrInvalidNamespace) {
		return nil, apperror.NewBadRequestError("Invalid user identity.")
	}
	if err != nil {
		return nil, apperror.Wrap(err, failMsg)
	}
	return ns, nil
}
