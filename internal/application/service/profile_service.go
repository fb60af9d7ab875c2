package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/medrep-crm/internal/domain/entity"
	"github.com/sangkips/medrep-crm/internal/domain/repository"
	"github.com/sangkips/medrep-crm/pkg/apperror"
)

const (
	defaultProfileName = "New User"

	msgFetchProfileFailed  = "Failed to fetch profile."
	msgUpdateProfileFailed = "Failed to update profile."
	msgRecordVisitFailed   = "Failed to record visit."
	msgUpdateVisitsFailed  = "Failed to update visits."
	msgDeleteVisitFailed   = "Failed to delete visit."
	msgVisitNotFound       = "Visit not found."
	msgVisitsNegative      = "Number of visits cannot be negative."
	msgVisitDuplicated     = "Each visit may only appear once."
	msgProfileModified     = "Profile was modified by another request. Reload and try again."
)

// Identity is the authenticated user as described by the access token
type Identity struct {
	UserID string
	Name   string
	Email  string
}

// ProfileService manages the user profile and its doctor visit counters
type ProfileService struct {
	profileRepo repository.ProfileRepository
	visitRepo   repository.VisitRepository
	doctorRepo  repository.DoctorRepository
	txManager   repository.TxManager
}

// NewProfileService creates a new profile service
func NewProfileService(
	profileRepo repository.ProfileRepository,
	visitRepo repository.VisitRepository,
	doctorRepo repository.DoctorRepository,
	txManager repository.TxManager,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		visitRepo:   visitRepo,
		doctorRepo:  doctorRepo,
		txManager:   txManager,
	}
}

// ensureProfile loads the profile of the user, creating it on first access
func (s *ProfileService) ensureProfile(ctx context.Context, id Identity) (*entity.UserProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	name := strings.TrimSpace(id.Name)
	if name == "" {
		name = defaultProfileName
	}
	profile = &entity.UserProfile{
		UserID:       id.UserID,
		Name:         name,
		Email:        id.Email,
		DoctorVisits: []entity.DoctorVisit{},
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfile returns the user's profile with its visits
func (s *ProfileService) GetProfile(ctx context.Context, id Identity) (*entity.UserProfile, error) {
	profile, err := s.ensureProfile(ctx, id)
	if err != nil {
		return nil, apperror.Wrap(err, msgFetchProfileFailed)
	}
	return profile, nil
}

// UpdateProfileInput represents the update profile input
type UpdateProfileInput struct {
	Name        *string
	Email       *string
	Phone       *string
	Address     *string
	Designation *string
}

// UpdateProfile sets the supplied profile fields
func (s *ProfileService) UpdateProfile(ctx context.Context, id Identity, input *UpdateProfileInput) (*entity.UserProfile, error) {
	profile, err := s.ensureProfile(ctx, id)
	if err != nil {
		return nil, apperror.Wrap(err, msgUpdateProfileFailed)
	}

	if input.Name != nil {
		profile.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		profile.Email = strings.TrimSpace(*input.Email)
	}
	if input.Phone != nil {
		profile.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		profile.Address = strings.TrimSpace(*input.Address)
	}
	if input.Designation != nil {
		profile.Designation = strings.TrimSpace(*input.Designation)
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, apperror.Wrap(err, msgUpdateProfileFailed)
	}
	return profile, nil
}

// RecordVisitInput represents a doctor visit
type RecordVisitInput struct {
	DoctorName     string
	DoctorDegree   string
	DoctorLocation string
}

// RecordVisit counts one more visit to a doctor. The directory doctor is
// created when it is missing and a location is known.
func (s *ProfileService) RecordVisit(ctx context.Context, id Identity, input *RecordVisitInput) (*entity.UserProfile, error) {
	name := strings.TrimSpace(input.DoctorName)
	degree := strings.TrimSpace(input.DoctorDegree)
	location := strings.TrimSpace(input.DoctorLocation)
	if name == "" {
		return nil, apperror.NewFieldError("doctorName", msgDoctorNameRequired)
	}
	if degree == "" {
		return nil, apperror.NewFieldError("doctorDegree", msgDoctorDegreeRequired)
	}

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		profile, err := s.ensureProfile(ctx, id)
		if err != nil {
			return err
		}

		doctor, err := s.doctorRepo.FindByIdentity(ctx, id.UserID, name, degree)
		if err != nil {
			return err
		}
		if doctor == nil && location != "" {
			doctor = &entity.Doctor{UserID: id.UserID, Name: name, Degree: degree, Location: location}
			if err := s.doctorRepo.Create(ctx, doctor); err != nil {
				return err
			}
		}
		if doctor != nil {
			doctor.Visits++
			if err := s.doctorRepo.Update(ctx, doctor); err != nil {
				return err
			}
		}

		if visit := findVisit(profile.DoctorVisits, doctor, name, degree); visit != nil {
			visit.NoOfVisits++
			if visit.DoctorID == nil && doctor != nil {
				visit.DoctorID = &doctor.ID
			}
			if err := s.visitRepo.Update(ctx, visit); err != nil {
				return err
			}
		} else {
			visit := &entity.DoctorVisit{
				ProfileID:    profile.ID,
				DoctorName:   name,
				DoctorDegree: degree,
				NoOfVisits:   1,
				Position:     len(profile.DoctorVisits),
			}
			if doctor != nil {
				visit.DoctorID = &doctor.ID
			}
			if err := s.visitRepo.Create(ctx, visit); err != nil {
				return err
			}
		}

		return s.bumpVersion(ctx, profile)
	})
	if err != nil {
		return nil, apperror.Wrap(err, msgRecordVisitFailed)
	}
	return s.reload(ctx, id.UserID, msgRecordVisitFailed)
}

// findVisit prefers the visit linked to doctor and falls back to the doctor identity
func findVisit(visits []entity.DoctorVisit, doctor *entity.Doctor, name, degree string) *entity.DoctorVisit {
	if doctor != nil {
		for i := range visits {
			if visits[i].DoctorID != nil && *visits[i].DoctorID == doctor.ID {
				return &visits[i]
			}
		}
	}
	for i := range visits {
		if entity.SameDoctor(visits[i].DoctorName, visits[i].DoctorDegree, name, degree) {
			return &visits[i]
		}
	}
	return nil
}

// VisitInput is one row of a visit list replacement. ID is set for rows the
// client loaded from the server.
type VisitInput struct {
	ID           *uuid.UUID
	DoctorName   string
	DoctorDegree string
	NoOfVisits   int
}

// ReplaceVisitsInput represents a full replacement of the visit list
type ReplaceVisitsInput struct {
	Version int
	Visits  []VisitInput
}

// ReplaceVisits swaps the visit list for the given one, provided the profile
// is still at Version
func (s *ProfileService) ReplaceVisits(ctx context.Context, id Identity, input *ReplaceVisitsInput) (*entity.UserProfile, error) {
	seen := make(map[uuid.UUID]bool, len(input.Visits))
	for i, v := range input.Visits {
		field := fmt.Sprintf("doctorVisits[%d]", i)
		if v.ID != nil {
			if seen[*v.ID] {
				return nil, apperror.NewFieldError(field+"._id", msgVisitDuplicated)
			}
			seen[*v.ID] = true
		}
		switch {
		case strings.TrimSpace(v.DoctorName) == "":
			return nil, apperror.NewFieldError(field+".doctorName", msgDoctorNameRequired)
		case strings.TrimSpace(v.DoctorDegree) == "":
			return nil, apperror.NewFieldError(field+".doctorDegree", msgDoctorDegreeRequired)
		case v.NoOfVisits < 0:
			return nil, apperror.NewFieldError(field+".noOfVisits", msgVisitsNegative)
		}
	}

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		profile, err := s.ensureProfile(ctx, id)
		if err != nil {
			return err
		}

		ok, err := s.profileRepo.BumpVersion(ctx, profile.ID, input.Version)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NewConflictError(msgProfileModified)
		}

		existing := make(map[uuid.UUID]entity.DoctorVisit, len(profile.DoctorVisits))
		for _, v := range profile.DoctorVisits {
			existing[v.ID] = v
		}

		if err := s.visitRepo.DeleteByProfile(ctx, profile.ID); err != nil {
			return err
		}

		for i, item := range input.Visits {
			visit := &entity.DoctorVisit{
				ProfileID:    profile.ID,
				DoctorName:   strings.TrimSpace(item.DoctorName),
				DoctorDegree: strings.TrimSpace(item.DoctorDegree),
				NoOfVisits:   item.NoOfVisits,
				Position:     i,
			}
			if item.ID != nil {
				if prev, found := existing[*item.ID]; found {
					visit.ID = prev.ID
					if entity.SameDoctor(prev.DoctorName, prev.DoctorDegree, visit.DoctorName, visit.DoctorDegree) {
						visit.DoctorID = prev.DoctorID
					}
				}
			}
			if err := s.visitRepo.Create(ctx, visit); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperror.Wrap(err, msgUpdateVisitsFailed)
	}
	return s.reload(ctx, id.UserID, msgUpdateVisitsFailed)
}

// DeleteVisit removes a visit together with its directory doctor
func (s *ProfileService) DeleteVisit(ctx context.Context, id Identity, visitID uuid.UUID) (*entity.UserProfile, error) {
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		profile, err := s.profileRepo.GetByUserID(ctx, id.UserID)
		if err != nil {
			return err
		}
		if profile == nil {
			return apperror.NewNotFoundError(msgVisitNotFound)
		}

		visit, err := s.visitRepo.GetByID(ctx, profile.ID, visitID)
		if err != nil {
			return err
		}
		if visit == nil {
			return apperror.NewNotFoundError(msgVisitNotFound)
		}

		if err := s.visitRepo.Delete(ctx, visit.ID); err != nil {
			return err
		}

		doctor, err := s.linkedDoctor(ctx, id.UserID, visit)
		if err != nil {
			return err
		}
		if doctor != nil {
			if err := s.doctorRepo.Delete(ctx, doctor.ID); err != nil {
				return err
			}
		}

		return s.bumpVersion(ctx, profile)
	})
	if err != nil {
		return nil, apperror.Wrap(err, msgDeleteVisitFailed)
	}
	return s.reload(ctx, id.UserID, msgDeleteVisitFailed)
}

func (s *ProfileService) linkedDoctor(ctx context.Context, userID string, visit *entity.DoctorVisit) (*entity.Doctor, error) {
	if visit.DoctorID != nil {
		doctor, err := s.doctorRepo.GetByID(ctx, *visit.DoctorID)
		if err != nil {
			return nil, err
		}
		if doctor != nil && doctor.UserID == userID {
			return doctor, nil
		}
		return nil, nil
	}
	if !visit.HasDoctorIdentity() {
		return nil, nil
	}
	return s.doctorRepo.FindByIdentity(ctx, userID, visit.DoctorName, visit.DoctorDegree)
}

func (s *ProfileService) bumpVersion(ctx context.Context, profile *entity.UserProfile) error {
	ok, err := s.profileRepo.BumpVersion(ctx, profile.ID, profile.Version)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewConflictError(msgProfileModified)
	}
	return nil
}

func (s *ProfileService) reload(ctx context.Context, userID, failMsg string) (*entity.UserProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Wrap(err, failMsg)
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Profile not found.")
	}
	return profile, nil
}
