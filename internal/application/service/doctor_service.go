package service

import (
	"context"
	"strings"

	"github.com/sangkips/medrep-crm/internal/domain/entity"
	"github.com/sangkips/medrep-crm/internal/domain/repository"
	"github.com/sangkips/medrep-crm/pkg/apperror"
)

const (
	msgAddDoctorFailed    = "Failed to add doctor."
	msgFetchDoctorsFailed = "Failed to fetch doctors."
	msgUpdateDoctorFailed = "Failed to update doctor."
	msgDoctorExists       = "Doctor already exists!"
	msgDoctorNameTaken    = "A doctor with this name already exists!"
	msgDoctorNotFound     = "Doctor not found."
	msgOldNameRequired    = "Old doctor name is required."
	msgNewNameRequired    = "New doctor name is required."
)

// DoctorService manages a user's doctor directory
type DoctorService struct {
	doctorRepo repository.DoctorRepository
	visitRepo  repository.VisitRepository
	txManager  repository.TxManager
}

// NewDoctorService creates a new doctor service
func NewDoctorService(
	doctorRepo repository.DoctorRepository,
	visitRepo repository.VisitRepository,
	txManager repository.TxManager,
) *DoctorService {
	return &DoctorService{
		doctorRepo: doctorRepo,
		visitRepo:  visitRepo,
		txManager:  txManager,
	}
}

// AddDoctorInput represents the add doctor input
type AddDoctorInput struct {
	UserID   string
	Name     string
	Degree   string
	Location string
}

// AddDoctor adds a doctor to the directory. The same name, degree and location
// may only be added once.
func (s *DoctorService) AddDoctor(ctx context.Context, input *AddDoctorInput) (*entity.Doctor, error) {
	name := strings.TrimSpace(input.Name)
	degree := strings.TrimSpace(input.Degree)
	location := strings.TrimSpace(input.Location)

	switch {
	case name == "":
		return nil, apperror.NewFieldError("name", msgDoctorNameRequired)
	case degree == "":
		return nil, apperror.NewFieldError("degree", msgDoctorDegreeRequired)
	case location == "":
		return nil, apperror.NewFieldError("location", msgDoctorLocationRequired)
	}

	existing, err := s.doctorRepo.FindExact(ctx, input.UserID, name, degree, location)
	if err != nil {
		return nil, apperror.Wrap(err, msgAddDoctorFailed)
	}
	if existing != nil {
		return nil, apperror.NewConflictError(msgDoctorExists)
	}

	doctor := &entity.Doctor{
		UserID:   input.UserID,
		Name:     name,
		Degree:   degree,
		Location: location,
	}
	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		return nil, apperror.Wrap(err, msgAddDoctorFailed)
	}
	return doctor, nil
}

// ListDoctors returns the user's directory, oldest first
func (s *DoctorService) ListDoctors(ctx context.Context, userID string) ([]entity.Doctor, error) {
	doctors, err := s.doctorRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Wrap(err, msgFetchDoctorsFailed)
	}
	return doctors, nil
}

// RenameDoctorInput represents the rename doctor input
type RenameDoctorInput struct {
	UserID   string
	OldName  string
	NewName  string
	Degree   string
	Location string
}

// RenameDoctor changes the name, degree and location of the doctor currently
// called OldName. Visits linked to the doctor follow the rename.
func (s *DoctorService) RenameDoctor(ctx context.Context, input *RenameDoctorInput) (*entity.Doctor, error) {
	oldName := strings.TrimSpace(input.OldName)
	newName := strings.TrimSpace(input.NewName)
	degree := strings.TrimSpace(input.Degree)
	location := strings.TrimSpace(input.Location)

	switch {
	case oldName == "":
		return nil, apperror.NewFieldError("oldName", msgOldNameRequired)
	case newName == "":
		return nil, apperror.NewFieldError("newName", msgNewNameRequired)
	case degree == "":
		return nil, apperror.NewFieldError("degree", msgDoctorDegreeRequired)
	case location == "":
		return nil, apperror.NewFieldError("location", msgDoctorLocationRequired)
	}

	var doctor *entity.Doctor
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		doctor, err = s.doctorRepo.FindByName(ctx, input.UserID, oldName, nil)
		if err != nil {
			return err
		}
		if doctor == nil {
			return apperror.NewNotFoundError(msgDoctorNotFound)
		}

		if oldName != newName {
			taken, err := s.doctorRepo.FindByName(ctx, input.UserID, newName, &doctor.ID)
			if err != nil {
				return err
			}
			if taken != nil {
				return apperror.NewConflictError(msgDoctorNameTaken)
			}
		}

		doctor.Name = newName
		doctor.Degree = degree
		doctor.Location = location
		if err := s.doctorRepo.Update(ctx, doctor); err != nil {
			return err
		}
		return s.visitRepo.RenameForDoctor(ctx, doctor.ID, newName, degree)
	})
	if err != nil {
		return nil, apperror.Wrap(err, msgUpdateDoctorFailed)
	}
	return doctor, nil
}
