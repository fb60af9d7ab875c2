package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/medrep-crm/internal/domain/entity"
	domainRepo "github.com/sangkips/medrep-crm/internal/domain/repository"
	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new user profile repository
func NewProfileRepository(db *gorm.DB) domainRepo.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := conn(ctx, r.db).
		Preload("DoctorVisits", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, created_at ASC")
		}).
		First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	return conn(ctx, r.db).Omit("DoctorVisits").Create(profile).Error
}

func (r *profileRepository) Update(ctx context.Context, profile *entity.UserProfile) error {
	return conn(ctx, r.db).
		Model(profile).
		Select("name", "email", "phone", "address", "designation").
		Updates(profile).Error
}

func (r *profileRepository) BumpVersion(ctx context.Context, profileID uuid.UUID, expected int) (bool, error) {
	result := conn(ctx, r.db).
		Model(&entity.UserProfile{}).
		Where("id = ? AND version = ?", profileID, expected).
		UpdateColumn("version", gorm.Expr("version + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository creates a new doctor visit repository
func NewVisitRepository(db *gorm.DB) domainRepo.VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) GetByID(ctx context.Context, profileID, id uuid.UUID) (*entity.DoctorVisit, error) {
	var visit entity.DoctorVisit
	err := conn(ctx, r.db).First(&visit, "id = ? AND profile_id = ?", id, profileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &visit, err
}

func (r *visitRepository) Create(ctx context.Context, visit *entity.DoctorVisit) error {
	return conn(ctx, r.db).Create(visit).Error
}

func (r *visitRepository) Update(ctx context.Context, visit *entity.DoctorVisit) error {
	return conn(ctx, r.db).Save(visit).Error
}

func (r *visitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&entity.DoctorVisit{}, "id = ?", id).Error
}

func (r *visitRepository) DeleteByProfile(ctx context.Context, profileID uuid.UUID) error {
	return conn(ctx, r.db).Where("profile_id = ?", profileID).Delete(&entity.DoctorVisit{}).Error
}

func (r *visitRepository) RenameForDoctor(ctx context.Context, doctorID uuid.UUID, name, degree string) error {
	return conn(ctx, r.db).
		Model(&entity.DoctorVisit{}).
		Where("doctor_id = ?", doctorID).
		Updates(map[string]interface{}{
			"doctor_name":   name,
			"doctor_degree": degree,
		}).Error
}
