package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/medrep-crm/internal/domain/entity"
	domainRepo "github.com/sangkips/medrep-crm/internal/domain/repository"
	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository creates a new doctor repository
func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	return conn(ctx, r.db).Create(doctor).Error
}

func (r *doctorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := conn(ctx, r.db).First(&doctor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &doctor, err
}

func (r *doctorRepository) ListByUser(ctx context.Context, userID string) ([]entity.Doctor, error) {
	doctors := make([]entity.Doctor, 0)
	err := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&doctors).Error
	return doctors, err
}

func (r *doctorRepository) FindExact(ctx context.Context, userID, name, degree, location string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := conn(ctx, r.db).
		Where("user_id = ? AND name = ? AND degree = ? AND location = ?", userID, name, degree, location).
		First(&doctor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &doctor, err
}

func (r *doctorRepository) FindByName(ctx context.Context, userID, name string, excludeID *uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	query := conn(ctx, r.db).Where("user_id = ? AND name = ?", userID, name)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	err := query.Order("created_at ASC").First(&doctor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &doctor, err
}

func (r *doctorRepository) FindByIdentity(ctx context.Context, userID, name, degree string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := conn(ctx, r.db).
		Where("user_id = ? AND LOWER(TRIM(name)) = LOWER(?) AND LOWER(TRIM(degree)) = LOWER(?)",
			userID, strings.TrimSpace(name), strings.TrimSpace(degree)).
		Order("created_at ASC").
		First(&doctor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &doctor, err
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	return conn(ctx, r.db).Save(doctor).Error
}

func (r *doctorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&entity.Doctor{}, "id = ?", id).Error
}
