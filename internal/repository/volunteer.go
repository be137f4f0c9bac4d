package repository

import (
	"context"
	"errors"

	"wecare/internal/cache"
	"wecare/internal/models"

	"gorm.io/gorm"
)

// VolunteerRepository defines the interface for volunteer directory operations.
type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *models.Volunteer) error
	GetByID(ctx context.Context, id uint) (*models.Volunteer, error)
	List(ctx context.Context, limit, offset int) ([]*models.Volunteer, error)
	Delete(ctx context.Context, id uint) error
}

type volunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository creates a new volunteer repository.
func NewVolunteerRepository(db *gorm.DB) VolunteerRepository {
	return &volunteerRepository{db: db}
}

func (r *volunteerRepository) Create(ctx context.Context, volunteer *models.Volunteer) error {
	if err := r.db.WithContext(ctx).Create(volunteer).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateVolunteerList(ctx)
	return nil
}

func (r *volunteerRepository) GetByID(ctx context.Context, id uint) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	if err := r.db.WithContext(ctx).First(&volunteer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Volunteer", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &volunteer, nil
}

func (r *volunteerRepository) List(ctx context.Context, limit, offset int) ([]*models.Volunteer, error) {
	var volunteers []*models.Volunteer
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&volunteers).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return volunteers, nil
}

func (r *volunteerRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Volunteer{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateVolunteerList(ctx)
	return nil
}
