package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	domainRepo "github.com/noid254/qaribu-api/internal/domain/repository"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Preload("BusinessProfile").
		First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.User{}, "id = ?", id).Error
}

type businessProfileRepository struct {
	db *gorm.DB
}

// NewBusinessProfileRepository creates a new business profile repository
func NewBusinessProfileRepository(db *gorm.DB) domainRepo.BusinessProfileRepository {
	return &businessProfileRepository{db: db}
}

func (r *businessProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.BusinessProfile, error) {
	var profile entity.BusinessProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *businessProfileRepository) Create(ctx context.Context, profile *entity.BusinessProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *businessProfileRepository) Update(ctx context.Context, profile *entity.BusinessProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
