package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BusinessProfileRepository defines the interface for business profile data operations
type BusinessProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.BusinessProfile, error)
	Create(ctx context.Context, profile *entity.BusinessProfile) error
	Update(ctx context.Context, profile *entity.BusinessProfile) error
}
