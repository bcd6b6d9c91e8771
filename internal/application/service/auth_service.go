package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/internal/domain/repository"
	"github.com/noid254/qaribu-api/pkg/apperror"
	"github.com/noid254/qaribu-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RegisterInput represents the registration input
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existingUser, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     email,
		Password:  hashedPassword,
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		user.Phone = &phone
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// GetProfile retrieves the account of the authenticated user
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

// UpdateProfileInput represents the profile update input
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Photo     *string
}

// UpdateProfile updates the account details of the authenticated user
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.Photo != nil {
		user.Photo = input.Photo
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// ChangePassword changes the password of the authenticated user
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrNotFound
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return apperror.NewBadRequestError("Current password is incorrect")
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	return s.userRepo.Update(ctx, user)
}
