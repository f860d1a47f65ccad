package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"chayen/internal/domain"
	"chayen/internal/port"
)

// CreateUserInput is the DTO for account creation requests.
type CreateUserInput struct {
	Username string          `json:"username" binding:"required,min=3"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     domain.UserRole `json:"role"`
	StaffID  *uuid.UUID      `json:"staff_id"`
}

// UpdateUserInput is the DTO for account update requests. Nil fields are
// left unchanged; Password, when set, is re-hashed.
type UpdateUserInput struct {
	Password *string          `json:"password"`
	Role     *domain.UserRole `json:"role"`
	StaffID  *uuid.UUID       `json:"staff_id"`
	IsActive *bool            `json:"is_active"`
}

// UserService manages POS login accounts.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	userRepo port.UserRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(userRepo port.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("user.Create: %w", err)
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         input.Role,
		StaffID:      input.StaffID,
		IsActive:     true,
	}
	if user.Role == "" {
		user.Role = domain.RoleStaff
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("user.Update: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.StaffID != nil {
		user.StaffID = input.StaffID
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}
