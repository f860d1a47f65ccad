package service

import (
	"context"

	"github.com/google/uuid"

	"chayen/internal/domain"
	"chayen/internal/port"
)

// StaffInput is the DTO for staff create/update requests.
type StaffInput struct {
	Name     string          `json:"name" binding:"required"`
	Role     domain.UserRole `json:"role"`
	IsActive *bool           `json:"is_active"`
}

// StaffService manages the employee roster.
type StaffService interface {
	Create(ctx context.Context, input StaffInput) (*domain.Staff, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Staff, error)
	Update(ctx context.Context, id uuid.UUID, input StaffInput) (*domain.Staff, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type staffService struct {
	staffRepo port.StaffRepository
}

// NewStaffService creates a new StaffService implementation.
func NewStaffService(staffRepo port.StaffRepository) StaffService {
	return &staffService{staffRepo: staffRepo}
}

func (s *staffService) Create(ctx context.Context, input StaffInput) (*domain.Staff, error) {
	staff := &domain.Staff{
		Name:     input.Name,
		Role:     input.Role,
		IsActive: true,
	}
	if staff.Role == "" {
		staff.Role = domain.RoleStaff
	}
	if input.IsActive != nil {
		staff.IsActive = *input.IsActive
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *staffService) List(ctx context.Context, activeOnly bool) ([]domain.Staff, error) {
	return s.staffRepo.List(ctx, activeOnly)
}

func (s *staffService) Update(ctx context.Context, id uuid.UUID, input StaffInput) (*domain.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	staff.Name = input.Name
	if input.Role != "" {
		staff.Role = input.Role
	}
	if input.IsActive != nil {
		staff.IsActive = *input.IsActive
	}
	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *staffService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.staffRepo.Delete(ctx, id)
}
