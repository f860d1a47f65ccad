package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"chayen/internal/domain"
	"chayen/internal/service"
	"chayen/mocks"
)

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		if u.Username != "somchai" || !u.IsActive {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil
	})).Return(nil)

	user, err := svc.Create(context.Background(), service.CreateUserInput{
		Username: "somchai",
		Password: "password123",
		Role:     domain.RoleStaff,
	})

	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.PasswordHash)
	repo.AssertExpectations(t)
}

func TestUserService_Create_DefaultsToStaffRole(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), service.CreateUserInput{
		Username: "somchai",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, user.Role)
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateUsername)

	user, err := svc.Create(context.Background(), service.CreateUserInput{
		Username: "somchai",
		Password: "password123",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	id := uuid.New()
	existing := &domain.User{
		ID:           id,
		Username:     "somchai",
		PasswordHash: "old-hash",
		Role:         domain.RoleStaff,
		IsActive:     true,
	}
	repo.On("GetByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("newpassword")) == nil
	})).Return(nil)

	newPassword := "newpassword"
	user, err := svc.Update(context.Background(), id, service.UpdateUserInput{
		Password: &newPassword,
	})

	require.NoError(t, err)
	assert.NotEqual(t, "old-hash", user.PasswordHash)
	repo.AssertExpectations(t)
}

func TestUserService_Update_Deactivate(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	id := uuid.New()
	existing := &domain.User{ID: id, Username: "somchai", Role: domain.RoleStaff, IsActive: true}
	repo.On("GetByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	inactive := false
	user, err := svc.Update(context.Background(), id, service.UpdateUserInput{
		IsActive: &inactive,
	})

	require.NoError(t, err)
	assert.False(t, user.IsActive)
}
