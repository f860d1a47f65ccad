package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chayen/internal/domain"
	"chayen/internal/service"
	"chayen/mocks"
)

func TestCatalogService_CreateProduct(t *testing.T) {
	productRepo := new(mocks.MockProductRepo)
	toppingRepo := new(mocks.MockToppingRepo)
	svc := service.NewCatalogService(productRepo, toppingRepo)

	productRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.Name == "ชาเย็น" && p.Price == 25 && p.IsActive
	})).Return(nil)

	product, err := svc.CreateProduct(context.Background(), service.ProductInput{
		Name:  "ชาเย็น",
		Price: 25,
	})

	require.NoError(t, err)
	assert.Equal(t, "ชาเย็น", product.Name)
	assert.True(t, product.IsActive)
	productRepo.AssertExpectations(t)
}

func TestCatalogService_CreateProduct_Inactive(t *testing.T) {
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewCatalogService(productRepo, new(mocks.MockToppingRepo))

	inactive := false
	productRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return !p.IsActive
	})).Return(nil)

	product, err := svc.CreateProduct(context.Background(), service.ProductInput{
		Name:     "เมนูลับ",
		Price:    30,
		IsActive: &inactive,
	})

	require.NoError(t, err)
	assert.False(t, product.IsActive)
}

func TestCatalogService_CreateProduct_DuplicateName(t *testing.T) {
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewCatalogService(productRepo, new(mocks.MockToppingRepo))

	productRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateName)

	product, err := svc.CreateProduct(context.Background(), service.ProductInput{
		Name:  "ชาเย็น",
		Price: 25,
	})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewCatalogService(productRepo, new(mocks.MockToppingRepo))

	id := uuid.New()
	existing := &domain.Product{ID: id, Name: "ชาเย็น", Price: 25, IsActive: true}

	productRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	productRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.ID == id && p.Price == 30
	})).Return(nil)

	product, err := svc.UpdateProduct(context.Background(), id, service.ProductInput{
		Name:  "ชาเย็น",
		Price: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, 30.0, product.Price)
	assert.True(t, product.IsActive)
	productRepo.AssertExpectations(t)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewCatalogService(productRepo, new(mocks.MockToppingRepo))

	id := uuid.New()
	productRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	product, err := svc.UpdateProduct(context.Background(), id, service.ProductInput{
		Name:  "ชาเย็น",
		Price: 30,
	})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	productRepo.AssertNotCalled(t, "Update")
}

func TestCatalogService_ListToppings_ActiveOnly(t *testing.T) {
	toppingRepo := new(mocks.MockToppingRepo)
	svc := service.NewCatalogService(new(mocks.MockProductRepo), toppingRepo)

	toppingRepo.On("List", mock.Anything, true).Return([]domain.Topping{
		{Name: "ไข่มุก", Price: 5, IsActive: true},
	}, nil)

	toppings, err := svc.ListToppings(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, toppings, 1)
	assert.Equal(t, "ไข่มุก", toppings[0].Name)
	toppingRepo.AssertExpectations(t)
}

func TestCatalogService_DeleteTopping(t *testing.T) {
	toppingRepo := new(mocks.MockToppingRepo)
	svc := service.NewCatalogService(new(mocks.MockProductRepo), toppingRepo)

	id := uuid.New()
	toppingRepo.On("Delete", mock.Anything, id).Return(nil)

	require.NoError(t, svc.DeleteTopping(context.Background(), id))
	toppingRepo.AssertExpectations(t)
}
