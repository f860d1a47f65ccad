package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chayen/internal/domain"
	"chayen/internal/service"
	"chayen/mocks"
)

func previewCatalog() ([]domain.Product, []domain.Topping) {
	products := []domain.Product{
		{Name: "ชาเย็น", Price: 25, IsActive: true},
		{Name: "โกโก้", Price: 30, IsActive: true},
	}
	toppings := []domain.Topping{
		{Name: "ไข่มุก", Price: 5, IsActive: true},
		{Name: "ครีมชีส", Price: 10, IsActive: true},
	}
	return products, toppings
}

func TestParseService_Preview_PricesCataloguedItems(t *testing.T) {
	productRepo := new(mocks.MockProductRepo)
	toppingRepo := new(mocks.MockToppingRepo)
	svc := service.NewParseService(productRepo, toppingRepo)

	products, toppings := previewCatalog()
	productRepo.On("List", mock.Anything, true).Return(products, nil)
	toppingRepo.On("List", mock.Anything, true).Return(toppings, nil)

	preview, err := svc.Preview(context.Background(), service.ParseInput{Text: "ชาเย็น 2 ไข่มุก"})

	require.NoError(t, err)
	require.Len(t, preview.Items, 1)
	item := preview.Items[0]
	assert.Equal(t, "ชาเย็น", item.MenuName)
	assert.True(t, item.Catalogued)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 25.0, item.UnitPrice)
	assert.Equal(t, 5.0, item.ToppingTotal)
	assert.Equal(t, 60.0, item.Subtotal)
	assert.Equal(t, 2, preview.TotalQty)
	assert.Equal(t, 60.0, preview.TotalAmount)
	productRepo.AssertExpectations(t)
	toppingRepo.AssertExpectations(t)
}

func TestParseService_Preview_UncataloguedItemPricedZero(t *testing.T) {
	productRepo := new(mocks.MockProductRepo)
	toppingRepo := new(mocks.MockToppingRepo)
	svc := service.NewParseService(productRepo, toppingRepo)

	products, toppings := previewCatalog()
	productRepo.On("List", mock.Anything, true).Return(products, nil)
	toppingRepo.On("List", mock.Anything, true).Return(toppings, nil)

	preview, err := svc.Preview(context.Background(), service.ParseInput{Text: "น้ำแดงโซดา 2"})

	require.NoError(t, err)
	require.Len(t, preview.Items, 1)
	item := preview.Items[0]
	assert.Equal(t, "น้ำแดงโซดา", item.MenuName)
	assert.False(t, item.Catalogued)
	assert.Nil(t, item.ProductID)
	assert.Equal(t, 0.0, item.UnitPrice)
	assert.Equal(t, 0.0, preview.TotalAmount)
}

func TestParseService_Preview_MultipleLines(t *testing.T) {
	productRepo := new(mocks.MockProductRepo)
	toppingRepo := new(mocks.MockToppingRepo)
	svc := service.NewParseService(productRepo, toppingRepo)

	products, toppings := previewCatalog()
	productRepo.On("List", mock.Anything, true).Return(products, nil)
	toppingRepo.On("List", mock.Anything, true).Return(toppings, nil)

	preview, err := svc.Preview(context.Background(), service.ParseInput{Text: "ชาเย็น2แก้วโกโก้1แก้ว"})

	require.NoError(t, err)
	require.Len(t, preview.Items, 2)
	assert.Equal(t, "ชาเย็น", preview.Items[0].MenuName)
	assert.Equal(t, "โกโก้", preview.Items[1].MenuName)
	assert.Equal(t, 3, preview.TotalQty)
	assert.Equal(t, 80.0, preview.TotalAmount)
}

func TestParseService_Preview_RepoError(t *testing.T) {
	productRepo := new(mocks.MockProductRepo)
	toppingRepo := new(mocks.MockToppingRepo)
	svc := service.NewParseService(productRepo, toppingRepo)

	productRepo.On("List", mock.Anything, true).Return(nil, assert.AnError)

	preview, err := svc.Preview(context.Background(), service.ParseInput{Text: "ชาเย็น"})

	assert.Nil(t, preview)
	assert.Error(t, err)
}
