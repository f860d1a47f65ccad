package service

import (
	"context"

	"github.com/google/uuid"

	"chayen/internal/domain"
	"chayen/internal/port"
)

// ProductInput is the DTO for product create/update requests.
type ProductInput struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	IsActive *bool   `json:"is_active"`
}

// ToppingInput is the DTO for topping create/update requests.
type ToppingInput struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	IsActive *bool   `json:"is_active"`
}

// CatalogService manages the menu: products and toppings. The parser reads
// the same catalog through ParseService, so edits take effect on the next
// parse call.
type CatalogService interface {
	CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	CreateTopping(ctx context.Context, input ToppingInput) (*domain.Topping, error)
	ListToppings(ctx context.Context, activeOnly bool) ([]domain.Topping, error)
	UpdateTopping(ctx context.Context, id uuid.UUID, input ToppingInput) (*domain.Topping, error)
	DeleteTopping(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	productRepo port.ProductRepository
	toppingRepo port.ToppingRepository
}

// NewCatalogService creates a new CatalogService implementation.
func NewCatalogService(productRepo port.ProductRepository, toppingRepo port.ToppingRepository) CatalogService {
	return &catalogService{productRepo: productRepo, toppingRepo: toppingRepo}
}

func (s *catalogService) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:     input.Name,
		Price:    input.Price,
		IsActive: true,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	return s.productRepo.List(ctx, activeOnly)
}

func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Name = input.Name
	product.Price = input.Price
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *catalogService) CreateTopping(ctx context.Context, input ToppingInput) (*domain.Topping, error) {
	topping := &domain.Topping{
		Name:     input.Name,
		Price:    input.Price,
		IsActive: true,
	}
	if input.IsActive != nil {
		topping.IsActive = *input.IsActive
	}
	if err := s.toppingRepo.Create(ctx, topping); err != nil {
		return nil, err
	}
	return topping, nil
}

func (s *catalogService) ListToppings(ctx context.Context, activeOnly bool) ([]domain.Topping, error) {
	return s.toppingRepo.List(ctx, activeOnly)
}

func (s *catalogService) UpdateTopping(ctx context.Context, id uuid.UUID, input ToppingInput) (*domain.Topping, error) {
	topping, err := s.toppingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	topping.Name = input.Name
	topping.Price = input.Price
	if input.IsActive != nil {
		topping.IsActive = *input.IsActive
	}
	if err := s.toppingRepo.Update(ctx, topping); err != nil {
		return nil, err
	}
	return topping, nil
}

func (s *catalogService) DeleteTopping(ctx context.Context, id uuid.UUID) error {
	return s.toppingRepo.Delete(ctx, id)
}
