package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"chayen/internal/domain"
	"chayen/internal/orderparse"
	"chayen/internal/port"
)

// ParseInput is the DTO for parse preview requests.
type ParseInput struct {
	Text string `json:"text" binding:"required"`
}

// PreviewTopping is one priced topping on a preview line.
type PreviewTopping struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PreviewItem is one priced line of a parse preview. Catalogued is false
// when the spoken name matched no menu product; such lines are priced at
// zero and flagged so the operator corrects them before confirming.
type PreviewItem struct {
	MenuName     string           `json:"menu_name"`
	ProductID    *uuid.UUID       `json:"product_id"`
	Quantity     int              `json:"quantity"`
	Toppings     []PreviewTopping `json:"toppings"`
	Sweetness    string           `json:"sweetness"`
	UnitPrice    float64          `json:"unit_price"`
	ToppingTotal float64          `json:"topping_total"`
	Subtotal     float64          `json:"subtotal"`
	Catalogued   bool             `json:"catalogued"`
}

// ParsePreview is the full priced result of one utterance.
type ParsePreview struct {
	RawText     string        `json:"raw_text"`
	Items       []PreviewItem `json:"items"`
	TotalQty    int           `json:"total_qty"`
	TotalAmount float64       `json:"total_amount"`
}

// ParseService turns raw order text into a priced preview against the live
// catalog. The preview is not persisted; confirmation goes through
// OrderService.
type ParseService interface {
	Preview(ctx context.Context, input ParseInput) (*ParsePreview, error)
}

type parseService struct {
	productRepo port.ProductRepository
	toppingRepo port.ToppingRepository
}

// NewParseService creates a new ParseService implementation.
func NewParseService(productRepo port.ProductRepository, toppingRepo port.ToppingRepository) ParseService {
	return &parseService{productRepo: productRepo, toppingRepo: toppingRepo}
}

func (s *parseService) Preview(ctx context.Context, input ParseInput) (*ParsePreview, error) {
	products, err := s.productRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("parse.Preview: %w", err)
	}
	toppings, err := s.toppingRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("parse.Preview: %w", err)
	}

	items := orderparse.Parse(input.Text, buildCatalog(products, toppings))

	productPrices := make(map[string]*domain.Product, len(products))
	for i := range products {
		productPrices[products[i].Name] = &products[i]
	}
	toppingPrices := make(map[string]float64, len(toppings))
	for _, t := range toppings {
		toppingPrices[t.Name] = t.Price
	}

	preview := &ParsePreview{RawText: input.Text, Items: make([]PreviewItem, 0, len(items))}
	for _, it := range items {
		line := PreviewItem{
			MenuName:  it.MenuName,
			Quantity:  it.Quantity,
			Sweetness: it.Sweetness,
			Toppings:  make([]PreviewTopping, 0, len(it.Toppings)),
		}
		if p, ok := productPrices[it.MenuName]; ok {
			id := p.ID
			line.ProductID = &id
			line.UnitPrice = p.Price
			line.Catalogued = true
		}
		for _, name := range it.Toppings {
			price := toppingPrices[name]
			line.Toppings = append(line.Toppings, PreviewTopping{Name: name, Price: price})
			line.ToppingTotal += price
		}
		line.Subtotal = (line.UnitPrice + line.ToppingTotal) * float64(line.Quantity)
		preview.Items = append(preview.Items, line)
		preview.TotalQty += line.Quantity
		preview.TotalAmount += line.Subtotal
	}
	return preview, nil
}

// buildCatalog converts active catalog rows into the parser's input shape.
func buildCatalog(products []domain.Product, toppings []domain.Topping) orderparse.Catalog {
	cat := orderparse.Catalog{
		Products: make([]string, 0, len(products)),
		Toppings: make([]orderparse.Topping, 0, len(toppings)),
	}
	for _, p := range products {
		cat.Products = append(cat.Products, p.Name)
	}
	for _, t := range toppings {
		cat.Toppings = append(cat.Toppings, orderparse.Topping{Name: t.Name, Price: t.Price})
	}
	return cat
}
