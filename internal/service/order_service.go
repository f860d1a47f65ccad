package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"chayen/internal/domain"
	"chayen/internal/port"
)

// ConfirmItemInput is one operator-reviewed line of an order confirmation.
// The operator may have edited the parse preview, so prices are resolved
// fresh here rather than trusted from the client.
type ConfirmItemInput struct {
	MenuName  string   `json:"menu_name" binding:"required"`
	Quantity  int      `json:"quantity" binding:"required,min=1"`
	Toppings  []string `json:"toppings"`
	Sweetness string   `json:"sweetness"`
}

// ConfirmOrderInput is the DTO for order confirmation requests.
type ConfirmOrderInput struct {
	RawText string             `json:"raw_text"`
	StaffID *uuid.UUID         `json:"staff_id"`
	Items   []ConfirmItemInput `json:"items" binding:"required"`
}

// ListOrdersInput narrows the order listing.
type ListOrdersInput struct {
	Date    string // YYYY-MM-DD, shop-local; empty means today
	StaffID *uuid.UUID
	Offset  int
	Limit   int
}

// OrderService defines order capture and retrieval.
type OrderService interface {
	Confirm(ctx context.Context, input ConfirmOrderInput, createdBy string) (*domain.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, input ListOrdersInput) ([]domain.Order, int, error)
	DeleteByDate(ctx context.Context, date string) (int64, error)
}

type orderService struct {
	orderRepo   port.OrderRepository
	productRepo port.ProductRepository
	toppingRepo port.ToppingRepository
	sessionRepo port.ShopSessionRepository
	loc         *time.Location
}

// NewOrderService creates a new OrderService implementation. loc is the
// shop's timezone, used to resolve business-day boundaries.
func NewOrderService(
	orderRepo port.OrderRepository,
	productRepo port.ProductRepository,
	toppingRepo port.ToppingRepository,
	sessionRepo port.ShopSessionRepository,
	loc *time.Location,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		toppingRepo: toppingRepo,
		sessionRepo: sessionRepo,
		loc:         loc,
	}
}

func (s *orderService) Confirm(ctx context.Context, input ConfirmOrderInput, createdBy string) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if input.StaffID == nil {
		return nil, domain.ErrStaffRequired
	}

	if _, err := s.sessionRepo.GetOpen(ctx); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrShopNotOpen
		}
		return nil, fmt.Errorf("order.Confirm: %w", err)
	}

	order := &domain.Order{
		RawText:   input.RawText,
		CreatedBy: createdBy,
		StaffID:   input.StaffID,
		Status:    domain.OrderStatusOpen,
		Items:     make([]domain.OrderItem, 0, len(input.Items)),
	}

	for _, in := range input.Items {
		item, err := s.buildItem(ctx, in)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, *item)
		order.TotalQty += item.Qty
		order.TotalAmount += item.Subtotal
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("order.Confirm: %w", err)
	}
	return order, nil
}

// buildItem snapshots the current catalog prices into one order line. A menu
// name with no catalog match is stored with a nil product reference and a
// zero price; the row keeps the spoken name so the sale is not lost.
func (s *orderService) buildItem(ctx context.Context, in ConfirmItemInput) (*domain.OrderItem, error) {
	item := &domain.OrderItem{
		ProductNameSnapshot: in.MenuName,
		Qty:                 in.Quantity,
	}
	if in.Sweetness != "" {
		sw := in.Sweetness
		item.Sweetness = &sw
	}

	product, err := s.productRepo.GetByName(ctx, in.MenuName)
	switch {
	case err == nil:
		id := product.ID
		item.ProductID = &id
		item.PriceSnapshot = product.Price
	case errors.Is(err, domain.ErrNotFound):
		// uncatalogued item, priced at zero
	default:
		return nil, fmt.Errorf("order.buildItem: %w", err)
	}

	snapshots := make([]domain.ToppingSnapshot, 0, len(in.Toppings))
	for _, name := range in.Toppings {
		snap := domain.ToppingSnapshot{Name: name}
		topping, err := s.toppingRepo.GetByName(ctx, name)
		switch {
		case err == nil:
			snap.Price = topping.Price
		case errors.Is(err, domain.ErrNotFound):
		default:
			return nil, fmt.Errorf("order.buildItem: %w", err)
		}
		item.ToppingTotal += snap.Price
		snapshots = append(snapshots, snap)
	}

	raw, err := json.Marshal(snapshots)
	if err != nil {
		return nil, fmt.Errorf("order.buildItem: %w", err)
	}
	item.ToppingsSnapshot = raw
	item.Subtotal = (item.PriceSnapshot + item.ToppingTotal) * float64(item.Qty)
	return item, nil
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *orderService) List(ctx context.Context, input ListOrdersInput) ([]domain.Order, int, error) {
	from, to, _, err := dayRange(s.loc, input.Date)
	if err != nil {
		return nil, 0, err
	}
	return s.orderRepo.List(ctx, domain.OrderFilters{
		From:    &from,
		To:      &to,
		StaffID: input.StaffID,
		Offset:  input.Offset,
		Limit:   input.Limit,
	})
}

func (s *orderService) DeleteByDate(ctx context.Context, date string) (int64, error) {
	from, to, _, err := dayRange(s.loc, date)
	if err != nil {
		return 0, err
	}
	return s.orderRepo.DeleteByDateRange(ctx, from, to)
}

// dayRange resolves a shop-local YYYY-MM-DD date (empty means today) to a
// half-open UTC range plus the normalized date string.
func dayRange(loc *time.Location, date string) (time.Time, time.Time, string, error) {
	var day time.Time
	if date == "" {
		now := time.Now().In(loc)
		day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	} else {
		parsed, err := time.ParseInLocation("2006-01-02", date, loc)
		if err != nil {
			return time.Time{}, time.Time{}, "", fmt.Errorf("%w: %q", domain.ErrInvalidDate, date)
		}
		day = parsed
	}
	return day.UTC(), day.AddDate(0, 0, 1).UTC(), day.Format("2006-01-02"), nil
}
