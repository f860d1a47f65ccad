package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Product is a drink on the menu.
type Product struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Price     float64   `db:"price" json:"price"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Topping is an add-on (pearls, cream cheese, ...) with its own price.
type Topping struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Price     float64   `db:"price" json:"price"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Staff is an employee of the shop. Staff members may or may not have a
// login account; the link goes through User.StaffID.
type Staff struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Role      UserRole  `db:"role" json:"role"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// User is a login account for the POS.
type User struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         UserRole   `db:"role" json:"role"`
	StaffID      *uuid.UUID `db:"staff_id" json:"staff_id"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// Order is one confirmed customer order.
type Order struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	RawText     string      `db:"raw_text" json:"raw_text"`
	CreatedBy   string      `db:"created_by" json:"created_by"`
	StaffID     *uuid.UUID  `db:"staff_id" json:"staff_id"`
	TotalAmount float64     `db:"total_amount" json:"total_amount"`
	TotalQty    int         `db:"total_qty" json:"total_qty"`
	Status      OrderStatus `db:"status" json:"status"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`

	Items []OrderItem `db:"-" json:"items,omitempty"`
}

// OrderItem is one line of an order. Product name and prices are snapshotted
// at confirmation time so later catalog edits do not rewrite history.
// ToppingsSnapshot holds a JSON array of {name, price} objects.
type OrderItem struct {
	ID                  uuid.UUID       `db:"id" json:"id"`
	OrderID             uuid.UUID       `db:"order_id" json:"order_id"`
	ProductID           *uuid.UUID      `db:"product_id" json:"product_id"`
	ProductNameSnapshot string          `db:"product_name_snapshot" json:"product_name_snapshot"`
	PriceSnapshot       float64         `db:"price_snapshot" json:"price_snapshot"`
	Qty                 int             `db:"qty" json:"qty"`
	ToppingsSnapshot    json.RawMessage `db:"toppings_snapshot" json:"toppings_snapshot"`
	ToppingTotal        float64         `db:"topping_total" json:"topping_total"`
	Sweetness           *string         `db:"sweetness" json:"sweetness"`
	Subtotal            float64         `db:"subtotal" json:"subtotal"`
}

// ToppingSnapshot is one element of OrderItem.ToppingsSnapshot.
type ToppingSnapshot struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ShopSession records one open/close cycle of the shop.
type ShopSession struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	OpenedAt           time.Time  `db:"opened_at" json:"opened_at"`
	ClosedAt           *time.Time `db:"closed_at" json:"closed_at"`
	OpenedBy           uuid.UUID  `db:"opened_by" json:"opened_by"`
	ClosedBy           *uuid.UUID `db:"closed_by" json:"closed_by"`
	TotalSalesSnapshot *float64   `db:"total_sales_snapshot" json:"total_sales_snapshot"`
}

// DailySummary aggregates one calendar day of sales.
type DailySummary struct {
	Date        string           `json:"date"`
	TotalSales  float64          `json:"total_sales"`
	TotalOrders int              `json:"total_orders"`
	TotalCups   int              `json:"total_cups"`
	TopProducts []ProductSummary `json:"top_products"`
}

// ProductSummary is one row of the daily top-products ranking.
type ProductSummary struct {
	Name    string  `db:"name" json:"name"`
	Qty     int     `db:"qty" json:"qty"`
	Revenue float64 `db:"revenue" json:"revenue"`
}

// OrderFilters narrows order listings. From/To is a half-open UTC range;
// the service layer resolves a shop-local date into it.
type OrderFilters struct {
	From    *time.Time
	To      *time.Time
	StaffID *uuid.UUID
	Offset  int
	Limit   int
}
