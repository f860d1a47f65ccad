package domain

// UserRole defines the access level of a login account.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// OrderStatus represents the lifecycle of an order within a shop session.
// Orders are "open" while the shop is open and flipped to "closed" when the
// shop session ends.
type OrderStatus string

const (
	OrderStatusOpen   OrderStatus = "open"
	OrderStatusClosed OrderStatus = "closed"
)
