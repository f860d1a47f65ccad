package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateName      = errors.New("name already exists")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrShopAlreadyOpen    = errors.New("shop is already open")
	ErrShopNotOpen        = errors.New("shop is not open")
	ErrStaffRequired      = errors.New("user has no staff record")
	ErrInvalidDate        = errors.New("invalid date")
)
