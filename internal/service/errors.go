package service

import "errors"

var (
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("email or password is invalid")
	ErrProductNotFound    = errors.New("product not found")
	ErrCartNotFound       = errors.New("cart not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotPending    = errors.New("order is not awaiting payment")
	ErrAlreadyFavorite    = errors.New("product has already been added")
	ErrPaymentFailed      = errors.New("payment failed or canceled")
)
