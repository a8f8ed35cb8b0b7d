package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidRecipient  = errors.New("recipient account does not exist")
	ErrInvalidName       = errors.New("invalid name, only letters and spaces allowed")
	ErrAccountNotFound   = errors.New("account not found")
	ErrMalformedSnapshot = errors.New("malformed account snapshot")

	// ErrNegativeInitialBalance also matches ErrInvalidAmount.
	ErrNegativeInitialBalance = fmt.Errorf("%w: initial balance cannot be negative", ErrInvalidAmount)
)
