package models

import "errors"

// Error kinds returned by the ledger core. Callers wrap these with the
// offending account id where the message needs to name it; match with errors.Is.
var (
	ErrDuplicateAccount  = errors.New("account already exists")
	ErrAccountNotFound   = errors.New("account does not exist")
	ErrSameAccount       = errors.New("both accounts cannot be same")
	ErrInvalidAmount     = errors.New("amount should be positive")
	ErrInsufficientFunds = errors.New("insufficient balance")
)
