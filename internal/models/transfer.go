package models

import "github.com/shopspring/decimal"

// TransferRequest represents an intent to move money between two accounts.
type TransferRequest struct {
	FromAccount string          `json:"from_account"`
	ToAccount   string          `json:"to_account"`
	Amount      decimal.Decimal `json:"amount"`
}
