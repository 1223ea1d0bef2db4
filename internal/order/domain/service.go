package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/easysale/internal/card"
)

// ItemPrice is a catalog item offered on the form with its resolved tier
// price. Line selection joins these against the submitted selection maps.
type ItemPrice struct {
	ItemID snowflake.ID
	Price  decimal.Decimal
}

type CreateRequest struct {
	Type         string
	CustomerID   snowflake.ID
	SubsidiaryID snowflake.ID
	LocationID   snowflake.ID
	AccountID    snowflake.ID
	AccountName  string
	Currency     string

	ProcessorProfileID string
	Mode               card.Mode
	InstrumentID       snowflake.ID // tokenized mode
	CSC                string       // tokenized mode, forwarded only, never stored
	Card               *card.Details // legacy mode

	Items      []ItemPrice
	Selected   map[snowflake.ID]bool
	Quantities map[snowflake.ID]int
}

type Result struct {
	TransactionID snowflake.ID
	TranNumber    string
	Total         decimal.Decimal
	Saved         bool
}

type LookupResult struct {
	TranNumber string
	Total      decimal.Decimal
	Currency   string
}

type Service interface {
	// Create builds and saves the transaction with its item lines. A line is
	// included only when its item is both selected and carries a positive
	// quantity. A cash sale posting to an undeposited-funds account is saved
	// first and flagged in a separate follow-up update.
	Create(ctx context.Context, req CreateRequest) (Result, error)
	// Delete removes a cash sale that failed authorization. Sales orders are
	// never deleted.
	Delete(ctx context.Context, id snowflake.ID) error
	Lookup(ctx context.Context, id snowflake.ID) (LookupResult, error)
}

var (
	ErrInvalidTranType = errors.New("invalid_transaction_type")
	ErrNotFound        = errors.New("not_found")
)
