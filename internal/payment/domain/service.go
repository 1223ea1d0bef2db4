package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Outcome is the authorization verdict for a cash sale.
type Outcome struct {
	Accepted bool
	Amount   decimal.Decimal
	Reason   string
}

type RecordRequest struct {
	TransactionID snowflake.ID
	EventType     string
	Status        string
	HoldReason    string
	Amount        decimal.Decimal
}

type Service interface {
	// CheckAuthorization reads the transaction's payment events in insertion
	// order and decides whether the charge went through. A missing
	// authorization event or an on-hold status is a rejection.
	CheckAuthorization(ctx context.Context, transactionID snowflake.ID) (Outcome, error)
	// Record stores a gateway event for later authorization checks.
	Record(ctx context.Context, req RecordRequest) (*Event, error)
}

var ErrInvalidTransaction = errors.New("invalid_transaction")
