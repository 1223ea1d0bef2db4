package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Transaction types a checkout can produce.
const (
	TranTypeCashSale   = "cashsale"
	TranTypeSalesOrder = "salesorder"
)

// Payment handling mode sent along with tokenized instruments.
const HandlingProcess = "PROCESS"

// Transaction statuses.
const (
	StatusPending = "pending"
)

// Transaction is a saved checkout: a cash sale or a sales order. Payment
// details live either in InstrumentID (tokenized mode) or in the inline
// card fields (legacy mode), never both. The card number is stored masked;
// the CSC is never persisted.
type Transaction struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	Type         string       `gorm:"not null;index" json:"type"`
	Status       string       `gorm:"not null;default:pending" json:"status"`
	CustomerID   snowflake.ID `gorm:"not null;index" json:"customer_id"`
	SubsidiaryID snowflake.ID `gorm:"not null" json:"subsidiary_id"`
	LocationID   snowflake.ID `json:"location_id"`

	InstrumentID       *snowflake.ID `json:"instrument_id,omitempty"`
	HandlingMode       string        `json:"handling_mode"`
	ProcessorProfileID string        `json:"processor_profile_id"`

	PaymentMethod string     `json:"payment_method"`
	NameOnCard    string     `json:"name_on_card"`
	CardNumber    string     `json:"card_number"`
	CardExpiry    *time.Time `json:"card_expiry,omitempty"`
	ChargeCard    bool       `gorm:"not null;default:false" json:"charge_card"`
	GetAuth       bool       `gorm:"not null;default:false" json:"get_auth"`

	UndepFunds bool         `gorm:"not null;default:false" json:"undep_funds"`
	AccountID  snowflake.ID `json:"account_id"`
	TranNumber string       `gorm:"not null;uniqueIndex" json:"tran_number"`
	Currency   string       `gorm:"not null;default:USD" json:"currency"`

	Total decimal.Decimal `gorm:"type:numeric;not null" json:"total"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Transaction) TableName() string { return "transactions" }

// Line is one item line on a transaction.
type Line struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id"`
	TransactionID snowflake.ID    `gorm:"not null;index" json:"transaction_id"`
	ItemID        snowflake.ID    `gorm:"not null" json:"item_id"`
	Position      int             `gorm:"not null;default:0" json:"position"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric;not null" json:"unit_price"`
	Amount        decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	CreatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Line) TableName() string { return "transaction_lines" }
