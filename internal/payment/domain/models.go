package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// EventTypeSale marks an authorization event. Any other type is treated as
// a capture.
const EventTypeSale = "SALE"

// Event is one gateway notification for a transaction. Events are written
// by the payment gateway integration and only read here.
type Event struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id"`
	TransactionID snowflake.ID    `gorm:"not null;index" json:"transaction_id"`
	EventType     string          `gorm:"not null" json:"event_type"`
	Status        string          `json:"status"`
	HoldReason    string          `json:"hold_reason"`
	Amount        decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	CreatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Event) TableName() string { return "payment_events" }
