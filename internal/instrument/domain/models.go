package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Instrument is a tokenized payment method stored separately from the
// customer record. The mask holds the hidden card number plus the expiry
// spelled without a leading zero; lookups match both by substring.
type Instrument struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	CustomerID snowflake.ID `gorm:"not null;index" json:"customer_id"`
	Method     string       `json:"method"`
	NameOnCard string       `json:"name_on_card"`
	Mask       string       `gorm:"not null" json:"mask"`
	Expiry     time.Time    `gorm:"not null" json:"expiry"`
	Street     string       `json:"street"`
	Zip        string       `json:"zip"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Instrument) TableName() string { return "payment_instruments" }
