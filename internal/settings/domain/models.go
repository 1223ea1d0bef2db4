package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Transaction types a checkout can produce.
const (
	TranTypeCashSale   = "cashsale"
	TranTypeSalesOrder = "salesorder"
)

// Settings is the per-subsidiary checkout configuration record. Exactly one
// active row must resolve per lookup key: the default-flagged row when no
// customer is known yet, the subsidiary-matched row afterwards.
type Settings struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	SubsidiaryID snowflake.ID `gorm:"not null;index" json:"subsidiary_id"`
	IsDefault    bool         `gorm:"not null;default:false" json:"is_default"`
	IsInactive   bool         `gorm:"not null;default:false" json:"is_inactive"`

	ProcessorProfileID string `json:"processor_profile_id"`
	CompanyName        string `gorm:"not null" json:"company_name"`
	CompanyLogoURL     string `json:"company_logo_url"`
	HeaderAddress      string `json:"header_address"`

	AccountID   snowflake.ID `json:"account_id"`
	AccountName string       `json:"account_name"`
	CatalogID   snowflake.ID `gorm:"not null" json:"catalog_id"`
	LocationID  snowflake.ID `json:"location_id"`

	NotifyEmail  string `json:"notify_email"`
	NotifyAuthor string `json:"notify_author"`

	PriceLevel      int    `gorm:"not null;default:1" json:"price_level"`
	TransactionType string `gorm:"not null" json:"transaction_type"`
	TemplateName    string `json:"template_name"`
	Currency        string `gorm:"not null;default:USD" json:"currency"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Settings) TableName() string { return "checkout_settings" }
