package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Customer is a buyer record scoped to one subsidiary. Email is the match
// key: unique case-insensitively among non-inactive rows of the subsidiary
// by convention, not by constraint.
type Customer struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	SubsidiaryID snowflake.ID `gorm:"not null;index" json:"subsidiary_id"`
	IsPerson     bool         `gorm:"not null;default:false" json:"is_person"`
	FirstName    string       `json:"first_name"`
	CompanyName  string       `json:"company_name"`
	Email        string       `gorm:"not null;index" json:"email"`
	Comments     string       `json:"comments"`
	IsInactive   bool         `gorm:"not null;default:false" json:"is_inactive"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Addresses []Address `gorm:"foreignKey:CustomerID" json:"addresses,omitempty"`
	Cards     []Card    `gorm:"foreignKey:CustomerID" json:"cards,omitempty"`
}

// Address is one address-book row. Reconciliation matches on Line1 only.
type Address struct {
	ID             snowflake.ID `gorm:"primaryKey" json:"id"`
	CustomerID     snowflake.ID `gorm:"not null;index" json:"customer_id"`
	Country        string       `json:"country"`
	Line1          string       `gorm:"not null" json:"line1"`
	Line2          string       `json:"line2"`
	City           string       `json:"city"`
	State          string       `json:"state"`
	Zip            string       `json:"zip"`
	DefaultBilling bool         `gorm:"not null;default:false" json:"default_billing"`
	CreatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Address) TableName() string { return "customer_addresses" }

// Card is a legacy card-on-file line embedded in the customer record. Only
// the masked number is stored; matching uses last four digits plus expiry.
type Card struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	CustomerID snowflake.ID `gorm:"not null;index" json:"customer_id"`
	Method     string       `json:"method"`
	NameOnCard string       `json:"name_on_card"`
	Number     string       `gorm:"not null" json:"number"`
	Expiry     time.Time    `gorm:"not null" json:"expiry"`
	IsDefault  bool         `gorm:"not null;default:false" json:"is_default"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Card) TableName() string { return "customer_cards" }
