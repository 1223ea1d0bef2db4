package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, instrument *Instrument) error
	// FindByMask matches instruments of the customer whose mask contains
	// both substrings (last four digits and the search-format expiry).
	FindByMask(ctx context.Context, db *gorm.DB, customerID snowflake.ID, lastFour, searchExpiry string) (*Instrument, error)
}
