package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, customer *Customer) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Customer, error)
	// FindByEmail matches case-insensitively among non-inactive customers of
	// the subsidiary and returns the first row by id.
	FindByEmail(ctx context.Context, db *gorm.DB, subsidiaryID snowflake.ID, email string) (*Customer, error)
	FindAddressByLine1(ctx context.Context, db *gorm.DB, customerID snowflake.ID, line1 string) (*Address, error)
	InsertAddress(ctx context.Context, db *gorm.DB, address *Address) error
	ListCards(ctx context.Context, db *gorm.DB, customerID snowflake.ID) ([]*Card, error)
	InsertCard(ctx context.Context, db *gorm.DB, card *Card) error
}
