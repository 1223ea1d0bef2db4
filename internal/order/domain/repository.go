package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	// Create persists the transaction and its lines atomically.
	Create(ctx context.Context, db *gorm.DB, txn *Transaction, lines []Line) error
	// MarkUndepositedFunds flips undep_funds on an already saved transaction.
	// The flag cannot be set on the initial insert; the posting account must
	// be resolved first.
	MarkUndepositedFunds(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Transaction, error)
	ListLines(ctx context.Context, db *gorm.DB, transactionID snowflake.ID) ([]Line, error)
}
