package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, event *Event) error
	// ListByTransaction returns events in insertion order.
	ListByTransaction(ctx context.Context, db *gorm.DB, transactionID snowflake.ID) ([]Event, error)
}
