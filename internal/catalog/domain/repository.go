package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	FindCatalog(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Catalog, error)
	ListItems(ctx context.Context, db *gorm.DB, catalogID snowflake.ID) ([]*Item, error)
	FindItem(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Item, error)
}
