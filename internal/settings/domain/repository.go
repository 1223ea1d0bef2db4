package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, settings *Settings) error
	Update(ctx context.Context, db *gorm.DB, settings *Settings) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Settings, error)
	FindDefault(ctx context.Context, db *gorm.DB) (*Settings, error)
	FindBySubsidiary(ctx context.Context, db *gorm.DB, subsidiaryID snowflake.ID) (*Settings, error)
	List(ctx context.Context, db *gorm.DB) ([]*Settings, error)
}
