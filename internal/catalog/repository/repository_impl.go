package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/easysale/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindCatalog(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Catalog, error) {
	var catalog domain.Catalog
	err := db.WithContext(ctx).
		Model(&domain.Catalog{}).
		Where("id = ?", id).
		Limit(1).
		Find(&catalog).Error
	if err != nil {
		return nil, err
	}
	if catalog.ID == 0 {
		return nil, nil
	}
	return &catalog, nil
}

func (r *repo) ListItems(ctx context.Context, db *gorm.DB, catalogID snowflake.ID) ([]*domain.Item, error) {
	var items []*domain.Item
	err := db.WithContext(ctx).
		Model(&domain.Item{}).
		Where("catalog_id = ?", catalogID).
		Order("position, id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindItem(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Item, error) {
	var item domain.Item
	err := db.WithContext(ctx).
		Model(&domain.Item{}).
		Where("id = ?", id).
		Limit(1).
		Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}
