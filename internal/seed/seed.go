// Package seed bootstraps a fresh database with a demo catalog and a default
// checkout configuration so the form renders out of the box.
package seed

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	catalogdomain "github.com/smallbiznis/easysale/internal/catalog/domain"
	settingsdomain "github.com/smallbiznis/easysale/internal/settings/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultCompanyName = "Easy Sale Demo"
	defaultCatalogName = "Demo Catalog"
)

// EnsureDefaults creates the default configuration and demo catalog when no
// settings exist yet. Safe to run on every startup.
func EnsureDefaults(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&settingsdomain.Settings{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		catalogID, err := ensureDemoCatalog(tx, node)
		if err != nil {
			return err
		}

		settings := settingsdomain.Settings{
			ID:              node.Generate(),
			SubsidiaryID:    node.Generate(),
			IsDefault:       true,
			CompanyName:     defaultCompanyName,
			HeaderAddress:   "1 Demo Street\nDemo City",
			CatalogID:       catalogID,
			PriceLevel:      1,
			TransactionType: settingsdomain.TranTypeSalesOrder,
			Currency:        "USD",
		}
		return tx.Create(&settings).Error
	})
}

func ensureDemoCatalog(tx *gorm.DB, node *snowflake.Node) (snowflake.ID, error) {
	catalog := catalogdomain.Catalog{
		ID:      node.Generate(),
		Name:    defaultCatalogName,
		Columns: datatypes.JSON(`[{"field":"name","label":"Name","kind":"text"},{"field":"description","label":"Description","kind":"text"}]`),
	}
	if err := tx.Create(&catalog).Error; err != nil {
		return 0, err
	}

	items := []catalogdomain.Item{
		{
			ID:        node.Generate(),
			CatalogID: catalog.ID,
			Position:  0,
			Attributes: datatypes.JSONMap{
				"name":        "Sample Item",
				"description": "A sample orderable item",
			},
			BasePrice: decimal.NewFromInt(10),
		},
		{
			ID:        node.Generate(),
			CatalogID: catalog.ID,
			Position:  1,
			Attributes: datatypes.JSONMap{
				"name":        "Second Item",
				"description": "Another sample item",
			},
			BasePrice: decimal.RequireFromString("24.50"),
		},
	}
	if err := tx.Create(&items).Error; err != nil {
		return 0, err
	}
	return catalog.ID, nil
}
