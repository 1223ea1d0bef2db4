package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/easysale/internal/catalog/domain"
	"github.com/smallbiznis/easysale/internal/catalog/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	dbConn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(&domain.Catalog{}, &domain.Item{}))

	svc := New(Params{DB: dbConn, Log: zap.NewNop(), Repo: repository.Provide()})
	return svc, dbConn
}

func seedCatalog(t *testing.T, dbConn *gorm.DB, columns string, items ...domain.Item) snowflake.ID {
	t.Helper()

	catalog := domain.Catalog{ID: snowflake.ID(500), Name: "Test Catalog", Columns: datatypes.JSON(columns)}
	require.NoError(t, dbConn.Create(&catalog).Error)
	for i := range items {
		items[i].CatalogID = catalog.ID
		require.NoError(t, dbConn.Create(&items[i]).Error)
	}
	return catalog.ID
}

const testColumns = `[
  {"field":"name","label":"Name","kind":"text"},
  {"field":"instock","label":"In Stock","kind":"boolean"},
  {"field":"photo","label":"Photo","kind":"image"}
]`

func TestRowsAppendsPriceColumn(t *testing.T) {
	svc, dbConn := newTestService(t)
	catalogID := seedCatalog(t, dbConn, testColumns, domain.Item{
		ID:         snowflake.ID(501),
		Attributes: datatypes.JSONMap{"name": "Widget", "instock": true, "photo": "https://cdn.example.com/widget.png"},
		BasePrice:  decimal.RequireFromString("10.00"),
	})

	labels, err := svc.Labels(context.Background(), domain.RowsRequest{CatalogID: catalogID, PriceLevel: 1})
	require.NoError(t, err)
	require.Equal(t, []string{"Name", "In Stock", "Photo", "Price"}, labels)

	rows, err := svc.Rows(context.Background(), domain.RowsRequest{CatalogID: catalogID, PriceLevel: 1})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "10.00", rows[0].Price.StringFixed(2))
	require.Equal(t, "10.00", rows[0].Cells[3].Value)
}

func TestRowsCellRendering(t *testing.T) {
	svc, dbConn := newTestService(t)
	catalogID := seedCatalog(t, dbConn, testColumns,
		domain.Item{
			ID:         snowflake.ID(501),
			Position:   0,
			Attributes: datatypes.JSONMap{"name": "Widget", "instock": true, "photo": "https://host/media.nl?id=9"},
			BasePrice:  decimal.NewFromInt(5),
		},
		domain.Item{
			ID:         snowflake.ID(502),
			Position:   1,
			Attributes: datatypes.JSONMap{"name": "Gadget", "instock": false},
			BasePrice:  decimal.NewFromInt(7),
		},
	)

	rows, err := svc.Rows(context.Background(), domain.RowsRequest{CatalogID: catalogID, PriceLevel: 1})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	widget := rows[0]
	require.Equal(t, "Widget", widget.Cells[0].Value)
	require.Equal(t, "Yes", widget.Cells[1].Value)
	require.True(t, widget.Cells[2].Image)

	gadget := rows[1]
	require.Equal(t, "No", gadget.Cells[1].Value)
	require.Equal(t, "", gadget.Cells[2].Value)
}

func TestRowsTierPriceFallback(t *testing.T) {
	svc, dbConn := newTestService(t)
	catalogID := seedCatalog(t, dbConn, testColumns,
		domain.Item{
			ID:         snowflake.ID(501),
			Position:   0,
			Attributes: datatypes.JSONMap{"name": "Tiered"},
			BasePrice:  decimal.NewFromInt(10),
			Price3:     decimal.NewNullDecimal(decimal.RequireFromString("8.50")),
		},
		domain.Item{
			ID:         snowflake.ID(502),
			Position:   1,
			Attributes: datatypes.JSONMap{"name": "Flat"},
			BasePrice:  decimal.NewFromInt(10),
		},
	)

	rows, err := svc.Rows(context.Background(), domain.RowsRequest{CatalogID: catalogID, PriceLevel: 3})
	require.NoError(t, err)
	require.Equal(t, "8.50", rows[0].Price.StringFixed(2))
	require.Equal(t, "10.00", rows[1].Price.StringFixed(2))
}

func TestRowsEmptyCatalog(t *testing.T) {
	svc, dbConn := newTestService(t)
	catalogID := seedCatalog(t, dbConn, testColumns)

	rows, err := svc.Rows(context.Background(), domain.RowsRequest{CatalogID: catalogID, PriceLevel: 1})
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestRowsUnknownCatalog(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Rows(context.Background(), domain.RowsRequest{CatalogID: snowflake.ID(999), PriceLevel: 1})
	require.True(t, errors.Is(err, domain.ErrNotFound))
}
