package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Cell is one rendered display value of a catalog row.
type Cell struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Image bool   `json:"image"`
}

// Row is one catalog item prepared for rendering: the display cells plus the
// price resolved at the requested tier.
type Row struct {
	ItemID snowflake.ID    `json:"item_id"`
	Cells  []Cell          `json:"cells"`
	Price  decimal.Decimal `json:"price"`
}

type RowsRequest struct {
	CatalogID  snowflake.ID
	PriceLevel int
}

type Service interface {
	// Rows loads the catalog and returns its items as display rows. An empty
	// catalog yields an empty slice, not an error.
	Rows(ctx context.Context, req RowsRequest) ([]Row, error)
	// Labels returns the column headers in render order for the catalog at
	// the given price level.
	Labels(ctx context.Context, req RowsRequest) ([]string, error)
}

var (
	ErrInvalidCatalog = errors.New("invalid_catalog")
	ErrNotFound       = errors.New("not_found")
)
