package domain

import (
	"strconv"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Column kinds a catalog can declare for its display columns.
const (
	ColumnKindText    = "text"
	ColumnKindBoolean = "boolean"
	ColumnKindImage   = "image"
)

// ColumnDef describes one display column of a catalog.
type ColumnDef struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
}

// Catalog is a configured item listing: an ordered set of items plus the
// display columns rendered for each of them.
type Catalog struct {
	ID        snowflake.ID   `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Columns   datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"columns"`
	CreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Item is a sellable catalog entry with tier prices. Price level 1 reads
// BasePrice; levels 2-5 read their column and fall back to BasePrice when
// unset.
type Item struct {
	ID         snowflake.ID        `gorm:"primaryKey" json:"id"`
	CatalogID  snowflake.ID        `gorm:"not null;index" json:"catalog_id"`
	Position   int                 `gorm:"not null;default:0" json:"position"`
	Attributes datatypes.JSONMap   `gorm:"type:jsonb;not null;default:'{}'" json:"attributes"`
	BasePrice  decimal.Decimal     `gorm:"type:numeric;not null" json:"base_price"`
	Price2     decimal.NullDecimal `gorm:"type:numeric" json:"price2"`
	Price3     decimal.NullDecimal `gorm:"type:numeric" json:"price3"`
	Price4     decimal.NullDecimal `gorm:"type:numeric" json:"price4"`
	Price5     decimal.NullDecimal `gorm:"type:numeric" json:"price5"`
	CreatedAt  time.Time           `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Item) TableName() string { return "catalog_items" }

// TierPrice resolves the unit price for a price level, falling back to the
// base price when the level's column is unset.
func (i Item) TierPrice(level int) decimal.Decimal {
	var tier decimal.NullDecimal
	switch level {
	case 2:
		tier = i.Price2
	case 3:
		tier = i.Price3
	case 4:
		tier = i.Price4
	case 5:
		tier = i.Price5
	default:
		return i.BasePrice
	}
	if tier.Valid {
		return tier.Decimal
	}
	return i.BasePrice
}

// PriceField names the price column for a level, mirroring the catalog's
// column naming ("baseprice" for level 1, "priceN" above).
func PriceField(level int) string {
	if level <= 1 {
		return "baseprice"
	}
	return "price" + strconv.Itoa(level)
}
