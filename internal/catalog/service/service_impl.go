package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/smallbiznis/easysale/internal/catalog/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Values containing this marker are file-hosted and render as images.
const fileHostMarker = "media.nl"

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("catalog.service"),
		repo: p.Repo,
	}
}

func (s *Service) Rows(ctx context.Context, req domain.RowsRequest) ([]domain.Row, error) {
	if req.CatalogID == 0 {
		return nil, domain.ErrInvalidCatalog
	}

	catalog, err := s.repo.FindCatalog(ctx, s.db, req.CatalogID)
	if err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, domain.ErrNotFound
	}

	defs, err := columnsWithPrice(catalog, req.PriceLevel)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListItems(ctx, s.db, req.CatalogID)
	if err != nil {
		return nil, err
	}

	priceField := domain.PriceField(req.PriceLevel)
	rows := make([]domain.Row, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		price := item.TierPrice(req.PriceLevel)
		cells := make([]domain.Cell, 0, len(defs))
		for _, def := range defs {
			if def.Field == priceField {
				cells = append(cells, domain.Cell{Label: def.Label, Value: price.StringFixed(2)})
				continue
			}
			cells = append(cells, renderCell(def, item.Attributes[def.Field]))
		}
		rows = append(rows, domain.Row{ItemID: item.ID, Cells: cells, Price: price})
	}
	return rows, nil
}

func (s *Service) Labels(ctx context.Context, req domain.RowsRequest) ([]string, error) {
	catalog, err := s.repo.FindCatalog(ctx, s.db, req.CatalogID)
	if err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, domain.ErrNotFound
	}
	defs, err := columnsWithPrice(catalog, req.PriceLevel)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(defs))
	for _, def := range defs {
		labels = append(labels, def.Label)
	}
	return labels, nil
}

// columnsWithPrice decodes the catalog's column definitions and appends the
// requested tier's price column when it is not already selected.
func columnsWithPrice(catalog *domain.Catalog, priceLevel int) ([]domain.ColumnDef, error) {
	var defs []domain.ColumnDef
	if len(catalog.Columns) > 0 {
		if err := json.Unmarshal(catalog.Columns, &defs); err != nil {
			return nil, fmt.Errorf("decode catalog %d columns: %w", catalog.ID, err)
		}
	}
	priceField := domain.PriceField(priceLevel)
	for _, def := range defs {
		if def.Field == priceField {
			return defs, nil
		}
	}
	return append(defs, domain.ColumnDef{Field: priceField, Label: "Price", Kind: domain.ColumnKindText}), nil
}

func renderCell(def domain.ColumnDef, value interface{}) domain.Cell {
	cell := domain.Cell{Label: def.Label}
	switch v := value.(type) {
	case nil:
		cell.Value = ""
	case bool:
		if v {
			cell.Value = "Yes"
		} else {
			cell.Value = "No"
		}
	case string:
		cell.Value = v
		cell.Image = def.Kind == domain.ColumnKindImage || strings.Contains(v, fileHostMarker)
	default:
		cell.Value = fmt.Sprint(v)
	}
	return cell
}
