package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

// ResolveRequest selects the configuration lookup branch. A zero SubsidiaryID
// resolves the default-flagged record; anything else matches on subsidiary.
type ResolveRequest struct {
	SubsidiaryID snowflake.ID
}

type CreateSettingsRequest struct {
	SubsidiaryID       snowflake.ID
	IsDefault          bool
	ProcessorProfileID string
	CompanyName        string
	CompanyLogoURL     string
	HeaderAddress      string
	AccountID          snowflake.ID
	AccountName        string
	CatalogID          snowflake.ID
	LocationID         snowflake.ID
	NotifyEmail        string
	NotifyAuthor       string
	PriceLevel         int
	TransactionType    string
	TemplateName       string
	Currency           string
}

type UpdateSettingsRequest struct {
	ID snowflake.ID
	CreateSettingsRequest
	IsInactive bool
}

type GetSettingsRequest struct {
	ID string
}

type Service interface {
	Resolve(ctx context.Context, req ResolveRequest) (Settings, error)
	Create(ctx context.Context, req CreateSettingsRequest) (Settings, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (Settings, error)
	List(ctx context.Context) ([]Settings, error)
	GetByID(ctx context.Context, req GetSettingsRequest) (Settings, error)
}

var (
	ErrNoSettings         = errors.New("no_settings")
	ErrInvalidCompanyName = errors.New("invalid_company_name")
	ErrInvalidCatalog     = errors.New("invalid_catalog")
	ErrInvalidTranType    = errors.New("invalid_transaction_type")
	ErrInvalidPriceLevel  = errors.New("invalid_price_level")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("not_found")
)
