package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/easysale/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("settings.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

// Resolve applies the two-branch lookup policy: default-flagged record when
// no subsidiary is known, subsidiary match otherwise. First active row wins.
func (s *Service) Resolve(ctx context.Context, req domain.ResolveRequest) (domain.Settings, error) {
	var (
		found *domain.Settings
		err   error
	)
	if req.SubsidiaryID == 0 {
		found, err = s.repo.FindDefault(ctx, s.db)
	} else {
		found, err = s.repo.FindBySubsidiary(ctx, s.db, req.SubsidiaryID)
	}
	if err != nil {
		return domain.Settings{}, err
	}
	if found == nil {
		s.log.Error("no configuration record found", zap.Int64("subsidiary_id", int64(req.SubsidiaryID)))
		return domain.Settings{}, domain.ErrNoSettings
	}
	return *found, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateSettingsRequest) (domain.Settings, error) {
	if err := validate(req); err != nil {
		return domain.Settings{}, err
	}

	now := time.Now().UTC()
	settings := domain.Settings{
		ID:                 s.genID.Generate(),
		SubsidiaryID:       req.SubsidiaryID,
		IsDefault:          req.IsDefault,
		ProcessorProfileID: strings.TrimSpace(req.ProcessorProfileID),
		CompanyName:        strings.TrimSpace(req.CompanyName),
		CompanyLogoURL:     strings.TrimSpace(req.CompanyLogoURL),
		HeaderAddress:      req.HeaderAddress,
		AccountID:          req.AccountID,
		AccountName:        strings.TrimSpace(req.AccountName),
		CatalogID:          req.CatalogID,
		LocationID:         req.LocationID,
		NotifyEmail:        strings.TrimSpace(req.NotifyEmail),
		NotifyAuthor:       strings.TrimSpace(req.NotifyAuthor),
		PriceLevel:         req.PriceLevel,
		TransactionType:    req.TransactionType,
		TemplateName:       strings.TrimSpace(req.TemplateName),
		Currency:           normalizeCurrency(req.Currency),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Insert(ctx, s.db, &settings); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateSettingsRequest) (domain.Settings, error) {
	if req.ID == 0 {
		return domain.Settings{}, domain.ErrInvalidID
	}
	if err := validate(req.CreateSettingsRequest); err != nil {
		return domain.Settings{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, req.ID)
	if err != nil {
		return domain.Settings{}, err
	}
	if existing == nil {
		return domain.Settings{}, domain.ErrNotFound
	}

	existing.SubsidiaryID = req.SubsidiaryID
	existing.IsDefault = req.IsDefault
	existing.IsInactive = req.IsInactive
	existing.ProcessorProfileID = strings.TrimSpace(req.ProcessorProfileID)
	existing.CompanyName = strings.TrimSpace(req.CompanyName)
	existing.CompanyLogoURL = strings.TrimSpace(req.CompanyLogoURL)
	existing.HeaderAddress = req.HeaderAddress
	existing.AccountID = req.AccountID
	existing.AccountName = strings.TrimSpace(req.AccountName)
	existing.CatalogID = req.CatalogID
	existing.LocationID = req.LocationID
	existing.NotifyEmail = strings.TrimSpace(req.NotifyEmail)
	existing.NotifyAuthor = strings.TrimSpace(req.NotifyAuthor)
	existing.PriceLevel = req.PriceLevel
	existing.TransactionType = req.TransactionType
	existing.TemplateName = strings.TrimSpace(req.TemplateName)
	existing.Currency = normalizeCurrency(req.Currency)
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return domain.Settings{}, err
	}
	return *existing, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Settings, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.Settings, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		rows = append(rows, *item)
	}
	return rows, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetSettingsRequest) (domain.Settings, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil || id == 0 {
		return domain.Settings{}, domain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Settings{}, err
	}
	if item == nil {
		return domain.Settings{}, domain.ErrNotFound
	}
	return *item, nil
}

func validate(req domain.CreateSettingsRequest) error {
	if strings.TrimSpace(req.CompanyName) == "" {
		return domain.ErrInvalidCompanyName
	}
	if req.CatalogID == 0 {
		return domain.ErrInvalidCatalog
	}
	switch req.TransactionType {
	case domain.TranTypeCashSale, domain.TranTypeSalesOrder:
	default:
		return domain.ErrInvalidTranType
	}
	if req.PriceLevel < 1 || req.PriceLevel > 5 {
		return domain.ErrInvalidPriceLevel
	}
	return nil
}

func normalizeCurrency(currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return "USD"
	}
	return currency
}
