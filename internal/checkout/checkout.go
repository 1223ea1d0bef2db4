// Package checkout orchestrates a form submission end to end: configuration
// lookup, customer and payment method reconciliation, order creation and the
// authorization verdict for cash sales.
package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/easysale/internal/card"
	catalogdomain "github.com/smallbiznis/easysale/internal/catalog/domain"
	"github.com/smallbiznis/easysale/internal/config"
	customerdomain "github.com/smallbiznis/easysale/internal/customer/domain"
	instrumentdomain "github.com/smallbiznis/easysale/internal/instrument/domain"
	orderdomain "github.com/smallbiznis/easysale/internal/order/domain"
	paymentdomain "github.com/smallbiznis/easysale/internal/payment/domain"
	"github.com/smallbiznis/easysale/internal/providers/email"
	settingsdomain "github.com/smallbiznis/easysale/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Kind is the outcome shown to the buyer. The public surface knows exactly
// these pages.
type Kind int

const (
	KindOrderAccepted Kind = iota
	KindPaymentAccepted
	KindPaymentFailed
	KindCheckEmail
)

// Submission is a parsed checkout form POST.
type Submission struct {
	Email       string
	Name        string
	CompanyName string
	Comments    string
	Address     customerdomain.AddressInput
	Card        card.Details
	Selected    map[snowflake.ID]bool
	Quantities  map[snowflake.ID]int
}

// Confirmation tells the renderer which page to show and with what data.
type Confirmation struct {
	Kind       Kind
	LogoURL    string
	TranNumber string
	Amount     decimal.Decimal
	Currency   string
}

type Params struct {
	fx.In

	Cfg         config.Config
	Log         *zap.Logger
	Settings    settingsdomain.Service
	Catalog     catalogdomain.Service
	Customers   customerdomain.Service
	Instruments instrumentdomain.Service
	Orders      orderdomain.Service
	Payments    paymentdomain.Service
	Email       email.Provider
}

type Service struct {
	cfg         config.Config
	log         *zap.Logger
	settings    settingsdomain.Service
	catalog     catalogdomain.Service
	customers   customerdomain.Service
	instruments instrumentdomain.Service
	orders      orderdomain.Service
	payments    paymentdomain.Service
	email       email.Provider
}

func New(p Params) *Service {
	return &Service{
		cfg:         p.Cfg,
		log:         p.Log.Named("checkout"),
		settings:    p.Settings,
		catalog:     p.Catalog,
		customers:   p.Customers,
		instruments: p.Instruments,
		orders:      p.Orders,
		payments:    p.Payments,
		email:       p.Email,
	}
}

// Mode resolves the tenant-wide payment method representation once per
// request.
func (s *Service) Mode() card.Mode {
	if s.cfg.PaymentInstruments {
		return card.ModeTokenized
	}
	return card.ModeLegacy
}

// Submit runs the whole checkout. Errors are returned only when no settings
// could be resolved or the customer step failed outright; everything after
// that point resolves to a confirmation page.
func (s *Service) Submit(ctx context.Context, sub Submission) (Confirmation, error) {
	mode := s.Mode()

	if strings.TrimSpace(sub.Email) == "" {
		return Confirmation{Kind: KindCheckEmail}, nil
	}

	cfg, err := s.settings.Resolve(ctx, settingsdomain.ResolveRequest{})
	if err != nil {
		return Confirmation{}, err
	}

	cust, created, err := s.customers.MatchOrCreate(ctx, customerdomain.MatchOrCreateRequest{
		SubsidiaryID: cfg.SubsidiaryID,
		Email:        sub.Email,
		FirstName:    sub.Name,
		CompanyName:  sub.CompanyName,
		Comments:     sub.Comments,
		Address:      sub.Address,
		Card:         &sub.Card,
		Mode:         mode,
	})
	if err != nil {
		return Confirmation{}, err
	}
	if !created {
		// Reconcile sublists on the existing record. Neither step is fatal.
		_ = s.customers.EnsureAddress(ctx, cust.ID, sub.Address)
		if mode == card.ModeLegacy {
			_ = s.customers.EnsureLegacyCard(ctx, cust.ID, sub.Card)
		}
	}

	// Re-resolve against the customer's subsidiary now that it is known.
	cfg, err = s.settings.Resolve(ctx, settingsdomain.ResolveRequest{SubsidiaryID: cust.SubsidiaryID})
	if err != nil {
		return Confirmation{}, err
	}

	var instrumentID snowflake.ID
	if mode == card.ModeTokenized {
		instrumentID, err = s.instruments.Ensure(ctx, instrumentdomain.EnsureRequest{
			CustomerID: cust.ID,
			Card:       sub.Card,
		})
		if err != nil {
			s.log.Error("payment instrument unavailable", zap.Error(err), zap.Int64("customer_id", int64(cust.ID)))
			return Confirmation{Kind: KindPaymentFailed, LogoURL: cfg.CompanyLogoURL}, nil
		}
	}

	rows, err := s.catalog.Rows(ctx, catalogdomain.RowsRequest{CatalogID: cfg.CatalogID, PriceLevel: cfg.PriceLevel})
	if err != nil {
		s.log.Error("catalog load failed", zap.Error(err), zap.Int64("catalog_id", int64(cfg.CatalogID)))
		return Confirmation{Kind: KindPaymentFailed, LogoURL: cfg.CompanyLogoURL}, nil
	}
	items := make([]orderdomain.ItemPrice, 0, len(rows))
	for _, row := range rows {
		items = append(items, orderdomain.ItemPrice{ItemID: row.ItemID, Price: row.Price})
	}

	result, err := s.orders.Create(ctx, orderdomain.CreateRequest{
		Type:               cfg.TransactionType,
		CustomerID:         cust.ID,
		SubsidiaryID:       cfg.SubsidiaryID,
		LocationID:         cfg.LocationID,
		AccountID:          cfg.AccountID,
		AccountName:        cfg.AccountName,
		Currency:           cfg.Currency,
		ProcessorProfileID: cfg.ProcessorProfileID,
		Mode:               mode,
		InstrumentID:       instrumentID,
		CSC:                sub.Card.CVC,
		Card:               &sub.Card,
		Items:              items,
		Selected:           sub.Selected,
		Quantities:         sub.Quantities,
	})
	if err != nil {
		return Confirmation{Kind: KindPaymentFailed, LogoURL: cfg.CompanyLogoURL}, nil
	}

	s.notify(ctx, cfg, result.TransactionID)

	if cfg.TransactionType == settingsdomain.TranTypeSalesOrder {
		return Confirmation{Kind: KindOrderAccepted, LogoURL: cfg.CompanyLogoURL}, nil
	}

	outcome, err := s.payments.CheckAuthorization(ctx, result.TransactionID)
	if err != nil {
		s.log.Error("authorization check failed", zap.Error(err), zap.Int64("transaction_id", int64(result.TransactionID)))
		outcome.Accepted = false
	}
	if outcome.Accepted || result.Total.IsZero() {
		confirmation := Confirmation{
			Kind:       KindPaymentAccepted,
			LogoURL:    cfg.CompanyLogoURL,
			TranNumber: result.TranNumber,
			Amount:     result.Total,
			Currency:   cfg.Currency,
		}
		if lookup, err := s.orders.Lookup(ctx, result.TransactionID); err == nil {
			confirmation.TranNumber = lookup.TranNumber
			confirmation.Amount = lookup.Total
			confirmation.Currency = lookup.Currency
		}
		return confirmation, nil
	}

	s.log.Info("payment rejected, removing cash sale",
		zap.Int64("transaction_id", int64(result.TransactionID)),
		zap.String("reason", outcome.Reason),
	)
	if err := s.orders.Delete(ctx, result.TransactionID); err != nil {
		s.log.Error("failed cash sale not deleted", zap.Error(err), zap.Int64("transaction_id", int64(result.TransactionID)))
	}
	return Confirmation{Kind: KindPaymentFailed, LogoURL: cfg.CompanyLogoURL}, nil
}

// notify emails the configured recipient about the new transaction. Best
// effort: an unset recipient or author is a silent no-op and send failures
// only log.
func (s *Service) notify(ctx context.Context, cfg settingsdomain.Settings, transactionID snowflake.ID) {
	if cfg.NotifyEmail == "" || cfg.NotifyAuthor == "" {
		return
	}
	body := fmt.Sprintf("Created %s ID %d successfully.", cfg.TransactionType, transactionID)
	if s.cfg.BaseURL != "" {
		body += fmt.Sprintf(` Click <a href="%s/transactions/%d">here</a> to see the transaction.`, s.cfg.BaseURL, transactionID)
	}
	if err := s.email.Send(ctx, []string{cfg.NotifyEmail}, "Easy Sale Order Created", body); err != nil {
		s.log.Warn("notification email failed", zap.Error(err), zap.Int64("transaction_id", int64(transactionID)))
	}
}
