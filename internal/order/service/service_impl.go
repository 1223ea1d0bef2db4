package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/easysale/internal/card"
	"github.com/smallbiznis/easysale/internal/order/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Cash sales posting to an account named like this must be flagged as
// undeposited funds after the initial save.
const undepFundsMarker = "Undeposited Funds"

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
		log:   p.Log.Named("order.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (domain.Result, error) {
	if req.Type != domain.TranTypeCashSale && req.Type != domain.TranTypeSalesOrder {
		return domain.Result{}, domain.ErrInvalidTranType
	}

	id := s.genID.Generate()
	txn := domain.Transaction{
		ID:           id,
		Type:         req.Type,
		Status:       domain.StatusPending,
		CustomerID:   req.CustomerID,
		SubsidiaryID: req.SubsidiaryID,
		LocationID:   req.LocationID,
		AccountID:    req.AccountID,
		TranNumber:   tranNumber(req.Type, id),
		Currency:     req.Currency,
	}

	switch req.Mode {
	case card.ModeTokenized:
		instrumentID := req.InstrumentID
		txn.InstrumentID = &instrumentID
		txn.HandlingMode = domain.HandlingProcess
		txn.ProcessorProfileID = req.ProcessorProfileID
	default:
		if req.Card != nil {
			txn.PaymentMethod = req.Card.Method
			txn.NameOnCard = req.Card.NameOnCard
			txn.CardNumber = card.Mask(req.Card.Number)
			if expiry, err := card.ParseExpiry(req.Card.Expiry); err == nil {
				txn.CardExpiry = &expiry
			} else {
				s.log.Warn("unparseable card expiry on order", zap.String("expiry", req.Card.Expiry))
			}
		}
		txn.ChargeCard = true
		txn.GetAuth = true
	}

	lines, total := s.buildLines(id, req)
	txn.Total = total

	if err := s.repo.Create(ctx, s.db, &txn, lines); err != nil {
		s.log.Error("transaction save failed",
			zap.Error(err),
			zap.String("type", req.Type),
			zap.Int64("customer_id", int64(req.CustomerID)),
		)
		return domain.Result{}, err
	}

	if req.Type == domain.TranTypeCashSale && strings.Contains(req.AccountName, undepFundsMarker) {
		if err := s.repo.MarkUndepositedFunds(ctx, s.db, id); err != nil {
			s.log.Warn("undeposited funds update failed", zap.Error(err), zap.Int64("transaction_id", int64(id)))
		}
	}

	s.log.Info("transaction saved",
		zap.Int64("transaction_id", int64(id)),
		zap.String("tran_number", txn.TranNumber),
		zap.String("type", req.Type),
		zap.String("total", total.StringFixed(2)),
		zap.Int("lines", len(lines)),
	)
	return domain.Result{
		TransactionID: id,
		TranNumber:    txn.TranNumber,
		Total:         total,
		Saved:         true,
	}, nil
}

// buildLines joins the offered items against the selection maps. An item
// becomes a line only when both its checkbox and a positive quantity were
// submitted.
func (s *Service) buildLines(transactionID snowflake.ID, req domain.CreateRequest) ([]domain.Line, decimal.Decimal) {
	var lines []domain.Line
	total := decimal.Zero
	for i, item := range req.Items {
		if !req.Selected[item.ItemID] {
			continue
		}
		qty := req.Quantities[item.ItemID]
		if qty <= 0 {
			continue
		}
		amount := item.Price.Mul(decimal.NewFromInt(int64(qty)))
		lines = append(lines, domain.Line{
			ID:            s.genID.Generate(),
			TransactionID: transactionID,
			ItemID:        item.ItemID,
			Position:      i,
			Quantity:      qty,
			UnitPrice:     item.Price,
			Amount:        amount,
		})
		total = total.Add(amount)
	}
	return lines, total
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	if err := s.repo.Delete(ctx, s.db, id); err != nil {
		s.log.Error("transaction delete failed", zap.Error(err), zap.Int64("transaction_id", int64(id)))
		return err
	}
	s.log.Info("transaction deleted", zap.Int64("transaction_id", int64(id)))
	return nil
}

func (s *Service) Lookup(ctx context.Context, id snowflake.ID) (domain.LookupResult, error) {
	txn, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.LookupResult{}, err
	}
	if txn == nil {
		return domain.LookupResult{}, domain.ErrNotFound
	}
	return domain.LookupResult{
		TranNumber: txn.TranNumber,
		Total:      txn.Total,
		Currency:   txn.Currency,
	}, nil
}

func tranNumber(tranType string, id snowflake.ID) string {
	prefix := "SO-"
	if tranType == domain.TranTypeCashSale {
		prefix = "CS-"
	}
	return prefix + id.String()
}
