package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/easysale/internal/payment/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Capture status the gateway reports when funds are held back.
const holdMarker = "Payment Hold"

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
		log:   p.Log.Named("payment.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) CheckAuthorization(ctx context.Context, transactionID snowflake.ID) (domain.Outcome, error) {
	events, err := s.repo.ListByTransaction(ctx, s.db, transactionID)
	if err != nil {
		return domain.Outcome{}, err
	}

	// Last write wins per category: a retried authorization or capture
	// supersedes the earlier one.
	var auth, capture *domain.Event
	for i := range events {
		event := &events[i]
		if event.EventType == domain.EventTypeSale {
			auth = event
		} else {
			capture = event
		}
	}

	if auth == nil {
		s.log.Warn("no authorization event for transaction", zap.Int64("transaction_id", int64(transactionID)))
		return domain.Outcome{Accepted: false, Reason: "Authorization Result: none"}, nil
	}

	outcome := domain.Outcome{Accepted: true, Amount: auth.Amount}
	outcome.Reason = "Authorization Result: " + reasonOf(auth)
	if capture != nil {
		outcome.Amount = capture.Amount
		outcome.Reason = "Capture Result: " + reasonOf(capture)
		if capture.Status == holdMarker {
			outcome.Accepted = false
		}
	} else if strings.Contains(strings.ToLower(auth.Status), "hold") {
		outcome.Accepted = false
	}

	s.log.Info("authorization check",
		zap.Int64("transaction_id", int64(transactionID)),
		zap.Bool("accepted", outcome.Accepted),
		zap.String("reason", outcome.Reason),
	)
	return outcome, nil
}

func reasonOf(event *domain.Event) string {
	if event.HoldReason != "" {
		return event.Status + " (" + event.HoldReason + ")"
	}
	return event.Status
}

func (s *Service) Record(ctx context.Context, req domain.RecordRequest) (*domain.Event, error) {
	if req.TransactionID == 0 {
		return nil, domain.ErrInvalidTransaction
	}
	event := domain.Event{
		ID:            s.genID.Generate(),
		TransactionID: req.TransactionID,
		EventType:     req.EventType,
		Status:        req.Status,
		HoldReason:    req.HoldReason,
		Amount:        req.Amount,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, s.db, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
