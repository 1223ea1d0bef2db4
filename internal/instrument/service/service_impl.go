package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/easysale/internal/card"
	"github.com/smallbiznis/easysale/internal/instrument/domain"
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
		log:   p.Log.Named("instrument.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Ensure(ctx context.Context, req domain.EnsureRequest) (snowflake.ID, error) {
	lastFour := card.LastFour(req.Card.Number)
	searchExpiry := card.SearchExpiry(req.Card.Expiry)
	s.log.Debug("searching for existing payment instrument",
		zap.Int64("customer_id", int64(req.CustomerID)),
		zap.String("last_four", lastFour),
	)

	existing, err := s.repo.FindByMask(ctx, s.db, req.CustomerID, lastFour, searchExpiry)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		s.log.Debug("existing payment instrument found", zap.Int64("instrument_id", int64(existing.ID)))
		return existing.ID, nil
	}

	expiry, err := card.ParseExpiry(req.Card.Expiry)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrCreateFailed, err)
	}

	instrument := domain.Instrument{
		ID:         s.genID.Generate(),
		CustomerID: req.CustomerID,
		Method:     req.Card.Method,
		NameOnCard: req.Card.NameOnCard,
		Mask:       card.Mask(req.Card.Number) + " (exp. " + searchExpiry + ")",
		Expiry:     expiry,
		Street:     req.Card.Street,
		Zip:        req.Card.Zip,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, s.db, &instrument); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrCreateFailed, err)
	}
	s.log.Debug("new payment instrument record saved",
		zap.Int64("customer_id", int64(req.CustomerID)),
		zap.Int64("instrument_id", int64(instrument.ID)),
	)
	return instrument.ID, nil
}
