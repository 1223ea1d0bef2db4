package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/easysale/internal/card"
	"github.com/smallbiznis/easysale/internal/customer/domain"
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
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) MatchOrCreate(ctx context.Context, req domain.MatchOrCreateRequest) (domain.Customer, bool, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return domain.Customer{}, false, domain.ErrMissingEmail
	}

	existing, err := s.repo.FindByEmail(ctx, s.db, req.SubsidiaryID, email)
	if err != nil {
		return domain.Customer{}, false, err
	}
	if existing != nil {
		s.log.Debug("customer found", zap.Int64("customer_id", int64(existing.ID)))
		return *existing, false, nil
	}

	s.log.Debug("no customer found, creating new customer record", zap.String("email", email))
	now := time.Now().UTC()
	customer := domain.Customer{
		ID:           s.genID.Generate(),
		SubsidiaryID: req.SubsidiaryID,
		Email:        email,
		Comments:     req.Comments,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if companyName := strings.TrimSpace(req.CompanyName); companyName != "" {
		customer.CompanyName = companyName
	} else {
		customer.IsPerson = true
		customer.FirstName = strings.TrimSpace(req.FirstName)
	}

	customer.Addresses = []domain.Address{newAddress(s.genID, customer.ID, req.Address, now)}
	if req.Mode == card.ModeLegacy && req.Card != nil {
		line, err := newCard(s.genID, customer.ID, *req.Card, now)
		if err != nil {
			s.log.Error("could not add card line to new customer", zap.Error(err))
		} else {
			customer.Cards = []domain.Card{line}
		}
	}

	if err := s.repo.Insert(ctx, s.db, &customer); err != nil {
		return domain.Customer{}, false, err
	}
	s.log.Debug("new customer record created", zap.Int64("customer_id", int64(customer.ID)))
	return customer, true, nil
}

func (s *Service) EnsureAddress(ctx context.Context, customerID snowflake.ID, addr domain.AddressInput) error {
	existing, err := s.repo.FindAddressByLine1(ctx, s.db, customerID, addr.Line1)
	if err != nil {
		return err
	}
	if existing != nil {
		s.log.Debug("address already exists", zap.Int64("customer_id", int64(customerID)))
		return nil
	}

	address := newAddress(s.genID, customerID, addr, time.Now().UTC())
	if err := s.repo.InsertAddress(ctx, s.db, &address); err != nil {
		s.log.Error("could not save address record", zap.Int64("customer_id", int64(customerID)), zap.Error(err))
		return err
	}
	s.log.Debug("new address added", zap.Int64("customer_id", int64(customerID)))
	return nil
}

func (s *Service) EnsureLegacyCard(ctx context.Context, customerID snowflake.ID, details card.Details) error {
	expiry, err := card.ParseExpiry(details.Expiry)
	if err != nil {
		return err
	}
	lastFour := card.LastFour(details.Number)

	lines, err := s.repo.ListCards(ctx, s.db, customerID)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if line == nil {
			continue
		}
		if card.LastFour(line.Number) == lastFour && line.Expiry.Equal(expiry) {
			return nil
		}
	}

	line, err := newCard(s.genID, customerID, details, time.Now().UTC())
	if err != nil {
		return err
	}
	if err := s.repo.InsertCard(ctx, s.db, &line); err != nil {
		s.log.Error("did not save card on record", zap.Int64("customer_id", int64(customerID)), zap.Error(err))
		return err
	}
	s.log.Debug("added new card to customer record", zap.Int64("customer_id", int64(customerID)))
	return nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.Customer, error) {
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if item == nil {
		return domain.Customer{}, domain.ErrNotFound
	}
	return *item, nil
}

func newAddress(genID *snowflake.Node, customerID snowflake.ID, addr domain.AddressInput, now time.Time) domain.Address {
	return domain.Address{
		ID:             genID.Generate(),
		CustomerID:     customerID,
		Country:        addr.Country,
		Line1:          addr.Line1,
		Line2:          addr.Line2,
		City:           addr.City,
		State:          addr.State,
		Zip:            addr.Zip,
		DefaultBilling: true,
		CreatedAt:      now,
	}
}

func newCard(genID *snowflake.Node, customerID snowflake.ID, details card.Details, now time.Time) (domain.Card, error) {
	expiry, err := card.ParseExpiry(details.Expiry)
	if err != nil {
		return domain.Card{}, err
	}
	return domain.Card{
		ID:         genID.Generate(),
		CustomerID: customerID,
		Method:     details.Method,
		NameOnCard: details.NameOnCard,
		Number:     card.Mask(details.Number),
		Expiry:     expiry,
		IsDefault:  true,
		CreatedAt:  now,
	}, nil
}
