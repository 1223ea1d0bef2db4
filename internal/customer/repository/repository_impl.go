package repository

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/easysale/internal/customer/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).Create(customer).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("id = ?", id).
		Limit(1).
		Find(&customer).Error
	if err != nil {
		return nil, err
	}
	if customer.ID == 0 {
		return nil, nil
	}
	return &customer, nil
}

func (r *repo) FindByEmail(ctx context.Context, db *gorm.DB, subsidiaryID snowflake.ID, email string) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("lower(email) = ? AND subsidiary_id = ? AND is_inactive = ?", strings.ToLower(email), subsidiaryID, false).
		Order("id").
		Limit(1).
		Find(&customer).Error
	if err != nil {
		return nil, err
	}
	if customer.ID == 0 {
		return nil, nil
	}
	return &customer, nil
}

func (r *repo) FindAddressByLine1(ctx context.Context, db *gorm.DB, customerID snowflake.ID, line1 string) (*domain.Address, error) {
	var address domain.Address
	err := db.WithContext(ctx).
		Model(&domain.Address{}).
		Where("customer_id = ? AND line1 = ?", customerID, line1).
		Limit(1).
		Find(&address).Error
	if err != nil {
		return nil, err
	}
	if address.ID == 0 {
		return nil, nil
	}
	return &address, nil
}

func (r *repo) InsertAddress(ctx context.Context, db *gorm.DB, address *domain.Address) error {
	return db.WithContext(ctx).Create(address).Error
}

func (r *repo) ListCards(ctx context.Context, db *gorm.DB, customerID snowflake.ID) ([]*domain.Card, error) {
	var cards []*domain.Card
	err := db.WithContext(ctx).
		Model(&domain.Card{}).
		Where("customer_id = ?", customerID).
		Order("id").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *repo) InsertCard(ctx context.Context, db *gorm.DB, card *domain.Card) error {
	return db.WithContext(ctx).Create(card).Error
}
