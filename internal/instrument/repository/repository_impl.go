package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/easysale/internal/instrument/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, instrument *domain.Instrument) error {
	return db.WithContext(ctx).Create(instrument).Error
}

func (r *repo) FindByMask(ctx context.Context, db *gorm.DB, customerID snowflake.ID, lastFour, searchExpiry string) (*domain.Instrument, error) {
	var instrument domain.Instrument
	err := db.WithContext(ctx).
		Model(&domain.Instrument{}).
		Where("customer_id = ? AND mask LIKE ? AND mask LIKE ?", customerID, "%"+lastFour+"%", "%"+searchExpiry+"%").
		Order("id").
		Limit(1).
		Find(&instrument).Error
	if err != nil {
		return nil, err
	}
	if instrument.ID == 0 {
		return nil, nil
	}
	return &instrument, nil
}
