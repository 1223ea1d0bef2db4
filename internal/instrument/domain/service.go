package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/easysale/internal/card"
)

type EnsureRequest struct {
	CustomerID snowflake.ID
	Card       card.Details
}

type Service interface {
	// Ensure returns the id of a stored instrument matching the submitted
	// card by last four digits and expiry, creating one when absent.
	// Creation failures are fatal: checkout cannot proceed without a usable
	// payment method reference in tokenized mode.
	Ensure(ctx context.Context, req EnsureRequest) (snowflake.ID, error)
}

var ErrCreateFailed = errors.New("payment_instrument_create_failed")
