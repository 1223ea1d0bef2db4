package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/easysale/internal/card"
)

// AddressInput carries the submitted address fields.
type AddressInput struct {
	Country string
	Line1   string
	Line2   string
	City    string
	State   string
	Zip     string
}

// MatchOrCreateRequest looks up a customer by email within a subsidiary and
// creates one when absent. On create the address is appended inline, and in
// legacy mode the card line too.
type MatchOrCreateRequest struct {
	SubsidiaryID snowflake.ID
	Email        string
	FirstName    string
	CompanyName  string
	Comments     string
	Address      AddressInput
	Card         *card.Details
	Mode         card.Mode
}

type Service interface {
	// MatchOrCreate returns the matching customer, or creates one. The bool
	// reports whether a new record was created. When the lookup could match
	// several customers only the first is used; that is accepted behavior.
	MatchOrCreate(ctx context.Context, req MatchOrCreateRequest) (Customer, bool, error)
	// EnsureAddress appends the submitted address unless a row with the same
	// first line already exists.
	EnsureAddress(ctx context.Context, customerID snowflake.ID, addr AddressInput) error
	// EnsureLegacyCard appends a card line unless one matches on last four
	// digits and expiry.
	EnsureLegacyCard(ctx context.Context, customerID snowflake.ID, details card.Details) error
	GetByID(ctx context.Context, id snowflake.ID) (Customer, error)
}

var (
	ErrMissingEmail = errors.New("missing_email")
	ErrNotFound     = errors.New("not_found")
)
