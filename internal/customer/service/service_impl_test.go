package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/easysale/internal/card"
	"github.com/smallbiznis/easysale/internal/customer/domain"
	"github.com/smallbiznis/easysale/internal/customer/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	dbConn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(&domain.Customer{}, &domain.Address{}, &domain.Card{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{DB: dbConn, Log: zap.NewNop(), GenID: node, Repo: repository.Provide()})
	return svc, dbConn
}

func testRequest() domain.MatchOrCreateRequest {
	return domain.MatchOrCreateRequest{
		SubsidiaryID: snowflake.ID(10),
		Email:        "jane@example.com",
		FirstName:    "Jane",
		Address:      domain.AddressInput{Country: "United States", Line1: "2 Infinite Loop", City: "Cupertino", State: "CA", Zip: "95014"},
		Card: &card.Details{
			Method:     "1",
			NameOnCard: "Jane Doe",
			Number:     "5413330089099999",
			Expiry:     "02/2028",
		},
		Mode: card.ModeLegacy,
	}
}

func TestMatchOrCreateMissingEmail(t *testing.T) {
	svc, _ := newTestService(t)

	req := testRequest()
	req.Email = "  "
	_, _, err := svc.MatchOrCreate(context.Background(), req)
	require.True(t, errors.Is(err, domain.ErrMissingEmail))
}

func TestMatchOrCreateCreatesPerson(t *testing.T) {
	svc, dbConn := newTestService(t)

	cust, created, err := svc.MatchOrCreate(context.Background(), testRequest())
	require.NoError(t, err)
	require.True(t, created)
	require.True(t, cust.IsPerson)
	require.Equal(t, "Jane", cust.FirstName)

	var addresses []domain.Address
	require.NoError(t, dbConn.Where("customer_id = ?", cust.ID).Find(&addresses).Error)
	require.Len(t, addresses, 1)
	require.True(t, addresses[0].DefaultBilling)

	var cards []domain.Card
	require.NoError(t, dbConn.Where("customer_id = ?", cust.ID).Find(&cards).Error)
	require.Len(t, cards, 1)
	require.Equal(t, "************9999", cards[0].Number)
}

func TestMatchOrCreateCreatesCompany(t *testing.T) {
	svc, _ := newTestService(t)

	req := testRequest()
	req.CompanyName = "Acme Inc"
	cust, created, err := svc.MatchOrCreate(context.Background(), req)
	require.NoError(t, err)
	require.True(t, created)
	require.False(t, cust.IsPerson)
	require.Equal(t, "Acme Inc", cust.CompanyName)
	require.Empty(t, cust.FirstName)
}

func TestMatchOrCreateTokenizedSkipsCardLine(t *testing.T) {
	svc, dbConn := newTestService(t)

	req := testRequest()
	req.Mode = card.ModeTokenized
	cust, created, err := svc.MatchOrCreate(context.Background(), req)
	require.NoError(t, err)
	require.True(t, created)

	var count int64
	require.NoError(t, dbConn.Model(&domain.Card{}).Where("customer_id = ?", cust.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestMatchOrCreateIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, created, err := svc.MatchOrCreate(ctx, testRequest())
	require.NoError(t, err)
	require.True(t, created)

	req := testRequest()
	req.Email = "JANE@example.com" // case-insensitive match
	second, created, err := svc.MatchOrCreate(ctx, req)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, second.ID)
}

func TestMatchOrCreateScopedBySubsidiary(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, _, err := svc.MatchOrCreate(ctx, testRequest())
	require.NoError(t, err)

	req := testRequest()
	req.SubsidiaryID = snowflake.ID(11)
	second, created, err := svc.MatchOrCreate(ctx, req)
	require.NoError(t, err)
	require.True(t, created)
	require.NotEqual(t, first.ID, second.ID)
}

func TestEnsureAddressIdempotent(t *testing.T) {
	svc, dbConn := newTestService(t)
	ctx := context.Background()

	cust, _, err := svc.MatchOrCreate(ctx, testRequest())
	require.NoError(t, err)

	// Same first line: no new row.
	require.NoError(t, svc.EnsureAddress(ctx, cust.ID, domain.AddressInput{Line1: "2 Infinite Loop", City: "Elsewhere"}))
	var count int64
	require.NoError(t, dbConn.Model(&domain.Address{}).Where("customer_id = ?", cust.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)

	require.NoError(t, svc.EnsureAddress(ctx, cust.ID, domain.AddressInput{Line1: "5 Other Road"}))
	require.NoError(t, dbConn.Model(&domain.Address{}).Where("customer_id = ?", cust.ID).Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestEnsureLegacyCardIdempotent(t *testing.T) {
	svc, dbConn := newTestService(t)
	ctx := context.Background()

	cust, _, err := svc.MatchOrCreate(ctx, testRequest())
	require.NoError(t, err)

	// Same last four and expiry: no new line.
	require.NoError(t, svc.EnsureLegacyCard(ctx, cust.ID, *testRequest().Card))
	var count int64
	require.NoError(t, dbConn.Model(&domain.Card{}).Where("customer_id = ?", cust.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)

	other := *testRequest().Card
	other.Expiry = "03/2029"
	require.NoError(t, svc.EnsureLegacyCard(ctx, cust.ID, other))
	require.NoError(t, dbConn.Model(&domain.Card{}).Where("customer_id = ?", cust.ID).Count(&count).Error)
	require.EqualValues(t, 2, count)
}
