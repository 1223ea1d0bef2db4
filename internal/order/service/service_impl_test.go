package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/easysale/internal/card"
	"github.com/smallbiznis/easysale/internal/order/domain"
	"github.com/smallbiznis/easysale/internal/order/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	dbConn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(&domain.Transaction{}, &domain.Line{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{DB: dbConn, Log: zap.NewNop(), GenID: node, Repo: repository.Provide()})
	return svc, dbConn
}

func testCreateRequest() domain.CreateRequest {
	return domain.CreateRequest{
		Type:         domain.TranTypeCashSale,
		CustomerID:   snowflake.ID(7),
		SubsidiaryID: snowflake.ID(10),
		Currency:     "USD",
		Mode:         card.ModeLegacy,
		Card: &card.Details{
			Method:     "1",
			NameOnCard: "Jane Doe",
			Number:     "5413330089099999",
			Expiry:     "02/2028",
		},
		Items: []domain.ItemPrice{
			{ItemID: snowflake.ID(101), Price: decimal.RequireFromString("10.00")},
			{ItemID: snowflake.ID(102), Price: decimal.RequireFromString("24.50")},
			{ItemID: snowflake.ID(103), Price: decimal.RequireFromString("3.00")},
		},
		Selected:   map[snowflake.ID]bool{101: true, 102: true},
		Quantities: map[snowflake.ID]int{101: 2, 103: 4},
	}
}

func TestCreateFilterJoin(t *testing.T) {
	svc, dbConn := newTestService(t)

	// 101 is selected with quantity, 102 selected without quantity, 103 has
	// quantity but no selection. Only 101 becomes a line.
	result, err := svc.Create(context.Background(), testCreateRequest())
	require.NoError(t, err)
	require.True(t, result.Saved)
	require.Equal(t, "20.00", result.Total.StringFixed(2))

	var lines []domain.Line
	require.NoError(t, dbConn.Where("transaction_id = ?", result.TransactionID).Find(&lines).Error)
	require.Len(t, lines, 1)
	require.Equal(t, snowflake.ID(101), lines[0].ItemID)
	require.Equal(t, 2, lines[0].Quantity)
	require.Equal(t, "20.00", lines[0].Amount.StringFixed(2))
}

func TestCreateEmptySelectionZeroTotal(t *testing.T) {
	svc, _ := newTestService(t)

	req := testCreateRequest()
	req.Selected = nil
	req.Quantities = nil
	result, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.True(t, result.Saved)
	require.True(t, result.Total.IsZero())
}

func TestCreateTranNumberPrefix(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	result, err := svc.Create(ctx, testCreateRequest())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(result.TranNumber, "CS-"))

	req := testCreateRequest()
	req.Type = domain.TranTypeSalesOrder
	result, err = svc.Create(ctx, req)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(result.TranNumber, "SO-"))
}

func TestCreateInvalidType(t *testing.T) {
	svc, _ := newTestService(t)

	req := testCreateRequest()
	req.Type = "invoice"
	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrInvalidTranType)
}

func TestCreateLegacyCardFields(t *testing.T) {
	svc, dbConn := newTestService(t)

	result, err := svc.Create(context.Background(), testCreateRequest())
	require.NoError(t, err)

	var txn domain.Transaction
	require.NoError(t, dbConn.First(&txn, "id = ?", result.TransactionID).Error)
	require.Equal(t, "************9999", txn.CardNumber)
	require.True(t, txn.ChargeCard)
	require.True(t, txn.GetAuth)
	require.Nil(t, txn.InstrumentID)
}

func TestCreateTokenizedFields(t *testing.T) {
	svc, dbConn := newTestService(t)

	req := testCreateRequest()
	req.Mode = card.ModeTokenized
	req.InstrumentID = snowflake.ID(77)
	req.ProcessorProfileID = "profile-1"
	result, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	var txn domain.Transaction
	require.NoError(t, dbConn.First(&txn, "id = ?", result.TransactionID).Error)
	require.NotNil(t, txn.InstrumentID)
	require.Equal(t, snowflake.ID(77), *txn.InstrumentID)
	require.Equal(t, domain.HandlingProcess, txn.HandlingMode)
	require.Equal(t, "profile-1", txn.ProcessorProfileID)
	require.Empty(t, txn.CardNumber)
	require.False(t, txn.ChargeCard)
}

func TestCreateUndepositedFundsFollowUp(t *testing.T) {
	svc, dbConn := newTestService(t)

	req := testCreateRequest()
	req.AccountName = "1000 Undeposited Funds"
	result, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	var txn domain.Transaction
	require.NoError(t, dbConn.First(&txn, "id = ?", result.TransactionID).Error)
	require.True(t, txn.UndepFunds)
}

func TestCreateOtherAccountSkipsUndepFunds(t *testing.T) {
	svc, dbConn := newTestService(t)

	req := testCreateRequest()
	req.AccountName = "1100 Checking"
	result, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	var txn domain.Transaction
	require.NoError(t, dbConn.First(&txn, "id = ?", result.TransactionID).Error)
	require.False(t, txn.UndepFunds)
}

func TestCreateSalesOrderNeverUndepFunds(t *testing.T) {
	svc, dbConn := newTestService(t)

	req := testCreateRequest()
	req.Type = domain.TranTypeSalesOrder
	req.AccountName = "1000 Undeposited Funds"
	result, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	var txn domain.Transaction
	require.NoError(t, dbConn.First(&txn, "id = ?", result.TransactionID).Error)
	require.False(t, txn.UndepFunds)
}

func TestDeleteRemovesLines(t *testing.T) {
	svc, dbConn := newTestService(t)
	ctx := context.Background()

	result, err := svc.Create(ctx, testCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, result.TransactionID))

	var count int64
	require.NoError(t, dbConn.Model(&domain.Transaction{}).Where("id = ?", result.TransactionID).Count(&count).Error)
	require.Zero(t, count)
	require.NoError(t, dbConn.Model(&domain.Line{}).Where("transaction_id = ?", result.TransactionID).Count(&count).Error)
	require.Zero(t, count)
}

func TestLookup(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	result, err := svc.Create(ctx, testCreateRequest())
	require.NoError(t, err)

	lookup, err := svc.Lookup(ctx, result.TransactionID)
	require.NoError(t, err)
	require.Equal(t, result.TranNumber, lookup.TranNumber)
	require.Equal(t, "20.00", lookup.Total.StringFixed(2))
	require.Equal(t, "USD", lookup.Currency)

	_, err = svc.Lookup(ctx, snowflake.ID(123456))
	require.True(t, errors.Is(err, domain.ErrNotFound))
}
