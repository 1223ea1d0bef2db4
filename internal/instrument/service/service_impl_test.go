package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/easysale/internal/card"
	"github.com/smallbiznis/easysale/internal/instrument/domain"
	"github.com/smallbiznis/easysale/internal/instrument/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	dbConn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(&domain.Instrument{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{DB: dbConn, Log: zap.NewNop(), GenID: node, Repo: repository.Provide()})
	return svc, dbConn
}

func testCard() card.Details {
	return card.Details{
		Method:     "1",
		NameOnCard: "Jane Doe",
		Number:     "5413330089099999",
		Expiry:     "02/2028",
		Street:     "2 Infinite Loop",
		Zip:        "95014",
	}
}

func TestEnsureCreatesInstrument(t *testing.T) {
	svc, dbConn := newTestService(t)

	id, err := svc.Ensure(context.Background(), domain.EnsureRequest{CustomerID: snowflake.ID(7), Card: testCard()})
	require.NoError(t, err)
	require.NotZero(t, id)

	var stored domain.Instrument
	require.NoError(t, dbConn.First(&stored, "id = ?", id).Error)
	require.Contains(t, stored.Mask, "9999")
	// The mask spells the expiry without the leading zero.
	require.Contains(t, stored.Mask, "2/2028")
	require.NotContains(t, stored.Mask, "5413330089099999")
}

func TestEnsureFindsExisting(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Ensure(ctx, domain.EnsureRequest{CustomerID: snowflake.ID(7), Card: testCard()})
	require.NoError(t, err)

	second, err := svc.Ensure(ctx, domain.EnsureRequest{CustomerID: snowflake.ID(7), Card: testCard()})
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureScopedByCustomer(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Ensure(ctx, domain.EnsureRequest{CustomerID: snowflake.ID(7), Card: testCard()})
	require.NoError(t, err)

	second, err := svc.Ensure(ctx, domain.EnsureRequest{CustomerID: snowflake.ID(8), Card: testCard()})
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestEnsureDifferentExpiryCreatesNew(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Ensure(ctx, domain.EnsureRequest{CustomerID: snowflake.ID(7), Card: testCard()})
	require.NoError(t, err)

	other := testCard()
	other.Expiry = "11/2029"
	second, err := svc.Ensure(ctx, domain.EnsureRequest{CustomerID: snowflake.ID(7), Card: other})
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestEnsureInvalidExpiryFails(t *testing.T) {
	svc, _ := newTestService(t)

	bad := testCard()
	bad.Expiry = "never"
	_, err := svc.Ensure(context.Background(), domain.EnsureRequest{CustomerID: snowflake.ID(7), Card: bad})
	require.ErrorIs(t, err, domain.ErrCreateFailed)
}
