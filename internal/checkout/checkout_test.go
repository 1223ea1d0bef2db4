package checkout

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/easysale/internal/card"
	catalogdomain "github.com/smallbiznis/easysale/internal/catalog/domain"
	catalogrepo "github.com/smallbiznis/easysale/internal/catalog/repository"
	catalogservice "github.com/smallbiznis/easysale/internal/catalog/service"
	"github.com/smallbiznis/easysale/internal/config"
	customerdomain "github.com/smallbiznis/easysale/internal/customer/domain"
	customerrepo "github.com/smallbiznis/easysale/internal/customer/repository"
	customerservice "github.com/smallbiznis/easysale/internal/customer/service"
	instrumentdomain "github.com/smallbiznis/easysale/internal/instrument/domain"
	instrumentrepo "github.com/smallbiznis/easysale/internal/instrument/repository"
	instrumentservice "github.com/smallbiznis/easysale/internal/instrument/service"
	orderdomain "github.com/smallbiznis/easysale/internal/order/domain"
	orderrepo "github.com/smallbiznis/easysale/internal/order/repository"
	orderservice "github.com/smallbiznis/easysale/internal/order/service"
	paymentdomain "github.com/smallbiznis/easysale/internal/payment/domain"
	paymentrepo "github.com/smallbiznis/easysale/internal/payment/repository"
	paymentservice "github.com/smallbiznis/easysale/internal/payment/service"
	"github.com/smallbiznis/easysale/internal/providers/email"
	settingsdomain "github.com/smallbiznis/easysale/internal/settings/domain"
	settingsrepo "github.com/smallbiznis/easysale/internal/settings/repository"
	settingsservice "github.com/smallbiznis/easysale/internal/settings/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// acceptAllPayments stands in for a gateway that authorizes everything.
type acceptAllPayments struct{}

func (acceptAllPayments) CheckAuthorization(ctx context.Context, transactionID snowflake.ID) (paymentdomain.Outcome, error) {
	return paymentdomain.Outcome{Accepted: true, Reason: "Authorization Result: ACCEPT"}, nil
}

func (acceptAllPayments) Record(ctx context.Context, req paymentdomain.RecordRequest) (*paymentdomain.Event, error) {
	return nil, nil
}

type fixture struct {
	svc    *Service
	db     *gorm.DB
	itemID snowflake.ID
}

func newFixture(t *testing.T, cfg config.Config, tranType string, payments paymentdomain.Service) fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	dbConn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(
		&settingsdomain.Settings{},
		&catalogdomain.Catalog{},
		&catalogdomain.Item{},
		&customerdomain.Customer{},
		&customerdomain.Address{},
		&customerdomain.Card{},
		&instrumentdomain.Instrument{},
		&orderdomain.Transaction{},
		&orderdomain.Line{},
		&paymentdomain.Event{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	log := zap.NewNop()

	catalog := catalogdomain.Catalog{
		ID:      snowflake.ID(500),
		Name:    "Storefront",
		Columns: datatypes.JSON(`[{"field":"name","label":"Name","kind":"text"}]`),
	}
	require.NoError(t, dbConn.Create(&catalog).Error)
	item := catalogdomain.Item{
		ID:         snowflake.ID(501),
		CatalogID:  catalog.ID,
		Attributes: datatypes.JSONMap{"name": "Widget"},
		BasePrice:  decimal.RequireFromString("10.00"),
	}
	require.NoError(t, dbConn.Create(&item).Error)

	settingsSvc := settingsservice.New(settingsservice.Params{DB: dbConn, Log: log, GenID: node, Repo: settingsrepo.Provide()})
	_, err = settingsSvc.Create(context.Background(), settingsdomain.CreateSettingsRequest{
		SubsidiaryID:    snowflake.ID(10),
		IsDefault:       true,
		CompanyName:     "Acme Retail",
		CompanyLogoURL:  "https://cdn.example.com/logo.png",
		AccountName:     "1000 Undeposited Funds",
		CatalogID:       catalog.ID,
		PriceLevel:      1,
		TransactionType: tranType,
		Currency:        "USD",
	})
	require.NoError(t, err)

	if payments == nil {
		payments = paymentservice.New(paymentservice.Params{DB: dbConn, Log: log, GenID: node, Repo: paymentrepo.Provide()})
	}

	svc := New(Params{
		Cfg:         cfg,
		Log:         log,
		Settings:    settingsSvc,
		Catalog:     catalogservice.New(catalogservice.Params{DB: dbConn, Log: log, Repo: catalogrepo.Provide()}),
		Customers:   customerservice.New(customerservice.Params{DB: dbConn, Log: log, GenID: node, Repo: customerrepo.Provide()}),
		Instruments: instrumentservice.New(instrumentservice.Params{DB: dbConn, Log: log, GenID: node, Repo: instrumentrepo.Provide()}),
		Orders:      orderservice.New(orderservice.Params{DB: dbConn, Log: log, GenID: node, Repo: orderrepo.Provide()}),
		Payments:    payments,
		Email:       &email.NoOpProvider{},
	})
	return fixture{svc: svc, db: dbConn, itemID: item.ID}
}

func testSubmission(itemID snowflake.ID) Submission {
	return Submission{
		Email: "jane@example.com",
		Name:  "Jane",
		Address: customerdomain.AddressInput{
			Country: "United States",
			Line1:   "2 Infinite Loop",
			City:    "Cupertino",
			State:   "CA",
			Zip:     "95014",
		},
		Card: card.Details{
			Method:     "1",
			NameOnCard: "Jane Doe",
			Number:     "5413330089099999",
			Expiry:     "02/2028",
			CVC:        "123",
		},
		Selected:   map[snowflake.ID]bool{itemID: true},
		Quantities: map[snowflake.ID]int{itemID: 2},
	}
}

func TestSubmitMissingEmail(t *testing.T) {
	f := newFixture(t, config.Config{}, settingsdomain.TranTypeSalesOrder, nil)

	sub := testSubmission(f.itemID)
	sub.Email = "   "
	conf, err := f.svc.Submit(context.Background(), sub)
	require.NoError(t, err)
	require.Equal(t, KindCheckEmail, conf.Kind)

	var count int64
	require.NoError(t, f.db.Model(&customerdomain.Customer{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestSubmitSalesOrder(t *testing.T) {
	f := newFixture(t, config.Config{}, settingsdomain.TranTypeSalesOrder, nil)

	conf, err := f.svc.Submit(context.Background(), testSubmission(f.itemID))
	require.NoError(t, err)
	require.Equal(t, KindOrderAccepted, conf.Kind)
	require.Equal(t, "https://cdn.example.com/logo.png", conf.LogoURL)

	var cust customerdomain.Customer
	require.NoError(t, f.db.First(&cust, "email = ?", "jane@example.com").Error)

	var txn orderdomain.Transaction
	require.NoError(t, f.db.First(&txn, "customer_id = ?", cust.ID).Error)
	require.Equal(t, orderdomain.TranTypeSalesOrder, txn.Type)
	require.Equal(t, "20.00", txn.Total.StringFixed(2))
	require.False(t, txn.UndepFunds)
}

func TestSubmitCashSaleAccepted(t *testing.T) {
	f := newFixture(t, config.Config{}, settingsdomain.TranTypeCashSale, acceptAllPayments{})

	conf, err := f.svc.Submit(context.Background(), testSubmission(f.itemID))
	require.NoError(t, err)
	require.Equal(t, KindPaymentAccepted, conf.Kind)
	require.True(t, strings.HasPrefix(conf.TranNumber, "CS-"))
	require.Equal(t, "20.00", conf.Amount.StringFixed(2))
	require.Equal(t, "USD", conf.Currency)

	// Accepted cash sales are retained, and the one at hand used the
	// undeposited funds account.
	var txn orderdomain.Transaction
	require.NoError(t, f.db.First(&txn).Error)
	require.True(t, txn.UndepFunds)
}

func TestSubmitCashSaleRejectedRemovesTransaction(t *testing.T) {
	// Real payment service with no recorded events: no authorization means
	// the charge did not go through.
	f := newFixture(t, config.Config{}, settingsdomain.TranTypeCashSale, nil)

	conf, err := f.svc.Submit(context.Background(), testSubmission(f.itemID))
	require.NoError(t, err)
	require.Equal(t, KindPaymentFailed, conf.Kind)

	var count int64
	require.NoError(t, f.db.Model(&orderdomain.Transaction{}).Count(&count).Error)
	require.Zero(t, count)
	require.NoError(t, f.db.Model(&orderdomain.Line{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestSubmitCashSaleZeroTotalRetained(t *testing.T) {
	f := newFixture(t, config.Config{}, settingsdomain.TranTypeCashSale, nil)

	sub := testSubmission(f.itemID)
	sub.Selected = nil
	sub.Quantities = nil
	conf, err := f.svc.Submit(context.Background(), sub)
	require.NoError(t, err)
	require.Equal(t, KindPaymentAccepted, conf.Kind)
	require.True(t, conf.Amount.IsZero())

	var count int64
	require.NoError(t, f.db.Model(&orderdomain.Transaction{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSubmitTokenizedCreatesInstrument(t *testing.T) {
	f := newFixture(t, config.Config{PaymentInstruments: true}, settingsdomain.TranTypeCashSale, acceptAllPayments{})

	conf, err := f.svc.Submit(context.Background(), testSubmission(f.itemID))
	require.NoError(t, err)
	require.Equal(t, KindPaymentAccepted, conf.Kind)

	var instruments []instrumentdomain.Instrument
	require.NoError(t, f.db.Find(&instruments).Error)
	require.Len(t, instruments, 1)

	// Tokenized mode keeps no card-on-file lines.
	var count int64
	require.NoError(t, f.db.Model(&customerdomain.Card{}).Count(&count).Error)
	require.Zero(t, count)

	var txn orderdomain.Transaction
	require.NoError(t, f.db.First(&txn).Error)
	require.NotNil(t, txn.InstrumentID)
	require.Equal(t, instruments[0].ID, *txn.InstrumentID)
}

func TestSubmitRepeatMatchesExistingCustomer(t *testing.T) {
	f := newFixture(t, config.Config{}, settingsdomain.TranTypeSalesOrder, nil)
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, testSubmission(f.itemID))
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, testSubmission(f.itemID))
	require.NoError(t, err)

	var customers, transactions int64
	require.NoError(t, f.db.Model(&customerdomain.Customer{}).Count(&customers).Error)
	require.EqualValues(t, 1, customers)
	require.NoError(t, f.db.Model(&orderdomain.Transaction{}).Count(&transactions).Error)
	require.EqualValues(t, 2, transactions)
}
