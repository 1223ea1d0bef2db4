package migration

import (
	catalogdomain "github.com/smallbiznis/easysale/internal/catalog/domain"
	"github.com/smallbiznis/easysale/internal/config"
	customerdomain "github.com/smallbiznis/easysale/internal/customer/domain"
	instrumentdomain "github.com/smallbiznis/easysale/internal/instrument/domain"
	orderdomain "github.com/smallbiznis/easysale/internal/order/domain"
	paymentdomain "github.com/smallbiznis/easysale/internal/payment/domain"
	"github.com/smallbiznis/easysale/internal/seed"
	settingsdomain "github.com/smallbiznis/easysale/internal/settings/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// mysql and sqlite deployments rely on gorm's schema sync.
			if err := conn.AutoMigrate(
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
			); err != nil {
				return err
			}
		}

		return seed.EnsureDefaults(conn)
	}),
)
