package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/easysale/internal/catalog"
	catalogdomain "github.com/smallbiznis/easysale/internal/catalog/domain"
	"github.com/smallbiznis/easysale/internal/checkout"
	"github.com/smallbiznis/easysale/internal/config"
	"github.com/smallbiznis/easysale/internal/customer"
	"github.com/smallbiznis/easysale/internal/instrument"
	"github.com/smallbiznis/easysale/internal/observability"
	obsmiddleware "github.com/smallbiznis/easysale/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/easysale/internal/observability/metrics"
	obstracing "github.com/smallbiznis/easysale/internal/observability/tracing"
	"github.com/smallbiznis/easysale/internal/order"
	"github.com/smallbiznis/easysale/internal/payment"
	paymentdomain "github.com/smallbiznis/easysale/internal/payment/domain"
	"github.com/smallbiznis/easysale/internal/providers/email"
	"github.com/smallbiznis/easysale/internal/settings"
	settingsdomain "github.com/smallbiznis/easysale/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	settings.Module,
	catalog.Module,
	customer.Module,
	instrument.Module,
	order.Module,
	payment.Module,
	email.Module,
	checkout.Module,
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Log:   log.Named("http"),
		Debug: obsCfg.Debug(),
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger, obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(log, obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	log         *zap.Logger
	settingsSvc settingsdomain.Service
	catalogSvc  catalogdomain.Service
	paymentSvc  paymentdomain.Service
	checkoutSvc *checkout.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	Log         *zap.Logger
	SettingsSvc settingsdomain.Service
	CatalogSvc  catalogdomain.Service
	PaymentSvc  paymentdomain.Service
	CheckoutSvc *checkout.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		log:         p.Log.Named("server"),
		settingsSvc: p.SettingsSvc,
		catalogSvc:  p.CatalogSvc,
		paymentSvc:  p.PaymentSvc,
		checkoutSvc: p.CheckoutSvc,
	}

	svc.registerPublicRoutes()
	svc.registerAdminRoutes()

	return svc
}

func (s *Server) registerPublicRoutes() {
	s.engine.GET("/", s.GetCheckoutForm)
	s.engine.POST("/", s.PostCheckout)
}

func (s *Server) registerAdminRoutes() {
	v1 := s.engine.Group("/v1")
	v1.GET("/settings", s.ListSettings)
	v1.POST("/settings", s.CreateSettings)
	v1.GET("/settings/:id", s.GetSettings)
	v1.PUT("/settings/:id", s.UpdateSettings)
	v1.GET("/catalogs/:id/rows", s.GetCatalogRows)
	v1.POST("/payment-events", s.CreatePaymentEvent)
}
