package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "pix_server/docs"
	"pix_server/internal/adapter/cache"
	"pix_server/internal/adapter/http/handlers"
	"pix_server/internal/adapter/http/middleware"
	"pix_server/internal/adapter/persistence/repository"
	"pix_server/internal/config"
	"pix_server/internal/infrastructure/database"
	"pix_server/internal/infrastructure/messaging"
	"pix_server/internal/infrastructure/metrics"
	"pix_server/internal/infrastructure/payments"
	"pix_server/internal/infrastructure/tracking"
	"pix_server/internal/logging"
	"pix_server/internal/usecase"
	"pix_server/internal/usecase/interfaces"
	"pix_server/pkg"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	janitorInterval = 10 * time.Minute
	shutdownTimeout = 10 * time.Second
)

// Run builds the service from cfg and serves until SIGINT/SIGTERM.
func Run(cfg config.Config) error {
	logging.Init("pix-server", cfg.App.LogFile)
	log := logging.New("bootstrap")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, cleanup, err := Build(ctx, cfg, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info("[pix][bootstrap] listening", "port", cfg.App.Port, "gateway", cfg.Gateway.Provider, "mock", cfg.Gateway.Mock, "store", cfg.Store.Driver, "ledger", cfg.Ledger.Driver)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("[pix][bootstrap] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Build wires stores, vendor clients and use cases into a router. Memory
// janitors stop when ctx is done; cleanup closes external connections.
func Build(ctx context.Context, cfg config.Config, reg prometheus.Registerer) (*gin.Engine, func(), error) {
	log := logging.New("bootstrap")
	b := &builder{cfg: cfg, ctx: ctx}

	statusRepo, err := b.statusStore()
	if err != nil {
		b.close()
		return nil, nil, err
	}
	ledger, err := b.notificationLedger()
	if err != nil {
		b.close()
		return nil, nil, err
	}

	gateway, resolver := newGateway(cfg)
	msg := newMessagingClient(cfg)
	observer := metrics.NewPipelineObserver(reg)

	deps := usecase.WebhookDeps{Resolver: resolver, Messaging: msg, Observer: observer}
	if cfg.ConversionsEnabled() {
		if c, err := tracking.NewMetaConversionsClient(cfg.Meta.GraphURL, cfg.Meta.PixelID, cfg.Meta.AccessToken, cfg.App.VendorTimeout); err == nil {
			deps.Conversion = c
		}
	} else {
		log.Info("[pix][bootstrap] conversions api not configured")
	}
	if a, err := tracking.NewAutomationWebhookClient(cfg.Automation.WebhookURL, cfg.App.VendorTimeout); err == nil {
		deps.Automation = a
	} else {
		log.Info("[pix][bootstrap] automation webhook not configured")
	}

	orderUseCase := usecase.NewPixOrderUseCase(gateway, statusRepo, msg, observer)
	webhookUseCase := usecase.NewPaymentWebhookUseCase(statusRepo, ledger, deps)
	statusUseCase := usecase.NewPaymentStatusUseCase(statusRepo)

	router := newRouter()
	addPingRoutes(router)
	addPixRoutes(router,
		handlers.NewPixHandler(orderUseCase, statusUseCase),
		handlers.NewWebhookHandler(webhookUseCase),
	)
	return router, b.close, nil
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.Logging(logging.New("http")))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.From(c).Error("[pix][http] recovered from panic", "panic", fmt.Sprint(recovered))
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Erro interno", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}

type builder struct {
	cfg     config.Config
	ctx     context.Context
	ddb     *dynamodb.Client
	closers []func()
}

func (b *builder) dynamo() (*dynamodb.Client, error) {
	if b.ddb != nil {
		return b.ddb, nil
	}
	ddb, err := database.ConnectDynamoDB(b.ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb client: %w", err)
	}
	b.ddb = ddb
	return ddb, nil
}

func (b *builder) statusStore() (interfaces.IPaymentStatusRepository, error) {
	switch b.cfg.Store.Driver {
	case config.DriverDynamoDB:
		ddb, err := b.dynamo()
		if err != nil {
			return nil, err
		}
		return repository.NewPaymentStatusDynamoRepository(ddb, b.cfg.Store.Table, b.cfg.Store.TTL), nil
	default:
		repo := repository.NewPaymentStatusMemoryRepository(b.cfg.Store.TTL)
		repository.StartJanitor(b.ctx, "payment_status", janitorInterval, repo)
		return repo, nil
	}
}

func (b *builder) notificationLedger() (interfaces.INotificationLedger, error) {
	switch b.cfg.Ledger.Driver {
	case config.DriverRedis:
		rdb, err := database.ConnectRedis(b.ctx, b.cfg.Redis.Addr, b.cfg.Redis.Password)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() { _ = rdb.Close() })
		return cache.NewRedisNotificationLedger(rdb, b.cfg.Ledger.TTL), nil
	case config.DriverDynamoDB:
		ddb, err := b.dynamo()
		if err != nil {
			return nil, err
		}
		return repository.NewNotificationLedgerDynamo(ddb, b.cfg.Ledger.Table, b.cfg.Ledger.TTL), nil
	default:
		ledger := repository.NewNotificationLedgerMemory(b.cfg.Ledger.TTL)
		repository.StartJanitor(b.ctx, "notification_ledger", janitorInterval, ledger)
		return ledger, nil
	}
}

func (b *builder) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// newGateway picks the charge gateway. Mercado Pago webhooks are resolved
// whenever an access token is present, whatever the charge provider.
func newGateway(cfg config.Config) (interfaces.IPaymentGateway, interfaces.IPaymentStatusResolver) {
	log := logging.New("bootstrap")
	if cfg.Gateway.Mock {
		log.Warn("[pix][bootstrap] payment gateway mock enabled")
		m := payments.MockGateway{}
		return m, m
	}

	var (
		gateway  interfaces.IPaymentGateway
		resolver interfaces.IPaymentStatusResolver
	)
	if mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken); err == nil {
		resolver = mp
		if cfg.Gateway.Provider == config.GatewayMercadoPago {
			gateway = mp
		}
	} else if cfg.Gateway.Provider == config.GatewayMercadoPago {
		log.Error("[pix][bootstrap] mercado pago gateway not configured", "err", err)
	}

	if cfg.Gateway.Provider == config.GatewayBuckPay {
		bp, err := payments.NewBuckPayGateway(cfg.BuckPay.BaseURL, cfg.BuckPay.Token, cfg.BuckPay.OfferID, cfg.App.VendorTimeout)
		if err != nil {
			log.Error("[pix][bootstrap] buckpay gateway not configured", "err", err)
		} else {
			gateway = bp
		}
	}
	return gateway, resolver
}

func newMessagingClient(cfg config.Config) interfaces.IMessagingClient {
	if !cfg.MessagingEnabled() {
		logging.New("bootstrap").Info("[pix][bootstrap] whatsapp messaging not configured")
		return nil
	}
	c, err := messaging.NewZAPIClient(cfg.ZAPI.BaseURL, cfg.ZAPI.Instance, cfg.ZAPI.Token, cfg.ZAPI.ClientToken, cfg.App.VendorTimeout)
	if err != nil {
		return nil
	}
	return c
}
