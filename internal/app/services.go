package app

import (
	"context"
	"fmt"

	"sien_official/internal/adapter/persistence/repository"
	"sien_official/internal/config"
	"sien_official/internal/infrastructure/database"
	"sien_official/internal/infrastructure/mailer"
	"sien_official/internal/infrastructure/metrics"
	"sien_official/internal/infrastructure/payments"
	"sien_official/internal/usecase"
	"sien_official/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Services is the wired object graph shared by the API server and sienctl.
type Services struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *metrics.Metrics

	Store    interfaces.IRecordStore
	Orders   usecase.IOrderUseCase
	Site     usecase.ISiteContentUseCase
	Alerts   usecase.IDeadlineAlertUseCase
	SiteRepo interfaces.ISiteContentRepository
}

// Build connects the record store and assembles the use cases on top of it.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Services, error) {
	store, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return BuildWithStore(cfg, store, logger), nil
}

// BuildWithStore assembles the use cases over an already opened store.
func BuildWithStore(cfg *config.Config, store interfaces.IRecordStore, logger *zap.Logger) *Services {
	m := metrics.New()

	notifier := m.InstrumentNotifier(mailer.NewSMTPNotifier(cfg.Mail, logger))
	if !cfg.Mail.Enabled() {
		logger.Warn("EMAIL_USER/EMAIL_PASS not set, order mails are disabled")
	}

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(cfg.Payments, logger)
	if err != nil {
		logger.Info("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		gateway = mp
	}

	orderRepo := repository.NewOrderKVRepository(store)
	siteRepo := repository.NewSiteContentKVRepository(store)

	return &Services{
		Config:   cfg,
		Logger:   logger,
		Metrics:  m,
		Store:    store,
		Orders:   usecase.NewOrderUseCase(orderRepo, notifier, gateway, logger),
		Site:     usecase.NewSiteContentUseCase(siteRepo),
		Alerts:   usecase.NewDeadlineAlertUseCase(orderRepo, notifier, cfg.Alert.Location, logger),
		SiteRepo: siteRepo,
	}
}

// OpenStore returns the record store selected by STORE_DRIVER. Against a local
// DynamoDB endpoint the table is created on first start.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.IRecordStore, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logger.Warn("using in-memory record store, data is lost on restart")
		return repository.NewMemoryRecordStore(), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	store := repository.NewDynamoRecordStore(ddb, cfg.Store.Table)
	if cfg.AWS.DynamoDBEndpoint != "" {
		if err := store.EnsureTable(ctx); err != nil {
			return nil, fmt.Errorf("ensure table %s: %w", cfg.Store.Table, err)
		}
	}
	logger.Info("dynamodb record store ready", zap.String("table", cfg.Store.Table))
	return store, nil
}
