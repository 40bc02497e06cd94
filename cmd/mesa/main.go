package main

import (
	"context"
	"log/slog"
	"os"

	"mesa/config"
	"mesa/internal/delivery"
	"mesa/internal/delivery/http"
	"mesa/internal/delivery/http/middleware"
	"mesa/internal/delivery/http/router/handler"
	"mesa/internal/delivery/worker"
	"mesa/internal/domain/repository"
	"mesa/internal/domain/service"
	"mesa/internal/infra/auth"
	"mesa/internal/infra/idempotency"
	logs "mesa/internal/infra/log"
	"mesa/internal/infra/persistence/postgres"
	"mesa/internal/infra/pubsub"
	"mesa/internal/infra/qrcode"
	"mesa/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRestaurantRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewAuditLogRepository,
			postgres.NewTransactionManager,
			newIdempotencyStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newIdempotencyStore creates the idempotency response cache.
// Without Redis configured it falls back to the in-process store.
func newIdempotencyStore(params idempotency.Params) (repository.IdempotencyStore, error) {
	if params.Config.Redis == nil {
		params.Logger.Warn("Redis not configured, using in-memory idempotency store")

		return idempotency.NewMemoryStore(), nil
	}

	return idempotency.NewRedisStore(params)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuditRecorder,
			impl.NewRestaurantService,
			impl.NewSubscriptionService,
			impl.NewProductService,
			impl.NewOrderService,
			impl.NewExpirationSweep,
			impl.NewAuditService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewIdempotencyMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRestaurantHandler,
			handler.NewProductHandler,
			handler.NewSubscriptionHandler,
			handler.NewOrderHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewSweepScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
