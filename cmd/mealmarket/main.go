package main

import (
	"context"
	"log/slog"
	"os"

	"mealmarket/config"
	"mealmarket/internal/delivery"
	"mealmarket/internal/delivery/api"
	apimiddleware "mealmarket/internal/delivery/api/middleware"
	"mealmarket/internal/delivery/api/router/handler"
	"mealmarket/internal/delivery/worker"
	workerhandler "mealmarket/internal/delivery/worker/handler"
	"mealmarket/internal/infra/auth"
	"mealmarket/internal/infra/housekeeping"
	logs "mealmarket/internal/infra/log"
	"mealmarket/internal/infra/notification"
	"mealmarket/internal/infra/persistence/postgres"
	"mealmarket/internal/infra/pubsub"
	"mealmarket/internal/infra/qrcode"
	"mealmarket/internal/infra/realtime"
	"mealmarket/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
			startHousekeeping,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
		realtime.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewSellerRepository,
			postgres.NewOfferRepository,
			postgres.NewRatingRepository,
			postgres.NewNotificationRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			notification.NewPushService,
			qrcode.NewQRCodeService,
			housekeeping.NewCleaner,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOfferService,
			impl.NewRatingService,
			impl.NewNotificationService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOfferHandler,
			handler.NewNotificationHandler,
			handler.NewRatingHandler,
			handler.NewDeviceHandler,
			handler.NewRealtimeHandler,
			handler.NewHealthHandler,
			workerhandler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				newWorkerDeliveries,
				fx.ResultTags(`group:"deliveries,flatten"`),
			),
		),
	)
}

// newWorkerDeliveries adds the push receiver only when the worker is enabled.
func newWorkerDeliveries(params worker.ServerParams) ([]delivery.Delivery, error) {
	if params.Cfg.Worker == nil || !params.Cfg.Worker.Enabled {
		return nil, nil
	}

	srv, err := worker.NewServer(params)
	if err != nil {
		return nil, err
	}

	return []delivery.Delivery{srv}, nil
}

// startHousekeeping forces construction of the cleaner, which registers its own lifecycle hooks.
func startHousekeeping(*housekeeping.Cleaner) {}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
