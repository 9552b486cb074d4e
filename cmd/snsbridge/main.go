package main

import (
	"context"
	"log/slog"
	"os"

	"snsbridge/config"
	"snsbridge/internal/delivery"
	"snsbridge/internal/delivery/http"
	"snsbridge/internal/delivery/http/middleware"
	"snsbridge/internal/delivery/http/router/handler"
	"snsbridge/internal/domain/service"
	"snsbridge/internal/infra/broker"
	logs "snsbridge/internal/infra/log"
	"snsbridge/internal/infra/persistence/postgres"
	"snsbridge/internal/infra/pubsub"
	"snsbridge/internal/usecase/impl"

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
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
			postgres.NewRegistrationRepository,
			postgres.NewUnreadCounter,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPushBroker,
			pubsub.NewEventPublisher,
		),
	)
}

// newPushBroker creates the SNS broker with dependency injection
func newPushBroker(ctx context.Context, cfg *config.Config) (service.PushBroker, error) {
	return broker.New(ctx, cfg.SNS)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegistrationService,
			impl.NewEventBridgeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewInternalKeyMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRegistrationHandler,
			handler.NewNotificationHandler,
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
		),
	)
}

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
