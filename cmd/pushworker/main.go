package main

import (
	"context"
	"log/slog"
	"os"

	"snsbridge/config"
	"snsbridge/internal/delivery"
	"snsbridge/internal/delivery/worker"
	"snsbridge/internal/delivery/worker/handler"
	"snsbridge/internal/domain/repository"
	"snsbridge/internal/domain/service"
	"snsbridge/internal/infra/broker"
	logs "snsbridge/internal/infra/log"
	"snsbridge/internal/infra/persistence/postgres"
	"snsbridge/internal/usecase"
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
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPushBroker,
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
			newDispatchService,
		),
	)
}

// newDispatchService creates the dispatcher with the configured deep-link base URL
func newDispatchService(
	registrationRepo repository.RegistrationRepository,
	pushBroker service.PushBroker,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	return impl.NewDispatchService(registrationRepo, pushBroker, cfg.SNS.BaseURL, logger)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
