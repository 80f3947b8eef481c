package main

import (
	"context"
	"log/slog"
	"os"

	"petkeeper/config"
	"petkeeper/internal/delivery"
	"petkeeper/internal/delivery/api"
	"petkeeper/internal/delivery/api/middleware"
	"petkeeper/internal/delivery/api/router/handler"
	"petkeeper/internal/domain/constants"
	"petkeeper/internal/domain/service"
	"petkeeper/internal/infra/auth"
	"petkeeper/internal/infra/firebaseapp"
	logs "petkeeper/internal/infra/log"
	"petkeeper/internal/infra/metrics"
	"petkeeper/internal/infra/notification"
	"petkeeper/internal/infra/persistence"
	"petkeeper/internal/infra/pubsub"
	"petkeeper/internal/infra/qrcode"
	"petkeeper/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// Loaded up front: the store and auth providers decide which constructors exist.
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		persistence.Module(cfg),
		injectService(cfg),
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
		logs.New,
		context.Background,
		firebaseapp.New,
		firebaseapp.NewMessagingClient,
		metrics.NewRegistry,
		metrics.NewCollector,
	)
}

func injectService(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewFirebaseService,
			pubsub.NewEventPublisher,
			metrics.NewMetricsRecorder,
			qrcode.NewQRCodeService,
		),
		injectAuth(cfg),
	)
}

// injectAuth provides the TokenVerifier of the configured auth provider. The
// jwt provider also mints dev tokens for /test/token.
func injectAuth(cfg *config.Config) fx.Option {
	switch cfg.Auth.Provider {
	case constants.AuthProviderFirebase:
		return fx.Provide(
			firebaseapp.NewAuthClient,
			auth.NewFirebaseVerifier,
		)
	case constants.AuthProviderJWT:
		return fx.Provide(
			auth.NewJWTService,
			func(s *auth.JWTService) service.TokenVerifier { return s },
			func(s *auth.JWTService) handler.DevTokenIssuer { return s },
		)
	default:
		return fx.Error(errors.Errorf("unknown auth provider: %s", cfg.Auth.Provider))
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewMembershipService,
			impl.NewDispatchService,
			impl.NewNotificationService,
			impl.NewTokenHygieneService,
			impl.NewStatsService,
			impl.NewInviteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEventHandler,
			handler.NewStatsHandler,
			handler.NewTokenHandler,
			handler.NewInviteHandler,
			handler.NewTestHandler,
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
