package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gatepass/config"
	"gatepass/internal/delivery"
	"gatepass/internal/delivery/http"
	"gatepass/internal/delivery/http/middleware"
	"gatepass/internal/delivery/http/router/handler"
	"gatepass/internal/domain/entity"
	"gatepass/internal/domain/repository"
	"gatepass/internal/domain/service"
	"gatepass/internal/infra/auth"
	"gatepass/internal/infra/cache"
	firestoreinfra "gatepass/internal/infra/firestore"
	logs "gatepass/internal/infra/log"
	"gatepass/internal/infra/messaging"
	"gatepass/internal/infra/notify"
	"gatepass/internal/infra/pubsub"
	"gatepass/internal/usecase"
	"gatepass/internal/usecase/impl"

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
			bootstrapClient,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firestoreinfra.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestoreinfra.NewNotificationRepository,
			firestoreinfra.NewUserRepository,
			newTokenCache,
		),
	)
}

// newTokenCache opens the device-local cache and ties it to the fx lifecycle
func newTokenCache(lc fx.Lifecycle, cfg *config.Config) (repository.TokenCache, error) {
	tokenCache, err := cache.NewSQLiteTokenCache(cfg.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open token cache: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tokenCache.Close()
		},
	})

	return tokenCache, nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newPushService,
			newTokenSource,
			notify.NewSlogNotifier,
			pubsub.NewEventPublisher,
		),
	)
}

// newPushService creates the FCM push service with dependency injection
func newPushService(ctx context.Context, cfg *config.Config) (service.PushService, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required")
	}

	svc, err := messaging.NewFCMService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create FCM service: %w", err)
	}

	return svc, nil
}

// newTokenSource creates the static token source for headless runs
func newTokenSource(cfg *config.Config) service.TokenSource {
	token := ""
	if cfg.Client != nil {
		token = cfg.Client.PushToken
	}

	return messaging.NewStaticTokenSource(token)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeepLinkStore,
			newIngestionListener,
			impl.NewLocalNotifier,
			impl.NewPushReconciler,
			newPreferenceService,
			impl.NewBroadcastSender,
		),
	)
}

func newIngestionListener(notificationRepo repository.NotificationRepository, cfg *config.Config, logger *slog.Logger) usecase.IngestionUsecase {
	return impl.NewIngestionListener(notificationRepo, cfg.Notifications.WindowSize, logger)
}

func newPreferenceService(
	userRepo repository.UserRepository,
	pushSvc service.PushService,
	tokenSource service.TokenSource,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PreferenceUsecase {
	return impl.NewPreferenceService(userRepo, pushSvc, tokenSource, cfg.Notifications.Topic, logger)
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
			handler.NewBroadcastHandler,
			handler.NewPreferenceHandler,
			handler.NewDeviceHandler,
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
				os.Exit(1)
			}
		}()
	}
}

type bootstrapParams struct {
	fx.In
	fx.Lifecycle

	Ctx        context.Context
	Config     *config.Config
	Logger     *slog.Logger
	Reconciler usecase.ReconcilerUsecase
	Preference usecase.PreferenceUsecase
	Ingestion  usecase.IngestionUsecase
	Notifier   usecase.NotifierUsecase
	DeepLinks  usecase.DeepLinkStore
}

// bootstrapClient runs the app-start chain of the notification core:
// reconcile the push identity, sync the preference, and open the live
// listener feeding the local notifier. All of it off the start path.
func bootstrapClient(params bootstrapParams) {
	cfg := params.Config.Client
	if cfg == nil || cfg.Role == "" {
		params.Logger.Info("client bootstrap disabled, no role configured")

		return
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Ingestion.CancelAll()

			return nil
		},
	})

	go func() {
		if err := params.Reconciler.Reconcile(params.Ctx, cfg.UserID); err != nil {
			params.Logger.Warn("push identity reconciliation failed", slog.Any("error", err))
		}

		if cfg.UserID != "" {
			if _, err := params.Preference.Fetch(params.Ctx, cfg.UserID); err != nil {
				params.Logger.Warn("preference fetch failed", slog.Any("error", err))
			}
		}

		_, err := params.Ingestion.Start(params.Ctx, cfg.Role,
			func(record *entity.NotificationRecord) {
				if err := params.Notifier.ShowRecord(params.Ctx, record); err != nil {
					params.Logger.Warn("failed to show notification", slog.Any("error", err))
				}
			},
			func(err error) {
				params.Logger.Error("notification feed terminated", slog.Any("error", err))
			},
		)
		if err != nil {
			params.Logger.Error("failed to start ingestion listener", slog.Any("error", err))
		}
	}()
}
