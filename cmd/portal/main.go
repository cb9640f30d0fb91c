package main

import (
	"context"
	"log/slog"
	"os"

	"staffportal/config"
	"staffportal/internal/delivery"
	"staffportal/internal/delivery/api"
	"staffportal/internal/delivery/api/middleware"
	"staffportal/internal/delivery/api/router/handler"
	"staffportal/internal/domain/service"
	"staffportal/internal/errors"
	"staffportal/internal/infra/auth"
	logs "staffportal/internal/infra/log"
	"staffportal/internal/infra/notification"
	"staffportal/internal/infra/persistence/postgres"
	"staffportal/internal/infra/pubsub"
	"staffportal/internal/infra/qrcode"
	"staffportal/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewNotificationRepository,
			postgres.NewDeviceRepository,
			postgres.NewAssignmentRepository,
			postgres.NewAuditRepository,
			postgres.NewProfileRepository,
			postgres.NewAssetIssueRepository,
			postgres.NewFeedbackRepository,
			postgres.NewDocumentationRepository,
			postgres.NewPushRegistrationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newPushService,
			newLabelService,
		),
	)
}

// newPushService creates the Firebase push service, or a no-op one when push is disabled
func newPushService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushService, error) {
	if cfg.Firebase == nil || !cfg.Firebase.Enabled {
		logger.Info("Push notifications disabled")

		return notification.NewNoopService(logger), nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

// newLabelService creates the device label service with dependency injection
func newLabelService(cfg *config.Config) service.LabelService {
	if cfg.Label == nil {
		// Use default values if not configured
		return qrcode.NewLabelService(256, "medium", "")
	}

	return qrcode.NewLabelService(cfg.Label.Size, cfg.Label.ErrorCorrectionLevel, cfg.Label.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
			impl.NewDeviceService,
			impl.NewAuditService,
			impl.NewProfileService,
			impl.NewAssetIssueService,
			impl.NewFeedbackService,
			impl.NewDocumentationService,
			impl.NewPushRegistrationService,
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
			handler.NewNotificationHandler,
			handler.NewStreamHandler,
			handler.NewDeviceHandler,
			handler.NewPushRegistrationHandler,
			handler.NewAdminHandler,
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
				os.Exit(1)
			}
		}()
	}
}
