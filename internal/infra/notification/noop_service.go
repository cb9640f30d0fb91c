package notification

import (
	"context"
	"log/slog"

	"staffportal/internal/domain/service"
)

// noopService drops pushes when Firebase is disabled.
type noopService struct {
	logger *slog.Logger
}

// NewNoopService creates a push service that only logs.
func NewNoopService(logger *slog.Logger) service.PushService {
	return &noopService{logger: logger}
}

func (s *noopService) SendBatchNotification(ctx context.Context, tokens []string, title, _ string, _ map[string]string) (int, int, []string, error) {
	s.logger.DebugContext(ctx, "[NoopPush] Push delivery disabled, skipping",
		slog.String("title", title),
		slog.Int("token_count", len(tokens)),
	)

	return 0, 0, nil, nil
}
