package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/parokitomang/content-service/internal/config"
	"github.com/parokitomang/content-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to content events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventSliderCreated, n.handleContentCreated)
	n.dispatcher.Subscribe(events.EventMenuCreated, n.handleContentCreated)
}

func (n *NotificationService) handleContentCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ContentCreated",
		zap.String("type", string(event.Type)),
		zap.String("content_id", event.ContentID),
		zap.String("actor", event.Actor.Email))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("content_id", event.ContentID),
		zap.String("event_type", string(event.Type)))
}
