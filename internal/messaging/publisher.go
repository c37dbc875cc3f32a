package messaging

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/logger"
)

// Publisher defines the interface for publishing lifecycle events to a message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// Publish publishes a lifecycle event
	Publish(ctx context.Context, event domain.LifecycleEvent) error
	// Close closes the connection
	Close()
}

// NewEvent builds a lifecycle event with a fresh ULID
func NewEvent(now time.Time, eventType domain.LifecycleEventType, propertyID, tokenID, saleID string, payload map[string]interface{}) domain.LifecycleEvent {
	return domain.LifecycleEvent{
		ID:         ulid.MustNewDefault(now).String(),
		Type:       eventType,
		PropertyID: propertyID,
		TokenID:    tokenID,
		SaleID:     saleID,
		Payload:    payload,
		OccurredAt: now.UTC(),
	}
}

// Emit publishes event and logs a failure instead of returning it
func Emit(ctx context.Context, p Publisher, event domain.LifecycleEvent) {
	if p == nil {
		return
	}
	if err := p.Publish(context.WithoutCancel(ctx), event); err != nil {
		logger.WarnCtx(ctx, "failed to publish lifecycle event",
			zap.String("eventID", event.ID),
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, event domain.LifecycleEvent) error {
	logger.DebugCtx(ctx, "Lifecycle event dropped, no broker configured",
		zap.String("type", string(event.Type)),
		zap.String("eventID", event.ID))
	return nil
}

func (noopPublisher) Close() {}
