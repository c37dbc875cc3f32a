package messaging_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/logger"
	"github.com/proptoken/proptoken-backend/internal/messaging"
	"github.com/proptoken/proptoken-backend/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestNewEvent(t *testing.T) {
	now := time.Date(2024, 5, 1, 14, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	event := messaging.NewEvent(now, domain.EventSaleCompleted, "P1", "0.0.500", "sale-1", map[string]interface{}{"quantity": 50})

	id, err := ulid.ParseStrict(event.ID)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(now), id.Time())
	assert.Equal(t, domain.EventSaleCompleted, event.Type)
	assert.Equal(t, "sale-1", event.SaleID)
	assert.Equal(t, time.UTC, event.OccurredAt.Location())
}

func TestEmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	event := messaging.NewEvent(time.Now(), domain.EventPropertyCreated, "P1", "", "", nil)

	pub := mocks.NewMockPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any(), event).Return(errors.New("nats: no responders available"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NotPanics(t, func() {
		messaging.Emit(ctx, pub, event)
		messaging.Emit(ctx, nil, event)
	})
}

func TestNoopPublisher(t *testing.T) {
	pub := messaging.NewNoopPublisher()
	assert.NoError(t, pub.Publish(context.Background(), domain.LifecycleEvent{Type: domain.EventSaleFailed}))
	pub.Close()
}
