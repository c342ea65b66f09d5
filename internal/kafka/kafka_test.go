package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessages_FansOutToTopics(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	msgs := buildMessages([]string{"order-events", "", "notifications"}, "42", []byte(`{}`), at)

	require.Len(t, msgs, 2)
	assert.Equal(t, "order-events", msgs[0].Topic)
	assert.Equal(t, "notifications", msgs[1].Topic)
	for _, m := range msgs {
		assert.Equal(t, []byte("42"), m.Key)
		assert.Equal(t, at, m.Time)
	}
}

func TestPublishEvent_NoTopics(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"})
	defer p.Close()

	err := p.PublishEvent(context.Background(), "1", OrderEvent{Type: EventOrderCreated})
	assert.EqualError(t, err, "no topics configured")
}

func TestNotificationHandler(t *testing.T) {
	payload, err := json.Marshal(OrderEvent{ID: "e1", Type: EventOrderCreated, OrderID: 3, UserID: 9, Seats: []string{"1A"}})
	require.NoError(t, err)

	var got Notification
	h := NotificationHandler(func(_ context.Context, n Notification) error {
		got = n
		return nil
	})

	require.NoError(t, h(context.Background(), kafka.Message{Value: payload}))
	assert.Equal(t, EventOrderCreated, got.Type)
	assert.Equal(t, int64(3), got.OrderID)
	assert.Equal(t, int64(9), got.UserID)
	assert.Equal(t, []string{"1A"}, got.Seats)
}

func TestNotificationHandler_SkipsMalformed(t *testing.T) {
	called := false
	h := NotificationHandler(func(context.Context, Notification) error {
		called = true
		return nil
	})

	assert.NoError(t, h(context.Background(), kafka.Message{Value: []byte("not json")}))
	assert.False(t, called)
}

func TestNotificationHandler_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	h := NotificationHandler(func(context.Context, Notification) error { return boom })

	assert.ErrorIs(t, h(context.Background(), kafka.Message{Value: []byte(`{"type":"payment_paid"}`)}), boom)
}

func TestNewEventID(t *testing.T) {
	a, b := NewEventID(), NewEventID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestOrderKey(t *testing.T) {
	assert.Equal(t, "order-15", OrderKey(15))
}
