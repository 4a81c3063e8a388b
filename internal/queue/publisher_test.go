package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type sent struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	sent   []sent
	err    error
	closed bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sent{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testEvent() domain.ReservationEvent {
	return domain.NewReservationEvent(domain.ReservationHeld, &domain.Reservation{
		ID:       "r1",
		CartID:   "c1",
		UserID:   "u1",
		ItemID:   "i1",
		Date:     time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		Time:     domain.TimeOfDay(9 * 60),
		Quantity: 2,
	})
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, exchange: "reservations", logger: newTestLogger(t)}

	require.NoError(t, p.Publish(context.Background(), testEvent()))

	require.Len(t, ch.sent, 1)
	got := ch.sent[0]
	assert.Equal(t, "reservations", got.exchange)
	assert.Equal(t, "reservation.held", got.key)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.NotEmpty(t, got.msg.MessageId)

	var evt domain.ReservationEvent
	require.NoError(t, json.Unmarshal(got.msg.Body, &evt))
	assert.Equal(t, "r1", evt.ReservationID)
	assert.Equal(t, "2026-11-02", evt.Date)
	assert.Equal(t, "09:00", evt.Time)
}

func TestPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: amqp.ErrClosed}
	p := &Publisher{ch: ch, exchange: "reservations", logger: newTestLogger(t)}

	err := p.Publish(context.Background(), testEvent())
	assert.True(t, errors.Is(err, amqp.ErrClosed))
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, exchange: "reservations", logger: newTestLogger(t)}

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{Logger: newTestLogger(t)}.Publish(context.Background(), testEvent()))
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), testEvent()))
}
