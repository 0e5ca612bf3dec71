package events

import (
	"context"
	"errors"
	"testing"

	"github.com/catalinarubies/field-booking/booking"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	sent   []published
	err    error
	closed bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestBookingCreated(t *testing.T) {

	t.Run("publishes a create event", func(t *testing.T) {
		ch := &fakeChannel{}
		p := &Publisher{ch: ch, exchange: Exchange}

		err := p.BookingCreated(context.Background(), booking.Record{ID: "c-1"})

		require.NoError(t, err)
		require.Len(t, ch.sent, 1)
		assert.Equal(t, "fields_events", ch.sent[0].exchange)
		assert.Equal(t, "fields.booking", ch.sent[0].key)
		assert.Equal(t, "application/json", ch.sent[0].msg.ContentType)
		assert.JSONEq(t, `{"operation":"create","entity_id":"c-1","entity_type":"booking"}`, string(ch.sent[0].msg.Body))
	})

	t.Run("broker error is returned", func(t *testing.T) {
		ch := &fakeChannel{err: errors.New("channel closed")}
		p := &Publisher{ch: ch, exchange: Exchange}

		err := p.BookingCreated(context.Background(), booking.Record{ID: "c-1"})

		require.Error(t, err)
		assert.ErrorIs(t, err, ch.err)
	})

	t.Run("close", func(t *testing.T) {
		ch := &fakeChannel{}
		p := &Publisher{ch: ch, exchange: Exchange}

		require.NoError(t, p.Close())
		assert.True(t, ch.closed)
	})
}

func TestFieldChanged(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, exchange: Exchange}

	for _, op := range []string{booking.FieldCreated, booking.FieldUpdated, booking.FieldDeleted} {
		require.NoError(t, p.FieldChanged(context.Background(), op, "f-42"))
	}

	require.Len(t, ch.sent, 3)
	assert.Equal(t, "fields.field", ch.sent[0].key)
	assert.JSONEq(t, `{"operation":"create","entity_id":"f-42","entity_type":"field"}`, string(ch.sent[0].msg.Body))
	assert.JSONEq(t, `{"operation":"delete","entity_id":"f-42","entity_type":"field"}`, string(ch.sent[2].msg.Body))

	ch.err = errors.New("channel closed")
	assert.ErrorIs(t, p.FieldChanged(context.Background(), booking.FieldUpdated, "f-42"), ch.err)
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard{}.BookingCreated(context.Background(), booking.Record{ID: "c-1"}))
	assert.NoError(t, Discard{}.FieldChanged(context.Background(), booking.FieldCreated, "f-42"))
}
