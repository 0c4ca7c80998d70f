package amqp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/echuwok12/SplitPayment/internal/events"
)

type fakeChannel struct {
	declared   []string
	declareErr error
	publishErr error
	closeErr   error
	published  []published
	closed     bool
}

type published struct {
	exchange string
	key      string
	msg      amqp091.Publishing
	deadline bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error {
	if f.declareErr != nil {
		return f.declareErr
	}
	f.declared = append(f.declared, name+"/"+kind)
	return nil
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	_, hasDeadline := ctx.Deadline()
	f.published = append(f.published, published{exchange: exchange, key: key, msg: msg, deadline: hasDeadline})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return f.closeErr
}

func sampleEvent() events.ExpenseCreated {
	return events.ExpenseCreated{
		ExpenseID:  "exp-1",
		FolderID:   "folder-1",
		PaidBy:     "member-1",
		Amount:     "10.00",
		SplitType:  "equal",
		ShareCount: 3,
		CreatedAt:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_PublishExpenseCreated(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newPublisher(ch, "splitpayment.events", "expense.created")
	if err != nil {
		t.Fatalf("newPublisher failed: %v", err)
	}
	fixed := time.Date(2024, 3, 1, 12, 0, 5, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	if len(ch.declared) != 1 || ch.declared[0] != "splitpayment.events/topic" {
		t.Errorf("declared exchanges = %v", ch.declared)
	}

	if err := p.PublishExpenseCreated(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("PublishExpenseCreated failed: %v", err)
	}
	if len(ch.published) != 1 {
		t.Fatalf("expected 1 published message, got %d", len(ch.published))
	}

	got := ch.published[0]
	if got.exchange != "splitpayment.events" || got.key != "expense.created" {
		t.Errorf("published to %s/%s", got.exchange, got.key)
	}
	if !got.deadline {
		t.Error("publish context has no deadline")
	}
	if got.msg.ContentType != "application/json" || got.msg.DeliveryMode != amqp091.Persistent {
		t.Errorf("unexpected publishing properties: %+v", got.msg)
	}
	if got.msg.MessageId != "exp-1" || !got.msg.Timestamp.Equal(fixed) {
		t.Errorf("messageId = %q, timestamp = %v", got.msg.MessageId, got.msg.Timestamp)
	}

	msg, err := ExpenseCreatedMessageFromJSON(got.msg.Body)
	if err != nil {
		t.Fatalf("decode body: %v", err)
	}
	want := sampleEvent()
	if msg.Event.ExpenseID != want.ExpenseID || msg.Event.Amount != want.Amount || msg.Event.ShareCount != want.ShareCount {
		t.Errorf("event = %+v, want %+v", msg.Event, want)
	}
	if !msg.Event.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("createdAt = %v, want %v", msg.Event.CreatedAt, want.CreatedAt)
	}
}

func TestPublisher_Errors(t *testing.T) {
	t.Run("declare", func(t *testing.T) {
		_, err := newPublisher(&fakeChannel{declareErr: errors.New("access refused")}, "x", "k")
		if err == nil || !strings.Contains(err.Error(), "declare exchange") {
			t.Errorf("expected declare error, got %v", err)
		}
	})

	t.Run("publish", func(t *testing.T) {
		ch := &fakeChannel{}
		p, err := newPublisher(ch, "x", "k")
		if err != nil {
			t.Fatalf("newPublisher failed: %v", err)
		}
		ch.publishErr = amqp091.ErrClosed
		err = p.PublishExpenseCreated(context.Background(), sampleEvent())
		if !errors.Is(err, amqp091.ErrClosed) {
			t.Errorf("expected ErrClosed, got %v", err)
		}
	})
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newPublisher(ch, "x", "k")
	if err != nil {
		t.Fatalf("newPublisher failed: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !ch.closed {
		t.Error("channel was not closed")
	}
}

func TestPublisher_CloseReturnsChannelError(t *testing.T) {
	ch := &fakeChannel{closeErr: amqp091.ErrClosed}
	p, err := newPublisher(ch, "x", "k")
	if err != nil {
		t.Fatalf("newPublisher failed: %v", err)
	}

	err = p.Close()
	if !errors.Is(err, amqp091.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if !strings.Contains(err.Error(), "close channel") {
		t.Errorf("error %q does not name the channel", err)
	}
}

func TestExpenseCreatedMessageFromJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"type":"expense.created","event":{"expense_id":"e"},"published_at":"2024-03-01T12:00:00Z"}`},
		{name: "wrong type", body: `{"type":"expense.deleted","event":{}}`, wantErr: true},
		{name: "malformed", body: `{"type":`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExpenseCreatedMessageFromJSON([]byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
