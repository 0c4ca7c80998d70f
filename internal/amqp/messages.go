package amqp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/echuwok12/SplitPayment/internal/events"
)

// MessageTypeExpenseCreated is the AMQP type property of expense events.
const MessageTypeExpenseCreated = "expense.created"

// ExpenseCreatedMessage is the body published for an events.ExpenseCreated.
type ExpenseCreatedMessage struct {
	Type        string                `json:"type"`
	Event       events.ExpenseCreated `json:"event"`
	PublishedAt time.Time             `json:"published_at"`
}

func NewExpenseCreatedMessage(event events.ExpenseCreated, now time.Time) *ExpenseCreatedMessage {
	return &ExpenseCreatedMessage{
		Type:        MessageTypeExpenseCreated,
		Event:       event,
		PublishedAt: now.UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ExpenseCreatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseCreatedMessageFromJSON decodes a message body and checks its type.
func ExpenseCreatedMessageFromJSON(data []byte) (*ExpenseCreatedMessage, error) {
	var msg ExpenseCreatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.Type != MessageTypeExpenseCreated {
		return nil, fmt.Errorf("unexpected message type %q", msg.Type)
	}
	return &msg, nil
}
