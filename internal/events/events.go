// Package events defines the domain events emitted after state changes are
// committed, and the publisher interface that delivers them.
package events

import (
	"context"
	"log/slog"
	"time"
)

// ExpenseCreated is emitted once an expense and its shares are committed.
type ExpenseCreated struct {
	ExpenseID  string    `json:"expense_id"`
	FolderID   string    `json:"folder_id"`
	PaidBy     string    `json:"paid_by"`
	Amount     string    `json:"amount"`
	SplitType  string    `json:"split_type"`
	ShareCount int       `json:"share_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// Publisher delivers domain events to interested consumers.
// A publish error never affects the state change that produced the event.
type Publisher interface {
	PublishExpenseCreated(ctx context.Context, event ExpenseCreated) error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

// PublishExpenseCreated implements Publisher.
func (NopPublisher) PublishExpenseCreated(ctx context.Context, event ExpenseCreated) error {
	slog.DebugContext(ctx, "Event publishing disabled, dropping event",
		"event", "expense_created",
		"expense_id", event.ExpenseID,
	)
	return nil
}
