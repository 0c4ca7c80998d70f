// Package ledger implements the folder and expense operations of SplitPayment
// on top of a storage.Store.
//
// Every balance is recomputed from committed expenses and shares on each read;
// nothing derived is ever written back. The requesting user is always an
// explicit parameter so callers decide how identity is established.
package ledger

import (
	"strings"
	"unicode/utf8"

	"github.com/echuwok12/SplitPayment/internal/apperr"
	"github.com/echuwok12/SplitPayment/internal/events"
	"github.com/echuwok12/SplitPayment/internal/metrics"
	"github.com/echuwok12/SplitPayment/internal/storage"
)

// MaxNameLength bounds folder and member names, counted in characters.
const MaxNameLength = 100

// Ledger runs folder, member and expense operations.
type Ledger struct {
	store     storage.Store
	publisher events.Publisher
	metrics   *metrics.Metrics
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithPublisher sets the publisher that receives ExpenseCreated events.
func WithPublisher(p events.Publisher) Option {
	return func(l *Ledger) {
		if p != nil {
			l.publisher = p
		}
	}
}

// WithMetrics records committed expenses on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Ledger) {
		l.metrics = m
	}
}

// New creates a Ledger backed by store. Events are dropped unless a
// publisher is supplied.
func New(store storage.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store:     store,
		publisher: events.NopPublisher{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// validateName trims and checks a folder or member name.
func validateName(kind, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.Validationf("%s name is required", kind)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", apperr.Validationf("%s name must be at most %d characters", kind, MaxNameLength)
	}
	return name, nil
}

func requireID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperr.Validationf("%s is required", field)
	}
	return nil
}
