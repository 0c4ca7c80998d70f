package apperr

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		validation   bool
		notFound     bool
		persistence  bool
		inconsistent bool
		wantMsg      string
	}{
		{
			name:       "validation",
			err:        Validationf("amount must be greater than zero, got %s", "-1"),
			validation: true,
			wantMsg:    "amount must be greater than zero, got -1",
		},
		{
			name:     "not found",
			err:      NotFoundf("folder not found: %s", "abc"),
			notFound: true,
			wantMsg:  "folder not found: abc",
		},
		{
			name:        "persistence",
			err:         Persistence("insert expense", errors.New("disk full")),
			persistence: true,
			wantMsg:     "failed to insert expense: disk full",
		},
		{
			name:         "inconsistent",
			err:          Inconsistentf("share %s owed by unknown member %s", "s1", "m9"),
			inconsistent: true,
			wantMsg:      "share s1 owed by unknown member m9",
		},
		{
			name:       "wrapped validation",
			err:        fmt.Errorf("create expense: %w", Validationf("bad")),
			validation: true,
			wantMsg:    "create expense: bad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidation(tt.err); got != tt.validation {
				t.Errorf("IsValidation = %v, want %v", got, tt.validation)
			}
			if got := IsNotFound(tt.err); got != tt.notFound {
				t.Errorf("IsNotFound = %v, want %v", got, tt.notFound)
			}
			if got := IsPersistence(tt.err); got != tt.persistence {
				t.Errorf("IsPersistence = %v, want %v", got, tt.persistence)
			}
			if got := IsInconsistent(tt.err); got != tt.inconsistent {
				t.Errorf("IsInconsistent = %v, want %v", got, tt.inconsistent)
			}
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestPersistenceKeepsCause(t *testing.T) {
	err := Persistence("get folder", sql.ErrConnDone)
	if !errors.Is(err, sql.ErrConnDone) {
		t.Error("expected cause to be reachable with errors.Is")
	}
}
