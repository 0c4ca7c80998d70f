package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestExpenseCreated_JSONFieldNames(t *testing.T) {
	body, err := json.Marshal(ExpenseCreated{
		ExpenseID:  "e-1",
		FolderID:   "f-1",
		PaidBy:     "m-1",
		Amount:     "10.00",
		SplitType:  "equal",
		ShareCount: 3,
		CreatedAt:  time.Unix(0, 0).UTC(),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{`"expense_id":"e-1"`, `"folder_id":"f-1"`, `"paid_by":"m-1"`, `"amount":"10.00"`, `"share_count":3`, `"created_at":"1970-01-01T00:00:00Z"`} {
		if !strings.Contains(string(body), field) {
			t.Errorf("%s is missing %s", body, field)
		}
	}
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	if err := p.PublishExpenseCreated(context.Background(), ExpenseCreated{ExpenseID: "e-1"}); err != nil {
		t.Errorf("NopPublisher returned %v", err)
	}
}
