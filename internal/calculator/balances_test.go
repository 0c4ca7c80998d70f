package calculator

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/echuwok12/SplitPayment/internal/apperr"
	"github.com/echuwok12/SplitPayment/internal/models"
)

func member(id, userID string) models.Member {
	return models.Member{ID: id, FolderID: "f1", UserID: userID, Name: id, IsActive: true}
}

func expense(id, paidBy, amount string) models.Expense {
	return models.Expense{ID: id, FolderID: "f1", PaidBy: paidBy, Amount: dec(amount), SplitType: models.SplitEqual}
}

func sharesFor(expenseID string, allocated []Share) []models.ExpenseShare {
	out := make([]models.ExpenseShare, len(allocated))
	for i, s := range allocated {
		out[i] = models.ExpenseShare{
			ID:        fmt.Sprintf("%s-s%d", expenseID, i),
			ExpenseID: expenseID,
			MemberID:  s.MemberID,
			Amount:    s.Amount,
		}
	}
	return out
}

func TestAggregateFolderMembers(t *testing.T) {
	members := []models.Member{member("alice", "u1"), member("bob", ""), member("charlie", "")}
	expenses := []models.Expense{expense("e1", "alice", "10.00"), expense("e2", "bob", "30.00")}

	s1, _ := AllocateEqual(dec("10.00"), []string{"alice", "bob", "charlie"})
	s2, _ := ValidateCustom(dec("30.00"), []Share{{"alice", dec("20.00")}, {"bob", dec("10.00")}})
	shares := append(sharesFor("e1", s1), sharesFor("e2", s2)...)

	balances, err := AggregateFolderMembers(members, expenses, shares)
	if err != nil {
		t.Fatalf("AggregateFolderMembers failed: %v", err)
	}

	want := map[string][3]string{
		// paid, owed, balance
		"alice":   {"10.00", "23.34", "-13.34"},
		"bob":     {"30.00", "13.33", "16.67"},
		"charlie": {"0.00", "3.33", "-3.33"},
	}
	for i, b := range balances {
		if b.Member.ID != members[i].ID {
			t.Errorf("balance %d member = %s, want %s", i, b.Member.ID, members[i].ID)
		}
		w := want[b.Member.ID]
		if Format(b.TotalPaid) != w[0] || Format(b.TotalOwed) != w[1] || Format(b.Balance.Balance) != w[2] {
			t.Errorf("%s: got paid=%s owed=%s balance=%s, want %v",
				b.Member.ID, Format(b.TotalPaid), Format(b.TotalOwed), Format(b.Balance.Balance), w)
		}
	}

	if !NetTotal(balances).IsZero() {
		t.Errorf("net total = %s, want 0", NetTotal(balances))
	}
}

func TestAggregateFolderMembers_ZeroSumProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		n := 1 + rng.Intn(12)
		ids := memberIDs(n)
		members := make([]models.Member, n)
		for i, id := range ids {
			members[i] = member(id, "")
		}

		var expenses []models.Expense
		var shares []models.ExpenseShare
		count := rng.Intn(20)
		for e := 0; e < count; e++ {
			expID := fmt.Sprintf("r%d-e%d", round, e)
			amount := decimal.New(int64(1+rng.Intn(500_000)), -2)
			payer := ids[rng.Intn(n)]
			expenses = append(expenses, models.Expense{ID: expID, FolderID: "f1", PaidBy: payer, Amount: amount})

			// Split among a random non-empty subset.
			subset := make([]string, 0, n)
			for _, id := range ids {
				if rng.Intn(2) == 0 {
					subset = append(subset, id)
				}
			}
			if len(subset) == 0 {
				subset = append(subset, ids[0])
			}
			allocated, err := AllocateEqual(amount, subset)
			if err != nil {
				t.Fatalf("AllocateEqual failed: %v", err)
			}
			shares = append(shares, sharesFor(expID, allocated)...)
		}

		balances, err := AggregateFolderMembers(members, expenses, shares)
		if err != nil {
			t.Fatalf("round %d: AggregateFolderMembers failed: %v", round, err)
		}
		if total := NetTotal(balances); !total.IsZero() {
			t.Fatalf("round %d: net total = %s, want 0", round, total)
		}

		// Order of evaluation must not matter.
		rng.Shuffle(len(expenses), func(i, j int) { expenses[i], expenses[j] = expenses[j], expenses[i] })
		rng.Shuffle(len(shares), func(i, j int) { shares[i], shares[j] = shares[j], shares[i] })
		again, err := AggregateFolderMembers(members, expenses, shares)
		if err != nil {
			t.Fatalf("round %d: second AggregateFolderMembers failed: %v", round, err)
		}
		for i := range balances {
			if !balances[i].Balance.Balance.Equal(again[i].Balance.Balance) {
				t.Fatalf("round %d: member %s balance changed after shuffle: %s vs %s",
					round, balances[i].Member.ID, balances[i].Balance.Balance, again[i].Balance.Balance)
			}
		}
	}
}

func TestAggregateMemberBalance_NoActivity(t *testing.T) {
	expenses := []models.Expense{expense("e1", "alice", "10.00")}
	shares := sharesFor("e1", []Share{{"alice", dec("10.00")}})

	b := AggregateMemberBalance("bob", expenses, shares)
	for name, v := range map[string]decimal.Decimal{"paid": b.TotalPaid, "owed": b.TotalOwed, "balance": b.Balance} {
		if Format(v) != "0.00" {
			t.Errorf("%s = %s, want 0.00", name, Format(v))
		}
	}
	if !b.Settled() {
		t.Error("expected member with no activity to be settled")
	}
}

func TestAggregateFolderMembers_MemberWithoutActivity(t *testing.T) {
	members := []models.Member{member("alice", ""), member("idle", "")}
	balances, err := AggregateFolderMembers(members, nil, nil)
	if err != nil {
		t.Fatalf("AggregateFolderMembers failed: %v", err)
	}
	if len(balances) != 2 {
		t.Fatalf("expected 2 balances, got %d", len(balances))
	}
	for _, b := range balances {
		if !b.TotalPaid.IsZero() || !b.TotalOwed.IsZero() || !b.Balance.Balance.IsZero() {
			t.Errorf("%s: expected zero balance, got %+v", b.Member.ID, b.Balance)
		}
	}
}

func TestAggregateFolderMembers_InconsistentInput(t *testing.T) {
	members := []models.Member{member("alice", "")}

	tests := []struct {
		name     string
		expenses []models.Expense
		shares   []models.ExpenseShare
	}{
		{
			name:     "payer outside folder",
			expenses: []models.Expense{expense("e1", "stranger", "5.00")},
		},
		{
			name:     "share owed by outsider",
			expenses: []models.Expense{expense("e1", "alice", "5.00")},
			shares:   []models.ExpenseShare{{ID: "s1", ExpenseID: "e1", MemberID: "stranger", Amount: dec("5.00")}},
		},
		{
			name:   "share of unknown expense",
			shares: []models.ExpenseShare{{ID: "s1", ExpenseID: "ghost", MemberID: "alice", Amount: dec("5.00")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AggregateFolderMembers(members, tt.expenses, tt.shares)
			if !apperr.IsInconsistent(err) {
				t.Errorf("expected inconsistent data error, got %v", err)
			}
			if apperr.IsValidation(err) {
				t.Errorf("stored data error must not be a validation error: %v", err)
			}
		})
	}
}

func TestAggregateFolderMembers_Idempotent(t *testing.T) {
	members := []models.Member{member("alice", ""), member("bob", "")}
	expenses := []models.Expense{expense("e1", "alice", "9.99")}
	allocated, _ := AllocateEqual(dec("9.99"), []string{"alice", "bob"})
	shares := sharesFor("e1", allocated)

	first, err := AggregateFolderMembers(members, expenses, shares)
	if err != nil {
		t.Fatalf("AggregateFolderMembers failed: %v", err)
	}
	second, err := AggregateFolderMembers(members, expenses, shares)
	if err != nil {
		t.Fatalf("AggregateFolderMembers failed: %v", err)
	}
	for i := range first {
		if !first[i].Balance.Balance.Equal(second[i].Balance.Balance) {
			t.Errorf("member %s: %s then %s", first[i].Member.ID, first[i].Balance.Balance, second[i].Balance.Balance)
		}
	}
	if Format(shares[0].Amount) != "5.00" || Format(shares[1].Amount) != "4.99" {
		t.Errorf("input shares were mutated: %s, %s", shares[0].Amount, shares[1].Amount)
	}
}
