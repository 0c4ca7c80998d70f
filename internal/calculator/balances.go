package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/echuwok12/SplitPayment/internal/apperr"
	"github.com/echuwok12/SplitPayment/internal/models"
)

// Balance is the derived money position of one member.
type Balance struct {
	TotalPaid decimal.Decimal // Sum of expenses this member paid
	TotalOwed decimal.Decimal // Sum of shares this member owes
	Balance   decimal.Decimal // TotalPaid - TotalOwed; positive = gets back, negative = owes
}

// MemberBalance pairs a member with its balance.
type MemberBalance struct {
	Member models.Member
	Balance
}

// Settled reports whether the member neither owes nor is owed anything.
func (b Balance) Settled() bool {
	return b.Balance.IsZero()
}

// AggregateMemberBalance computes the balance of a single member.
// A member with no expenses and no shares gets zeros.
func AggregateMemberBalance(memberID string, expenses []models.Expense, shares []models.ExpenseShare) Balance {
	paid := decimal.Zero
	for _, e := range expenses {
		if e.PaidBy == memberID {
			paid = paid.Add(e.Amount)
		}
	}
	owed := decimal.Zero
	for _, s := range shares {
		if s.MemberID == memberID {
			owed = owed.Add(s.Amount)
		}
	}
	return newBalance(paid, owed)
}

// AggregateFolderMembers computes balances for every member of a folder,
// inactive members included, in the order of members.
//
// Expenses paid by, and shares owed by, someone outside members are rejected
// as inconsistent data, as are shares of an expense missing from expenses.
// With consistent input the balances sum to exactly zero.
func AggregateFolderMembers(members []models.Member, expenses []models.Expense, shares []models.ExpenseShare) ([]MemberBalance, error) {
	paid := make(map[string]decimal.Decimal, len(members))
	owed := make(map[string]decimal.Decimal, len(members))
	for _, m := range members {
		paid[m.ID] = decimal.Zero
		owed[m.ID] = decimal.Zero
	}

	known := make(map[string]bool, len(expenses))
	for _, e := range expenses {
		if _, ok := paid[e.PaidBy]; !ok {
			return nil, apperr.Inconsistentf("expense %s paid by unknown member %s", e.ID, e.PaidBy)
		}
		paid[e.PaidBy] = paid[e.PaidBy].Add(e.Amount)
		known[e.ID] = true
	}

	for _, s := range shares {
		if !known[s.ExpenseID] {
			return nil, apperr.Inconsistentf("share %s belongs to unknown expense %s", s.ID, s.ExpenseID)
		}
		if _, ok := owed[s.MemberID]; !ok {
			return nil, apperr.Inconsistentf("share %s owed by unknown member %s", s.ID, s.MemberID)
		}
		owed[s.MemberID] = owed[s.MemberID].Add(s.Amount)
	}

	balances := make([]MemberBalance, len(members))
	for i, m := range members {
		balances[i] = MemberBalance{
			Member:  m,
			Balance: newBalance(paid[m.ID], owed[m.ID]),
		}
	}
	return balances, nil
}

// NetTotal sums the balances of a folder. It is zero when every expense was
// fully shared out.
func NetTotal(balances []MemberBalance) decimal.Decimal {
	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b.Balance.Balance)
	}
	return total
}

func newBalance(paid, owed decimal.Decimal) Balance {
	return Balance{
		TotalPaid: paid.Round(2),
		TotalOwed: owed.Round(2),
		Balance:   paid.Sub(owed).Round(2),
	}
}
