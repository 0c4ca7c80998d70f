package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/echuwok12/SplitPayment/internal/models"
)

// FolderSummary holds the folder-level figures shown on folder cards and the
// folder detail header.
type FolderSummary struct {
	MemberCount   int             // Active members
	TotalExpenses decimal.Decimal // Sum of all expense amounts
	UserBalance   decimal.Decimal // Balance of the requesting user's member record
}

// BuildFolderSummary composes the summary of one folder for requestingUserID.
// UserBalance is zero when the user has no member record in the folder; when
// several records link the same user, the first one in members wins.
func BuildFolderSummary(requestingUserID string, members []models.Member, expenses []models.Expense, shares []models.ExpenseShare) FolderSummary {
	summary := FolderSummary{
		TotalExpenses: TotalExpenses(expenses),
		UserBalance:   decimal.Zero,
	}
	for _, m := range members {
		if m.IsActive {
			summary.MemberCount++
		}
	}
	if member, ok := MemberForUser(requestingUserID, members); ok {
		summary.UserBalance = AggregateMemberBalance(member.ID, expenses, shares).Balance
	}
	return summary
}

// TotalExpenses sums expense amounts.
func TotalExpenses(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total.Round(2)
}

// MemberForUser finds the member record linking userID within members.
func MemberForUser(userID string, members []models.Member) (models.Member, bool) {
	if userID == "" {
		return models.Member{}, false
	}
	for _, m := range members {
		if m.UserID == userID {
			return m, true
		}
	}
	return models.Member{}, false
}

// ShareOf returns memberID's share of expenseID, or zero when there is none.
func ShareOf(expenseID, memberID string, shares []models.ExpenseShare) decimal.Decimal {
	if memberID == "" {
		return decimal.Zero
	}
	for _, s := range shares {
		if s.ExpenseID == expenseID && s.MemberID == memberID {
			return s.Amount
		}
	}
	return decimal.Zero
}
