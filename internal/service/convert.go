package service

import (
	"strings"
	"time"

	"github.com/echuwok12/SplitPayment/internal/apperr"
	"github.com/echuwok12/SplitPayment/internal/calculator"
	"github.com/echuwok12/SplitPayment/internal/ledger"
	"github.com/echuwok12/SplitPayment/internal/models"
	"github.com/echuwok12/SplitPayment/pkg/api"
)

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(api.DateLayout, s)
	if err != nil {
		return nil, apperr.Validationf("start date %q must use the YYYY-MM-DD format", s)
	}
	return &t, nil
}

func toAPIFolder(f models.Folder) api.Folder {
	out := api.Folder{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		CreatedAt:   f.CreatedAt,
		CreatedBy:   f.CreatedBy,
		IsActive:    f.IsActive,
	}
	if f.StartDate != nil {
		out.StartDate = f.StartDate.Format(api.DateLayout)
	}
	return out
}

func toAPIFolderSummary(s ledger.FolderSummary) api.FolderSummary {
	return api.FolderSummary{
		Folder:        toAPIFolder(s.Folder),
		MemberCount:   s.MemberCount,
		TotalExpenses: calculator.Format(s.TotalExpenses),
		UserBalance:   calculator.Format(s.UserBalance),
	}
}

func toAPIMember(m models.Member) api.Member {
	return api.Member{
		ID:        m.ID,
		FolderID:  m.FolderID,
		UserID:    m.UserID,
		Name:      m.Name,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func toAPIMemberBalances(balances []calculator.MemberBalance) []api.MemberBalance {
	out := make([]api.MemberBalance, len(balances))
	for i, b := range balances {
		out[i] = api.MemberBalance{
			Member:    toAPIMember(b.Member),
			TotalPaid: calculator.Format(b.TotalPaid),
			TotalOwed: calculator.Format(b.TotalOwed),
			Balance:   calculator.Format(b.Balance.Balance),
		}
	}
	return out
}

func toAPIExpense(e models.Expense) api.Expense {
	return api.Expense{
		ID:          e.ID,
		FolderID:    e.FolderID,
		Description: e.Description,
		Amount:      calculator.Format(e.Amount),
		PaidBy:      e.PaidBy,
		SplitType:   string(e.SplitType),
		CreatedAt:   e.CreatedAt,
	}
}

func toAPIShares(shares []models.ExpenseShare) []api.ExpenseShare {
	out := make([]api.ExpenseShare, len(shares))
	for i, s := range shares {
		out[i] = api.ExpenseShare{
			ID:        s.ID,
			ExpenseID: s.ExpenseID,
			MemberID:  s.MemberID,
			Amount:    calculator.Format(s.Amount),
		}
	}
	return out
}

func toAPIExpenseDetails(details []ledger.ExpenseDetail) []api.ExpenseDetail {
	out := make([]api.ExpenseDetail, len(details))
	for i, d := range details {
		out[i] = api.ExpenseDetail{
			Expense:    toAPIExpense(d.Expense),
			PaidByName: d.PaidByName,
			UserShare:  calculator.Format(d.UserShare),
		}
	}
	return out
}

func toAPIUser(u *models.User) api.User {
	return api.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}
