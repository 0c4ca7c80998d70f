package ledger

import (
	"context"

	"github.com/echuwok12/SplitPayment/internal/calculator"
	"github.com/echuwok12/SplitPayment/internal/models"
)

// FolderReport is the full picture of one folder for one user, built from a
// single snapshot so every figure agrees with every other.
type FolderReport struct {
	Folder   models.Folder
	Summary  calculator.FolderSummary
	Balances []calculator.MemberBalance
	Expenses []ExpenseDetail
}

// GetFolderReport returns the folder, member balances, expenses and totals.
func (l *Ledger) GetFolderReport(ctx context.Context, folderID, userID string) (*FolderReport, error) {
	if err := requireID("folder id", folderID); err != nil {
		return nil, err
	}
	snap, err := l.store.LoadFolderSnapshot(ctx, folderID)
	if err != nil {
		return nil, err
	}

	balances, err := calculator.AggregateFolderMembers(snap.Members, snap.Expenses, snap.Shares)
	if err != nil {
		return nil, err
	}

	return &FolderReport{
		Folder:   snap.Folder,
		Summary:  calculator.BuildFolderSummary(userID, snap.Members, snap.Expenses, snap.Shares),
		Balances: balances,
		Expenses: expenseDetails(userID, snap.Members, snap.Expenses, snap.Shares),
	}, nil
}
