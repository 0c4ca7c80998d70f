package ledger

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/echuwok12/SplitPayment/internal/apperr"
	"github.com/echuwok12/SplitPayment/internal/calculator"
	"github.com/echuwok12/SplitPayment/internal/events"
	"github.com/echuwok12/SplitPayment/internal/models"
)

// ExpenseInput is an expense as submitted by a caller. Amounts are decimal strings.
type ExpenseInput struct {
	Description string
	Amount      string
	PaidBy      string
	SplitType   string // "equal" (default) or "custom"
	Shares      []ShareInput
}

// ShareInput is one caller-supplied share.
type ShareInput struct {
	MemberID string
	Amount   string
}

// ExpenseWithShares is a committed expense with every share it produced.
type ExpenseWithShares struct {
	Expense models.Expense
	Shares  []models.ExpenseShare
}

// ExpenseDetail is an expense as listed for one user.
type ExpenseDetail struct {
	Expense    models.Expense
	PaidByName string
	UserShare  decimal.Decimal // zero when the user owes nothing for this expense
}

// CreateExpense validates input, allocates shares and persists the expense
// with its shares atomically.
//
// Equal splits without explicit shares are allocated over the folder's active
// members as they are at this moment. Every validation runs before anything
// is written; a failed write leaves no expense and no shares behind.
func (l *Ledger) CreateExpense(ctx context.Context, folderID string, input ExpenseInput) (*ExpenseWithShares, error) {
	if err := requireID("folder id", folderID); err != nil {
		return nil, err
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, apperr.Validationf("description is required")
	}
	amount, err := calculator.ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	splitType, err := models.ParseSplitType(input.SplitType)
	if err != nil {
		return nil, apperr.Validationf("%v", err)
	}
	if err := requireID("paid by", input.PaidBy); err != nil {
		return nil, err
	}

	snap, err := l.store.LoadFolderSnapshot(ctx, folderID)
	if err != nil {
		return nil, err
	}

	members := make(map[string]models.Member, len(snap.Members))
	var activeIDs []string
	for _, m := range snap.Members {
		members[m.ID] = m
		if m.IsActive {
			activeIDs = append(activeIDs, m.ID)
		}
	}

	payer, ok := members[input.PaidBy]
	if !ok {
		return nil, apperr.Validationf("paid by %s is not a member of folder %s", input.PaidBy, folderID)
	}
	if !payer.IsActive {
		return nil, apperr.Validationf("paid by %s is not an active member", input.PaidBy)
	}

	supplied := make([]calculator.Share, 0, len(input.Shares))
	for _, s := range input.Shares {
		if _, ok := members[s.MemberID]; !ok {
			return nil, apperr.Validationf("share member %s is not a member of folder %s", s.MemberID, folderID)
		}
		shareAmount, err := calculator.ParseShareAmount(s.Amount)
		if err != nil {
			return nil, err
		}
		supplied = append(supplied, calculator.Share{MemberID: s.MemberID, Amount: shareAmount})
	}

	allocated, err := calculator.Allocate(amount, splitType, activeIDs, supplied)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		FolderID:    folderID,
		Description: description,
		Amount:      amount,
		PaidBy:      payer.ID,
		SplitType:   splitType,
	}
	shares := make([]models.ExpenseShare, len(allocated))
	for i, a := range allocated {
		shares[i] = models.ExpenseShare{MemberID: a.MemberID, Amount: a.Amount}
	}

	if err := l.store.CreateExpenseWithShares(ctx, expense, shares); err != nil {
		return nil, err
	}

	l.metrics.ExpenseCreated(splitType)
	l.publishExpenseCreated(ctx, expense, len(shares))

	return &ExpenseWithShares{Expense: *expense, Shares: shares}, nil
}

// publishExpenseCreated announces a committed expense. Failures are logged only.
func (l *Ledger) publishExpenseCreated(ctx context.Context, expense *models.Expense, shareCount int) {
	event := events.ExpenseCreated{
		ExpenseID:  expense.ID,
		FolderID:   expense.FolderID,
		PaidBy:     expense.PaidBy,
		Amount:     calculator.Format(expense.Amount),
		SplitType:  string(expense.SplitType),
		ShareCount: shareCount,
		CreatedAt:  time.Unix(expense.CreatedAt, 0).UTC(),
	}
	if err := l.publisher.PublishExpenseCreated(ctx, event); err != nil {
		slog.WarnContext(ctx, "Failed to publish expense created event",
			"expense_id", expense.ID,
			"folder_id", expense.FolderID,
			"error", err,
		)
	}
}

// GetExpense returns an expense with its shares.
func (l *Ledger) GetExpense(ctx context.Context, expenseID string) (*ExpenseWithShares, error) {
	if err := requireID("expense id", expenseID); err != nil {
		return nil, err
	}
	expense, err := l.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	shares, err := l.store.ListShares(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	return &ExpenseWithShares{Expense: *expense, Shares: shares}, nil
}

// GetFolderExpensesWithUserShare lists a folder's expenses, newest first,
// with the payer's name and the share owed by userID's member record.
func (l *Ledger) GetFolderExpensesWithUserShare(ctx context.Context, folderID, userID string) ([]ExpenseDetail, error) {
	if err := requireID("folder id", folderID); err != nil {
		return nil, err
	}
	snap, err := l.store.LoadFolderSnapshot(ctx, folderID)
	if err != nil {
		return nil, err
	}
	return expenseDetails(userID, snap.Members, snap.Expenses, snap.Shares), nil
}

func expenseDetails(userID string, members []models.Member, expenses []models.Expense, shares []models.ExpenseShare) []ExpenseDetail {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}
	var memberID string
	if m, ok := calculator.MemberForUser(userID, members); ok {
		memberID = m.ID
	}

	details := make([]ExpenseDetail, len(expenses))
	for i, e := range expenses {
		details[i] = ExpenseDetail{
			Expense:    e,
			PaidByName: names[e.PaidBy],
			UserShare:  calculator.ShareOf(e.ID, memberID, shares),
		}
	}
	return details
}
