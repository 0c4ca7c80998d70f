package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/echuwok12/SplitPayment/internal/ledger"
	"github.com/echuwok12/SplitPayment/pkg/api"
	"github.com/echuwok12/SplitPayment/pkg/api/apiconnect"
)

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	apiconnect.UnimplementedExpenseServiceHandler
	ledger *ledger.Ledger
}

// NewExpenseService creates a new ExpenseService on top of the given ledger.
func NewExpenseService(l *ledger.Ledger) *ExpenseService {
	return &ExpenseService{ledger: l}
}

// CreateExpense records an expense and its shares.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	slog.InfoContext(ctx, "CreateExpense request received",
		"folder_id", req.Msg.FolderID,
		"amount", req.Msg.Amount,
		"split_type", req.Msg.SplitType,
		"shares_count", len(req.Msg.Shares),
	)

	input := ledger.ExpenseInput{
		Description: req.Msg.Description,
		Amount:      req.Msg.Amount,
		PaidBy:      req.Msg.PaidBy,
		SplitType:   req.Msg.SplitType,
		Shares:      make([]ledger.ShareInput, len(req.Msg.Shares)),
	}
	for i, share := range req.Msg.Shares {
		input.Shares[i] = ledger.ShareInput{MemberID: share.MemberID, Amount: share.Amount}
	}

	created, err := s.ledger.CreateExpense(ctx, req.Msg.FolderID, input)
	if err != nil {
		slog.ErrorContext(ctx, "CreateExpense failed", "folder_id", req.Msg.FolderID, "error", err)
		return nil, connectError(err)
	}

	slog.InfoContext(ctx, "Expense created",
		"expense_id", created.Expense.ID,
		"folder_id", created.Expense.FolderID,
		"shares_count", len(created.Shares),
	)

	return connect.NewResponse(&api.CreateExpenseResponse{
		Expense: toAPIExpense(created.Expense),
		Shares:  toAPIShares(created.Shares),
	}), nil
}

// ListExpenses lists a folder's expenses, newest first, with the caller's share.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	slog.InfoContext(ctx, "ListExpenses request received", "folder_id", req.Msg.FolderID)

	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	details, err := s.ledger.GetFolderExpensesWithUserShare(ctx, req.Msg.FolderID, userID)
	if err != nil {
		slog.ErrorContext(ctx, "ListExpenses failed", "folder_id", req.Msg.FolderID, "error", err)
		return nil, connectError(err)
	}

	slog.InfoContext(ctx, "ListExpenses successful", "folder_id", req.Msg.FolderID, "count", len(details))

	return connect.NewResponse(&api.ListExpensesResponse{Expenses: toAPIExpenseDetails(details)}), nil
}

// GetExpense retrieves an expense with its shares.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	slog.InfoContext(ctx, "GetExpense request received", "expense_id", req.Msg.ExpenseID)

	expense, err := s.ledger.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		slog.ErrorContext(ctx, "GetExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetExpenseResponse{
		Expense: toAPIExpense(expense.Expense),
		Shares:  toAPIShares(expense.Shares),
	}), nil
}
