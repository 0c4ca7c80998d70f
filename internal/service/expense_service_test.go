package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/echuwok12/SplitPayment/pkg/api"
)

func TestCreateExpense_EqualSplit(t *testing.T) {
	c := setupTestServer(t, testAuthInterceptor())
	ctx := context.Background()

	folder := createFolder(t, c, "Dinner club")
	alice := addMember(t, c, folder.ID, "Alice", testUserID)
	bob := addMember(t, c, folder.ID, "Bob", "")
	charlie := addMember(t, c, folder.ID, "Charlie", "")

	resp, err := c.expenses.CreateExpense(ctx, connect.NewRequest(&api.CreateExpenseRequest{
		FolderID:    folder.ID,
		Description: "Pizza",
		Amount:      "10",
		PaidBy:      alice.ID,
	}))
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	expense := resp.Msg.Expense
	if expense.Amount != "10.00" || expense.SplitType != "equal" || expense.PaidBy != alice.ID {
		t.Errorf("unexpected expense: %+v", expense)
	}

	wantShares := map[string]string{alice.ID: "3.34", bob.ID: "3.33", charlie.ID: "3.33"}
	if len(resp.Msg.Shares) != 3 {
		t.Fatalf("expected 3 shares, got %d", len(resp.Msg.Shares))
	}
	for _, s := range resp.Msg.Shares {
		if s.Amount != wantShares[s.MemberID] {
			t.Errorf("share for %s: expected %s, got %s", s.MemberID, wantShares[s.MemberID], s.Amount)
		}
		if s.ExpenseID != expense.ID {
			t.Errorf("share expenseId: expected %s, got %s", expense.ID, s.ExpenseID)
		}
	}

	got, err := c.expenses.GetExpense(ctx, connect.NewRequest(&api.GetExpenseRequest{ExpenseID: expense.ID}))
	if err != nil {
		t.Fatalf("GetExpense failed: %v", err)
	}
	if got.Msg.Expense.ID != expense.ID || len(got.Msg.Shares) != 3 {
		t.Errorf("GetExpense returned %+v", got.Msg)
	}
}

func TestCreateExpense_CustomSplit(t *testing.T) {
	c := setupTestServer(t, testAuthInterceptor())
	ctx := context.Background()

	folder := createFolder(t, c, "Weekend")
	alice := addMember(t, c, folder.ID, "Alice", testUserID)
	bob := addMember(t, c, folder.ID, "Bob", "")

	resp, err := c.expenses.CreateExpense(ctx, connect.NewRequest(&api.CreateExpenseRequest{
		FolderID:    folder.ID,
		Description: "Hotel",
		Amount:      "120.00",
		PaidBy:      bob.ID,
		SplitType:   "custom",
		Shares: []api.ShareInput{
			{MemberID: alice.ID, Amount: "80.00"},
			{MemberID: bob.ID, Amount: "40.00"},
		},
	}))
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}
	if resp.Msg.Expense.SplitType != "custom" {
		t.Errorf("splitType: expected custom, got %s", resp.Msg.Expense.SplitType)
	}

	list, err := c.expenses.ListExpenses(ctx, connect.NewRequest(&api.ListExpensesRequest{FolderID: folder.ID}))
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(list.Msg.Expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(list.Msg.Expenses))
	}
	detail := list.Msg.Expenses[0]
	if detail.PaidByName != "Bob" {
		t.Errorf("paidByName: expected Bob, got %s", detail.PaidByName)
	}
	if detail.UserShare != "80.00" {
		t.Errorf("userShare: expected 80.00, got %s", detail.UserShare)
	}
}

func TestCreateExpense_RejectedWritesNothing(t *testing.T) {
	c := setupTestServer(t, testAuthInterceptor())
	ctx := context.Background()

	folder := createFolder(t, c, "Strict")
	alice := addMember(t, c, folder.ID, "Alice", testUserID)
	bob := addMember(t, c, folder.ID, "Bob", "")

	tests := []struct {
		name string
		req  *api.CreateExpenseRequest
		code connect.Code
	}{
		{
			name: "shares do not sum to amount",
			req: &api.CreateExpenseRequest{
				FolderID: folder.ID, Description: "Taxi", Amount: "25.00", PaidBy: alice.ID, SplitType: "custom",
				Shares: []api.ShareInput{{MemberID: alice.ID, Amount: "12.50"}, {MemberID: bob.ID, Amount: "12.49"}},
			},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "unknown payer",
			req:  &api.CreateExpenseRequest{FolderID: folder.ID, Description: "Taxi", Amount: "25.00", PaidBy: "ghost"},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "malformed amount",
			req:  &api.CreateExpenseRequest{FolderID: folder.ID, Description: "Taxi", Amount: "25,00", PaidBy: alice.ID},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "missing description",
			req:  &api.CreateExpenseRequest{FolderID: folder.ID, Amount: "25.00", PaidBy: alice.ID},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "unknown folder",
			req:  &api.CreateExpenseRequest{FolderID: "missing", Description: "Taxi", Amount: "25.00", PaidBy: alice.ID},
			code: connect.CodeNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.expenses.CreateExpense(ctx, connect.NewRequest(tt.req))
			assertCode(t, err, tt.code)
		})
	}

	list, err := c.expenses.ListExpenses(ctx, connect.NewRequest(&api.ListExpensesRequest{FolderID: folder.ID}))
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(list.Msg.Expenses) != 0 {
		t.Errorf("expected no expenses after rejected requests, got %d", len(list.Msg.Expenses))
	}

	balances, err := c.folders.ListMemberBalances(ctx, connect.NewRequest(&api.ListMemberBalancesRequest{FolderID: folder.ID}))
	if err != nil {
		t.Fatalf("ListMemberBalances failed: %v", err)
	}
	for _, b := range balances.Msg.Balances {
		if b.Balance != "0.00" || b.TotalPaid != "0.00" || b.TotalOwed != "0.00" {
			t.Errorf("%s: expected settled zeros, got %+v", b.Member.Name, b)
		}
	}
}

func TestGetExpense_NotFound(t *testing.T) {
	c := setupTestServer(t, testAuthInterceptor())

	_, err := c.expenses.GetExpense(context.Background(), connect.NewRequest(&api.GetExpenseRequest{ExpenseID: "missing"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestListExpenses_NewestFirst(t *testing.T) {
	c := setupTestServer(t, testAuthInterceptor())
	ctx := context.Background()

	folder := createFolder(t, c, "Order")
	payer := addMember(t, c, folder.ID, "Payer", "")

	for _, desc := range []string{"first", "second", "third"} {
		if _, err := c.expenses.CreateExpense(ctx, connect.NewRequest(&api.CreateExpenseRequest{
			FolderID: folder.ID, Description: desc, Amount: "1.00", PaidBy: payer.ID,
		})); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
	}

	list, err := c.expenses.ListExpenses(ctx, connect.NewRequest(&api.ListExpensesRequest{FolderID: folder.ID}))
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(list.Msg.Expenses) != 3 {
		t.Fatalf("expected 3 expenses, got %d", len(list.Msg.Expenses))
	}
	if list.Msg.Expenses[0].Expense.Description != "third" || list.Msg.Expenses[2].Expense.Description != "first" {
		t.Errorf("unexpected order: %s, %s, %s",
			list.Msg.Expenses[0].Expense.Description,
			list.Msg.Expenses[1].Expense.Description,
			list.Msg.Expenses[2].Expense.Description)
	}
	// The caller has no member record here.
	if list.Msg.Expenses[0].UserShare != "0.00" {
		t.Errorf("userShare: expected 0.00, got %s", list.Msg.Expenses[0].UserShare)
	}
}
