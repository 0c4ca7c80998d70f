package api

// Expense is a payment made by one member on behalf of the folder.
type Expense struct {
	ID          string `json:"id"`
	FolderID    string `json:"folderId"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	PaidBy      string `json:"paidBy"`
	SplitType   string `json:"splitType"`
	CreatedAt   int64  `json:"createdAt"`
}

// ExpenseShare is one member's portion of an expense.
type ExpenseShare struct {
	ID        string `json:"id"`
	ExpenseID string `json:"expenseId"`
	MemberID  string `json:"memberId"`
	Amount    string `json:"amount"`
}

// ExpenseDetail is an expense as listed for the requesting user.
type ExpenseDetail struct {
	Expense    Expense `json:"expense"`
	PaidByName string  `json:"paidByName"`
	UserShare  string  `json:"userShare"`
}

// ShareInput is a caller-supplied share of a custom split.
type ShareInput struct {
	MemberID string `json:"memberId"`
	Amount   string `json:"amount"`
}

type CreateExpenseRequest struct {
	FolderID    string       `json:"folderId"`
	Description string       `json:"description"`
	Amount      string       `json:"amount"`
	PaidBy      string       `json:"paidBy"`
	SplitType   string       `json:"splitType,omitempty"`
	Shares      []ShareInput `json:"shares,omitempty"`
}

type CreateExpenseResponse struct {
	Expense Expense        `json:"expense"`
	Shares  []ExpenseShare `json:"shares"`
}

type ListExpensesRequest struct {
	FolderID string `json:"folderId"`
}

type ListExpensesResponse struct {
	Expenses []ExpenseDetail `json:"expenses"`
}

type GetExpenseRequest struct {
	ExpenseID string `json:"expenseId"`
}

type GetExpenseResponse struct {
	Expense Expense        `json:"expense"`
	Shares  []ExpenseShare `json:"shares"`
}
