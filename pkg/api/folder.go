package api

// Folder is a named group of members and expenses.
type Folder struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
	CreatedBy   string `json:"createdBy"`
	IsActive    bool   `json:"isActive"`
}

// FolderSummary is a folder with its totals for the requesting user.
type FolderSummary struct {
	Folder        Folder `json:"folder"`
	MemberCount   int    `json:"memberCount"`
	TotalExpenses string `json:"totalExpenses"`
	UserBalance   string `json:"userBalance"`
}

// Member is a participant in a folder.
type Member struct {
	ID        string `json:"id"`
	FolderID  string `json:"folderId"`
	UserID    string `json:"userId,omitempty"`
	Name      string `json:"name"`
	IsActive  bool   `json:"isActive"`
	CreatedAt int64  `json:"createdAt"`
}

// MemberBalance is a member with its derived money position.
// A positive Balance means the member gets money back.
type MemberBalance struct {
	Member    Member `json:"member"`
	TotalPaid string `json:"totalPaid"`
	TotalOwed string `json:"totalOwed"`
	Balance   string `json:"balance"`
}

type CreateFolderRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
}

type CreateFolderResponse struct {
	Folder Folder `json:"folder"`
}

type GetFolderRequest struct {
	FolderID string `json:"folderId"`
}

type GetFolderResponse struct {
	Summary FolderSummary `json:"summary"`
}

// UpdateFolderRequest changes only the fields that are present.
type UpdateFolderRequest struct {
	FolderID    string  `json:"folderId"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

type UpdateFolderResponse struct {
	Folder Folder `json:"folder"`
}

type ListFolderSummariesRequest struct{}

type ListFolderSummariesResponse struct {
	Folders []FolderSummary `json:"folders"`
}

type AddMemberRequest struct {
	FolderID string `json:"folderId"`
	Name     string `json:"name"`
	UserID   string `json:"userId,omitempty"`
}

type AddMemberResponse struct {
	Member Member `json:"member"`
}

// UpdateMemberRequest changes only the fields that are present.
type UpdateMemberRequest struct {
	MemberID string  `json:"memberId"`
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

type UpdateMemberResponse struct {
	Member Member `json:"member"`
}

type ListMemberBalancesRequest struct {
	FolderID string `json:"folderId"`
}

type ListMemberBalancesResponse struct {
	Balances []MemberBalance `json:"balances"`
}

type GetFolderReportRequest struct {
	FolderID string `json:"folderId"`
}

// GetFolderReportResponse carries every figure of a folder, all read from
// the same committed state.
type GetFolderReportResponse struct {
	Folder        Folder          `json:"folder"`
	MemberCount   int             `json:"memberCount"`
	TotalExpenses string          `json:"totalExpenses"`
	UserBalance   string          `json:"userBalance"`
	Balances      []MemberBalance `json:"balances"`
	Expenses      []ExpenseDetail `json:"expenses"`
}
