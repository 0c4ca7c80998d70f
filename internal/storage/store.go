// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/echuwok12/SplitPayment/internal/models"
)

// FolderSnapshot is everything needed to derive balances for one folder,
// read from a single committed state.
type FolderSnapshot struct {
	Folder   models.Folder
	Members  []models.Member // Creation order
	Expenses []models.Expense
	Shares   []models.ExpenseShare
}

// FolderStore persists folders.
type FolderStore interface {
	// CreateFolder persists a new folder. ID and CreatedAt are populated when empty.
	// Returns a not-found error if the owning user does not exist.
	CreateFolder(ctx context.Context, folder *models.Folder) error

	// GetFolder retrieves a folder by ID. Returns a not-found error if missing.
	GetFolder(ctx context.Context, folderID string) (*models.Folder, error)

	// ListFoldersByCreator returns the folders created by userID, newest first.
	ListFoldersByCreator(ctx context.Context, userID string) ([]models.Folder, error)

	// UpdateFolder applies the non-nil fields of update and returns the result.
	UpdateFolder(ctx context.Context, folderID string, update models.FolderUpdate) (*models.Folder, error)

	// LoadFolderSnapshot reads a folder with its members, expenses and shares
	// in one transaction.
	LoadFolderSnapshot(ctx context.Context, folderID string) (*FolderSnapshot, error)
}

// MemberStore persists folder members.
type MemberStore interface {
	// CreateMember persists a new member. ID and CreatedAt are populated when empty.
	// Returns a not-found error if the folder (or linked user) does not exist.
	CreateMember(ctx context.Context, member *models.Member) error

	// GetMember retrieves a member by ID.
	GetMember(ctx context.Context, memberID string) (*models.Member, error)

	// ListMembers returns a folder's members in creation order.
	ListMembers(ctx context.Context, folderID string) ([]models.Member, error)

	// UpdateMember applies the non-nil fields of update and returns the result.
	UpdateMember(ctx context.Context, memberID string, update models.MemberUpdate) (*models.Member, error)
}

// ExpenseStore persists expenses and their shares.
type ExpenseStore interface {
	// CreateExpenseWithShares persists an expense and all of its shares atomically:
	// either everything is committed or nothing is.
	// IDs and CreatedAt are populated when empty; each share's ExpenseID is set.
	// The payer and every share member must belong to the expense's folder.
	CreateExpenseWithShares(ctx context.Context, expense *models.Expense, shares []models.ExpenseShare) error

	// GetExpense retrieves an expense by ID.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpenses returns a folder's expenses, newest first.
	ListExpenses(ctx context.Context, folderID string) ([]models.Expense, error)

	// ListShares returns the shares of one expense.
	ListShares(ctx context.Context, expenseID string) ([]models.ExpenseShare, error)
}

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// EnsureUser inserts user unless a user with the same ID already exists.
	EnsureUser(ctx context.Context, user *models.User) error
}

// Store defines the full storage surface.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	FolderStore
	MemberStore
	ExpenseStore
	UserStore

	// Ping checks that the backing database is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
