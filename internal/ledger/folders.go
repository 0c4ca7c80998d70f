package ledger

import (
	"context"
	"time"

	"github.com/echuwok12/SplitPayment/internal/calculator"
	"github.com/echuwok12/SplitPayment/internal/models"
)

// FolderSummary is a folder together with its figures for one user.
type FolderSummary struct {
	Folder models.Folder
	calculator.FolderSummary
}

// FolderInput holds the fields accepted when creating a folder.
type FolderInput struct {
	Name        string
	Description string
	StartDate   *time.Time
}

// MemberInput holds the fields accepted when adding a member.
type MemberInput struct {
	Name   string
	UserID string // optional link to a registered user
}

// CreateFolder creates an active folder owned by userID.
func (l *Ledger) CreateFolder(ctx context.Context, userID string, input FolderInput) (*models.Folder, error) {
	if err := requireID("user id", userID); err != nil {
		return nil, err
	}
	name, err := validateName("folder", input.Name)
	if err != nil {
		return nil, err
	}

	folder := &models.Folder{
		Name:        name,
		Description: input.Description,
		StartDate:   input.StartDate,
		CreatedBy:   userID,
		IsActive:    true,
	}
	if err := l.store.CreateFolder(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// UpdateFolder applies update to a folder. A name, when given, is validated
// like on creation.
func (l *Ledger) UpdateFolder(ctx context.Context, folderID string, update models.FolderUpdate) (*models.Folder, error) {
	if err := requireID("folder id", folderID); err != nil {
		return nil, err
	}
	if update.Name != nil {
		name, err := validateName("folder", *update.Name)
		if err != nil {
			return nil, err
		}
		update.Name = &name
	}
	return l.store.UpdateFolder(ctx, folderID, update)
}

// GetFolder returns a folder with its summary for userID.
func (l *Ledger) GetFolder(ctx context.Context, folderID, userID string) (*FolderSummary, error) {
	if err := requireID("folder id", folderID); err != nil {
		return nil, err
	}
	snap, err := l.store.LoadFolderSnapshot(ctx, folderID)
	if err != nil {
		return nil, err
	}
	return &FolderSummary{
		Folder:        snap.Folder,
		FolderSummary: calculator.BuildFolderSummary(userID, snap.Members, snap.Expenses, snap.Shares),
	}, nil
}

// GetFolderSummaries returns a summary of every folder userID created,
// newest first.
func (l *Ledger) GetFolderSummaries(ctx context.Context, userID string) ([]FolderSummary, error) {
	if err := requireID("user id", userID); err != nil {
		return nil, err
	}
	folders, err := l.store.ListFoldersByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]FolderSummary, 0, len(folders))
	for _, f := range folders {
		summary, err := l.GetFolder(ctx, f.ID, userID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

// AddMember adds an active member to a folder.
func (l *Ledger) AddMember(ctx context.Context, folderID string, input MemberInput) (*models.Member, error) {
	if err := requireID("folder id", folderID); err != nil {
		return nil, err
	}
	name, err := validateName("member", input.Name)
	if err != nil {
		return nil, err
	}

	member := &models.Member{
		FolderID: folderID,
		UserID:   input.UserID,
		Name:     name,
		IsActive: true,
	}
	if err := l.store.CreateMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// UpdateMember renames or (de)activates a member. Past shares are untouched.
func (l *Ledger) UpdateMember(ctx context.Context, memberID string, update models.MemberUpdate) (*models.Member, error) {
	if err := requireID("member id", memberID); err != nil {
		return nil, err
	}
	if update.Name != nil {
		name, err := validateName("member", *update.Name)
		if err != nil {
			return nil, err
		}
		update.Name = &name
	}
	return l.store.UpdateMember(ctx, memberID, update)
}

// GetFolderMemberBalances returns the balance of every member of a folder,
// inactive members included, in member creation order.
func (l *Ledger) GetFolderMemberBalances(ctx context.Context, folderID string) ([]calculator.MemberBalance, error) {
	if err := requireID("folder id", folderID); err != nil {
		return nil, err
	}
	snap, err := l.store.LoadFolderSnapshot(ctx, folderID)
	if err != nil {
		return nil, err
	}
	return calculator.AggregateFolderMembers(snap.Members, snap.Expenses, snap.Shares)
}
