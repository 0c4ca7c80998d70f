package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/echuwok12/SplitPayment/internal/ledger"
	"github.com/echuwok12/SplitPayment/internal/models"
	"github.com/echuwok12/SplitPayment/pkg/api"
	"github.com/echuwok12/SplitPayment/pkg/api/apiconnect"
)

// FolderService implements the Connect FolderService
type FolderService struct {
	apiconnect.UnimplementedFolderServiceHandler
	ledger *ledger.Ledger
}

// NewFolderService creates a new FolderService on top of the given ledger.
func NewFolderService(l *ledger.Ledger) *FolderService {
	return &FolderService{ledger: l}
}

// CreateFolder creates a folder owned by the caller.
func (s *FolderService) CreateFolder(ctx context.Context, req *connect.Request[api.CreateFolderRequest]) (*connect.Response[api.CreateFolderResponse], error) {
	slog.InfoContext(ctx, "CreateFolder request received", "name", req.Msg.Name)

	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	startDate, err := parseDate(req.Msg.StartDate)
	if err != nil {
		return nil, connectError(err)
	}

	folder, err := s.ledger.CreateFolder(ctx, userID, ledger.FolderInput{
		Name:        req.Msg.Name,
		Description: req.Msg.Description,
		StartDate:   startDate,
	})
	if err != nil {
		slog.ErrorContext(ctx, "CreateFolder failed", "user_id", userID, "error", err)
		return nil, connectError(err)
	}

	slog.InfoContext(ctx, "Folder created", "folder_id", folder.ID, "user_id", userID)

	return connect.NewResponse(&api.CreateFolderResponse{Folder: toAPIFolder(*folder)}), nil
}

// GetFolder retrieves a folder and its summary for the caller.
func (s *FolderService) GetFolder(ctx context.Context, req *connect.Request[api.GetFolderRequest]) (*connect.Response[api.GetFolderResponse], error) {
	slog.InfoContext(ctx, "GetFolder request received", "folder_id", req.Msg.FolderID)

	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := s.ledger.GetFolder(ctx, req.Msg.FolderID, userID)
	if err != nil {
		slog.ErrorContext(ctx, "GetFolder failed", "folder_id", req.Msg.FolderID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetFolderResponse{Summary: toAPIFolderSummary(*summary)}), nil
}

// UpdateFolder changes the fields present in the request. An empty start
// date leaves the stored one unchanged.
func (s *FolderService) UpdateFolder(ctx context.Context, req *connect.Request[api.UpdateFolderRequest]) (*connect.Response[api.UpdateFolderResponse], error) {
	slog.InfoContext(ctx, "UpdateFolder request received", "folder_id", req.Msg.FolderID)

	update := models.FolderUpdate{
		Name:        req.Msg.Name,
		Description: req.Msg.Description,
		IsActive:    req.Msg.IsActive,
	}
	if req.Msg.StartDate != nil {
		startDate, err := parseDate(*req.Msg.StartDate)
		if err != nil {
			return nil, connectError(err)
		}
		update.StartDate = startDate
	}

	folder, err := s.ledger.UpdateFolder(ctx, req.Msg.FolderID, update)
	if err != nil {
		slog.ErrorContext(ctx, "UpdateFolder failed", "folder_id", req.Msg.FolderID, "error", err)
		return nil, connectError(err)
	}

	slog.InfoContext(ctx, "Folder updated", "folder_id", folder.ID, "is_active", folder.IsActive)

	return connect.NewResponse(&api.UpdateFolderResponse{Folder: toAPIFolder(*folder)}), nil
}

// ListFolderSummaries lists the caller's folders, newest first.
func (s *FolderService) ListFolderSummaries(ctx context.Context, req *connect.Request[api.ListFolderSummariesRequest]) (*connect.Response[api.ListFolderSummariesResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "ListFolderSummaries request received", "user_id", userID)

	summaries, err := s.ledger.GetFolderSummaries(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "ListFolderSummaries failed", "user_id", userID, "error", err)
		return nil, connectError(err)
	}

	folders := make([]api.FolderSummary, len(summaries))
	for i, summary := range summaries {
		folders[i] = toAPIFolderSummary(summary)
	}

	slog.InfoContext(ctx, "ListFolderSummaries successful", "count", len(folders))

	return connect.NewResponse(&api.ListFolderSummariesResponse{Folders: folders}), nil
}

// AddMember adds a member to a folder.
func (s *FolderService) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	slog.InfoContext(ctx, "AddMember request received",
		"folder_id", req.Msg.FolderID,
		"name", req.Msg.Name,
	)

	member, err := s.ledger.AddMember(ctx, req.Msg.FolderID, ledger.MemberInput{
		Name:   req.Msg.Name,
		UserID: req.Msg.UserID,
	})
	if err != nil {
		slog.ErrorContext(ctx, "AddMember failed", "folder_id", req.Msg.FolderID, "error", err)
		return nil, connectError(err)
	}

	slog.InfoContext(ctx, "Member added", "folder_id", member.FolderID, "member_id", member.ID)

	return connect.NewResponse(&api.AddMemberResponse{Member: toAPIMember(*member)}), nil
}

// UpdateMember renames or (de)activates a member.
func (s *FolderService) UpdateMember(ctx context.Context, req *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error) {
	slog.InfoContext(ctx, "UpdateMember request received", "member_id", req.Msg.MemberID)

	member, err := s.ledger.UpdateMember(ctx, req.Msg.MemberID, models.MemberUpdate{
		Name:     req.Msg.Name,
		IsActive: req.Msg.IsActive,
	})
	if err != nil {
		slog.ErrorContext(ctx, "UpdateMember failed", "member_id", req.Msg.MemberID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.UpdateMemberResponse{Member: toAPIMember(*member)}), nil
}

// ListMemberBalances returns every member's balance, inactive members included.
func (s *FolderService) ListMemberBalances(ctx context.Context, req *connect.Request[api.ListMemberBalancesRequest]) (*connect.Response[api.ListMemberBalancesResponse], error) {
	slog.InfoContext(ctx, "ListMemberBalances request received", "folder_id", req.Msg.FolderID)

	balances, err := s.ledger.GetFolderMemberBalances(ctx, req.Msg.FolderID)
	if err != nil {
		slog.ErrorContext(ctx, "ListMemberBalances failed", "folder_id", req.Msg.FolderID, "error", err)
		return nil, connectError(err)
	}

	slog.InfoContext(ctx, "ListMemberBalances successful",
		"folder_id", req.Msg.FolderID,
		"count", len(balances),
	)

	return connect.NewResponse(&api.ListMemberBalancesResponse{Balances: toAPIMemberBalances(balances)}), nil
}

// GetFolderReport returns the folder with balances, expenses and totals.
func (s *FolderService) GetFolderReport(ctx context.Context, req *connect.Request[api.GetFolderReportRequest]) (*connect.Response[api.GetFolderReportResponse], error) {
	slog.InfoContext(ctx, "GetFolderReport request received", "folder_id", req.Msg.FolderID)

	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	report, err := s.ledger.GetFolderReport(ctx, req.Msg.FolderID, userID)
	if err != nil {
		slog.ErrorContext(ctx, "GetFolderReport failed", "folder_id", req.Msg.FolderID, "error", err)
		return nil, connectError(err)
	}

	summary := toAPIFolderSummary(ledger.FolderSummary{Folder: report.Folder, FolderSummary: report.Summary})
	return connect.NewResponse(&api.GetFolderReportResponse{
		Folder:        summary.Folder,
		MemberCount:   summary.MemberCount,
		TotalExpenses: summary.TotalExpenses,
		UserBalance:   summary.UserBalance,
		Balances:      toAPIMemberBalances(report.Balances),
		Expenses:      toAPIExpenseDetails(report.Expenses),
	}), nil
}
