package apiconnect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/echuwok12/SplitPayment/pkg/api"
)

// FolderServiceName is the fully-qualified name of the FolderService service.
const FolderServiceName = "splitpayment.v1.FolderService"

// These constants are the fully-qualified names of the RPCs defined in this
// service, used as the HTTP route and in Spec.Procedure.
const (
	FolderServiceCreateFolderProcedure        = "/splitpayment.v1.FolderService/CreateFolder"
	FolderServiceGetFolderProcedure           = "/splitpayment.v1.FolderService/GetFolder"
	FolderServiceUpdateFolderProcedure        = "/splitpayment.v1.FolderService/UpdateFolder"
	FolderServiceListFolderSummariesProcedure = "/splitpayment.v1.FolderService/ListFolderSummaries"
	FolderServiceAddMemberProcedure           = "/splitpayment.v1.FolderService/AddMember"
	FolderServiceUpdateMemberProcedure        = "/splitpayment.v1.FolderService/UpdateMember"
	FolderServiceListMemberBalancesProcedure  = "/splitpayment.v1.FolderService/ListMemberBalances"
	FolderServiceGetFolderReportProcedure     = "/splitpayment.v1.FolderService/GetFolderReport"
)

// FolderServiceClient is a client for the splitpayment.v1.FolderService service.
type FolderServiceClient interface {
	CreateFolder(context.Context, *connect.Request[api.CreateFolderRequest]) (*connect.Response[api.CreateFolderResponse], error)
	GetFolder(context.Context, *connect.Request[api.GetFolderRequest]) (*connect.Response[api.GetFolderResponse], error)
	UpdateFolder(context.Context, *connect.Request[api.UpdateFolderRequest]) (*connect.Response[api.UpdateFolderResponse], error)
	ListFolderSummaries(context.Context, *connect.Request[api.ListFolderSummariesRequest]) (*connect.Response[api.ListFolderSummariesResponse], error)
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error)
	UpdateMember(context.Context, *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error)
	ListMemberBalances(context.Context, *connect.Request[api.ListMemberBalancesRequest]) (*connect.Response[api.ListMemberBalancesResponse], error)
	GetFolderReport(context.Context, *connect.Request[api.GetFolderReportRequest]) (*connect.Response[api.GetFolderReportResponse], error)
}

// NewFolderServiceClient constructs a client for the splitpayment.v1.FolderService service.
//
// The URL supplied here should be the base URL for the server
// (for example, http://api.acme.com or https://acme.com/grpc).
func NewFolderServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) FolderServiceClient {
	opts = clientOptions(opts)
	return &folderServiceClient{
		createFolder: connect.NewClient[api.CreateFolderRequest, api.CreateFolderResponse](
			httpClient,
			baseURL+FolderServiceCreateFolderProcedure,
			opts...,
		),
		getFolder: connect.NewClient[api.GetFolderRequest, api.GetFolderResponse](
			httpClient,
			baseURL+FolderServiceGetFolderProcedure,
			opts...,
		),
		updateFolder: connect.NewClient[api.UpdateFolderRequest, api.UpdateFolderResponse](
			httpClient,
			baseURL+FolderServiceUpdateFolderProcedure,
			opts...,
		),
		listFolderSummaries: connect.NewClient[api.ListFolderSummariesRequest, api.ListFolderSummariesResponse](
			httpClient,
			baseURL+FolderServiceListFolderSummariesProcedure,
			opts...,
		),
		addMember: connect.NewClient[api.AddMemberRequest, api.AddMemberResponse](
			httpClient,
			baseURL+FolderServiceAddMemberProcedure,
			opts...,
		),
		updateMember: connect.NewClient[api.UpdateMemberRequest, api.UpdateMemberResponse](
			httpClient,
			baseURL+FolderServiceUpdateMemberProcedure,
			opts...,
		),
		listMemberBalances: connect.NewClient[api.ListMemberBalancesRequest, api.ListMemberBalancesResponse](
			httpClient,
			baseURL+FolderServiceListMemberBalancesProcedure,
			opts...,
		),
		getFolderReport: connect.NewClient[api.GetFolderReportRequest, api.GetFolderReportResponse](
			httpClient,
			baseURL+FolderServiceGetFolderReportProcedure,
			opts...,
		),
	}
}

// folderServiceClient implements FolderServiceClient.
type folderServiceClient struct {
	createFolder        *connect.Client[api.CreateFolderRequest, api.CreateFolderResponse]
	getFolder           *connect.Client[api.GetFolderRequest, api.GetFolderResponse]
	updateFolder        *connect.Client[api.UpdateFolderRequest, api.UpdateFolderResponse]
	listFolderSummaries *connect.Client[api.ListFolderSummariesRequest, api.ListFolderSummariesResponse]
	addMember           *connect.Client[api.AddMemberRequest, api.AddMemberResponse]
	updateMember        *connect.Client[api.UpdateMemberRequest, api.UpdateMemberResponse]
	listMemberBalances  *connect.Client[api.ListMemberBalancesRequest, api.ListMemberBalancesResponse]
	getFolderReport     *connect.Client[api.GetFolderReportRequest, api.GetFolderReportResponse]
}

// CreateFolder calls splitpayment.v1.FolderService.CreateFolder.
func (c *folderServiceClient) CreateFolder(ctx context.Context, req *connect.Request[api.CreateFolderRequest]) (*connect.Response[api.CreateFolderResponse], error) {
	return c.createFolder.CallUnary(ctx, req)
}

// GetFolder calls splitpayment.v1.FolderService.GetFolder.
func (c *folderServiceClient) GetFolder(ctx context.Context, req *connect.Request[api.GetFolderRequest]) (*connect.Response[api.GetFolderResponse], error) {
	return c.getFolder.CallUnary(ctx, req)
}

// UpdateFolder calls splitpayment.v1.FolderService.UpdateFolder.
func (c *folderServiceClient) UpdateFolder(ctx context.Context, req *connect.Request[api.UpdateFolderRequest]) (*connect.Response[api.UpdateFolderResponse], error) {
	return c.updateFolder.CallUnary(ctx, req)
}

// ListFolderSummaries calls splitpayment.v1.FolderService.ListFolderSummaries.
func (c *folderServiceClient) ListFolderSummaries(ctx context.Context, req *connect.Request[api.ListFolderSummariesRequest]) (*connect.Response[api.ListFolderSummariesResponse], error) {
	return c.listFolderSummaries.CallUnary(ctx, req)
}

// AddMember calls splitpayment.v1.FolderService.AddMember.
func (c *folderServiceClient) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

// UpdateMember calls splitpayment.v1.FolderService.UpdateMember.
func (c *folderServiceClient) UpdateMember(ctx context.Context, req *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error) {
	return c.updateMember.CallUnary(ctx, req)
}

// ListMemberBalances calls splitpayment.v1.FolderService.ListMemberBalances.
func (c *folderServiceClient) ListMemberBalances(ctx context.Context, req *connect.Request[api.ListMemberBalancesRequest]) (*connect.Response[api.ListMemberBalancesResponse], error) {
	return c.listMemberBalances.CallUnary(ctx, req)
}

// GetFolderReport calls splitpayment.v1.FolderService.GetFolderReport.
func (c *folderServiceClient) GetFolderReport(ctx context.Context, req *connect.Request[api.GetFolderReportRequest]) (*connect.Response[api.GetFolderReportResponse], error) {
	return c.getFolderReport.CallUnary(ctx, req)
}

// FolderServiceHandler is an implementation of the splitpayment.v1.FolderService service.
type FolderServiceHandler interface {
	// CreateFolder creates a folder owned by the caller.
	CreateFolder(context.Context, *connect.Request[api.CreateFolderRequest]) (*connect.Response[api.CreateFolderResponse], error)
	// GetFolder returns a folder with its summary for the caller.
	GetFolder(context.Context, *connect.Request[api.GetFolderRequest]) (*connect.Response[api.GetFolderResponse], error)
	// UpdateFolder changes a folder's name, description, start date or active flag.
	UpdateFolder(context.Context, *connect.Request[api.UpdateFolderRequest]) (*connect.Response[api.UpdateFolderResponse], error)
	// ListFolderSummaries lists the folders the caller created, newest first.
	ListFolderSummaries(context.Context, *connect.Request[api.ListFolderSummariesRequest]) (*connect.Response[api.ListFolderSummariesResponse], error)
	// AddMember adds a member to a folder.
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error)
	// UpdateMember renames or (de)activates a member.
	UpdateMember(context.Context, *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error)
	// ListMemberBalances returns the balance of every member of a folder.
	ListMemberBalances(context.Context, *connect.Request[api.ListMemberBalancesRequest]) (*connect.Response[api.ListMemberBalancesResponse], error)
	// GetFolderReport returns a folder with balances, expenses and totals.
	GetFolderReport(context.Context, *connect.Request[api.GetFolderReportRequest]) (*connect.Response[api.GetFolderReportResponse], error)
}

// NewFolderServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewFolderServiceHandler(svc FolderServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	createFolderHandler := connect.NewUnaryHandler(
		FolderServiceCreateFolderProcedure,
		svc.CreateFolder,
		opts...,
	)
	getFolderHandler := connect.NewUnaryHandler(
		FolderServiceGetFolderProcedure,
		svc.GetFolder,
		opts...,
	)
	updateFolderHandler := connect.NewUnaryHandler(
		FolderServiceUpdateFolderProcedure,
		svc.UpdateFolder,
		opts...,
	)
	listFolderSummariesHandler := connect.NewUnaryHandler(
		FolderServiceListFolderSummariesProcedure,
		svc.ListFolderSummaries,
		opts...,
	)
	addMemberHandler := connect.NewUnaryHandler(
		FolderServiceAddMemberProcedure,
		svc.AddMember,
		opts...,
	)
	updateMemberHandler := connect.NewUnaryHandler(
		FolderServiceUpdateMemberProcedure,
		svc.UpdateMember,
		opts...,
	)
	listMemberBalancesHandler := connect.NewUnaryHandler(
		FolderServiceListMemberBalancesProcedure,
		svc.ListMemberBalances,
		opts...,
	)
	getFolderReportHandler := connect.NewUnaryHandler(
		FolderServiceGetFolderReportProcedure,
		svc.GetFolderReport,
		opts...,
	)
	return "/splitpayment.v1.FolderService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case FolderServiceCreateFolderProcedure:
			createFolderHandler.ServeHTTP(w, r)
		case FolderServiceGetFolderProcedure:
			getFolderHandler.ServeHTTP(w, r)
		case FolderServiceUpdateFolderProcedure:
			updateFolderHandler.ServeHTTP(w, r)
		case FolderServiceListFolderSummariesProcedure:
			listFolderSummariesHandler.ServeHTTP(w, r)
		case FolderServiceAddMemberProcedure:
			addMemberHandler.ServeHTTP(w, r)
		case FolderServiceUpdateMemberProcedure:
			updateMemberHandler.ServeHTTP(w, r)
		case FolderServiceListMemberBalancesProcedure:
			listMemberBalancesHandler.ServeHTTP(w, r)
		case FolderServiceGetFolderReportProcedure:
			getFolderReportHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedFolderServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedFolderServiceHandler struct{}

func (UnimplementedFolderServiceHandler) CreateFolder(context.Context, *connect.Request[api.CreateFolderRequest]) (*connect.Response[api.CreateFolderResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitpayment.v1.FolderService.CreateFolder is not implemented"))
}

func (UnimplementedFolderServiceHandler) GetFolder(context.Context, *connect.Request[api.GetFolderRequest]) (*connect.Response[api.GetFolderResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitpayment.v1.FolderService.GetFolder is not implemented"))
}

func (UnimplementedFolderServiceHandler) UpdateFolder(context.Context, *connect.Request[api.UpdateFolderRequest]) (*connect.Response[api.UpdateFolderResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitpayment.v1.FolderService.UpdateFolder is not implemented"))
}

func (UnimplementedFolderServiceHandler) ListFolderSummaries(context.Context, *connect.Request[api.ListFolderSummariesRequest]) (*connect.Response[api.ListFolderSummariesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitpayment.v1.FolderService.ListFolderSummaries is not implemented"))
}

func (UnimplementedFolderServiceHandler) AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitpayment.v1.FolderService.AddMember is not implemented"))
}

func (UnimplementedFolderServiceHandler) UpdateMember(context.Context, *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitpayment.v1.FolderService.UpdateMember is not implemented"))
}

func (UnimplementedFolderServiceHandler) ListMemberBalances(context.Context, *connect.Request[api.ListMemberBalancesRequest]) (*connect.Response[api.ListMemberBalancesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitpayment.v1.FolderService.ListMemberBalances is not implemented"))
}

func (UnimplementedFolderServiceHandler) GetFolderReport(context.Context, *connect.Request[api.GetFolderReportRequest]) (*connect.Response[api.GetFolderReportResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitpayment.v1.FolderService.GetFolderReport is not implemented"))
}
