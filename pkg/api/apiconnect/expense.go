package apiconnect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/echuwok12/SplitPayment/pkg/api"
)

// ExpenseServiceName is the fully-qualified name of the ExpenseService service.
const ExpenseServiceName = "splitpayment.v1.ExpenseService"

// These constants are the fully-qualified names of the RPCs defined in this
// service, used as the HTTP route and in Spec.Procedure.
const (
	ExpenseServiceCreateExpenseProcedure = "/splitpayment.v1.ExpenseService/CreateExpense"
	ExpenseServiceListExpensesProcedure  = "/splitpayment.v1.ExpenseService/ListExpenses"
	ExpenseServiceGetExpenseProcedure    = "/splitpayment.v1.ExpenseService/GetExpense"
)

// ExpenseServiceClient is a client for the splitpayment.v1.ExpenseService service.
type ExpenseServiceClient interface {
	CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	GetExpense(context.Context, *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error)
}

// NewExpenseServiceClient constructs a client for the splitpayment.v1.ExpenseService service.
//
// The URL supplied here should be the base URL for the server
// (for example, http://api.acme.com or https://acme.com/grpc).
func NewExpenseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ExpenseServiceClient {
	opts = clientOptions(opts)
	return &expenseServiceClient{
		createExpense: connect.NewClient[api.CreateExpenseRequest, api.CreateExpenseResponse](
			httpClient,
			baseURL+ExpenseServiceCreateExpenseProcedure,
			opts...,
		),
		listExpenses: connect.NewClient[api.ListExpensesRequest, api.ListExpensesResponse](
			httpClient,
			baseURL+ExpenseServiceListExpensesProcedure,
			opts...,
		),
		getExpense: connect.NewClient[api.GetExpenseRequest, api.GetExpenseResponse](
			httpClient,
			baseURL+ExpenseServiceGetExpenseProcedure,
			opts...,
		),
	}
}

// expenseServiceClient implements ExpenseServiceClient.
type expenseServiceClient struct {
	createExpense *connect.Client[api.CreateExpenseRequest, api.CreateExpenseResponse]
	listExpenses  *connect.Client[api.ListExpensesRequest, api.ListExpensesResponse]
	getExpense    *connect.Client[api.GetExpenseRequest, api.GetExpenseResponse]
}

// CreateExpense calls splitpayment.v1.ExpenseService.CreateExpense.
func (c *expenseServiceClient) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	return c.createExpense.CallUnary(ctx, req)
}

// ListExpenses calls splitpayment.v1.ExpenseService.ListExpenses.
func (c *expenseServiceClient) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

// GetExpense calls splitpayment.v1.ExpenseService.GetExpense.
func (c *expenseServiceClient) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	return c.getExpense.CallUnary(ctx, req)
}

// ExpenseServiceHandler is an implementation of the splitpayment.v1.ExpenseService service.
type ExpenseServiceHandler interface {
	// CreateExpense records an expense and its shares atomically.
	CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error)
	// ListExpenses lists a folder's expenses with the caller's share.
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	// GetExpense returns an expense with its shares.
	GetExpense(context.Context, *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error)
}

// NewExpenseServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	createExpenseHandler := connect.NewUnaryHandler(
		ExpenseServiceCreateExpenseProcedure,
		svc.CreateExpense,
		opts...,
	)
	listExpensesHandler := connect.NewUnaryHandler(
		ExpenseServiceListExpensesProcedure,
		svc.ListExpenses,
		opts...,
	)
	getExpenseHandler := connect.NewUnaryHandler(
		ExpenseServiceGetExpenseProcedure,
		svc.GetExpense,
		opts...,
	)
	return "/splitpayment.v1.ExpenseService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ExpenseServiceCreateExpenseProcedure:
			createExpenseHandler.ServeHTTP(w, r)
		case ExpenseServiceListExpensesProcedure:
			listExpensesHandler.ServeHTTP(w, r)
		case ExpenseServiceGetExpenseProcedure:
			getExpenseHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedExpenseServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedExpenseServiceHandler struct{}

func (UnimplementedExpenseServiceHandler) CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitpayment.v1.ExpenseService.CreateExpense is not implemented"))
}

func (UnimplementedExpenseServiceHandler) ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitpayment.v1.ExpenseService.ListExpenses is not implemented"))
}

func (UnimplementedExpenseServiceHandler) GetExpense(context.Context, *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitpayment.v1.ExpenseService.GetExpense is not implemented"))
}
