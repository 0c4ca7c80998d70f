package apiconnect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/echuwok12/SplitPayment/pkg/api"
)

// AuthServiceName is the fully-qualified name of the AuthService service.
const AuthServiceName = "splitpayment.v1.AuthService"

// These constants are the fully-qualified names of the RPCs defined in this
// service, used as the HTTP route and in Spec.Procedure.
const (
	AuthServiceRegisterProcedure       = "/splitpayment.v1.AuthService/Register"
	AuthServiceLoginProcedure          = "/splitpayment.v1.AuthService/Login"
	AuthServiceLogoutProcedure         = "/splitpayment.v1.AuthService/Logout"
	AuthServiceGetCurrentUserProcedure = "/splitpayment.v1.AuthService/GetCurrentUser"
)

// AuthServiceClient is a client for the splitpayment.v1.AuthService service.
type AuthServiceClient interface {
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	Logout(context.Context, *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error)
}

// NewAuthServiceClient constructs a client for the splitpayment.v1.AuthService service.
//
// The URL supplied here should be the base URL for the server
// (for example, http://api.acme.com or https://acme.com/grpc).
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	opts = clientOptions(opts)
	return &authServiceClient{
		register: connect.NewClient[api.RegisterRequest, api.RegisterResponse](
			httpClient,
			baseURL+AuthServiceRegisterProcedure,
			opts...,
		),
		login: connect.NewClient[api.LoginRequest, api.LoginResponse](
			httpClient,
			baseURL+AuthServiceLoginProcedure,
			opts...,
		),
		logout: connect.NewClient[api.LogoutRequest, api.LogoutResponse](
			httpClient,
			baseURL+AuthServiceLogoutProcedure,
			opts...,
		),
		getCurrentUser: connect.NewClient[api.GetCurrentUserRequest, api.GetCurrentUserResponse](
			httpClient,
			baseURL+AuthServiceGetCurrentUserProcedure,
			opts...,
		),
	}
}

// authServiceClient implements AuthServiceClient.
type authServiceClient struct {
	register       *connect.Client[api.RegisterRequest, api.RegisterResponse]
	login          *connect.Client[api.LoginRequest, api.LoginResponse]
	logout         *connect.Client[api.LogoutRequest, api.LogoutResponse]
	getCurrentUser *connect.Client[api.GetCurrentUserRequest, api.GetCurrentUserResponse]
}

// Register calls splitpayment.v1.AuthService.Register.
func (c *authServiceClient) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

// Login calls splitpayment.v1.AuthService.Login.
func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

// Logout calls splitpayment.v1.AuthService.Logout.
func (c *authServiceClient) Logout(ctx context.Context, req *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	return c.logout.CallUnary(ctx, req)
}

// GetCurrentUser calls splitpayment.v1.AuthService.GetCurrentUser.
func (c *authServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// AuthServiceHandler is an implementation of the splitpayment.v1.AuthService service.
type AuthServiceHandler interface {
	// Register creates an account and returns a session token.
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	// Login exchanges credentials for a session token.
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	// Logout ends a session. Tokens are stateless, so clients discard them.
	Logout(context.Context, *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error)
	// GetCurrentUser returns the account behind the caller's identity.
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	registerHandler := connect.NewUnaryHandler(
		AuthServiceRegisterProcedure,
		svc.Register,
		opts...,
	)
	loginHandler := connect.NewUnaryHandler(
		AuthServiceLoginProcedure,
		svc.Login,
		opts...,
	)
	logoutHandler := connect.NewUnaryHandler(
		AuthServiceLogoutProcedure,
		svc.Logout,
		opts...,
	)
	getCurrentUserHandler := connect.NewUnaryHandler(
		AuthServiceGetCurrentUserProcedure,
		svc.GetCurrentUser,
		opts...,
	)
	return "/splitpayment.v1.AuthService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AuthServiceRegisterProcedure:
			registerHandler.ServeHTTP(w, r)
		case AuthServiceLoginProcedure:
			loginHandler.ServeHTTP(w, r)
		case AuthServiceLogoutProcedure:
			logoutHandler.ServeHTTP(w, r)
		case AuthServiceGetCurrentUserProcedure:
			getCurrentUserHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedAuthServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAuthServiceHandler struct{}

func (UnimplementedAuthServiceHandler) Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitpayment.v1.AuthService.Register is not implemented"))
}

func (UnimplementedAuthServiceHandler) Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitpayment.v1.AuthService.Login is not implemented"))
}

func (UnimplementedAuthServiceHandler) Logout(context.Context, *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitpayment.v1.AuthService.Logout is not implemented"))
}

func (UnimplementedAuthServiceHandler) GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitpayment.v1.AuthService.GetCurrentUser is not implemented"))
}
