package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/echuwok12/SplitPayment/internal/auth"
	"github.com/echuwok12/SplitPayment/internal/ledger"
	"github.com/echuwok12/SplitPayment/internal/middleware"
	"github.com/echuwok12/SplitPayment/internal/models"
	"github.com/echuwok12/SplitPayment/internal/storage/sqlite"
	"github.com/echuwok12/SplitPayment/pkg/api/apiconnect"
)

const testUserID = "test-user-id"

// testAuthInterceptor returns a Connect interceptor that sets a test user ID in the context.
func testAuthInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			return next(middleware.WithUser(ctx, testUserID, "tester@example.com"), req)
		}
	}
}

type testClients struct {
	folders  apiconnect.FolderServiceClient
	expenses apiconnect.ExpenseServiceClient
	auth     apiconnect.AuthServiceClient
	store    *sqlite.SQLiteStore
}

func newTestStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	user := &models.User{ID: testUserID, Email: "tester@example.com", DisplayName: "Tester"}
	if err := store.EnsureUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return store
}

// setupTestServer serves every service behind the given interceptor.
func setupTestServer(t *testing.T, interceptor connect.Interceptor) testClients {
	t.Helper()

	store := newTestStore(t)
	l := ledger.New(store)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store)

	opts := connect.WithInterceptors(interceptor, middleware.LoggingInterceptor())

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewFolderServiceHandler(NewFolderService(l), opts))
	mux.Handle(apiconnect.NewExpenseServiceHandler(NewExpenseService(l), opts))
	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, nil), opts))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return testClients{
		folders:  apiconnect.NewFolderServiceClient(http.DefaultClient, server.URL),
		expenses: apiconnect.NewExpenseServiceClient(http.DefaultClient, server.URL),
		auth:     apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		store:    store,
	}
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect error, got %T: %v", err, err)
	}
	if connectErr.Code() != want {
		t.Errorf("code: expected %v, got %v (%s)", want, connectErr.Code(), connectErr.Message())
	}
}
