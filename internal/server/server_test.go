package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/echuwok12/SplitPayment/internal/auth"
	"github.com/echuwok12/SplitPayment/internal/ledger"
	"github.com/echuwok12/SplitPayment/internal/metrics"
	"github.com/echuwok12/SplitPayment/internal/models"
	"github.com/echuwok12/SplitPayment/internal/storage/sqlite"
	"github.com/echuwok12/SplitPayment/pkg/api"
	"github.com/echuwok12/SplitPayment/pkg/api/apiconnect"
)

const demoUserID = "demo-user-id"

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func newTestServer(t *testing.T, health Pinger, staticPath string) (*httptest.Server, *metrics.Metrics) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "server.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.EnsureUser(context.Background(), &models.User{ID: demoUserID, Email: "demo@example.com", DisplayName: "Demo User"}); err != nil {
		t.Fatalf("failed to create demo user: %v", err)
	}
	if health == nil {
		health = store
	}

	m := metrics.New()
	srv, err := New(Options{
		Ledger:        ledger.New(store, ledger.WithMetrics(m)),
		Authenticator: auth.NewPasswordAuthenticator(store),
		JWTManager:    auth.NewJWTManager("server-test-secret", time.Hour),
		Health:        health,
		Metrics:       m,
		DemoUserID:    demoUserID,
		StaticPath:    staticPath,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, m
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestRPCThroughRouter(t *testing.T) {
	ts, _ := newTestServer(t, nil, "")
	ctx := context.Background()

	folders := apiconnect.NewFolderServiceClient(http.DefaultClient, ts.URL)
	created, err := folders.CreateFolder(ctx, connect.NewRequest(&api.CreateFolderRequest{Name: "Router trip"}))
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	if created.Msg.Folder.CreatedBy != demoUserID {
		t.Errorf("createdBy: expected %s, got %s", demoUserID, created.Msg.Folder.CreatedBy)
	}

	member, err := folders.AddMember(ctx, connect.NewRequest(&api.AddMemberRequest{FolderID: created.Msg.Folder.ID, Name: "Demo", UserID: demoUserID}))
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}

	expenses := apiconnect.NewExpenseServiceClient(http.DefaultClient, ts.URL)
	if _, err := expenses.CreateExpense(ctx, connect.NewRequest(&api.CreateExpenseRequest{
		FolderID: created.Msg.Folder.ID, Description: "Snacks", Amount: "4.20", PaidBy: member.Msg.Member.ID,
	})); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	status, body := get(t, ts.URL+"/metrics")
	if status != http.StatusOK {
		t.Fatalf("/metrics status: %d", status)
	}
	for _, want := range []string{
		"splitpayment_rpc_requests_total{",
		`procedure="/splitpayment.v1.FolderService/CreateFolder"`,
		`splitpayment_expenses_created_total{split_type="equal"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("/metrics is missing %q", want)
		}
	}
}

func TestRPC_InvalidTokenRejected(t *testing.T) {
	ts, _ := newTestServer(t, nil, "")

	folders := apiconnect.NewFolderServiceClient(http.DefaultClient, ts.URL)
	req := connect.NewRequest(&api.ListFolderSummariesRequest{})
	req.Header().Set("Authorization", "Bearer nope")
	_, err := folders.ListFolderSummaries(context.Background(), req)
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("expected unauthenticated, got %v", err)
	}
}

func TestHealthz(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		ts, _ := newTestServer(t, nil, "")
		status, body := get(t, ts.URL+"/healthz")
		if status != http.StatusOK || !strings.Contains(body, `"ok"`) {
			t.Errorf("got %d %s", status, body)
		}
	})

	t.Run("store down", func(t *testing.T) {
		down := pingFunc(func(context.Context) error { return errors.New("database is closed") })
		ts, _ := newTestServer(t, down, "")
		status, body := get(t, ts.URL+"/healthz")
		if status != http.StatusServiceUnavailable || !strings.Contains(body, `"unavailable"`) {
			t.Errorf("got %d %s", status, body)
		}
	})
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>index</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('app')"), 0o644); err != nil {
		t.Fatal(err)
	}

	ts, _ := newTestServer(t, nil, dir)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "root", path: "/", wantStatus: http.StatusOK, wantBody: "<h1>index</h1>"},
		{name: "asset", path: "/app.js", wantStatus: http.StatusOK, wantBody: "console.log('app')"},
		{name: "unknown path falls back to index", path: "/folder/123", wantStatus: http.StatusOK, wantBody: "<h1>index</h1>"},
		{name: "unknown rpc", path: "/splitpayment.v1.NoService/Call", wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, ts.URL+tt.path)
			if status != tt.wantStatus {
				t.Fatalf("status: expected %d, got %d", tt.wantStatus, status)
			}
			if tt.wantBody != "" && body != tt.wantBody {
				t.Errorf("body: expected %q, got %q", tt.wantBody, body)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	ts, _ := newTestServer(t, nil, "")

	req, err := http.NewRequest(http.MethodOptions, ts.URL+apiconnect.FolderServiceCreateFolderProcedure, nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(resp.Header.Get("Access-Control-Allow-Headers"), "Authorization") {
		t.Errorf("Authorization not allowed: %q", resp.Header.Get("Access-Control-Allow-Headers"))
	}
}
