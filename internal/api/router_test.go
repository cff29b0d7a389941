package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/autohaus/dealership/internal/core/auth"
	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

type stubAccounts struct {
	accounts map[string]*domain.Account
}

func (s *stubAccounts) FindByEmail(_ context.Context, role domain.Role, email string) (*domain.Account, error) {
	a, ok := s.accounts[string(role)+":"+email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return a, nil
}

type stubAuth struct {
	ports.AuthService
	logins int
}

func (s *stubAuth) Login(context.Context, domain.Role, string, string) (*ports.Session, error) {
	s.logins++
	return nil, domain.ErrInvalidCredentials
}

type countingDashboard struct {
	calls int
}

func (d *countingDashboard) ComputeDashboard(context.Context) (*domain.Snapshot, error) {
	d.calls++
	return &domain.Snapshot{
		RecentActivities: []domain.Activity{},
		TopSellingCars:   []domain.TopSeller{},
		RecentDocuments:  []domain.DocumentSummary{},
	}, nil
}

var boss = &domain.Account{ID: "a1", Email: "boss@dealer.test", Name: "Boss", Role: domain.RoleAdmin}

type testServer struct {
	e         http.Handler
	tokens    *auth.TokenService
	dashboard *countingDashboard
	auth      *stubAuth
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	tokens := auth.NewTokenService("router-secret")
	sessions := auth.NewSessionResolver(tokens, &stubAccounts{accounts: map[string]*domain.Account{
		"admin:" + boss.Email: boss,
	}}, nil)
	ts := &testServer{tokens: tokens, dashboard: &countingDashboard{}, auth: &stubAuth{}}
	ts.e = NewRouter(Deps{
		Log:       zerolog.Nop(),
		Sessions:  sessions,
		Auth:      ts.auth,
		Dashboard: ts.dashboard,
		Login:     LoginLimit{PerSecond: 0.001, Burst: 1},
	})
	return ts
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) cookie(t *testing.T, name string, role domain.Role) *http.Cookie {
	t.Helper()
	tok, _, err := ts.tokens.Issue(auth.Subject{ID: boss.ID, Email: boss.Email, Name: boss.Name}, role, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return &http.Cookie{Name: name, Value: tok}
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return body["error"]
}

func TestRouter_DashboardRequiresAdmin(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		name     string
		cookie   func(t *testing.T) *http.Cookie
		wantCode int
	}{
		{name: "no cookie", cookie: func(*testing.T) *http.Cookie { return nil }, wantCode: http.StatusUnauthorized},
		{name: "garbage token", cookie: func(*testing.T) *http.Cookie {
			return &http.Cookie{Name: auth.AdminCookie, Value: "not-a-jwt"}
		}, wantCode: http.StatusUnauthorized},
		{name: "user token in admin cookie", cookie: func(t *testing.T) *http.Cookie {
			return ts.cookie(t, auth.AdminCookie, domain.RoleUser)
		}, wantCode: http.StatusUnauthorized},
		{name: "admin token in user cookie", cookie: func(t *testing.T) *http.Cookie {
			return ts.cookie(t, auth.UserCookie, domain.RoleAdmin)
		}, wantCode: http.StatusUnauthorized},
		{name: "admin", cookie: func(t *testing.T) *http.Cookie {
			return ts.cookie(t, auth.AdminCookie, domain.RoleAdmin)
		}, wantCode: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := ts.dashboard.calls
			req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard/stats", nil)
			if ck := tc.cookie(t); ck != nil {
				req.AddCookie(ck)
			}
			rec := ts.do(req)
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d: %s", tc.wantCode, rec.Code, rec.Body.String())
			}
			called := ts.dashboard.calls > before
			if tc.wantCode == http.StatusUnauthorized {
				if called {
					t.Fatalf("handler ran without an admin session")
				}
				if msg := errorMessage(t, rec); msg != "authentication required" {
					t.Fatalf("unexpected error message %q", msg)
				}
			} else if !called {
				t.Fatalf("handler was not invoked")
			}
		})
	}
}

func TestRouter_LoginIsThrottled(t *testing.T) {
	ts := newTestServer(t)

	login := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@b.io","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		return ts.do(req)
	}

	if rec := login(); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	rec := login()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d: %s", rec.Code, rec.Body.String())
	}
	if ts.auth.logins != 1 {
		t.Fatalf("throttled request reached the service: %d logins", ts.auth.logins)
	}
}

func TestRouter_Liveness(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

type failingRates struct{}

func (failingRates) Rate(context.Context, string, string) (domain.Rate, error) {
	return domain.Rate{}, errors.New("upstream exploded")
}

func TestRouter_UnexpectedErrorLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	e := NewRouter(Deps{
		Log:      zerolog.New(&buf),
		Sessions: auth.NewSessionResolver(auth.NewTokenService("router-secret"), &stubAccounts{}, nil),
		Rates:    failingRates{},
		Login:    LoginLimit{PerSecond: 1, Burst: 1},
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rates?from=USD&to=EUR", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "internal server error" {
		t.Fatalf("cause leaked to client: %q", msg)
	}

	var errorLines, requestLines int
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		if entry["level"] == "error" {
			errorLines++
		}
		if entry["message"] == "request" {
			requestLines++
			if entry["status"] != float64(http.StatusInternalServerError) {
				t.Fatalf("request line has status %v", entry["status"])
			}
			if _, ok := entry["error"]; ok {
				t.Fatalf("request line repeats the error: %v", entry)
			}
		}
	}
	if errorLines != 1 || requestLines != 1 {
		t.Fatalf("expected one error line and one request line, got %d and %d:\n%s", errorLines, requestLines, buf.String())
	}
}
