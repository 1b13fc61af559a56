package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/greenhouse/console/internal/core/service"
	"github.com/greenhouse/console/internal/infrastructure/greenhouseapi"
	"github.com/greenhouse/console/internal/infrastructure/tokenstore"
)

// backend is a minimal greenhouse API: one account per role, a small catalogue.
func backend(t *testing.T) *httptest.Server {
	t.Helper()
	tokens := map[string]string{}
	for user, role := range map[string]string{"root": "Administrator", "eve": "Employee", "cora": "Client"} {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": user, "role": role}).SignedString([]byte("k"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		tokens[user] = tok
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/login":
			var body struct{ Login string }
			_ = json.NewDecoder(r.Body).Decode(&body)
			tok, ok := tokens[body.Login]
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"token": tok})
		case "/api/plants":
			_, _ = w.Write([]byte(`[{"id":"p1","name":"Fern","light":1}]`))
		case "/api/seeds":
			w.WriteHeader(http.StatusInternalServerError)
		case "/api/users":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
}

func newTestRouter(baseURL string) *echo.Echo {
	log := zerolog.Nop()
	store := tokenstore.NewMemoryStore()
	client := greenhouseapi.NewAPIClient(greenhouseapi.StaticConfiguration{BasePath: baseURL, AccessToken: store}, nil)

	plants := service.NewPlantService(client.Plants, log)
	seeds := service.NewSeedService(client.Seeds, log)
	journal := service.NewJournalService(client.Journal, client.GrowthStages, log)
	employees := service.NewEmployeeService(client.Employees, log)
	clients := service.NewClientService(client.Clients, log)
	admins := service.NewAdminService(client.Administrators, log)
	users := service.NewUserService(client.Users, client.Auth, log)
	session := service.NewSessionController(client.Auth, store, log)
	session.OnLogout(employees.Invalidate)
	client.OnUnauthorized(session.Evict)

	return NewRouter(Deps{
		Log:        log,
		Session:    session,
		Dashboards: service.NewDashboardService(plants, seeds, journal, employees, clients, admins, log),
		Plants:     plants,
		Seeds:      seeds,
		Journal:    journal,
		Employees:  employees,
		Clients:    clients,
		Admins:     admins,
		Users:      users,
	})
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_AnonymousIsSentToLogin(t *testing.T) {
	srv := backend(t)
	defer srv.Close()
	e := newTestRouter(srv.URL)

	for _, path := range []string{"/", "/admin", "/employee/journal", "/client/profile"} {
		rec := serve(e, http.MethodGet, path, "")
		if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/login" {
			t.Errorf("%s: expected 303 to /login, got %d %q", path, rec.Code, rec.Header().Get(echo.HeaderLocation))
		}
	}
}

func TestRouter_AdminFlow(t *testing.T) {
	srv := backend(t)
	defer srv.Close()
	e := newTestRouter(srv.URL)

	rec := serve(e, http.MethodPost, "/auth/login", `{"identifier":"root","password":"pw"}`)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"redirect":"/admin"`) {
		t.Fatalf("login: %d %s", rec.Code, rec.Body.String())
	}

	rec = serve(e, http.MethodGet, "/", "")
	if rec.Header().Get(echo.HeaderLocation) != "/admin" {
		t.Fatalf("expected home redirect to /admin, got %q", rec.Header().Get(echo.HeaderLocation))
	}

	rec = serve(e, http.MethodGet, "/admin", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard: %d %s", rec.Code, rec.Body.String())
	}
	var dash map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &dash); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(dash["plants"]) != 1 || dash["seeds"] == nil || len(dash["seeds"]) != 0 {
		t.Fatalf("unexpected dashboard: %s", rec.Body.String())
	}

	rec = serve(e, http.MethodGet, "/admin/seeds", "")
	if rec.Code != http.StatusInternalServerError || !strings.Contains(rec.Body.String(), "Failed to fetch the seed list") {
		t.Fatalf("seed failure: %d %s", rec.Code, rec.Body.String())
	}

	rec = serve(e, http.MethodDelete, "/admin/users/u1", "")
	if rec.Code != http.StatusNotImplemented || !strings.Contains(rec.Body.String(), "user deletion is not implemented") {
		t.Fatalf("delete user: %d %s", rec.Code, rec.Body.String())
	}

	rec = serve(e, http.MethodGet, "/employee", "")
	if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/admin" {
		t.Fatalf("wrong-role request: %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}

	rec = serve(e, http.MethodPost, "/auth/logout", "")
	if !strings.Contains(rec.Body.String(), `"redirect":"/login"`) {
		t.Fatalf("logout: %s", rec.Body.String())
	}
	rec = serve(e, http.MethodGet, "/admin", "")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after logout, got %d", rec.Code)
	}
}

func TestRouter_RejectedTokenEndsSession(t *testing.T) {
	srv := backend(t)
	defer srv.Close()
	e := newTestRouter(srv.URL)

	if rec := serve(e, http.MethodPost, "/auth/login", `{"identifier":"root","password":"pw"}`); rec.Code != http.StatusOK {
		t.Fatalf("login: %d %s", rec.Code, rec.Body.String())
	}

	rec := serve(e, http.MethodGet, "/admin/users", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 from users list, got %d %s", rec.Code, rec.Body.String())
	}

	rec = serve(e, http.MethodGet, "/", "")
	if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
}

func TestRouter_LoginErrors(t *testing.T) {
	srv := backend(t)
	e := newTestRouter(srv.URL)

	rec := serve(e, http.MethodPost, "/auth/login", `{"identifier":"mallory","password":"pw"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d %s", rec.Code, rec.Body.String())
	}

	srv.Close()
	rec = serve(e, http.MethodPost, "/auth/login", `{"identifier":"root","password":"pw"}`)
	if rec.Code != http.StatusBadGateway || !strings.Contains(rec.Body.String(), "server is unreachable") {
		t.Fatalf("expected 502, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_Health(t *testing.T) {
	e := newTestRouter("http://127.0.0.1:0")

	if rec := serve(e, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("liveness: %d", rec.Code)
	}
	if rec := serve(e, http.MethodGet, "/health/ready", ""); rec.Code != http.StatusOK {
		t.Fatalf("readiness without checks: %d", rec.Code)
	}
	if rec := serve(e, http.MethodGet, "/metrics", ""); rec.Code != http.StatusOK {
		t.Fatalf("metrics: %d", rec.Code)
	}
}
