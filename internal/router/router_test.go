package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"gym_crm_backend/internal/testutil/fakerepo"

	"github.com/gin-gonic/gin"
)

type testServer struct {
	engine *gin.Engine
	store  *fakerepo.Store
	runner *fakerepo.Runner
}

func newTestServer(t *testing.T, mutate ...func(*Dependencies)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := fakerepo.New()
	runner := &fakerepo.Runner{}
	deps := Dependencies{Tx: runner, Repos: store.Repositories()}
	for _, m := range mutate {
		m(&deps)
	}
	return &testServer{engine: New(deps), store: store, runner: runner}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode[struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}](t, w)
	return body.Error.Code
}

func idOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	rec := decode[map[string]interface{}](t, w)
	id, ok := rec["id"].(float64)
	if !ok || id <= 0 {
		t.Fatalf("missing id in %s", w.Body.String())
	}
	return strconv.FormatInt(int64(id), 10)
}

func TestCreatePeriodThenList(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/periods", `{"label":"3 months","value":"3m","months":3,"price":4500.0,"trainings":24}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	created := decode[map[string]interface{}](t, w)
	if created["label"] != "3 months" || created["value"] != "3m" || created["months"] != 3.0 ||
		created["price"] != 4500.0 || created["trainings"] != 24.0 {
		t.Fatalf("created = %v", created)
	}

	w = s.do(t, http.MethodGet, "/periods", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	list := decode[[]map[string]interface{}](t, w)
	if len(list) != 1 || list[0]["id"] != created["id"] || list[0]["value"] != "3m" {
		t.Fatalf("list = %v", list)
	}
}

func TestCreatePaymentReturnsDecodedBanks(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/payments", `{"label":"Card","value":"card","type":"card","banks":["Bank A","Bank B"]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/payments", "")
	list := decode[[]struct {
		Banks []string `json:"banks"`
		Type  *string  `json:"type"`
	}](t, w)
	if len(list) != 1 {
		t.Fatalf("payments = %s", w.Body.String())
	}
	if got := list[0].Banks; len(got) != 2 || got[0] != "Bank A" || got[1] != "Bank B" {
		t.Fatalf("banks = %v", got)
	}
	if list[0].Type == nil || *list[0].Type != "card" {
		t.Fatalf("type = %v", list[0].Type)
	}
}

func TestCorruptedBanksAreServedAsEmptyList(t *testing.T) {
	s := newTestServer(t)
	id := idOf(t, s.do(t, http.MethodPost, "/payments", `{"label":"Cash","value":"cash","banks":["X"]}`))

	n, _ := strconv.ParseInt(id, 10, 64)
	s.store.SetRawBanks(n, "[oops")

	w := s.do(t, http.MethodGet, "/payments/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"banks":[]`) {
		t.Fatalf("body = %s, want empty banks", w.Body.String())
	}
}

func TestUpdateClientStatusOnly(t *testing.T) {
	s := newTestServer(t)
	id := idOf(t, s.do(t, http.MethodPost, "/clients",
		`{"name":"Anna","surname":"Ivanova","phone":"+7700","group":"Morning","trainer":"Boris","paid":true,"total_sessions":8}`))

	before := decode[map[string]interface{}](t, s.do(t, http.MethodGet, "/clients/"+id, ""))

	w := s.do(t, http.MethodPut, "/clients/"+id, `{"status":"Frozen"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}
	after := decode[map[string]interface{}](t, w)

	if after["status"] != "Frozen" {
		t.Fatalf("status = %v, want Frozen", after["status"])
	}
	for k, v := range before {
		if k == "status" || k == "updated_at" {
			continue
		}
		if after[k] != v {
			t.Errorf("%s changed from %v to %v", k, v, after[k])
		}
	}
}

func TestUpdateRejectsNullOnRequiredField(t *testing.T) {
	s := newTestServer(t)
	id := idOf(t, s.do(t, http.MethodPost, "/trainers", `{"name":"Boris"}`))

	w := s.do(t, http.MethodPut, "/trainers/"+id, `{"name":null}`)
	if w.Code != http.StatusBadRequest || errorCode(t, w) != "VALIDATION_FAILED" {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodPut, "/trainers/"+id, `{"phone":"+7701","comment":null}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	trainer := decode[map[string]interface{}](t, w)
	if trainer["name"] != "Boris" || trainer["phone"] != "+7701" || trainer["comment"] != nil {
		t.Fatalf("trainer = %v", trainer)
	}
}

func TestCreateValidation(t *testing.T) {
	s := newTestServer(t)

	cases := map[string]string{
		"/clients":  `{"name":"Anna"}`,
		"/trainers": `{"phone":"1"}`,
		"/groups":   `{"days":"Mon"}`,
		"/periods":  `{"label":"x","value":"x"}`,
		"/payments": `{"label":"Cash"}`,
	}
	for path, body := range cases {
		w := s.do(t, http.MethodPost, path, body)
		if w.Code != http.StatusBadRequest || errorCode(t, w) != "VALIDATION_FAILED" {
			t.Errorf("POST %s: status = %d, body %s", path, w.Code, w.Body.String())
		}
	}
}

func TestDuplicateValueConflicts(t *testing.T) {
	s := newTestServer(t)

	body := `{"label":"Month","value":"1m","months":1,"price":1500,"trainings":8}`
	if w := s.do(t, http.MethodPost, "/periods", body); w.Code != http.StatusCreated {
		t.Fatalf("first create = %d", w.Code)
	}
	w := s.do(t, http.MethodPost, "/periods", body)
	if w.Code != http.StatusConflict || errorCode(t, w) != "CONFLICT" {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	s.do(t, http.MethodPost, "/payments", `{"label":"Cash","value":"cash"}`)
	id := idOf(t, s.do(t, http.MethodPost, "/payments", `{"label":"Card","value":"card"}`))
	if w := s.do(t, http.MethodPut, "/payments/"+id, `{"value":"cash"}`); w.Code != http.StatusConflict {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	s := newTestServer(t)

	for _, resource := range []string{"clients", "trainers", "groups", "periods", "payments", "freezeSettings"} {
		w := s.do(t, http.MethodDelete, "/"+resource+"/999", "")
		if w.Code != http.StatusNotFound || errorCode(t, w) != "NOT_FOUND" {
			t.Errorf("DELETE /%s/999: status = %d, body %s", resource, w.Code, w.Body.String())
		}
	}
}

func TestDeleteRemovesFromList(t *testing.T) {
	s := newTestServer(t)
	keep := idOf(t, s.do(t, http.MethodPost, "/groups", `{"name":"Morning","days":"Mon,Wed"}`))
	drop := idOf(t, s.do(t, http.MethodPost, "/groups", `{"name":"Evening"}`))

	w := s.do(t, http.MethodDelete, "/groups/"+drop, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	ack := decode[map[string]interface{}](t, w)
	if ack["ok"] != true || ack["message"] == "" {
		t.Fatalf("ack = %v", ack)
	}

	list := decode[[]map[string]interface{}](t, s.do(t, http.MethodGet, "/groups", ""))
	if len(list) != 1 || strconv.FormatFloat(list[0]["id"].(float64), 'f', -1, 64) != keep {
		t.Fatalf("groups = %v", list)
	}
	if w := s.do(t, http.MethodGet, "/groups/"+drop, ""); w.Code != http.StatusNotFound {
		t.Fatalf("get deleted = %d", w.Code)
	}
}

func TestEmptyListIsArray(t *testing.T) {
	s := newTestServer(t)
	for _, resource := range []string{"clients", "trainers", "groups", "periods", "payments", "freezeSettings"} {
		w := s.do(t, http.MethodGet, "/"+resource, "")
		if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
			t.Errorf("GET /%s = %d %s", resource, w.Code, w.Body.String())
		}
	}
}

func TestFreezeSettingsDefaults(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/freezeSettings", `{}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	got := decode[map[string]interface{}](t, w)
	if got["maxDays"] != 30.0 || got["requireConfirm"] != false {
		t.Fatalf("settings = %v", got)
	}
	if reasons, ok := got["reasons"].([]interface{}); !ok || len(reasons) != 0 {
		t.Fatalf("reasons = %v", got["reasons"])
	}
}

func TestBadIDIsRejected(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/clients/abc", "/periods/0", "/payments/-3"} {
		if w := s.do(t, http.MethodGet, path, ""); w.Code != http.StatusBadRequest {
			t.Errorf("GET %s = %d", path, w.Code)
		}
	}
}

func TestStorageFailureIsInternalError(t *testing.T) {
	s := newTestServer(t)
	s.runner.Err = errors.New("connection reset")

	w := s.do(t, http.MethodGet, "/clients", "")
	if w.Code != http.StatusInternalServerError || errorCode(t, w) != "INTERNAL_SERVER_ERROR" {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "connection reset") {
		t.Fatal("internal error details leaked to the client")
	}
}

func TestHealthEndpoints(t *testing.T) {
	healthy := newTestServer(t, func(d *Dependencies) {
		d.Health = func(context.Context) error { return nil }
	})
	if w := healthy.do(t, http.MethodGet, "/ping", ""); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("ping = %d %s", w.Code, w.Body.String())
	}
	if w := healthy.do(t, http.MethodGet, "/healthz", ""); w.Code != http.StatusOK {
		t.Fatalf("healthz = %d", w.Code)
	}

	down := newTestServer(t, func(d *Dependencies) {
		d.Health = func(context.Context) error { return errors.New("db down") }
	})
	if w := down.do(t, http.MethodGet, "/healthz", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("healthz = %d", w.Code)
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/ping", "")
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected generated X-Request-ID")
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/clients", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("Allow-Origin = %q", got)
	}
}

func TestExportClients(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/clients", `{"name":"Anna","surname":"Ivanova","phone":"1"}`)

	w := s.do(t, http.MethodGet, "/export/clients", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Fatalf("Content-Type = %q", ct)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "clients.xlsx") {
		t.Fatalf("Content-Disposition = %q", w.Header().Get("Content-Disposition"))
	}
	// xlsx files are zip archives.
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Fatal("body is not an xlsx archive")
	}

	if w := s.do(t, http.MethodGet, "/export/references", ""); w.Code != http.StatusOK {
		t.Fatalf("references status = %d", w.Code)
	}
}

func TestUnknownRouteWithoutFrontend(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/nowhere", "")
	if w.Code != http.StatusNotFound || errorCode(t, w) != "NOT_FOUND" {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestFrontendFallback(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>crm</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "favicon.ico"), []byte("icon"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := newTestServer(t, func(d *Dependencies) { d.StaticDir = dir })

	if w := s.do(t, http.MethodGet, "/clients/list/view", ""); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "crm") {
		t.Fatalf("spa route = %d %s", w.Code, w.Body.String())
	}
	if w := s.do(t, http.MethodGet, "/favicon.ico", ""); w.Body.String() != "icon" {
		t.Fatalf("favicon body = %q", w.Body.String())
	}
	if w := s.do(t, http.MethodPost, "/nowhere", `{}`); w.Code != http.StatusNotFound {
		t.Fatalf("POST unknown = %d", w.Code)
	}
	if w := s.do(t, http.MethodGet, "/clients", ""); w.Code != http.StatusOK || strings.Contains(w.Body.String(), "crm") {
		t.Fatalf("api route shadowed by frontend: %d %s", w.Code, w.Body.String())
	}
}
