package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	residenthttp "github.com/aussiebroadwan/iresident/internal/resident/http"
	"github.com/aussiebroadwan/iresident/internal/resident/service"
	"github.com/aussiebroadwan/iresident/internal/resident/store/drivers/sqlite"
	"github.com/aussiebroadwan/iresident/pkg/events"
	"github.com/aussiebroadwan/iresident/pkg/httpx"
	"github.com/aussiebroadwan/iresident/pkg/residentsdk"
	"github.com/stretchr/testify/require"
)

var generous = httpx.RateLimitConfig{RequestsPerWindow: 100000, Window: time.Second, Burst: 100000}

func newTestRouter(t *testing.T) *residenthttp.Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	r := residenthttp.NewRouter("test", st, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.RolesService = &service.RolesService{Store: st}
	r.UsersService = &service.UsersService{Store: st}
	r.VisitorsService = &service.VisitorsService{Store: st}
	r.VehiclesService = &service.VehiclesService{Store: st}
	r.InvitationsService = &service.InvitationsService{Store: st, Events: events.Nop{}}
	r.Metrics = httpx.NewMetrics("resident_test")
	r.Limits = residenthttp.Limits{Strict: generous, Write: generous, Read: generous}
	r.ApplyRoutes()
	return r
}

func call(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.RemoteAddr = "192.0.2.1:1234"
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) residentsdk.ErrorResponse {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	e := decode[residentsdk.ErrorResponse](t, rec)
	require.Equal(t, code, e.Error)
	return e
}

func TestInvitationLifecycle(t *testing.T) {
	h := newTestRouter(t)

	rec := call(t, h, http.MethodPost, "/usuarios/", `{"nombre":"Ana","email":"ana@example.com","fecha_ingreso":"2024-03-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	host := decode[residentsdk.User](t, rec)

	rec = call(t, h, http.MethodPost, "/vehiculos/", `{"placa":"ABC-123","marca":"Nissan","modelo":"Versa","color":"gris","usuario_id":`+itoa(host.ID)+`}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = call(t, h, http.MethodPost, "/visitantes/", `{"nombre":"Beto","fecha_visita":"2024-03-02","usuario_id":`+itoa(host.ID)+`}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	guest := decode[residentsdk.Visitor](t, rec)

	rec = call(t, h, http.MethodPost, "/invitacion/", `{"usuario_id":`+itoa(host.ID)+`,"visitante_id":`+itoa(guest.ID)+`}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	code := decode[residentsdk.IssueInvitationResponse](t, rec).Code
	require.Len(t, code, 36)

	rec = call(t, h, http.MethodGet, "/invitation/"+code, "")
	require.Equal(t, http.StatusOK, rec.Code)
	inv := decode[residentsdk.Invitation](t, rec)
	require.Equal(t, code, inv.Code)
	require.False(t, inv.Redeemed)
	require.NotNil(t, inv.User)
	require.Equal(t, host.ID, inv.User.ID)
	require.Len(t, inv.User.Vehicles, 1)
	require.Equal(t, guest.ID, *inv.VisitorID)

	rec = call(t, h, http.MethodPost, "/invitacion/redeem/", `{"code":"`+code+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.True(t, decode[residentsdk.Invitation](t, rec).Redeemed)

	rec = call(t, h, http.MethodPost, "/invitacion/redeem/", `{"code":"`+code+`"}`)
	e := requireError(t, rec, http.StatusBadRequest, residentsdk.ErrorCodeAlreadyRedeemed)
	require.Contains(t, strings.ToLower(e.ErrorDescription), "already redeemed")

	rec = call(t, h, http.MethodPost, "/invitacion/redeem/", `{"code":"00000000-0000-0000-0000-000000000000"}`)
	requireError(t, rec, http.StatusNotFound, residentsdk.ErrorCodeNotFound)

	rec = call(t, h, http.MethodPost, "/invitacion/redeem/", `{"code":"  "}`)
	requireError(t, rec, http.StatusBadRequest, residentsdk.ErrorCodeInvalidRequest)
}

func TestInvitationLookupUnknownCodeIsNull(t *testing.T) {
	h := newTestRouter(t)

	rec := call(t, h, http.MethodGet, "/invitation/nope", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestInvitationIssueRejectsUnknownReferences(t *testing.T) {
	h := newTestRouter(t)

	rec := call(t, h, http.MethodPost, "/invitacion/", `{"usuario_id":999,"visitante_id":null}`)
	requireError(t, rec, http.StatusBadRequest, residentsdk.ErrorCodeInvalidReference)
}

func TestConcurrentRedeemOverHTTP(t *testing.T) {
	h := newTestRouter(t)

	rec := call(t, h, http.MethodPost, "/invitacion/", `{}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	code := decode[residentsdk.IssueInvitationResponse](t, rec).Code

	const n = 8
	statuses := make([]int, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/invitacion/redeem/", bytes.NewBufferString(`{"code":"`+code+`"}`))
			req.RemoteAddr = "192.0.2.1:1234"
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			statuses[i] = w.Code
		}()
	}
	wg.Wait()

	var ok, rejected int
	for _, s := range statuses {
		switch s {
		case http.StatusOK:
			ok++
		case http.StatusBadRequest:
			rejected++
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, n-1, rejected)
}

func TestUserNotFound(t *testing.T) {
	h := newTestRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		rec := call(t, h, method, "/usuarios/999", "")
		e := requireError(t, rec, http.StatusNotFound, residentsdk.ErrorCodeNotFound)
		require.Equal(t, "User not found", e.ErrorDescription)
	}

	rec := call(t, h, http.MethodPut, "/usuarios/999", `{"nombre":"x"}`)
	requireError(t, rec, http.StatusNotFound, residentsdk.ErrorCodeNotFound)

	rec = call(t, h, http.MethodGet, "/usuarios/abc", "")
	requireError(t, rec, http.StatusBadRequest, residentsdk.ErrorCodeInvalidRequest)
}

func TestUserCRUDAndLogin(t *testing.T) {
	h := newTestRouter(t)

	rec := call(t, h, http.MethodPost, "/roles/", `{"nombre":"residente"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	role := decode[residentsdk.Role](t, rec)

	rec = call(t, h, http.MethodPost, "/usuarios/", `{"nombre":"Ana","email":"ana@example.com","rol_id":`+itoa(role.ID)+`}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	user := decode[residentsdk.User](t, rec)
	require.Equal(t, role.ID, *user.RoleID)

	t.Run("single read carries an empty vehicle list", func(t *testing.T) {
		rec := call(t, h, http.MethodGet, "/usuarios/"+itoa(user.ID), "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"vehiculos":[]`)
	})

	t.Run("list omits vehicles", func(t *testing.T) {
		rec := call(t, h, http.MethodGet, "/usuarios/", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotContains(t, rec.Body.String(), "vehiculos")
		require.Len(t, decode[[]residentsdk.User](t, rec), 1)
	})

	t.Run("partial update", func(t *testing.T) {
		rec := call(t, h, http.MethodPut, "/usuarios/"+itoa(user.ID), `{"telefono":"555-0101","rol_id":null}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		got := decode[residentsdk.User](t, rec)
		require.Equal(t, "Ana", got.Name)
		require.Equal(t, "555-0101", got.Phone)
		require.Nil(t, got.RoleID)
	})

	t.Run("login", func(t *testing.T) {
		rec := call(t, h, http.MethodPost, "/login/", `{"email":"ana@example.com"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.Equal(t, user.ID, decode[residentsdk.User](t, rec).ID)

		rec = call(t, h, http.MethodPost, "/login/", `{"email":"nadie@example.com"}`)
		requireError(t, rec, http.StatusNotFound, residentsdk.ErrorCodeNotFound)

		rec = call(t, h, http.MethodPost, "/login/", `{"email":""}`)
		requireError(t, rec, http.StatusBadRequest, residentsdk.ErrorCodeInvalidRequest)
	})

	t.Run("delete returns the record", func(t *testing.T) {
		rec := call(t, h, http.MethodDelete, "/usuarios/"+itoa(user.ID), "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, user.ID, decode[residentsdk.User](t, rec).ID)

		rec = call(t, h, http.MethodGet, "/usuarios/"+itoa(user.ID), "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRequestValidation(t *testing.T) {
	h := newTestRouter(t)

	cases := []struct {
		name, method, path, body string
	}{
		{"unknown field", http.MethodPost, "/roles/", `{"nombre":"x","extra":1}`},
		{"malformed json", http.MethodPost, "/vehiculos/", `{"placa":`},
		{"empty body", http.MethodPost, "/visitantes/", ""},
		{"bad date", http.MethodPost, "/visitantes/", `{"nombre":"x","fecha_visita":"31/12/2024"}`},
		{"negative limit", http.MethodGet, "/roles/?limit=-1", ""},
		{"non-numeric offset", http.MethodGet, "/vehiculos/?offset=abc", ""},
		{"blank role name", http.MethodPost, "/roles/", `{"nombre":""}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := call(t, h, tc.method, tc.path, tc.body)
			requireError(t, rec, http.StatusBadRequest, residentsdk.ErrorCodeInvalidRequest)
		})
	}

	rec := call(t, h, http.MethodPost, "/vehiculos/", `{"placa":"X","usuario_id":42}`)
	requireError(t, rec, http.StatusBadRequest, residentsdk.ErrorCodeInvalidReference)
}

func TestPagination(t *testing.T) {
	h := newTestRouter(t)

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		rec := call(t, h, http.MethodPost, "/roles/", `{"nombre":"`+name+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	names := func(path string) []string {
		rec := call(t, h, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var out []string
		for _, r := range decode[[]residentsdk.Role](t, rec) {
			out = append(out, r.Name)
		}
		return out
	}

	require.Equal(t, []string{"a", "b", "c", "d", "e"}, names("/roles/"))
	require.Equal(t, []string{"c", "d"}, names("/roles/?offset=2&limit=2"))
	require.Equal(t, []string{"b"}, names("/roles/?skip=1&limit=1"))
	require.Empty(t, names("/roles/?offset=10"))

	rec := call(t, h, http.MethodGet, "/visitantes/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestSystemEndpoints(t *testing.T) {
	h := newTestRouter(t)

	rec := call(t, h, http.MethodGet, "/livez", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "test", decode[residentsdk.HealthResponse](t, rec).Version)

	rec = call(t, h, http.MethodGet, "/readyz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[residentsdk.HealthResponse](t, rec)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)

	rec = call(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `route="GET /readyz"`)

	rec = call(t, h, http.MethodGet, "/livez", "")
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestStrictLimitOnLogin(t *testing.T) {
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	r := residenthttp.NewRouter("test", st, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.UsersService = &service.UsersService{Store: st}
	r.Limits.Strict = httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	r.ApplyRoutes()

	rec := call(t, r, http.MethodPost, "/login/", `{"email":"a@example.com"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(t, r, http.MethodPost, "/login/", `{"email":"a@example.com"}`)
	requireError(t, rec, http.StatusTooManyRequests, residentsdk.ErrorCodeRateLimited)
}

func itoa(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func TestCreateStatusMatchesDocs(t *testing.T) {
	h := newTestRouter(t)

	rec := call(t, h, http.MethodPost, "/roles/", `{"nombre":"residente"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = call(t, h, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Paths map[string]map[string]struct {
			Description string                     `json:"description"`
			Responses   map[string]json.RawMessage `json:"responses"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	for _, path := range []string{"/roles/", "/usuarios/", "/visitantes/", "/vehiculos/", "/invitacion/"} {
		post, ok := doc.Paths[path]["post"]
		require.True(t, ok, path)
		require.Contains(t, post.Responses, "201", path)
		require.NotContains(t, post.Responses, "200", path)
		require.Contains(t, post.Description, "201 Created", path)
	}
}
