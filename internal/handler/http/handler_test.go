package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/bbp-gateway/internal/config"
	"github.com/MKhiriev/bbp-gateway/internal/gateway"
	"github.com/MKhiriev/bbp-gateway/internal/logger"
	"github.com/MKhiriev/bbp-gateway/internal/mock"
	"github.com/MKhiriev/bbp-gateway/internal/service"
	"github.com/MKhiriev/bbp-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testBackend struct {
	companies    *mock.MockCompanyOperations
	entitlements *mock.MockEntitlementOperations
	users        *mock.MockUserOperations
}

var testApp = config.App{Name: "bbp-gateway", Version: "1.4.0"}

func newTestHandler(t *testing.T) (*Handler, testBackend) {
	t.Helper()
	return newTestHandlerWithLogger(t, logger.Nop())
}

func newTestHandlerWithLogger(t *testing.T, log *logger.Logger) (*Handler, testBackend) {
	t.Helper()
	ctrl := gomock.NewController(t)
	b := testBackend{
		companies:    mock.NewMockCompanyOperations(ctrl),
		entitlements: mock.NewMockEntitlementOperations(ctrl),
		users:        mock.NewMockUserOperations(ctrl),
	}

	gw, err := gateway.New(&service.Services{
		Companies:    b.companies,
		Entitlements: b.entitlements,
		Users:        b.users,
	}, nil, log)
	require.NoError(t, err)

	buildInfo := models.NewAppBuildInfo("1.4.0-rc1", "2026-10-01", "abc1234")
	return NewHandler(gw, testApp, time.Minute, buildInfo, log), b
}

// serve runs one request through the full router.
func serve(h *Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	return serveRequest(h, httptest.NewRequest(method, target, reader))
}

func serveRequest(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func mustRequest(t *testing.T, method, target string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, target, nil)
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	h, _ := newTestHandler(t)

	require.NotNil(t, h)
	assert.NotNil(t, h.gateway)
	assert.Equal(t, testApp, h.app)
	assert.Equal(t, time.Minute, h.requestTimeout)
	assert.Equal(t, "abc1234", h.buildInfo.BuildCommit())
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1, _ := newTestHandler(t)
	h2, _ := newTestHandler(t)

	assert.NotSame(t, h1, h2)
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/version/"},
		{http.MethodPost, "/api/bbp/company/enroll"},
		{http.MethodPost, "/api/bbp/company/activate"},
		{http.MethodPost, "/api/bbp/company/deactivate"},
		{http.MethodPost, "/api/bbp/company/deactivate/ext"},
		{http.MethodPost, "/api/bbp/payment/approve"},
		{http.MethodPost, "/api/bbp/user"},
		{http.MethodPut, "/api/bbp/user"},
		{http.MethodDelete, "/api/bbp/user"},
		{http.MethodGet, "/api/bbp/user/search"},
		{http.MethodPut, "/api/bbp/user/role"},
		{http.MethodGet, "/api/bbp/user/entitlements"},
		{http.MethodPut, "/api/bbp/user/entitlements"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			assert.Contains(t, allowedMethods(router, rt.path), rt.method)
		})
	}
}

func TestGetVersion(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodGet, "/api/version/", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"name": "bbp-gateway",
		"version": "1.4.0",
		"build_date": "2026-10-01",
		"build_commit": "abc1234"
	}`, rr.Body.String())
}

func TestGetVersion_FallsBackToBuildVersion(t *testing.T) {
	h, _ := newTestHandler(t)
	h.app.Version = ""

	rr := serve(h, http.MethodGet, "/api/version/", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"version":"1.4.0-rc1"`)
}
