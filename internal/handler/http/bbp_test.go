package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/bbp-gateway/internal/app"
	"github.com/MKhiriev/bbp-gateway/internal/logger"
	"github.com/MKhiriev/bbp-gateway/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

// ── missing input: 400, backend not called ───────────────────────────────────

func TestBBP_MissingInputIsBadRequest(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   []byte
	}{
		{"enroll/no body", http.MethodPost, "/api/bbp/company/enroll", nil},
		{"enroll/null body", http.MethodPost, "/api/bbp/company/enroll", []byte("null")},
		{"enroll/blank body", http.MethodPost, "/api/bbp/company/enroll", []byte("  \n")},
		{"activate/no body", http.MethodPost, "/api/bbp/company/activate", nil},
		{"add user/null body", http.MethodPost, "/api/bbp/user", []byte("null")},
		{"update user/no body", http.MethodPut, "/api/bbp/user", nil},
		{"approve/no ids", http.MethodPost, "/api/bbp/payment/approve", nil},
		{"approve/no payment", http.MethodPost, "/api/bbp/payment/approve?userId=u1", nil},
		{"approve/blank user", http.MethodPost, "/api/bbp/payment/approve?userId=&paymentId=p1", nil},
		{"deactivate/no consumer", http.MethodPost, "/api/bbp/company/deactivate", nil},
		{"deactivate ext/no consumer", http.MethodPost, "/api/bbp/company/deactivate/ext", nil},
		{"role/no user", http.MethodPut, "/api/bbp/user/role?companyId=c1", nil},
		{"role/no company", http.MethodPut, "/api/bbp/user/role?userId=u1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no expectations: any backend call fails the test
			h, _ := newTestHandler(t)

			rr := serve(h, tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Empty(t, rr.Body.String())
		})
	}
}

func TestBBP_MalformedJSONIsBadRequest(t *testing.T) {
	targets := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/api/bbp/company/enroll"},
		{http.MethodPost, "/api/bbp/company/activate"},
		{http.MethodPost, "/api/bbp/user"},
		{http.MethodPut, "/api/bbp/user"},
		{http.MethodPut, "/api/bbp/user/entitlements"},
	}

	for _, tt := range targets {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rr := serve(h, tt.method, tt.target, []byte(`{"company_id": `))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), app.MsgInvalidDataProvided)
		})
	}
}

func TestBBP_BodyTooLarge(t *testing.T) {
	h, _ := newTestHandler(t)

	body := append([]byte(`{"company_id":"`), bytes.Repeat([]byte("a"), maxBodyBytes)...)
	body = append(body, []byte(`"}`)...)

	rr := serve(h, http.MethodPost, "/api/bbp/company/enroll", body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgRequestTooLarge)
}

// ── success: 200 with backend value ──────────────────────────────────────────

func TestBBP_EnrollCompany(t *testing.T) {
	h, b := newTestHandler(t)

	req := models.EnrollRequest{ConsumerID: "cons-1", CompanyName: "Acme"}
	resp := models.GatewayResponse{Success: true, Code: "0000", ReferenceID: "ref-1"}
	b.companies.EXPECT().EnrollCompany(gomock.Any(), req).Return(resp, nil)

	rr := serve(h, http.MethodPost, "/api/bbp/company/enroll", mustJSON(t, req))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, string(mustJSON(t, resp)), rr.Body.String())
}

func TestBBP_ActivateCompany_EmptyResponseStillSuccess(t *testing.T) {
	h, b := newTestHandler(t)

	b.companies.EXPECT().ActivateCompany(gomock.Any(), models.EnrollRequest{ConsumerID: "cons-1"}).
		Return(models.GatewayResponse{}, nil)

	rr := serve(h, http.MethodPost, "/api/bbp/company/activate", []byte(`{"consumer_id":"cons-1"}`))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":false}`, rr.Body.String())
}

func TestBBP_DeactivateCompany_FalseIsSuccess(t *testing.T) {
	h, b := newTestHandler(t)

	b.companies.EXPECT().DeactivateCompany(gomock.Any(), "cons-1").Return(false, nil)

	rr := serve(h, http.MethodPost, "/api/bbp/company/deactivate?consumerId=cons-1", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "false", rr.Body.String())
}

func TestBBP_DeactivateCompanyExt(t *testing.T) {
	h, b := newTestHandler(t)

	b.companies.EXPECT().DeactivateCompanyExt(gomock.Any(), "c1").
		Return(models.DeactivationResult{Deactivated: true, Messages: []string{}}, nil)

	rr := serve(h, http.MethodPost, "/api/bbp/company/deactivate/ext?consumerId=c1", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"deactivated":true,"messages":[]}`, rr.Body.String())
}

func TestBBP_ApprovePayment(t *testing.T) {
	h, b := newTestHandler(t)

	b.entitlements.EXPECT().ApprovePayment(gomock.Any(), "p1", "u1").
		Return(models.GatewayResponse{Success: true}, nil)

	rr := serve(h, http.MethodPost, "/api/bbp/payment/approve?userId=u1&paymentId=p1", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())
}

func TestBBP_AddAndUpdateUser(t *testing.T) {
	h, b := newTestHandler(t)

	add := models.AddUserRequest{CompanyID: "c1", UserID: "u1", Email: "u1@acme.test"}
	upd := models.UpdateUserRequest{CompanyID: "c1", UserID: "u1", Status: "SUSPENDED"}
	b.users.EXPECT().AddUser(gomock.Any(), add).Return(models.GatewayResponse{Success: true, Code: "0000"}, nil)
	b.users.EXPECT().UpdateUser(gomock.Any(), upd).Return(models.GatewayResponse{Success: true, Code: "0001"}, nil)

	rr := serve(h, http.MethodPost, "/api/bbp/user", mustJSON(t, add))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"code":"0000"`)

	rr = serve(h, http.MethodPut, "/api/bbp/user", mustJSON(t, upd))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"code":"0001"`)
}

func TestBBP_UpdateUserRole_UpperCasesForBackendOnly(t *testing.T) {
	h, b := newTestHandler(t)

	b.entitlements.EXPECT().UpdateUserRole(gomock.Any(), "c1", "JDOE", true).Return(true, nil)

	rr := serve(h, http.MethodPut, "/api/bbp/user/role?companyId=c1&userId=jdoe", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "true", rr.Body.String())
}

// ── lookups: 404 on absence ──────────────────────────────────────────────────

func TestBBP_UserEntitlements(t *testing.T) {
	h, b := newTestHandler(t)

	ent := models.UserEntitlementResponse{
		CompanyID:    "c1",
		UserID:       "u1",
		Entitlements: []models.Entitlement{{Code: "WIRE", Enabled: true}},
	}
	gomock.InOrder(
		b.entitlements.EXPECT().GetUserEntitlement(gomock.Any(), "c1", "u1").
			Return(models.None[models.UserEntitlementResponse](), nil),
		b.entitlements.EXPECT().GetUserEntitlement(gomock.Any(), "c1", "u1").
			Return(models.Some(ent), nil),
	)

	rr := serve(h, http.MethodGet, "/api/bbp/user/entitlements?companyId=c1&userId=u1", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = serve(h, http.MethodGet, "/api/bbp/user/entitlements?companyId=c1&userId=u1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, string(mustJSON(t, ent)), rr.Body.String())
}

func TestBBP_LookupsWithMissingInputAreNotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   []byte
	}{
		{"entitlements/no ids", http.MethodGet, "/api/bbp/user/entitlements", nil},
		{"set entitlements/null body", http.MethodPut, "/api/bbp/user/entitlements", []byte("null")},
		{"search/no user", http.MethodGet, "/api/bbp/user/search", nil},
		{"delete/no company", http.MethodDelete, "/api/bbp/user?userId=u1", nil},
		{"delete/no ids", http.MethodDelete, "/api/bbp/user", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rr := serve(h, tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Empty(t, rr.Body.String())
		})
	}
}

func TestBBP_SetUserEntitlements(t *testing.T) {
	h, b := newTestHandler(t)

	req := models.SetUserEntitlementRequest{
		CompanyID:    "c1",
		UserID:       "u1",
		Entitlements: []models.Entitlement{{Code: "ACH", Enabled: true, Limit: 2500}},
	}
	resp := models.SetUserEntitlementResponse{CompanyID: "c1", UserID: "u1", Applied: []string{"ACH"}}
	b.entitlements.EXPECT().SetUserEntitlement(gomock.Any(), req).Return(models.Some(resp), nil)

	rr := serve(h, http.MethodPut, "/api/bbp/user/entitlements", mustJSON(t, req))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, string(mustJSON(t, resp)), rr.Body.String())
}

func TestBBP_SearchUser(t *testing.T) {
	h, b := newTestHandler(t)

	b.users.EXPECT().SearchUser(gomock.Any(), "ghost").Return(models.None[models.SearchUserResponse](), nil)
	b.users.EXPECT().SearchUser(gomock.Any(), "u1").
		Return(models.Some(models.SearchUserResponse{Users: []models.UserSummary{}}), nil)

	rr := serve(h, http.MethodGet, "/api/bbp/user/search?userId=ghost", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(h, http.MethodGet, "/api/bbp/user/search?userId=u1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"users":[]}`, rr.Body.String())
}

func TestBBP_WhitespaceIdentifierIsForwarded(t *testing.T) {
	h, b := newTestHandler(t)

	b.companies.EXPECT().DeactivateCompany(gomock.Any(), "  ").Return(false, nil)
	b.users.EXPECT().SearchUser(gomock.Any(), "  ").Return(models.None[models.SearchUserResponse](), nil)

	rr := serve(h, http.MethodPost, "/api/bbp/company/deactivate?consumerId=%20%20", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "false", rr.Body.String())

	rr = serve(h, http.MethodGet, "/api/bbp/user/search?userId=%20%20", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBBP_DeleteUser(t *testing.T) {
	h, b := newTestHandler(t)

	resp := models.DeleteUserResponse{UserID: "u1", CompanyID: "c1", Deleted: true}
	b.users.EXPECT().DeleteUser(gomock.Any(), "u1", "c1").Return(models.Some(resp), nil)

	rr := serve(h, http.MethodDelete, "/api/bbp/user?userId=u1&companyId=c1", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, string(mustJSON(t, resp)), rr.Body.String())
}

// ── backend failures ─────────────────────────────────────────────────────────

func TestBBP_BackendFailureIsServerError(t *testing.T) {
	var buf bytes.Buffer
	h, b := newTestHandlerWithLogger(t, &logger.Logger{Logger: zerolog.New(&buf)})

	b.users.EXPECT().SearchUser(gomock.Any(), "u1").
		Return(models.None[models.SearchUserResponse](), errors.New("backend exploded: secret detail"))

	rr := serve(h, http.MethodGet, "/api/bbp/user/search?userId=u1", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret detail")
	assert.Contains(t, rr.Body.String(), app.MsgInternalServerError)
	assert.Contains(t, buf.String(), "secret detail")
	assert.Contains(t, buf.String(), `"trace_id"`)
}

func TestBBP_BackendTimeoutIsGatewayTimeout(t *testing.T) {
	h, b := newTestHandler(t)

	b.companies.EXPECT().DeactivateCompanyExt(gomock.Any(), "c1").
		Return(models.DeactivationResult{}, fmt.Errorf("backend unavailable: %w", context.DeadlineExceeded))

	rr := serve(h, http.MethodPost, "/api/bbp/company/deactivate/ext?consumerId=c1", nil)

	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgBackendTimeout)
}

func TestBBP_PanicIsRecovered(t *testing.T) {
	h, b := newTestHandler(t)

	b.companies.EXPECT().DeactivateCompany(gomock.Any(), "c1").
		DoAndReturn(func(context.Context, string) (bool, error) { panic("boom") })

	rr := serve(h, http.MethodPost, "/api/bbp/company/deactivate?consumerId=c1", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ── transport details ────────────────────────────────────────────────────────

func TestBBP_TraceIDEchoed(t *testing.T) {
	h, b := newTestHandler(t)

	b.users.EXPECT().SearchUser(gomock.Any(), "u1").Return(models.None[models.SearchUserResponse](), nil)

	req := mustRequest(t, http.MethodGet, "/api/bbp/user/search?userId=u1")
	req.Header.Set(traceIDHeader, "trace-123")
	rr := serveRequest(h, req)

	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}

func TestBBP_UnsupportedMethod(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodPatch, "/api/bbp/user", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Contains(t, rr.Header().Get("Allow"), http.MethodPost)
	assert.Contains(t, rr.Header().Get("Allow"), http.MethodDelete)
}

func TestBBP_UnknownRoute(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodGet, "/api/bbp/unknown", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
