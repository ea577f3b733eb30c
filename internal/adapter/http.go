// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the business banking backend.
//
// [NewHTTPBackendAdapter] returns a [service.Backend] that talks JSON over
// HTTP to the backend facade. The base URL, channel id and per-call timeout
// are read from the monitored service configuration on every call, so a
// config reload takes effect for the next request without a restart.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go. Lookup operations (entitlements, search, delete) report a
// missing resource as an empty [models.Option] instead of an error.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/bbp-gateway/internal/config"
	"github.com/MKhiriev/bbp-gateway/internal/logger"
	"github.com/MKhiriev/bbp-gateway/internal/service"
	"github.com/MKhiriev/bbp-gateway/internal/utils"
	"github.com/MKhiriev/bbp-gateway/models"
	"github.com/go-resty/resty/v2"
)

// ChannelIDHeader carries the configured channel id on every backend call.
const ChannelIDHeader = "X-Channel-ID"

// Backend facade endpoints.
const (
	pathEnrollCompany        = "/bbp/companies/enroll"
	pathActivateCompany      = "/bbp/companies/activate"
	pathDeactivateCompany    = "/bbp/companies/{consumerId}/deactivate"
	pathDeactivateCompanyExt = "/bbp/companies/{consumerId}/deactivate-ext"
	pathApprovePayment       = "/bbp/payments/{paymentId}/approve"
	pathUserEntitlements     = "/bbp/companies/{companyId}/users/{userId}/entitlements"
	pathSetEntitlements      = "/bbp/entitlements"
	pathUserRole             = "/bbp/companies/{companyId}/users/{userId}/role"
	pathUsers                = "/bbp/users"
	pathUser                 = "/bbp/users/{userId}"
	pathCompanyUser          = "/bbp/companies/{companyId}/users/{userId}"
)

type httpBackendAdapter struct {
	client  *utils.HTTPClient
	monitor *config.Monitor

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [service.Backend]. Retries are disabled: each operation makes exactly one
// backend call.
func NewHTTPBackendAdapter(monitor *config.Monitor, logger *logger.Logger) (service.Backend, error) {
	if monitor == nil {
		return nil, ErrNoMonitorProvided
	}

	h := &httpBackendAdapter{monitor: monitor, logger: logger}
	h.client = utils.NewHTTPClient(
		utils.WithRetries(0),
		utils.WithHeader("Accept", "application/json"),
		utils.WithResponseHook(h.logResponse),
	)

	return h, nil
}

func (h *httpBackendAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	logger.FromContextOr(resp.Request.Context(), h.logger).Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("backend response")
	return nil
}

// request prepares a call against the current service settings. The returned
// cancel func releases the per-call timeout and must always be called.
func (h *httpBackendAdapter) request(ctx context.Context) (*resty.Request, string, context.CancelFunc) {
	cfg := h.monitor.CurrentValue()

	cancel := context.CancelFunc(func() {})
	if cfg.RequestTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.RequestTimeout)
	}

	req := h.client.R().SetContext(ctx)
	if cfg.ChannelID != "" {
		req.SetHeader(ChannelIDHeader, cfg.ChannelID)
	}

	return req, strings.TrimRight(cfg.BackendURL, "/"), cancel
}

func (h *httpBackendAdapter) EnrollCompany(ctx context.Context, req models.EnrollRequest) (models.GatewayResponse, error) {
	return h.postGatewayResponse(ctx, "enroll company", pathEnrollCompany, req)
}

func (h *httpBackendAdapter) ActivateCompany(ctx context.Context, req models.EnrollRequest) (models.GatewayResponse, error) {
	return h.postGatewayResponse(ctx, "activate company", pathActivateCompany, req)
}

func (h *httpBackendAdapter) DeactivateCompany(ctx context.Context, consumerID string) (bool, error) {
	r, baseURL, cancel := h.request(ctx)
	defer cancel()

	resp, err := r.
		SetPathParam("consumerId", consumerID).
		Post(baseURL + pathDeactivateCompany)
	if err != nil {
		return false, fmt.Errorf("%w: deactivate company request: %w", ErrBackendUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return decodeBool(resp)
}

func (h *httpBackendAdapter) DeactivateCompanyExt(ctx context.Context, consumerID string) (models.DeactivationResult, error) {
	r, baseURL, cancel := h.request(ctx)
	defer cancel()

	resp, err := r.
		SetPathParam("consumerId", consumerID).
		Post(baseURL + pathDeactivateCompanyExt)
	if err != nil {
		return models.DeactivationResult{}, fmt.Errorf("%w: deactivate company ext request: %w", ErrBackendUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeactivationResult{}, err
	}

	var result models.DeactivationResult
	if err = decode(resp, &result); err != nil {
		return models.DeactivationResult{}, err
	}
	return result, nil
}

func (h *httpBackendAdapter) ApprovePayment(ctx context.Context, paymentID, userID string) (models.GatewayResponse, error) {
	r, baseURL, cancel := h.request(ctx)
	defer cancel()

	resp, err := r.
		SetPathParam("paymentId", paymentID).
		SetQueryParam("userId", userID).
		Post(baseURL + pathApprovePayment)
	if err != nil {
		return models.GatewayResponse{}, fmt.Errorf("%w: approve payment request: %w", ErrBackendUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GatewayResponse{}, err
	}

	var result models.GatewayResponse
	if err = decode(resp, &result); err != nil {
		return models.GatewayResponse{}, err
	}
	return result, nil
}

func (h *httpBackendAdapter) GetUserEntitlement(ctx context.Context, companyID, userID string) (models.Option[models.UserEntitlementResponse], error) {
	r, baseURL, cancel := h.request(ctx)
	defer cancel()

	resp, err := r.
		SetPathParams(map[string]string{"companyId": companyID, "userId": userID}).
		Get(baseURL + pathUserEntitlements)
	if err != nil {
		return models.None[models.UserEntitlementResponse](), fmt.Errorf("%w: get user entitlement request: %w", ErrBackendUnavailable, err)
	}

	return lookup[models.UserEntitlementResponse](resp)
}

func (h *httpBackendAdapter) SetUserEntitlement(ctx context.Context, req models.SetUserEntitlementRequest) (models.Option[models.SetUserEntitlementResponse], error) {
	r, baseURL, cancel := h.request(ctx)
	defer cancel()

	resp, err := r.
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(baseURL + pathSetEntitlements)
	if err != nil {
		return models.None[models.SetUserEntitlementResponse](), fmt.Errorf("%w: set user entitlement request: %w", ErrBackendUnavailable, err)
	}

	return lookup[models.SetUserEntitlementResponse](resp)
}

func (h *httpBackendAdapter) UpdateUserRole(ctx context.Context, companyID, userID string, grant bool) (bool, error) {
	r, baseURL, cancel := h.request(ctx)
	defer cancel()

	resp, err := r.
		SetPathParams(map[string]string{"companyId": companyID, "userId": userID}).
		SetQueryParam("grant", strconv.FormatBool(grant)).
		Put(baseURL + pathUserRole)
	if err != nil {
		return false, fmt.Errorf("%w: update user role request: %w", ErrBackendUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return decodeBool(resp)
}

func (h *httpBackendAdapter) AddUser(ctx context.Context, req models.AddUserRequest) (models.GatewayResponse, error) {
	return h.postGatewayResponse(ctx, "add user", pathUsers, req)
}

func (h *httpBackendAdapter) SearchUser(ctx context.Context, userID string) (models.Option[models.SearchUserResponse], error) {
	r, baseURL, cancel := h.request(ctx)
	defer cancel()

	resp, err := r.
		SetPathParam("userId", userID).
		Get(baseURL + pathUser)
	if err != nil {
		return models.None[models.SearchUserResponse](), fmt.Errorf("%w: search user request: %w", ErrBackendUnavailable, err)
	}

	return lookup[models.SearchUserResponse](resp)
}

func (h *httpBackendAdapter) UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.GatewayResponse, error) {
	r, baseURL, cancel := h.request(ctx)
	defer cancel()

	resp, err := r.
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(baseURL + pathUsers)
	if err != nil {
		return models.GatewayResponse{}, fmt.Errorf("%w: update user request: %w", ErrBackendUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GatewayResponse{}, err
	}

	var result models.GatewayResponse
	if err = decode(resp, &result); err != nil {
		return models.GatewayResponse{}, err
	}
	return result, nil
}

func (h *httpBackendAdapter) DeleteUser(ctx context.Context, userID, companyID string) (models.Option[models.DeleteUserResponse], error) {
	r, baseURL, cancel := h.request(ctx)
	defer cancel()

	resp, err := r.
		SetPathParams(map[string]string{"companyId": companyID, "userId": userID}).
		Delete(baseURL + pathCompanyUser)
	if err != nil {
		return models.None[models.DeleteUserResponse](), fmt.Errorf("%w: delete user request: %w", ErrBackendUnavailable, err)
	}

	return lookup[models.DeleteUserResponse](resp)
}

func (h *httpBackendAdapter) postGatewayResponse(ctx context.Context, operation, path string, body any) (models.GatewayResponse, error) {
	r, baseURL, cancel := h.request(ctx)
	defer cancel()

	resp, err := r.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(baseURL + path)
	if err != nil {
		return models.GatewayResponse{}, fmt.Errorf("%w: %s request: %w", ErrBackendUnavailable, operation, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GatewayResponse{}, err
	}

	var result models.GatewayResponse
	if err = decode(resp, &result); err != nil {
		return models.GatewayResponse{}, err
	}
	return result, nil
}

// lookup decodes a lookup-style response. Absence is not an error.
func lookup[T any](resp *resty.Response) (models.Option[T], error) {
	if isAbsent(resp) {
		return models.None[T](), nil
	}
	if err := mapHTTPError(resp); err != nil {
		return models.None[T](), err
	}

	var v T
	if err := decode(resp, &v); err != nil {
		return models.None[T](), err
	}
	return models.Some(v), nil
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

// decodeBool accepts a bare JSON boolean.
func decodeBool(resp *resty.Response) (bool, error) {
	var v bool
	if err := decode(resp, &v); err != nil {
		return false, err
	}
	return v, nil
}
