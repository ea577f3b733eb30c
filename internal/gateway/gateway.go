// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gateway is the dispatch layer between the inbound transports and
// the backend services.
//
// Every operation follows one of two policies:
//
//   - input validation: a missing required input yields [ClientError]
//     without calling the backend; otherwise whatever the backend returns,
//     including false or an empty result, is a [Success];
//   - result presence: a missing input or an absent backend result yields
//     [NotFound]; otherwise the result is a [Success].
//
// A failing backend call yields [ServerError] and the cause is logged through
// the request logger. Inputs are modelled as [models.Option] values, so
// "required" is part of each method's signature.
package gateway

import (
	"context"

	"github.com/MKhiriev/bbp-gateway/internal/config"
	"github.com/MKhiriev/bbp-gateway/internal/logger"
	"github.com/MKhiriev/bbp-gateway/internal/service"
	"github.com/MKhiriev/bbp-gateway/models"
)

// Operation names a gateway operation. It is used as a log field and as the
// key of the normalization table.
type Operation string

const (
	OpEnrollCompany        Operation = "EnrollCompany"
	OpAddUser              Operation = "AddUser"
	OpApprovePayment       Operation = "ApprovePayment"
	OpUserEntitlements     Operation = "UserEntitlements"
	OpSetUserEntitlements  Operation = "SetUserEntitlements"
	OpActivateCompany      Operation = "ActivateCompany"
	OpDeactivateCompany    Operation = "DeactivateCompany"
	OpDeactivateCompanyExt Operation = "DeactivateCompanyExt"
	OpUpdateUserRole       Operation = "UpdateUserRole"
	OpSearchUser           Operation = "SearchUser"
	OpUpdateUser           Operation = "UpdateUser"
	OpDeleteUser           Operation = "DeleteUser"
)

// Gateway dispatches operations to the backend services. It holds no
// per-request state and is safe for concurrent use.
type Gateway struct {
	services *service.Services
	monitor  *config.Monitor

	logger *logger.Logger
}

// New creates a Gateway. monitor may be nil; when set, service config
// changes are logged.
func New(services *service.Services, monitor *config.Monitor, logger *logger.Logger) (*Gateway, error) {
	if services == nil || services.Companies == nil || services.Entitlements == nil || services.Users == nil {
		return nil, ErrNoServicesProvided
	}

	g := &Gateway{services: services, monitor: monitor, logger: logger}
	if monitor != nil {
		monitor.OnChange(g.logServiceConfig)
	}

	return g, nil
}

func (g *Gateway) logServiceConfig(cfg config.ServiceConfig) {
	g.logger.Info().
		Str("backend_url", cfg.BackendURL).
		Str("channel_id", cfg.ChannelID).
		Dur("request_timeout", cfg.RequestTimeout).
		Msg("gateway picked up new service config")
}

func (g *Gateway) log(ctx context.Context, op Operation) *logger.Logger {
	return logger.FromContextOr(ctx, g.logger).WithOperation(string(op))
}

// requireInput implements the input validation policy.
func requireInput[T any](ctx context.Context, g *Gateway, op Operation, present bool, call func(context.Context) (T, error)) Outcome {
	if !present {
		g.log(ctx, op).Debug().Msg("required input is missing")
		return clientError()
	}

	v, err := call(ctx)
	if err != nil {
		return g.failed(ctx, op, err)
	}

	return success(v)
}

// requireResult implements the result presence policy.
func requireResult[T any](ctx context.Context, g *Gateway, op Operation, present bool, call func(context.Context) (models.Option[T], error)) Outcome {
	if !present {
		g.log(ctx, op).Debug().Msg("input is missing, nothing to look up")
		return notFound()
	}

	res, err := call(ctx)
	if err != nil {
		return g.failed(ctx, op, err)
	}

	v, ok := res.Get()
	if !ok {
		return notFound()
	}

	return success(v)
}

func (g *Gateway) failed(ctx context.Context, op Operation, err error) Outcome {
	out := serverError(err)
	g.log(ctx, op).Error().Err(err).
		Bool("timeout", out.Timeout()).
		Msg("backend call failed")
	return out
}

// allPresent reports whether every identifier is present.
func allPresent(ids ...models.Option[string]) bool {
	for _, id := range ids {
		if id.IsNone() {
			return false
		}
	}
	return true
}
