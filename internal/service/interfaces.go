// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service defines the business operations the gateway delegates to
// and decorates backend implementations with cross-cutting behavior.
//
// The operations are split by capability: company lifecycle
// ([CompanyOperations]), payments and entitlements ([EntitlementOperations])
// and user lifecycle ([UserOperations]). Every method performs exactly one
// backend call. Lookup-style methods report a missing resource with
// [models.None] instead of an error; all other methods report success or
// failure only.
//
// Implementations must be safe for concurrent use.
package service

import (
	"context"

	"github.com/MKhiriev/bbp-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/operations_mock.go -package=mock

// CompanyOperations covers enrollment and (de)activation of companies.
type CompanyOperations interface {
	// EnrollCompany enrolls a new company together with its administrator.
	EnrollCompany(ctx context.Context, req models.EnrollRequest) (models.GatewayResponse, error)

	// ActivateCompany re-activates a previously enrolled company.
	ActivateCompany(ctx context.Context, req models.EnrollRequest) (models.GatewayResponse, error)

	// DeactivateCompany deactivates the company known by consumerID and
	// reports whether the backend did so.
	DeactivateCompany(ctx context.Context, consumerID string) (bool, error)

	// DeactivateCompanyExt is like DeactivateCompany but also returns the
	// backend notes collected during deactivation.
	DeactivateCompanyExt(ctx context.Context, consumerID string) (models.DeactivationResult, error)
}

// EntitlementOperations covers payment approval, entitlements and roles.
type EntitlementOperations interface {
	// ApprovePayment approves the pending payment paymentID on behalf of userID.
	ApprovePayment(ctx context.Context, paymentID, userID string) (models.GatewayResponse, error)

	// GetUserEntitlement returns the entitlements of a user, or None when the
	// backend knows no such user.
	GetUserEntitlement(ctx context.Context, companyID, userID string) (models.Option[models.UserEntitlementResponse], error)

	// SetUserEntitlement replaces the entitlements of a user, or returns None
	// when the backend knows no such user.
	SetUserEntitlement(ctx context.Context, req models.SetUserEntitlementRequest) (models.Option[models.SetUserEntitlementResponse], error)

	// UpdateUserRole grants (grant == true) or revokes the administrator role.
	// userID is passed exactly as the backend expects it.
	UpdateUserRole(ctx context.Context, companyID, userID string, grant bool) (bool, error)
}

// UserOperations covers the lifecycle of company users.
type UserOperations interface {
	// AddUser creates a new company user.
	AddUser(ctx context.Context, req models.AddUserRequest) (models.GatewayResponse, error)

	// SearchUser looks a user up by id, or returns None when nothing matches.
	SearchUser(ctx context.Context, userID string) (models.Option[models.SearchUserResponse], error)

	// UpdateUser changes the attributes of an existing user.
	UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.GatewayResponse, error)

	// DeleteUser removes a user from a company, or returns None when there is
	// no such user.
	DeleteUser(ctx context.Context, userID, companyID string) (models.Option[models.DeleteUserResponse], error)
}

// Backend is implemented by clients that provide every operation, such as
// the HTTP backend adapter.
type Backend interface {
	CompanyOperations
	EntitlementOperations
	UserOperations
}
