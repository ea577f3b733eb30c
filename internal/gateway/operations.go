package gateway

import (
	"context"

	"github.com/MKhiriev/bbp-gateway/models"
)

// EnrollCompany enrolls a company; the request body is required.
func (g *Gateway) EnrollCompany(ctx context.Context, req models.Option[models.EnrollRequest]) Outcome {
	r, ok := req.Get()
	return requireInput(ctx, g, OpEnrollCompany, ok, func(ctx context.Context) (models.GatewayResponse, error) {
		return g.services.Companies.EnrollCompany(ctx, r)
	})
}

// AddUser creates a user; the request body is required.
func (g *Gateway) AddUser(ctx context.Context, req models.Option[models.AddUserRequest]) Outcome {
	r, ok := req.Get()
	return requireInput(ctx, g, OpAddUser, ok, func(ctx context.Context) (models.GatewayResponse, error) {
		return g.services.Users.AddUser(ctx, r)
	})
}

// ApprovePayment needs both identifiers.
func (g *Gateway) ApprovePayment(ctx context.Context, userID, paymentID models.Option[string]) Outcome {
	return requireInput(ctx, g, OpApprovePayment, allPresent(userID, paymentID), func(ctx context.Context) (models.GatewayResponse, error) {
		return g.services.Entitlements.ApprovePayment(ctx, paymentID.MustGet(), userID.MustGet())
	})
}

// UserEntitlements looks up a user's entitlements in a company. A missing
// identifier or an unknown user is NotFound.
func (g *Gateway) UserEntitlements(ctx context.Context, companyID, userID models.Option[string]) Outcome {
	return requireResult(ctx, g, OpUserEntitlements, allPresent(companyID, userID), func(ctx context.Context) (models.Option[models.UserEntitlementResponse], error) {
		return g.services.Entitlements.GetUserEntitlement(ctx, companyID.MustGet(), userID.MustGet())
	})
}

// SetUserEntitlements replaces a user's entitlements. A missing body or an
// absent backend result is NotFound.
func (g *Gateway) SetUserEntitlements(ctx context.Context, req models.Option[models.SetUserEntitlementRequest]) Outcome {
	r, ok := req.Get()
	return requireResult(ctx, g, OpSetUserEntitlements, ok, func(ctx context.Context) (models.Option[models.SetUserEntitlementResponse], error) {
		return g.services.Entitlements.SetUserEntitlement(ctx, r)
	})
}

// ActivateCompany activates an enrolled company; the request body is required.
func (g *Gateway) ActivateCompany(ctx context.Context, req models.Option[models.EnrollRequest]) Outcome {
	r, ok := req.Get()
	return requireInput(ctx, g, OpActivateCompany, ok, func(ctx context.Context) (models.GatewayResponse, error) {
		return g.services.Companies.ActivateCompany(ctx, r)
	})
}

// DeactivateCompany deactivates the company of consumerID and returns the
// backend flag as is.
func (g *Gateway) DeactivateCompany(ctx context.Context, consumerID models.Option[string]) Outcome {
	return requireInput(ctx, g, OpDeactivateCompany, consumerID.IsSome(), func(ctx context.Context) (bool, error) {
		return g.services.Companies.DeactivateCompany(ctx, consumerID.MustGet())
	})
}

// DeactivateCompanyExt deactivates the company of consumerID and returns the
// backend result with its messages.
func (g *Gateway) DeactivateCompanyExt(ctx context.Context, consumerID models.Option[string]) Outcome {
	return requireInput(ctx, g, OpDeactivateCompanyExt, consumerID.IsSome(), func(ctx context.Context) (models.DeactivationResult, error) {
		return g.services.Companies.DeactivateCompanyExt(ctx, consumerID.MustGet())
	})
}

// UpdateUserRole grants the role to the user. The user id is normalized
// before it is sent; userID itself is left as received.
func (g *Gateway) UpdateUserRole(ctx context.Context, companyID, userID models.Option[string]) Outcome {
	return requireInput(ctx, g, OpUpdateUserRole, allPresent(companyID, userID), func(ctx context.Context) (bool, error) {
		return g.services.Entitlements.UpdateUserRole(ctx,
			companyID.MustGet(),
			normalizedUserID(OpUpdateUserRole, userID.MustGet()),
			grantFor(OpUpdateUserRole),
		)
	})
}

// SearchUser looks up a user. A missing id or no match is NotFound.
func (g *Gateway) SearchUser(ctx context.Context, userID models.Option[string]) Outcome {
	return requireResult(ctx, g, OpSearchUser, userID.IsSome(), func(ctx context.Context) (models.Option[models.SearchUserResponse], error) {
		return g.services.Users.SearchUser(ctx, userID.MustGet())
	})
}

// UpdateUser updates a user; the request body is required.
func (g *Gateway) UpdateUser(ctx context.Context, req models.Option[models.UpdateUserRequest]) Outcome {
	r, ok := req.Get()
	return requireInput(ctx, g, OpUpdateUser, ok, func(ctx context.Context) (models.GatewayResponse, error) {
		return g.services.Users.UpdateUser(ctx, r)
	})
}

// DeleteUser removes a user from a company. Missing identifiers or an absent
// backend result are NotFound.
func (g *Gateway) DeleteUser(ctx context.Context, userID, companyID models.Option[string]) Outcome {
	return requireResult(ctx, g, OpDeleteUser, allPresent(userID, companyID), func(ctx context.Context) (models.Option[models.DeleteUserResponse], error) {
		return g.services.Users.DeleteUser(ctx, userID.MustGet(), companyID.MustGet())
	})
}
