package models

// Entitlement is a single permission granted to a company user, optionally
// bounded by a monetary limit.
type Entitlement struct {
	Code    string  `json:"code"`
	Enabled bool    `json:"enabled"`
	Limit   float64 `json:"limit,omitempty"`
	Account string  `json:"account,omitempty"`
}

// UserEntitlementResponse lists the entitlements of one user.
type UserEntitlementResponse struct {
	CompanyID    string        `json:"company_id"`
	UserID       string        `json:"user_id"`
	Entitlements []Entitlement `json:"entitlements"`
}

// SetUserEntitlementRequest replaces the entitlements of one user.
type SetUserEntitlementRequest struct {
	CompanyID    string        `json:"company_id"`
	UserID       string        `json:"user_id"`
	Entitlements []Entitlement `json:"entitlements"`
}

// SetUserEntitlementResponse reports the entitlements stored by the backend.
type SetUserEntitlementResponse struct {
	CompanyID string   `json:"company_id"`
	UserID    string   `json:"user_id"`
	Applied   []string `json:"applied"`
	Rejected  []string `json:"rejected,omitempty"`
}
