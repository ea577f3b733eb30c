package models

// Address is a postal address attached to an enrolled company.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country,omitempty"`
}

// EnrollRequest carries the data needed to enroll a company in the business
// banking platform. The same shape is used to re-activate a company.
//
// The gateway never inspects these fields; validation is done by the backend.
type EnrollRequest struct {
	// CompanyID is the backend identifier of the company, if already known.
	CompanyID string `json:"company_id,omitempty"`

	// ConsumerID identifies the company in the consumer (online banking) system.
	ConsumerID string `json:"consumer_id"`

	CompanyName string  `json:"company_name"`
	TaxID       string  `json:"tax_id"`
	Address     Address `json:"address"`

	// AccountNumbers lists the deposit accounts to attach to the company.
	AccountNumbers []string `json:"account_numbers,omitempty"`

	// Administrator is the first user created together with the company.
	Administrator AddUserRequest `json:"administrator"`
}

// DeactivationResult is the extended result of a company deactivation.
type DeactivationResult struct {
	// Deactivated reports whether the backend deactivated the company.
	Deactivated bool `json:"deactivated"`

	// Messages holds backend notes collected while deactivating
	// (e.g. users or pending payments that were cancelled).
	Messages []string `json:"messages"`
}
