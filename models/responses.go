package models

// GatewayResponse is the generic acknowledgement returned by the backend for
// write operations (enrollment, activation, user changes, payment approval).
type GatewayResponse struct {
	// Success reports whether the backend accepted the operation.
	Success bool `json:"success"`

	// Code is the backend status code, e.g. "0000" for success.
	Code string `json:"code,omitempty"`

	// Message is a human-readable description of the backend status.
	Message string `json:"message,omitempty"`

	// ReferenceID is the backend tracking number of the operation.
	ReferenceID string `json:"reference_id,omitempty"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}
