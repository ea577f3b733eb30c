// Package http implements the REST transport of the gateway.
//
// It wires the chi router, decodes inbound requests into the optional
// inputs the gateway expects and writes gateway outcomes back as HTTP
// responses. Request tracing, access logging, compression, panic recovery
// and the per-request timeout are handled by middleware before a request
// reaches a handler.
package http
