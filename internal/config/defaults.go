package config

import "time"

// Default values applied before any other source.
const (
	DefaultAppName               = "bbp-gateway"
	DefaultHTTPAddress           = "0.0.0.0:8080"
	DefaultServerRequestTimeout  = 60 * time.Second
	DefaultServerShutdownTimeout = 10 * time.Second
	DefaultBackendRequestTimeout = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:     DefaultAppName,
			LogLevel: "info",
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultServerRequestTimeout,
			ShutdownTimeout: DefaultServerShutdownTimeout,
		},
		Service: ServiceConfig{
			RequestTimeout: DefaultBackendRequestTimeout,
		},
	}
}
