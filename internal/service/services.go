package service

import (
	"github.com/MKhiriev/bbp-gateway/internal/logger"
)

// Services groups the operations available to the gateway.
type Services struct {
	Companies    CompanyOperations
	Entitlements EntitlementOperations
	Users        UserOperations
}

// NewServices builds [Services] on top of backend, decorating each
// capability with call logging.
func NewServices(backend Backend, logger *logger.Logger) (*Services, error) {
	if backend == nil {
		return nil, ErrNoBackendProvided
	}

	logger.Info().Msg("creating services...")

	return &Services{
		Companies:    NewCompanyLoggingService(backend, logger),
		Entitlements: NewEntitlementLoggingService(backend, logger),
		Users:        NewUserLoggingService(backend, logger),
	}, nil
}
