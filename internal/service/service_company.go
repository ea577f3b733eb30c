package service

import (
	"context"
	"time"

	"github.com/MKhiriev/bbp-gateway/internal/logger"
	"github.com/MKhiriev/bbp-gateway/models"
)

// companyLoggingService decorates a [CompanyOperations] with call logging.
type companyLoggingService struct {
	inner  CompanyOperations
	logger *logger.Logger
}

// NewCompanyLoggingService wraps inner so that every call is logged.
func NewCompanyLoggingService(inner CompanyOperations, logger *logger.Logger) CompanyOperations {
	return &companyLoggingService{inner: inner, logger: logger}
}

func (s *companyLoggingService) EnrollCompany(ctx context.Context, req models.EnrollRequest) (models.GatewayResponse, error) {
	start := time.Now()
	resp, err := s.inner.EnrollCompany(ctx, req)
	logBackendCall(ctx, s.logger, "EnrollCompany", start, err, false)
	return resp, err
}

func (s *companyLoggingService) ActivateCompany(ctx context.Context, req models.EnrollRequest) (models.GatewayResponse, error) {
	start := time.Now()
	resp, err := s.inner.ActivateCompany(ctx, req)
	logBackendCall(ctx, s.logger, "ActivateCompany", start, err, false)
	return resp, err
}

func (s *companyLoggingService) DeactivateCompany(ctx context.Context, consumerID string) (bool, error) {
	start := time.Now()
	ok, err := s.inner.DeactivateCompany(ctx, consumerID)
	logBackendCall(ctx, s.logger, "DeactivateCompany", start, err, false)
	return ok, err
}

func (s *companyLoggingService) DeactivateCompanyExt(ctx context.Context, consumerID string) (models.DeactivationResult, error) {
	start := time.Now()
	result, err := s.inner.DeactivateCompanyExt(ctx, consumerID)
	logBackendCall(ctx, s.logger, "DeactivateCompanyExt", start, err, false)
	return result, err
}
