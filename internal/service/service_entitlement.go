package service

import (
	"context"
	"time"

	"github.com/MKhiriev/bbp-gateway/internal/logger"
	"github.com/MKhiriev/bbp-gateway/models"
)

// entitlementLoggingService decorates an [EntitlementOperations] with call
// logging.
type entitlementLoggingService struct {
	inner  EntitlementOperations
	logger *logger.Logger
}

// NewEntitlementLoggingService wraps inner so that every call is logged.
func NewEntitlementLoggingService(inner EntitlementOperations, logger *logger.Logger) EntitlementOperations {
	return &entitlementLoggingService{inner: inner, logger: logger}
}

func (s *entitlementLoggingService) ApprovePayment(ctx context.Context, paymentID, userID string) (models.GatewayResponse, error) {
	start := time.Now()
	resp, err := s.inner.ApprovePayment(ctx, paymentID, userID)
	logBackendCall(ctx, s.logger, "ApprovePayment", start, err, false)
	return resp, err
}

func (s *entitlementLoggingService) GetUserEntitlement(ctx context.Context, companyID, userID string) (models.Option[models.UserEntitlementResponse], error) {
	start := time.Now()
	resp, err := s.inner.GetUserEntitlement(ctx, companyID, userID)
	logBackendCall(ctx, s.logger, "GetUserEntitlement", start, err, resp.IsNone())
	return resp, err
}

func (s *entitlementLoggingService) SetUserEntitlement(ctx context.Context, req models.SetUserEntitlementRequest) (models.Option[models.SetUserEntitlementResponse], error) {
	start := time.Now()
	resp, err := s.inner.SetUserEntitlement(ctx, req)
	logBackendCall(ctx, s.logger, "SetUserEntitlement", start, err, resp.IsNone())
	return resp, err
}

func (s *entitlementLoggingService) UpdateUserRole(ctx context.Context, companyID, userID string, grant bool) (bool, error) {
	start := time.Now()
	ok, err := s.inner.UpdateUserRole(ctx, companyID, userID, grant)
	logBackendCall(ctx, s.logger, "UpdateUserRole", start, err, false)
	return ok, err
}
