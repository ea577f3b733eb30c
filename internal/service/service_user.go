package service

import (
	"context"
	"time"

	"github.com/MKhiriev/bbp-gateway/internal/logger"
	"github.com/MKhiriev/bbp-gateway/models"
)

// userLoggingService decorates a [UserOperations] with call logging.
type userLoggingService struct {
	inner  UserOperations
	logger *logger.Logger
}

// NewUserLoggingService wraps inner so that every call is logged.
func NewUserLoggingService(inner UserOperations, logger *logger.Logger) UserOperations {
	return &userLoggingService{inner: inner, logger: logger}
}

func (s *userLoggingService) AddUser(ctx context.Context, req models.AddUserRequest) (models.GatewayResponse, error) {
	start := time.Now()
	resp, err := s.inner.AddUser(ctx, req)
	logBackendCall(ctx, s.logger, "AddUser", start, err, false)
	return resp, err
}

func (s *userLoggingService) SearchUser(ctx context.Context, userID string) (models.Option[models.SearchUserResponse], error) {
	start := time.Now()
	resp, err := s.inner.SearchUser(ctx, userID)
	logBackendCall(ctx, s.logger, "SearchUser", start, err, resp.IsNone())
	return resp, err
}

func (s *userLoggingService) UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.GatewayResponse, error) {
	start := time.Now()
	resp, err := s.inner.UpdateUser(ctx, req)
	logBackendCall(ctx, s.logger, "UpdateUser", start, err, false)
	return resp, err
}

func (s *userLoggingService) DeleteUser(ctx context.Context, userID, companyID string) (models.Option[models.DeleteUserResponse], error) {
	start := time.Now()
	resp, err := s.inner.DeleteUser(ctx, userID, companyID)
	logBackendCall(ctx, s.logger, "DeleteUser", start, err, resp.IsNone())
	return resp, err
}
