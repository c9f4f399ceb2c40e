package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ratechart_app/internal/apperrors"
	portssvc "github.com/SscSPs/ratechart_app/internal/core/ports/services"
	"github.com/SscSPs/ratechart_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	SessionAuthenticator portssvc.SessionAuthenticator
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeSession checks that ctx carries an authenticated session and returns the user id.
// Without an authenticator every request is rejected.
func (s *BaseService) AuthorizeSession(ctx context.Context) (string, error) {
	if s.SessionAuthenticator == nil {
		s.LogDebug(ctx, "No session authenticator configured, denying access")
		return "", apperrors.ErrUnauthorized
	}
	userID, err := s.SessionAuthenticator.AuthenticatedUser(ctx)
	if err != nil {
		s.LogDebug(ctx, "Session authentication failed", slog.String("error", err.Error()))
		return "", err
	}
	return userID, nil
}
