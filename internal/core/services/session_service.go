package services

import (
	"context"

	"github.com/SscSPs/ratechart_app/internal/apperrors"
	portssvc "github.com/SscSPs/ratechart_app/internal/core/ports/services"
	"github.com/SscSPs/ratechart_app/internal/middleware"
)

// sessionService authenticates requests using the user id that the JWT
// middleware stored in the request context.
type sessionService struct{}

// NewSessionService creates a session authenticator backed by the request context.
func NewSessionService() portssvc.SessionAuthenticator {
	return &sessionService{}
}

var _ portssvc.SessionAuthenticator = (*sessionService)(nil)

func (s *sessionService) AuthenticatedUser(ctx context.Context) (string, error) {
	userID, ok := middleware.GetUserIDFromCtx(ctx)
	if !ok {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}
