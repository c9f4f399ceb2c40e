package services

import "context"

// SessionAuthenticator checks that a request carries an authenticated session.
type SessionAuthenticator interface {
	// AuthenticatedUser returns the id of the authenticated user, or apperrors.ErrUnauthorized.
	AuthenticatedUser(ctx context.Context) (string, error)
}
