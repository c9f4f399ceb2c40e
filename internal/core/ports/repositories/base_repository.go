package repositories

import "context"

// HealthChecker is implemented by repositories that can report the reachability of
// their backing store.
type HealthChecker interface {
	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}
