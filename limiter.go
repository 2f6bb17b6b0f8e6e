package bookmark

import "context"

// Limiter throttles outbound fetches. The core enforces a single fixed
// delay between the decision to fetch and the network request; per-origin
// budgets are a deployment concern layered on top.
type Limiter interface {
	// Wait blocks until the limiter allows the next fetch.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context) error
}
