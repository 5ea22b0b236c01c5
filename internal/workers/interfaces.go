// Package workers runs long-lived background jobs of the pulse client,
// such as periodic dashboard refreshes, under one shared context.
package workers

import "context"

// Worker is a background job. Run blocks until the job finishes or ctx
// is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
