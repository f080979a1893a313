// Package workers runs the background jobs of the server.
//
// A [Worker] blocks in Run until its context is cancelled; [Workers] starts
// a set of them and waits for all to return.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Purger drops expired entries and reports how many were removed. It is
// satisfied by *geocode.Cache.
type Purger interface {
	Purge() int
}
