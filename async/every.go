// Package async includes helpers for running periodic functions alongside
// long running work.
package async

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "async")

// RunEvery runs f every period in a goroutine until ctx is done or the
// returned stop function is called. Stop blocks until the goroutine exits.
func RunEvery(ctx context.Context, name string, period time.Duration, f func()) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	ticker := time.NewTicker(period)
	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				log.WithField("function", name).Trace("running")
				f()
			case <-ctx.Done():
				log.WithField("function", name).Debug("context is closed, exiting")
				return
			}
		}
	}()
	return func() {
		cancel()
		<-done
	}
}
