// Package startup implements the connect-until-ready loop a dependent
// service runs before it accepts traffic.
package startup

import (
	"context"
	"log/slog"
	"time"
)

// Retry calls connect until it succeeds, sleeping a fixed interval between
// attempts. There is no attempt cap and no backoff growth: a service racing
// its own datastore in an orchestrated environment must wait, not give up.
// Retry returns nil after the first success and only ever returns an error
// when ctx is cancelled while waiting.
func Retry(ctx context.Context, log *slog.Logger, interval time.Duration, connect func(context.Context) error) error {
	for attempt := 1; ; attempt++ {
		log.Info("connection attempt to database", "attempt", attempt)
		err := connect(ctx)
		if err == nil {
			log.Info("database ready", "attempts", attempt)
			return nil
		}
		log.Error("database not ready", "attempt", attempt, "err", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}
