package reserve

import (
	"context"
	"log/slog"
	"time"
)

// how often the site is polled for fresh slots
const checkInterval = time.Minute * 2

// Watch runs one collection immediately, then keeps polling on a fixed
// interval until the context is cancelled. Runs never overlap, a slow
// run simply delays the next tick.
func (s Service) Watch(ctx context.Context) {
	slog.InfoContext(ctx, "watching for available slots", "interval", checkInterval.String())

	if _, err := s.RunOnce(ctx); err != nil {
		slog.ErrorContext(ctx, "collection run failed", "err", err)
	}

	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "slot watch stopped")
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				slog.ErrorContext(ctx, "collection run failed", "err", err)
			}
		}
	}
}
