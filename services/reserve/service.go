package reserve

import (
	"context"
	"log/slog"

	"elicense-watch/lib/scrapers/elicense"
	"elicense-watch/lib/timezone"

	"go.opentelemetry.io/otel/codes"
)

// Fetcher is the slice of the e-license client one collection run needs.
// A fetcher holds the login session for exactly one run and must be
// closed on every exit path.
type Fetcher interface {
	Login(ctx context.Context) (bool, error)
	Slots(ctx context.Context) ([]elicense.RawSlot, error)
	NextWeek(ctx context.Context) (bool, error)
	Close()
}

type Service struct {
	cfg        Config
	newFetcher func(ctx context.Context) (Fetcher, error)
	notifier   Notifier
}

func NewService(cfg Config, newFetcher func(ctx context.Context) (Fetcher, error), notifier Notifier) Service {
	return Service{
		cfg:        cfg,
		newFetcher: newFetcher,
		notifier:   notifier,
	}
}

// RunOnce performs one full collection run: login, fetch every week
// page, collect the eligible labels and notify when there is anything
// to report. The returned labels are what was reported (nil when the
// run found nothing or had to abort).
func (s Service) RunOnce(ctx context.Context) ([]string, error) {
	ctx, span := tracer.Start(ctx, "service:RunOnce")
	defer span.End()

	fetcher, err := s.newFetcher(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create fetcher")
		return nil, err
	}
	defer fetcher.Close()

	ok, err := fetcher.Login(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "login request failed")
		return nil, err
	}
	if !ok {
		// wrong credentials end the run cleanly, nothing gets sent
		slog.WarnContext(ctx, "failed to login, aborting run")
		span.SetStatus(codes.Error, "login rejected")
		return nil, nil
	}

	var pages [][]elicense.RawSlot
	for pageCount := 1; ; pageCount++ {
		raw, err := fetcher.Slots(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to scrape page")
			return nil, err
		}
		slog.DebugContext(ctx, "scraped page", "page", pageCount, "open_slots", len(raw))
		pages = append(pages, raw)

		more, err := fetcher.NextWeek(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to page forward")
			return nil, err
		}
		if !more {
			break
		}
	}

	labels := Collect(ctx, pages, timezone.Now())
	if len(labels) == 0 {
		slog.InfoContext(ctx, "no available slots found")
		return nil, nil
	}

	err = s.notifier.Notify(ctx, s.cfg.SlackChannel, formatMessage(s.cfg.SiteUrl, labels))
	if err != nil {
		// a rejected send must not take the watch loop down
		slog.ErrorContext(ctx, "failed to send notification", "err", err)
		span.RecordError(err)
		return labels, nil
	}

	slog.InfoContext(ctx, "notification sent", "slots", len(labels))
	return labels, nil
}
