package commands

import (
	"context"
	"log/slog"

	"elicense-watch/lib/restyutil"
	"elicense-watch/lib/scrapers/elicense"
	"elicense-watch/lib/serviceutil"
	"elicense-watch/lib/telemetry"
	"elicense-watch/services/reserve"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

func buildService() reserve.Service {
	cfg, err := reserve.ConfigFromEnv()
	if err != nil {
		serviceutil.Fatal("failed to load config", err)
	}

	newFetcher := func(ctx context.Context) (reserve.Fetcher, error) {
		client, err := elicense.NewClient(ctx, elicense.ClientOptions{
			BaseUrl:   cfg.SiteUrl,
			StudentId: cfg.StudentId,
			Password:  cfg.Password,
		})
		if err != nil {
			return nil, err
		}
		if verbose {
			client.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/elicense"))
		}
		return client, nil
	}

	var notifier reserve.Notifier = reserve.NoopNotifier{}
	if cfg.SlackConfigured() {
		notifier = reserve.NewSlackNotifier(cfg.SlackToken)
	} else {
		slog.Warn("slack token or channel not set, notifications will only be logged")
	}

	return reserve.NewService(cfg, newFetcher, notifier)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Checks for open slots every two minutes and notifies slack, until interrupted.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := serviceutil.SignalContext()
		telemetry.InstrumentPerfStats(ctx)

		svc := buildService()
		svc.Watch(ctx)
	},
}
