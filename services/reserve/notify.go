package reserve

import (
	"context"
	"log/slog"
	"strings"

	"github.com/slack-go/slack"
)

type Notifier interface {
	Notify(ctx context.Context, channel string, message string) error
}

type SlackNotifier struct {
	client *slack.Client
}

func NewSlackNotifier(token string) SlackNotifier {
	return SlackNotifier{client: slack.New(token)}
}

func (n SlackNotifier) Notify(ctx context.Context, channel string, message string) error {
	_, _, err := n.client.PostMessageContext(
		ctx,
		channel,
		slack.MsgOptionText(message, false),
	)
	return err
}

// NoopNotifier stands in when slack credentials are not configured so a
// run still completes, it just logs what would have been sent.
type NoopNotifier struct{}

func (NoopNotifier) Notify(ctx context.Context, channel string, message string) error {
	slog.InfoContext(ctx, "slack is not configured, skipping notification", "message", message)
	return nil
}

func formatMessage(siteUrl string, labels []string) string {
	var b strings.Builder
	b.WriteString(siteUrl)
	b.WriteString("\n*予約可能な時間：*\n")
	for _, label := range labels {
		b.WriteString("- ")
		b.WriteString(label)
		b.WriteString("\n")
	}
	return b.String()
}
