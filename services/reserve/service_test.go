package reserve

import (
	"context"
	"fmt"
	"testing"
	"time"

	"elicense-watch/lib/scrapers/elicense"
	"elicense-watch/lib/telemetry"
	"elicense-watch/lib/timezone"

	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	loginOk bool
	pages   [][]elicense.RawSlot

	page       int
	loginCalls int
	slotsCalls int
	closed     bool
}

func (f *fakeFetcher) Login(ctx context.Context) (bool, error) {
	f.loginCalls++
	return f.loginOk, nil
}

func (f *fakeFetcher) Slots(ctx context.Context) ([]elicense.RawSlot, error) {
	f.slotsCalls++
	return f.pages[f.page], nil
}

func (f *fakeFetcher) NextWeek(ctx context.Context) (bool, error) {
	if f.page+1 >= len(f.pages) {
		return false, nil
	}
	f.page++
	return true, nil
}

func (f *fakeFetcher) Close() {
	f.closed = true
}

type recordingNotifier struct {
	calls    int
	channel  string
	message  string
	sendFail error
}

func (n *recordingNotifier) Notify(ctx context.Context, channel string, message string) error {
	n.calls++
	n.channel = channel
	n.message = message
	return n.sendFail
}

// a saturday at 10:00 no more than six days out, always inside the
// lookahead window regardless of when the test runs
func nearbySaturday() (elicense.RawSlot, string) {
	now := timezone.Now()
	sat := now.AddDate(0, 0, (int(time.Saturday)-int(now.Weekday())+7)%7)

	raw := elicense.RawSlot{
		DateCode: sat.Format("20060102"),
		Date:     fmt.Sprintf("%d月%d日", int(sat.Month()), sat.Day()),
		Time:     "10:00",
		Week:     "(土)",
	}
	return raw, raw.Date + raw.Week + " " + raw.Time
}

func testService(fetcher *fakeFetcher, notifier *recordingNotifier) Service {
	cfg := Config{
		SiteUrl:      DefaultSiteUrl,
		StudentId:    "123456",
		Password:     "hunter2",
		SlackChannel: "#reservations",
	}
	return NewService(cfg, func(ctx context.Context) (Fetcher, error) {
		return fetcher, nil
	}, notifier)
}

func TestRunOnceNotifies(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:services/reserve")
	defer cleanup()

	sat, label := nearbySaturday()
	fetcher := &fakeFetcher{
		loginOk: true,
		pages: [][]elicense.RawSlot{
			{sat},
			{sat}, // second week shows the same slot again
		},
	}
	notifier := &recordingNotifier{}

	labels, err := testService(fetcher, notifier).RunOnce(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{label}, labels)

	require.Equal(t, 2, fetcher.slotsCalls)
	require.True(t, fetcher.closed)

	require.Equal(t, 1, notifier.calls)
	require.Equal(t, "#reservations", notifier.channel)
	require.Equal(t, DefaultSiteUrl+"\n*予約可能な時間：*\n- "+label+"\n", notifier.message)
}

func TestRunOnceNothingToReport(t *testing.T) {
	fetcher := &fakeFetcher{
		loginOk: true,
		// tuesday mornings only, nothing eligible
		pages: [][]elicense.RawSlot{
			{{DateCode: "20250624", Date: "6月24日", Time: "9:00", Week: "(火)"}},
		},
	}
	notifier := &recordingNotifier{}

	labels, err := testService(fetcher, notifier).RunOnce(context.Background())
	require.NoError(t, err)
	require.Empty(t, labels)
	require.Zero(t, notifier.calls)
	require.True(t, fetcher.closed)
}

func TestRunOnceLoginRejected(t *testing.T) {
	fetcher := &fakeFetcher{
		loginOk: false,
		pages:   [][]elicense.RawSlot{{}},
	}
	notifier := &recordingNotifier{}

	labels, err := testService(fetcher, notifier).RunOnce(context.Background())
	require.NoError(t, err)
	require.Empty(t, labels)
	require.Zero(t, fetcher.slotsCalls)
	require.Zero(t, notifier.calls)
	require.True(t, fetcher.closed)
}

func TestRunOnceSurvivesNotifyFailure(t *testing.T) {
	sat, label := nearbySaturday()
	fetcher := &fakeFetcher{
		loginOk: true,
		pages:   [][]elicense.RawSlot{{sat}},
	}
	notifier := &recordingNotifier{sendFail: fmt.Errorf("channel_not_found")}

	labels, err := testService(fetcher, notifier).RunOnce(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{label}, labels)
	require.True(t, fetcher.closed)
}
