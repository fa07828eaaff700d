package reserve

import (
	"context"
	"testing"
	"time"

	"elicense-watch/lib/scrapers/elicense"
	"elicense-watch/lib/timezone"

	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	now := time.Date(2025, time.June, 20, 12, 0, 0, 0, timezone.Location)

	pages := [][]elicense.RawSlot{
		{
			// saturday, eligible
			{DateCode: "20250621", Date: "6月21日", Time: "10:00", Week: "(土)"},
			// tuesday 18:00, not eligible
			{DateCode: "20250624", Date: "6月24日", Time: "18:00", Week: "(火)"},
		},
		{
			// wednesday 13:00, eligible
			{DateCode: "20250625", Date: "6月25日", Time: "13:00", Week: "(水)"},
			// different date code but the same label as the first
			// saturday, must collapse into the first occurrence
			{DateCode: "20250628", Date: "6月21日", Time: "10:00", Week: "(土)"},
		},
	}

	labels := Collect(context.Background(), pages, now)
	require.Equal(t, []string{
		"6月21日(土) 10:00",
		"6月25日(水) 13:00",
	}, labels)
}

func TestCollectSkipsMalformedTuples(t *testing.T) {
	now := time.Date(2025, time.June, 20, 12, 0, 0, 0, timezone.Location)

	labels := Collect(context.Background(), [][]elicense.RawSlot{
		{
			{DateCode: "garbage", Date: "6月21日", Time: "10:00", Week: "(土)"},
			{DateCode: "20250621", Date: "6月21日", Time: "11:00", Week: "(土)"},
		},
	}, now)
	require.Equal(t, []string{"6月21日(土) 11:00"}, labels)
}

func TestCollectNothingEligible(t *testing.T) {
	now := time.Date(2025, time.June, 20, 12, 0, 0, 0, timezone.Location)

	labels := Collect(context.Background(), [][]elicense.RawSlot{
		{
			// tuesday morning
			{DateCode: "20250624", Date: "6月24日", Time: "9:00", Week: "(火)"},
		},
		{},
	}, now)
	require.Empty(t, labels)
}
