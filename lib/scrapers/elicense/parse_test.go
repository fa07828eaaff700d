package elicense

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const weekPage = `
<html><body>
<table>
<tr>
<td class="status1"><a href="#" data-ymd="20250627" data-date="6月27日" data-time="9:00" data-week="(金)">○</a></td>
<td class="status0"><a href="#" data-ymd="20250627" data-date="6月27日" data-time="10:00" data-week="(金)">×</a></td>
<td class="status1"><a href="#" data-ymd="20250628" data-date="6月28日" data-time="13:00" data-week="(土)">○</a></td>
<td class="status1 mikata-table"><a href="#" data-ymd="20250629" data-date="6月29日" data-time="9:00" data-week="(日)">○</a></td>
<td class="status1"></td>
</tr>
</table>
<a class="nextWeek" href="/el31/next?week=2">次の週</a>
</body></html>`

const lastWeekPage = `
<html><body>
<table><tr>
<td class="status1"><a href="#" data-ymd="20250712" data-date="7月12日" data-time="11:00" data-week="(土)">○</a></td>
</tr></table>
</body></html>`

func TestParseSlots(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(weekPage))
	require.NoError(t, err)

	slots := parseSlots(doc)
	require.Equal(t, []RawSlot{
		{DateCode: "20250627", Date: "6月27日", Time: "9:00", Week: "(金)"},
		{DateCode: "20250628", Date: "6月28日", Time: "13:00", Week: "(土)"},
	}, slots)
}

func TestNextWeekHref(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(weekPage))
	require.NoError(t, err)

	href, ok := nextWeekHref(doc)
	require.True(t, ok)
	require.Equal(t, "/el31/next?week=2", href)

	doc, err = goquery.NewDocumentFromReader(strings.NewReader(lastWeekPage))
	require.NoError(t, err)

	_, ok = nextWeekHref(doc)
	require.False(t, ok)
}
