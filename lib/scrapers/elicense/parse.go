package elicense

import "github.com/PuerkitoBio/goquery"

// open cells carry status1, the legend table reuses the class with
// mikata-table so it has to be excluded
const openSlotSelector = "td.status1:not(.mikata-table)"

func parseSlots(doc *goquery.Document) []RawSlot {
	var slots []RawSlot
	doc.Find(openSlotSelector).Each(func(_ int, td *goquery.Selection) {
		a := td.Find("a").First()
		if a.Length() == 0 {
			return
		}
		slots = append(slots, RawSlot{
			DateCode: a.AttrOr("data-ymd", ""),
			Date:     a.AttrOr("data-date", ""),
			Time:     a.AttrOr("data-time", ""),
			Week:     a.AttrOr("data-week", ""),
		})
	})
	return slots
}

func nextWeekHref(doc *goquery.Document) (string, bool) {
	return doc.Find("a.nextWeek").First().Attr("href")
}
