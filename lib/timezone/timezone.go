package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Asia/Tokyo")
	if err != nil {
		panic(err)
	}
}

// force the clock into JST because the reservation site renders
// everything in japanese local time and slot math based on
// <time.Time>.Year()/Month()/Day()/Hour()/... breaks if the host
// ends up in another timezone
func Now() time.Time {
	return time.Now().In(Location)
}
