package timeutil

import "time"

// IST is the Indian Standard Time location (UTC+5:30). Invoice dates
// and printed timestamps are always rendered in IST.
var IST *time.Location

func init() {
	var err error
	IST, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		IST = time.FixedZone("IST", 5*60*60+30*60)
	}
}

// Now returns the current time in IST.
func Now() time.Time {
	return time.Now().In(IST)
}

// ToIST converts any time to IST.
func ToIST(t time.Time) time.Time {
	return t.In(IST)
}

// FormatDate renders a time as the dd-Mon-yyyy form used on invoices.
func FormatDate(t time.Time) string {
	return t.In(IST).Format("02-Jan-2006")
}
