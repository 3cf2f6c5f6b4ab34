package forecast

import "time"

// BusinessDays returns the first n business days strictly after the given
// date. Weekends are excluded, holidays are not.
func BusinessDays(after time.Time, n int) []time.Time {
	out := make([]time.Time, 0, n)
	d := after
	for len(out) < n {
		d = d.AddDate(0, 0, 1)
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		out = append(out, d)
	}
	return out
}
