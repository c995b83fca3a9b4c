package sales

import "time"

// MonthIndex maps an English month name ("January".."December") to 1..12. Names are matched
// exactly as time.Month formats them. Anything else yields 0, which no sale date can match,
// so an unknown month produces empty results rather than an error.
func MonthIndex(name string) int {
	for m := time.January; m <= time.December; m++ {
		if m.String() == name {
			return int(m)
		}
	}

	return 0
}
