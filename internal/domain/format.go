package domain

import "fmt"

// SecondsToDuration formats a number of seconds as MM:SS. Minutes are not
// folded into hours, so a full hour renders as "60:00".
func SecondsToDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// MinutesToDuration formats a whole number of minutes the same way as
// SecondsToDuration, e.g. 25 -> "25:00".
func MinutesToDuration(minutes int) string {
	return SecondsToDuration(minutes * 60)
}
