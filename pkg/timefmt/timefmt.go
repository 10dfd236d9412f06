// Package timefmt formats timestamps the way the board renders them:
// recent times as relative Korean phrases, older ones as a short date.
package timefmt

import (
	"fmt"
	"time"
)

// Relative renders t against now.
// Under an hour it is "N분 전", under a day "N시간 전",
// anything older a short ko-KR date. A post written seconds ago
// renders "0분 전", never "0시간 전".
func Relative(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}

	hours := int(diff.Hours())
	if hours < 24 {
		if hours < 1 {
			return fmt.Sprintf("%d분 전", int(diff.Minutes()))
		}
		return fmt.Sprintf("%d시간 전", hours)
	}
	return t.Format("2006. 1. 2.")
}

// Absolute renders the full date and time for detail views.
func Absolute(t time.Time) string {
	return t.Format("2006. 1. 2. 15:04:05")
}
