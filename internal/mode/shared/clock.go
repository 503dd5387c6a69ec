// Package shared holds the small collaborators every view controller uses:
// the clock, clipboard, system opener, desktop notifier and list rendering.
package shared

import (
	"fmt"
	"time"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

// RelativeTime formats t relative to now as "now", "5m ago", "3h ago",
// "2d ago", "1w ago", "3mo ago" or "1y ago". Future times read "now".
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", d/time.Minute)
	case d < day:
		return fmt.Sprintf("%dh ago", d/time.Hour)
	case d < week:
		return fmt.Sprintf("%dd ago", d/day)
	case d < 4*week:
		return fmt.Sprintf("%dw ago", d/week)
	case d < year:
		return fmt.Sprintf("%dmo ago", d/month)
	default:
		return fmt.Sprintf("%dy ago", d/year)
	}
}
