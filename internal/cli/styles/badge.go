package styles

import (
	"fmt"
	"time"
)

// EnabledBadge renders a tool state badge.
func (t *Theme) EnabledBadge(enabled bool) string {
	if enabled {
		return t.Badge.Render("on")
	}
	return t.BadgeMuted.Render("off")
}

// RelativeTime formats tm relative to the current time.
func RelativeTime(tm time.Time) string {
	return RelativeTimeAt(time.Now(), tm)
}

// RelativeTimeAt formats tm relative to now.
func RelativeTimeAt(now, tm time.Time) string {
	diff := now.Sub(tm)

	plural := func(n int, unit string) string {
		return fmt.Sprintf("%d%s ago", n, unit)
	}
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "m")
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "h")
	case diff < 7*24*time.Hour:
		return plural(int(diff.Hours()/24), "d")
	case diff < 30*24*time.Hour:
		return plural(int(diff.Hours()/(24*7)), "w")
	case diff < 365*24*time.Hour:
		return plural(int(diff.Hours()/(24*30)), "mo")
	default:
		return plural(int(diff.Hours()/(24*365)), "y")
	}
}
