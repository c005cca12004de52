package display

import (
	"fmt"
	"time"
)

// FormatDuration returns a compact human-readable duration: milliseconds
// below one second, one decimal of seconds below a minute, then "XmYYs".
// Zero (a step that never ran) renders as "-".
func FormatDuration(d time.Duration) string {
	switch {
	case d == 0:
		return "-"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		m := int(d.Minutes())
		s := int(d.Seconds()) - m*60
		return fmt.Sprintf("%dm%02ds", m, s)
	}
}

// FormatClock renders a wall-clock timestamp as HH:MM:SS, or "-" for the
// zero time.
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("15:04:05")
}
