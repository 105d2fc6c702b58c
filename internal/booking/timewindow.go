package booking

import (
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// TimeWindow is the rental window for one booking, as 24-hour HH:MM
// strings. A window whose end is at or before its start is read as
// crossing midnight (overnight events).
type TimeWindow struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// BilledHours returns the whole hours charged for the window, rounding
// partial hours up. Empty or malformed inputs yield 0 rather than an
// error so pricing stays live while the guest is still typing.
func (w TimeWindow) BilledHours() int {
	start, ok := parseClock(w.StartTime)
	if !ok {
		return 0
	}
	end, ok := parseClock(w.EndTime)
	if !ok {
		return 0
	}

	if end <= start {
		end += minutesPerDay
	}

	diff := end - start
	return (diff + 59) / 60
}

// IsComplete reports whether both endpoints are well-formed clock times
func (w TimeWindow) IsComplete() bool {
	_, okStart := parseClock(w.StartTime)
	_, okEnd := parseClock(w.EndTime)
	return okStart && okEnd
}

// parseClock converts "HH:MM" to minutes since midnight
func parseClock(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}

	return hours*60 + minutes, true
}
