package timeentry

import "time"

// SplitDays splits a range into per-calendar-day segments. Day boundaries are
// taken in the range's own location (23:59:59.999 ends the day, the next day
// starts 1ms later). breakMinutes is subtracted in full from every segment
// rather than distributed, and the result is clamped to [1, capMinutes], so
// every touched day yields a record and oversized days are silently truncated.
// A capMinutes <= 0 selects MaxMinutesPerDay.
func SplitDays(r TimeRange, breakMinutes, capMinutes int) []DaySegment {
	if capMinutes <= 0 {
		capMinutes = MaxMinutesPerDay
	}

	var segments []DaySegment
	current := r.Start()

	for current.Before(r.End()) {
		dayEnd := endOfDay(current)

		segmentEnd := r.End()
		if dayEnd.Before(segmentEnd) {
			segmentEnd = dayEnd
		}

		minutes := int(segmentEnd.Sub(current) / time.Minute)
		minutes -= breakMinutes
		if minutes < 1 {
			minutes = 1
		}
		if minutes > capMinutes {
			minutes = capMinutes
		}

		segments = append(segments, DaySegment{
			StartTime:       current,
			EndTime:         r.End(),
			DurationMinutes: minutes,
			BreakMinutes:    breakMinutes,
		})

		current = dayEnd.Add(time.Millisecond)
	}

	return segments
}

// endOfDay returns 23:59:59.999 of t's calendar day, in t's location.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// startOfDay returns 00:00:00.000 of t's calendar day, in t's location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
