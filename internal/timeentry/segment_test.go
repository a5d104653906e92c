package timeentry_test

import (
	"testing"
	"time"

	"task-time-tracker/internal/timeentry"
)

func mustRange(t *testing.T, start, end time.Time) timeentry.TimeRange {
	t.Helper()
	r, err := timeentry.NewTimeRange(start, end)
	if err != nil {
		t.Fatalf("unexpected error building range: %v", err)
	}
	return r
}

func TestNewTimeRange(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	if _, err := timeentry.NewTimeRange(base, base.Add(time.Hour)); err != nil {
		t.Errorf("valid range rejected: %v", err)
	}
	if _, err := timeentry.NewTimeRange(base, base); err != timeentry.ErrInvalidRange {
		t.Errorf("expected ErrInvalidRange for start == end, got %v", err)
	}
	if _, err := timeentry.NewTimeRange(base.Add(time.Hour), base); err != timeentry.ErrInvalidRange {
		t.Errorf("expected ErrInvalidRange for start > end, got %v", err)
	}
}

func TestSplitDays(t *testing.T) {
	day := func(d, h, min int) time.Time {
		return time.Date(2024, 1, d, h, min, 0, 0, time.UTC)
	}

	tests := []struct {
		name         string
		start        time.Time
		end          time.Time
		breakMinutes int
		wantMinutes  []int
	}{
		{
			name:        "single day",
			start:       day(1, 9, 0),
			end:         day(1, 11, 30),
			wantMinutes: []int{150},
		},
		{
			name:         "single day with break",
			start:        day(1, 9, 0),
			end:          day(1, 11, 30),
			breakMinutes: 45,
			wantMinutes:  []int{105},
		},
		{
			name:        "cap applied",
			start:       day(1, 8, 0),
			end:         day(1, 20, 0), // 12h
			wantMinutes: []int{480},
		},
		{
			name:         "break consumes whole segment",
			start:        day(1, 9, 0),
			end:          day(1, 9, 30),
			breakMinutes: 60,
			wantMinutes:  []int{1}, // floor of 1
		},
		{
			name:         "overnight with break",
			start:        day(1, 22, 0),
			end:          day(2, 2, 0),
			breakMinutes: 30,
			// day 1 runs 22:00-23:59:59.999 (119 whole minutes) - 30,
			// day 2 runs 00:00-02:00 (120) - 30
			wantMinutes: []int{89, 90},
		},
		{
			name:        "three days",
			start:       day(1, 23, 0),
			end:         day(3, 1, 0),
			wantMinutes: []int{59, 480, 60}, // middle day spans 23h59m59.999s, capped
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRange(t, tt.start, tt.end)
			segments := timeentry.SplitDays(r, tt.breakMinutes, 0)

			if len(segments) != len(tt.wantMinutes) {
				t.Fatalf("expected %d segments, got %d", len(tt.wantMinutes), len(segments))
			}

			for i, seg := range segments {
				if seg.DurationMinutes != tt.wantMinutes[i] {
					t.Errorf("segment %d: expected %d minutes, got %d", i, tt.wantMinutes[i], seg.DurationMinutes)
				}
				if seg.DurationMinutes < 1 || seg.DurationMinutes > timeentry.MaxMinutesPerDay {
					t.Errorf("segment %d: duration %d outside [1, %d]", i, seg.DurationMinutes, timeentry.MaxMinutesPerDay)
				}
				if !seg.EndTime.Equal(tt.end) {
					t.Errorf("segment %d: EndTime should carry the overall range end, got %v", i, seg.EndTime)
				}
				if seg.BreakMinutes != tt.breakMinutes {
					t.Errorf("segment %d: expected break %d, got %d", i, tt.breakMinutes, seg.BreakMinutes)
				}
			}

			// Segments are chronological and each starts on its own calendar day.
			for i := 1; i < len(segments); i++ {
				if !segments[i-1].StartTime.Before(segments[i].StartTime) {
					t.Errorf("segments out of order at %d", i)
				}
				if segments[i].StartTime.Day() == segments[i-1].StartTime.Day() {
					t.Errorf("segments %d and %d share a calendar day", i-1, i)
				}
			}

			// First segment starts exactly at the range start.
			if !segments[0].StartTime.Equal(tt.start) {
				t.Errorf("first segment should start at range start, got %v", segments[0].StartTime)
			}

			// Later segments start at midnight.
			for i := 1; i < len(segments); i++ {
				h, m, s := segments[i].StartTime.Clock()
				if h != 0 || m != 0 || s != 0 {
					t.Errorf("segment %d should start at midnight, got %v", i, segments[i].StartTime)
				}
			}
		})
	}
}

func TestSplitDaysCustomCap(t *testing.T) {
	start := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	r := mustRange(t, start, start.Add(6*time.Hour))

	segments := timeentry.SplitDays(r, 0, 120)
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].DurationMinutes != 120 {
		t.Errorf("expected custom cap of 120 applied, got %d", segments[0].DurationMinutes)
	}
}

func TestSplitDaysSegmentCount(t *testing.T) {
	// A range spanning N day boundaries yields N+1 segments.
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for days := 0; days < 5; days++ {
		end := start.AddDate(0, 0, days).Add(time.Hour)
		r := mustRange(t, start, end)
		segments := timeentry.SplitDays(r, 0, 0)
		if len(segments) != days+1 {
			t.Errorf("range over %d boundaries: expected %d segments, got %d", days, days+1, len(segments))
		}
	}
}
