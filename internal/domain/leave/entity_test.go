package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRequestDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", day(2026, 3, 10), day(2026, 3, 10), 1},
		{"three days", day(2026, 3, 10), day(2026, 3, 12), 3},
		{"across month boundary", day(2026, 3, 30), day(2026, 4, 2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Request{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.want, r.Days())
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"disjoint", day(2026, 3, 1), day(2026, 3, 5), day(2026, 3, 6), day(2026, 3, 10), false},
		{"touching endpoints", day(2026, 3, 1), day(2026, 3, 5), day(2026, 3, 5), day(2026, 3, 10), true},
		{"contained", day(2026, 3, 1), day(2026, 3, 10), day(2026, 3, 3), day(2026, 3, 4), true},
		{"identical", day(2026, 3, 1), day(2026, 3, 5), day(2026, 3, 1), day(2026, 3, 5), true},
		{"reversed order disjoint", day(2026, 3, 6), day(2026, 3, 10), day(2026, 3, 1), day(2026, 3, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}
