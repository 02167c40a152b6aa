package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func rec(d time.Time, s Status) AttendanceRecord {
	return AttendanceRecord{Date: d, Status: s}
}

func TestSummarizeDay(t *testing.T) {
	target := day(2025, 3, 10)
	records := []AttendanceRecord{
		rec(target, StatusPresent),
		rec(target, StatusPresent),
		rec(target, StatusAbsent),
		rec(target, StatusHalfDay),
		rec(day(2025, 3, 11), StatusPresent), // other day, excluded
	}

	counts := SummarizeDay(records, target)

	assert.Equal(t, 2, counts.Present)
	assert.Equal(t, 1, counts.Absent)
	assert.Equal(t, 1, counts.HalfDay)
	assert.Equal(t, 0, counts.LateCome)
}

func TestSummarizeRange(t *testing.T) {
	records := []AttendanceRecord{
		rec(day(2025, 3, 1), StatusPresent),
		rec(day(2025, 3, 2), StatusPresent),
		rec(day(2025, 3, 3), StatusPresent),
		rec(day(2025, 3, 4), StatusAbsent),
		rec(day(2025, 2, 28), StatusAbsent), // before range
		rec(day(2025, 4, 1), StatusPresent), // after range
	}

	counts, percent := SummarizeRange(records, day(2025, 3, 1), day(2025, 3, 31))

	assert.Equal(t, 3, counts.Present)
	assert.Equal(t, 1, counts.Absent)
	assert.InDelta(t, 75.0, percent, 0.001)
}

func TestSummarizeRangeEmpty(t *testing.T) {
	counts, percent := SummarizeRange(nil, day(2025, 3, 1), day(2025, 3, 31))

	assert.Equal(t, 0, counts.Present)
	assert.Equal(t, 0.0, percent)
}

func TestSummarizeRangeInclusiveBounds(t *testing.T) {
	records := []AttendanceRecord{
		rec(day(2025, 3, 1), StatusPresent),
		rec(day(2025, 3, 31), StatusLateCome),
	}

	counts, _ := SummarizeRange(records, day(2025, 3, 1), day(2025, 3, 31))

	assert.Equal(t, 1, counts.Present)
	assert.Equal(t, 1, counts.LateCome)
}
